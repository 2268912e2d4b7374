package movie

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moviecatalog/internal/pkg/response"
	"moviecatalog/internal/storage"
)

// Handler manages all HTTP interactions for the movie catalog.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles the multipart create request. The video part is required,
// the photo part optional.
func (h *Handler) Create(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		response.ValidationError(c, "Validation failed", map[string]string{
			"title": "title is required",
		})
		return
	}

	video, err := c.FormFile("video")
	if err != nil {
		response.ValidationError(c, "Validation failed", map[string]string{
			"video": "video file is required",
		})
		return
	}

	// Optional thumbnail.
	photo, err := c.FormFile("photo")
	if err != nil {
		photo = nil
	}

	input := CreateInput{
		Title:       title,
		Description: c.PostForm("description"),
		Director:    c.PostForm("director"),
		ReleaseDate: c.PostForm("releaseDate"),
		Rating:      c.PostForm("rating"),
		Genre:       c.PostForm("genre"),
		Video:       video,
		Photo:       photo,
	}

	mv, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, toMovieResponse(mv))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	mv, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toMovieResponse(mv))
}

func (h *Handler) List(c *gin.Context) {
	movies, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]MovieResponse, 0, len(movies))
	for _, mv := range movies {
		resp = append(resp, toMovieResponse(mv))
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	mv, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toMovieResponse(mv))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Download streams the stored video with its sniffed content type and an
// attachment disposition carrying the stored filename.
func (h *Handler) Download(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	path, filename, contentType, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		h.writeError(c, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.DataFromReader(http.StatusOK, info.Size(), contentType, f, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename=%q`, filename),
	})
}

func (h *Handler) movieID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid movie ID")
		return 0, false
	}
	return id, true
}

// writeError translates domain failures into the response envelope, once.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTitleRequired), errors.Is(err, ErrVideoRequired):
		response.Error(c, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, storage.ErrEmptyFile), errors.Is(err, storage.ErrInvalidType):
		response.Error(c, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, storage.ErrTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "Payload Too Large", err.Error())
	case errors.Is(err, ErrDuplicateTitle):
		response.Error(c, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, ErrMovieNotFound), errors.Is(err, ErrNoVideo), errors.Is(err, storage.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, storage.ErrNotReadable):
		response.Error(c, http.StatusForbidden, "Forbidden", err.Error())
	default:
		zap.L().Error("Movie operation failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Internal server error")
	}
}
