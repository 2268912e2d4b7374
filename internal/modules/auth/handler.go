package auth

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"moviecatalog/internal/domain"
	"moviecatalog/internal/pkg/response"
)

// Handler manages all HTTP interactions for authentication.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", h.SignUp)
		authGroup.POST("/signin", h.SignIn)
	}
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Roles:    u.RoleNames(),
	}
}

func (h *Handler) SignUp(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	user, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "Conflict", err.Error())
		case errors.Is(err, ErrRoleNotFound):
			response.Error(c, http.StatusNotFound, "Not Found", err.Error())
		case errors.Is(err, ErrDefaultRoleMissing):
			response.Error(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to register user")
		}
		return
	}

	response.Success(c, http.StatusCreated, toUserResponse(user))
}

func (h *Handler) SignIn(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	result, err := h.service.SignIn(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Unauthorized", "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to sign in")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetUser returns a single user by id. Reachable through the admin gate
// only.
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Bad Request", "Invalid user ID")
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "Not Found", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", "Failed to fetch user")
		return
	}

	response.Success(c, http.StatusOK, toUserResponse(user))
}
