package movie

import (
	"fmt"
	"mime/multipart"

	"moviecatalog/internal/domain"
)

// CreateInput carries the multipart fields of a create request. Video is
// required, Photo optional.
type CreateInput struct {
	Title       string
	Description string
	Director    string
	ReleaseDate string
	Rating      string
	Genre       string
	Video       *multipart.FileHeader
	Photo       *multipart.FileHeader
}

// UpdateRequest is a partial update: nil fields keep their current value.
type UpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Director    *string `json:"director"`
	ReleaseDate *string `json:"releaseDate"`
	Rating      *string `json:"rating"`
	Genre       *string `json:"genre"`
}

type MovieResponse struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Director       string `json:"director,omitempty"`
	ReleaseDate    string `json:"releaseDate,omitempty"`
	Rating         string `json:"rating,omitempty"`
	Genre          string `json:"genre,omitempty"`
	ThumbnailImage string `json:"thumbnailImage,omitempty"`
	VideoURL       string `json:"videoUrl,omitempty"`
}

func toMovieResponse(m *domain.Movie) MovieResponse {
	resp := MovieResponse{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Director:       m.Director,
		ReleaseDate:    m.ReleaseDate,
		Rating:         m.Rating,
		Genre:          m.Genre,
		ThumbnailImage: m.ThumbnailImage,
	}
	if m.Video != "" {
		resp.VideoURL = fmt.Sprintf("/api/movies/%d/download", m.ID)
	}
	return resp
}
