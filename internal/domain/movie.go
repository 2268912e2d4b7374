package domain

import "time"

type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=500"`
	Director    string `json:"director,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`
	Rating      string `json:"rating,omitempty"`
	Genre       string `json:"genre,omitempty"`

	// Stored filenames under the media root. Empty when the movie has no
	// thumbnail/video. The movie record owns both files: they are removed
	// together with the record.
	ThumbnailImage string `json:"thumbnail_image,omitempty"`
	Video          string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
