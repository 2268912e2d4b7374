package movie

import "errors"

var (
	ErrTitleRequired  = errors.New("movie title required")
	ErrDuplicateTitle = errors.New("movie with this title already exists")
	ErrMovieNotFound  = errors.New("movie not found")
	ErrVideoRequired  = errors.New("video file is required")
	ErrNoVideo        = errors.New("no video file associated with this movie")
)
