package movie

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"moviecatalog/internal/domain"
	"moviecatalog/internal/repository"
	"moviecatalog/internal/storage"
)

// Service contains the catalog business logic and owns the ordering between
// file writes and record writes: files are validated and copied first, and a
// record is never persisted pointing at bytes that failed to land.
type Service struct {
	movies MovieRepositoryInterface
	media  MediaStore
}

func NewService(movies MovieRepositoryInterface, media MediaStore) *Service {
	return &Service{movies: movies, media: media}
}

// Create validates metadata, stores the uploaded files and persists the
// record. Title uniqueness is checked before any file is written so a
// doomed create never leaves bytes behind.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Movie, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	exists, err := s.movies.ExistsByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateTitle
	}

	if input.Video == nil {
		return nil, ErrVideoRequired
	}

	mv := &domain.Movie{
		Title:       title,
		Description: input.Description,
		Director:    input.Director,
		ReleaseDate: input.ReleaseDate,
		Rating:      input.Rating,
		Genre:       input.Genre,
	}

	if input.Photo != nil {
		name, err := s.media.Store(storage.KindImage, input.Photo)
		if err != nil {
			return nil, err
		}
		mv.ThumbnailImage = name
	}

	videoName, err := s.media.Store(storage.KindVideo, input.Video)
	if err != nil {
		s.removeStoredFiles(mv.ThumbnailImage)
		return nil, err
	}
	mv.Video = videoName

	if err := s.movies.Create(ctx, mv); err != nil {
		// No orphaned metadata, and no orphaned bytes either.
		s.removeStoredFiles(mv.ThumbnailImage, mv.Video)
		return nil, err
	}

	return mv, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	mv, err := s.movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return mv, nil
}

func (s *Service) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	return s.movies.GetAll(ctx)
}

// Update merges the provided fields into the existing record. It touches
// metadata only; stored files are immutable once written.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Movie, error) {
	mv, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		if title != mv.Title {
			exists, err := s.movies.ExistsByTitle(ctx, title)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrDuplicateTitle
			}
			mv.Title = title
		}
	}
	if req.Description != nil {
		mv.Description = *req.Description
	}
	if req.Director != nil {
		mv.Director = *req.Director
	}
	if req.ReleaseDate != nil {
		mv.ReleaseDate = *req.ReleaseDate
	}
	if req.Rating != nil {
		mv.Rating = *req.Rating
	}
	if req.Genre != nil {
		mv.Genre = *req.Genre
	}

	if err := s.movies.Update(ctx, mv); err != nil {
		return nil, err
	}
	return mv, nil
}

// Delete removes the movie's stored files and then the record. Files the
// record owns must not outlive it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	mv, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.media.Delete(mv.ThumbnailImage); err != nil {
		return err
	}
	if err := s.media.Delete(mv.Video); err != nil {
		return err
	}

	return s.movies.Delete(ctx, id)
}

// Download resolves the movie's video file and returns its on-disk path,
// stored filename and sniffed content type.
func (s *Service) Download(ctx context.Context, id int64) (path, filename, contentType string, err error) {
	mv, err := s.GetByID(ctx, id)
	if err != nil {
		return "", "", "", err
	}

	if mv.Video == "" {
		return "", "", "", ErrNoVideo
	}

	path, err = s.media.Resolve(mv.Video)
	if err != nil {
		return "", "", "", err
	}

	return path, mv.Video, storage.DetectContentType(path), nil
}

// removeStoredFiles is the cleanup path after a failed create. Failures are
// logged, not returned: the create already failed for the real reason.
func (s *Service) removeStoredFiles(names ...string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		if err := s.media.Delete(name); err != nil {
			zap.L().Error("Failed to clean up stored file after failed create",
				zap.String("file", name), zap.Error(err))
		}
	}
}
