package movie

import (
	"context"
	"mime/multipart"

	"moviecatalog/internal/domain"
	"moviecatalog/internal/storage"
)

type MovieRepositoryInterface interface {
	Create(ctx context.Context, mv *domain.Movie) error
	GetByID(ctx context.Context, id int64) (*domain.Movie, error)
	GetAll(ctx context.Context) ([]*domain.Movie, error)
	Update(ctx context.Context, mv *domain.Movie) error
	Delete(ctx context.Context, id int64) error
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}

// MediaStore is the file-backed side of the catalog: validated writes,
// confined reads, idempotent deletes.
type MediaStore interface {
	Store(kind storage.Kind, fh *multipart.FileHeader) (string, error)
	Resolve(filename string) (string, error)
	Delete(filename string) error
}
