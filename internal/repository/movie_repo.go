package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"moviecatalog/internal/domain"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

type movieModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	Title          string    `gorm:"column:title;size:200;not null;uniqueIndex"`
	Description    string    `gorm:"column:description;size:500"`
	Director       string    `gorm:"column:director"`
	ReleaseDate    string    `gorm:"column:release_date"`
	Rating         string    `gorm:"column:rating"`
	Genre          string    `gorm:"column:genre"`
	ThumbnailImage string    `gorm:"column:thumbnail_image"`
	Video          string    `gorm:"column:video"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (movieModel) TableName() string { return "movies" }

func toDomainMovie(m movieModel) *domain.Movie {
	return &domain.Movie{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Director:       m.Director,
		ReleaseDate:    m.ReleaseDate,
		Rating:         m.Rating,
		Genre:          m.Genre,
		ThumbnailImage: m.ThumbnailImage,
		Video:          m.Video,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toMovieModel(mv *domain.Movie) movieModel {
	return movieModel{
		ID:             mv.ID,
		Title:          mv.Title,
		Description:    mv.Description,
		Director:       mv.Director,
		ReleaseDate:    mv.ReleaseDate,
		Rating:         mv.Rating,
		Genre:          mv.Genre,
		ThumbnailImage: mv.ThumbnailImage,
		Video:          mv.Video,
		CreatedAt:      mv.CreatedAt,
		UpdatedAt:      mv.UpdatedAt,
	}
}

func (r *MovieRepository) Create(ctx context.Context, mv *domain.Movie) error {
	m := toMovieModel(mv)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*mv = *toDomainMovie(m)
	return nil
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	var m movieModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainMovie(m), nil
}

func (r *MovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	var models []movieModel
	tx := r.db.WithContext(ctx).Order("id").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	movies := make([]*domain.Movie, 0, len(models))
	for _, m := range models {
		movies = append(movies, toDomainMovie(m))
	}
	return movies, nil
}

func (r *MovieRepository) Update(ctx context.Context, mv *domain.Movie) error {
	m := toMovieModel(mv)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*mv = *toDomainMovie(m)
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&movieModel{}, id).Error
}

func (r *MovieRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).
		Model(movieModel{}).
		Where("title = ?", title).
		Count(&count)
	return count > 0, tx.Error
}
