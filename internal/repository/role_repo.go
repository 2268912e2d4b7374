package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"moviecatalog/internal/domain"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

type roleModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;size:20;not null;uniqueIndex"`
}

func (roleModel) TableName() string { return "roles" }

func toDomainRole(m roleModel) domain.Role {
	return domain.Role{ID: m.ID, Name: domain.RoleName(m.Name)}
}

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) GetByName(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	var m roleModel
	tx := r.db.WithContext(ctx).Where("name = ?", string(name)).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	role := toDomainRole(m)
	return &role, nil
}

// EnsureDefaults seeds the fixed role set. Check-then-insert keeps it
// idempotent across restarts; roles are never deleted at runtime.
func (r *RoleRepository) EnsureDefaults(ctx context.Context) error {
	for _, name := range []domain.RoleName{domain.RoleUser, domain.RoleAdmin} {
		var count int64
		tx := r.db.WithContext(ctx).
			Model(roleModel{}).
			Where("name = ?", string(name)).
			Count(&count)
		if tx.Error != nil {
			return tx.Error
		}
		if count > 0 {
			continue
		}
		if err := r.db.WithContext(ctx).Create(&roleModel{Name: string(name)}).Error; err != nil {
			return err
		}
	}
	return nil
}
