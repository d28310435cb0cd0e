package repository

import (
	"context"

	"onyxshop/internal/model"

	"gorm.io/gorm"
)

// AdminUsuarioRepository defines data access for back-office operators.
type AdminUsuarioRepository interface {
	Create(ctx context.Context, u *model.AdminUsuario) error
	FindByUsername(ctx context.Context, username string) (*model.AdminUsuario, error)
}

type adminUsuarioRepo struct{ db *gorm.DB }

func NewAdminUsuarioRepository(db *gorm.DB) AdminUsuarioRepository {
	return &adminUsuarioRepo{db: db}
}

func (r *adminUsuarioRepo) Create(ctx context.Context, u *model.AdminUsuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *adminUsuarioRepo) FindByUsername(ctx context.Context, username string) (*model.AdminUsuario, error) {
	var u model.AdminUsuario
	err := r.db.WithContext(ctx).Where("username = ? AND activo = true", username).First(&u).Error
	return &u, err
}
