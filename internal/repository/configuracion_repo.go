package repository

import (
	"context"

	"onyxshop/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfiguracionRepository persists single-value settings (deduction percent).
type ConfiguracionRepository interface {
	Obtener(ctx context.Context, clave string) (string, error)
	Guardar(ctx context.Context, clave, valor string) error
}

type configuracionRepo struct{ db *gorm.DB }

func NewConfiguracionRepository(db *gorm.DB) ConfiguracionRepository {
	return &configuracionRepo{db: db}
}

func (r *configuracionRepo) Obtener(ctx context.Context, clave string) (string, error) {
	var c model.Configuracion
	if err := r.db.WithContext(ctx).Where("clave = ?", clave).First(&c).Error; err != nil {
		return "", err
	}
	return c.Valor, nil
}

func (r *configuracionRepo) Guardar(ctx context.Context, clave, valor string) error {
	c := model.Configuracion{Clave: clave, Valor: valor}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "clave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor", "updated_at"}),
	}).Create(&c).Error
}
