package service

import (
	"context"

	"onyxshop/internal/dto"
	"onyxshop/internal/model"
	"onyxshop/internal/repository"

	"github.com/shopspring/decimal"
)

// ConfiguracionService exposes the persisted store settings. Today that is a
// single value: the operator deduction percentage driving the reports.
type ConfiguracionService interface {
	ObtenerDeduccion(ctx context.Context) (dto.DeduccionResponse, error)
	GuardarDeduccion(ctx context.Context, req dto.DeduccionRequest) (dto.DeduccionResponse, error)
}

type configuracionService struct {
	repo repository.ConfiguracionRepository
}

func NewConfiguracionService(repo repository.ConfiguracionRepository) ConfiguracionService {
	return &configuracionService{repo: repo}
}

func (s *configuracionService) ObtenerDeduccion(ctx context.Context) (dto.DeduccionResponse, error) {
	valor, err := s.repo.Obtener(ctx, model.ClaveDeduccion)
	if err != nil {
		if notFound(err) {
			// Never configured: reports run with a zero cut.
			return dto.DeduccionResponse{Porcentaje: decimal.Zero}, nil
		}
		return dto.DeduccionResponse{}, err
	}
	pct, err := decimal.NewFromString(valor)
	if err != nil {
		return dto.DeduccionResponse{Porcentaje: decimal.Zero}, nil
	}
	return dto.DeduccionResponse{Porcentaje: pct}, nil
}

func (s *configuracionService) GuardarDeduccion(ctx context.Context, req dto.DeduccionRequest) (dto.DeduccionResponse, error) {
	if err := s.repo.Guardar(ctx, model.ClaveDeduccion, req.Porcentaje.String()); err != nil {
		return dto.DeduccionResponse{}, err
	}
	return dto.DeduccionResponse{Porcentaje: req.Porcentaje}, nil
}
