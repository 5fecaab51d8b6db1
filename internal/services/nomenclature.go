package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type NomenclatureServiceInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Nomenclature, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Nomenclature, error)
	Create(ctx context.Context, d dto.CreateNomenclatureDTO) (*entities.Nomenclature, error)
	Update(ctx context.Context, id uint64, d dto.UpdateNomenclatureDTO) (*entities.Nomenclature, error)
	Delete(ctx context.Context, id uint64) error
}

type NomenclatureService struct {
	repo   repositories.NomenclatureRepositoryInterface
	logger *zap.Logger
}

func NewNomenclatureService(repo repositories.NomenclatureRepositoryInterface, logger *zap.Logger) NomenclatureServiceInterface {
	return &NomenclatureService{repo: repo, logger: logger}
}

func (s *NomenclatureService) GetAll(ctx context.Context, filter types.Filter) ([]entities.Nomenclature, uint64, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *NomenclatureService) FindByID(ctx context.Context, id uint64) (*entities.Nomenclature, error) {
	return s.repo.FindByID(ctx, nil, id)
}

func (s *NomenclatureService) Create(ctx context.Context, d dto.CreateNomenclatureDTO) (*entities.Nomenclature, error) {
	created, err := s.repo.Create(ctx, nil, entities.Nomenclature{
		Name:     d.Name,
		VendorID: d.VendorID.Ptr(),
		Category: categoryPtr(d.Category),
	})
	if err != nil {
		s.logger.Error("Ошибка при создании номенклатуры", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *NomenclatureService) Update(ctx context.Context, id uint64, d dto.UpdateNomenclatureDTO) (*entities.Nomenclature, error) {
	current, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if d.Name != nil {
		current.Name = *d.Name
	}
	if d.VendorID.Valid {
		current.VendorID = d.VendorID.Ptr()
	}
	if d.Category.Valid {
		current.Category = categoryPtr(d.Category)
	}
	return s.repo.Update(ctx, nil, id, *current)
}

func (s *NomenclatureService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, nil, id)
}

// диапазон уже проверен валидатором
func categoryPtr(c null.Int) *int16 {
	if !c.Valid {
		return nil
	}
	v := int16(c.Int)
	return &v
}
