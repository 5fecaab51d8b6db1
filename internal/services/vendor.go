package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type VendorServiceInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Vendor, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Vendor, error)
	Create(ctx context.Context, d dto.CreateVendorDTO) (*entities.Vendor, error)
	Update(ctx context.Context, id uint64, d dto.UpdateVendorDTO) (*entities.Vendor, error)
	Delete(ctx context.Context, id uint64) error
}

type VendorService struct {
	repo   repositories.VendorRepositoryInterface
	logger *zap.Logger
}

func NewVendorService(repo repositories.VendorRepositoryInterface, logger *zap.Logger) VendorServiceInterface {
	return &VendorService{repo: repo, logger: logger}
}

func (s *VendorService) GetAll(ctx context.Context, filter types.Filter) ([]entities.Vendor, uint64, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *VendorService) FindByID(ctx context.Context, id uint64) (*entities.Vendor, error) {
	return s.repo.FindByID(ctx, nil, id)
}

func (s *VendorService) Create(ctx context.Context, d dto.CreateVendorDTO) (*entities.Vendor, error) {
	created, err := s.repo.Create(ctx, nil, entities.Vendor{Name: d.Name})
	if err != nil {
		s.logger.Error("Ошибка при создании производителя", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *VendorService) Update(ctx context.Context, id uint64, d dto.UpdateVendorDTO) (*entities.Vendor, error) {
	current, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if d.Name != nil {
		current.Name = *d.Name
	}
	return s.repo.Update(ctx, nil, id, *current)
}

func (s *VendorService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, nil, id)
}
