package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type OrganizationServiceInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Organization, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Organization, error)
	Create(ctx context.Context, d dto.CreateOrganizationDTO) (*entities.Organization, error)
	Update(ctx context.Context, id uint64, d dto.UpdateOrganizationDTO) (*entities.Organization, error)
	Delete(ctx context.Context, id uint64) error
}

type OrganizationService struct {
	repo   repositories.OrganizationRepositoryInterface
	logger *zap.Logger
}

func NewOrganizationService(repo repositories.OrganizationRepositoryInterface, logger *zap.Logger) OrganizationServiceInterface {
	return &OrganizationService{repo: repo, logger: logger}
}

func (s *OrganizationService) GetAll(ctx context.Context, filter types.Filter) ([]entities.Organization, uint64, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *OrganizationService) FindByID(ctx context.Context, id uint64) (*entities.Organization, error) {
	return s.repo.FindByID(ctx, nil, id)
}

func (s *OrganizationService) Create(ctx context.Context, d dto.CreateOrganizationDTO) (*entities.Organization, error) {
	created, err := s.repo.Create(ctx, nil, entities.Organization{Name: d.Name, ShortName: d.ShortName, INN: d.INN})
	if err != nil {
		s.logger.Error("Ошибка при создании организации", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Организация создана", zap.Uint64("id", created.ID))
	return created, nil
}

func (s *OrganizationService) Update(ctx context.Context, id uint64, d dto.UpdateOrganizationDTO) (*entities.Organization, error) {
	current, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if d.Name != nil {
		current.Name = *d.Name
	}
	if d.ShortName != nil {
		current.ShortName = *d.ShortName
	}
	if d.INN != nil {
		current.INN = *d.INN
	}
	updated, err := s.repo.Update(ctx, nil, id, *current)
	if err != nil {
		s.logger.Error("Ошибка при обновлении организации", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *OrganizationService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, nil, id)
}
