package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type DepartmentServiceInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Department, error)
	Create(ctx context.Context, d dto.CreateDepartmentDTO) (*entities.Department, error)
	Update(ctx context.Context, id uint64, d dto.UpdateDepartmentDTO) (*entities.Department, error)
	Delete(ctx context.Context, id uint64) error
}

type DepartmentService struct {
	repo   repositories.DepartmentRepositoryInterface
	logger *zap.Logger
}

func NewDepartmentService(repo repositories.DepartmentRepositoryInterface, logger *zap.Logger) DepartmentServiceInterface {
	return &DepartmentService{repo: repo, logger: logger}
}

func (s *DepartmentService) GetAll(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *DepartmentService) FindByID(ctx context.Context, id uint64) (*entities.Department, error) {
	return s.repo.FindByID(ctx, nil, id)
}

func (s *DepartmentService) Create(ctx context.Context, d dto.CreateDepartmentDTO) (*entities.Department, error) {
	created, err := s.repo.Create(ctx, nil, entities.Department{
		Name:           d.Name,
		OrganizationID: d.OrganizationID,
		CustodianID:    d.CustodianID.Ptr(),
	})
	if err != nil {
		s.logger.Error("Ошибка при создании подразделения", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Подразделение создано", zap.Uint64("id", created.ID))
	return created, nil
}

func (s *DepartmentService) Update(ctx context.Context, id uint64, d dto.UpdateDepartmentDTO) (*entities.Department, error) {
	current, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if d.Name != nil {
		current.Name = *d.Name
	}
	if d.OrganizationID != nil {
		current.OrganizationID = *d.OrganizationID
	}
	if d.CustodianID.Valid {
		current.CustodianID = d.CustodianID.Ptr()
	}
	updated, err := s.repo.Update(ctx, nil, id, *current)
	if err != nil {
		s.logger.Error("Ошибка при обновлении подразделения", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *DepartmentService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, nil, id)
}
