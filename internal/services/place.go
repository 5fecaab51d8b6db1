package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type PlaceServiceInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Place, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Place, error)
	Create(ctx context.Context, d dto.CreatePlaceDTO) (*entities.Place, error)
	Update(ctx context.Context, id uint64, d dto.UpdatePlaceDTO) (*entities.Place, error)
	Delete(ctx context.Context, id uint64) error
}

type PlaceService struct {
	repo   repositories.PlaceRepositoryInterface
	logger *zap.Logger
}

func NewPlaceService(repo repositories.PlaceRepositoryInterface, logger *zap.Logger) PlaceServiceInterface {
	return &PlaceService{repo: repo, logger: logger}
}

func (s *PlaceService) GetAll(ctx context.Context, filter types.Filter) ([]entities.Place, uint64, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *PlaceService) FindByID(ctx context.Context, id uint64) (*entities.Place, error) {
	return s.repo.FindByID(ctx, nil, id)
}

func (s *PlaceService) Create(ctx context.Context, d dto.CreatePlaceDTO) (*entities.Place, error) {
	created, err := s.repo.Create(ctx, nil, entities.Place{Name: d.Name, Address: d.Address})
	if err != nil {
		s.logger.Error("Ошибка при создании склада", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Склад создан", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *PlaceService) Update(ctx context.Context, id uint64, d dto.UpdatePlaceDTO) (*entities.Place, error) {
	current, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if d.Name != nil {
		current.Name = *d.Name
	}
	if d.Address != nil {
		current.Address = *d.Address
	}
	return s.repo.Update(ctx, nil, id, *current)
}

func (s *PlaceService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, nil, id); err != nil {
		s.logger.Warn("Не удалось удалить склад", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}
