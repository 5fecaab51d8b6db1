package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
	"inventory-system/pkg/utils"
)

type UserServiceInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
	Create(ctx context.Context, d dto.CreateUserDTO) (*entities.User, error)
	Update(ctx context.Context, id uint64, d dto.UpdateUserDTO) (*entities.User, error)
	Delete(ctx context.Context, id uint64) error
}

type UserService struct {
	repo   repositories.UserRepositoryInterface
	logger *zap.Logger
}

func NewUserService(repo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) GetAll(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *UserService) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	return s.repo.FindByID(ctx, nil, id)
}

func (s *UserService) Create(ctx context.Context, d dto.CreateUserDTO) (*entities.User, error) {
	hash, err := utils.HashPassword(d.Password)
	if err != nil {
		return nil, fmt.Errorf("не удалось захешировать пароль: %w", err)
	}
	created, err := s.repo.Create(ctx, nil, entities.User{
		Login:        d.Login,
		Fio:          d.Fio,
		PasswordHash: hash,
		DepartmentID: d.DepartmentID.Ptr(),
	})
	if err != nil {
		s.logger.Error("Ошибка при создании пользователя", zap.String("login", d.Login), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Пользователь создан", zap.Uint64("id", created.ID), zap.String("login", created.Login))
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id uint64, d dto.UpdateUserDTO) (*entities.User, error) {
	current, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if d.Login != nil {
		current.Login = *d.Login
	}
	if d.Fio != nil {
		current.Fio = *d.Fio
	}
	if d.Password != nil {
		hash, err := utils.HashPassword(*d.Password)
		if err != nil {
			return nil, fmt.Errorf("не удалось захешировать пароль: %w", err)
		}
		current.PasswordHash = hash
	}
	if d.DepartmentID.Valid {
		current.DepartmentID = d.DepartmentID.Ptr()
	}
	updated, err := s.repo.Update(ctx, nil, id, *current)
	if err != nil {
		s.logger.Error("Ошибка при обновлении пользователя", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, nil, id)
}
