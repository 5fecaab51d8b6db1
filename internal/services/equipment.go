package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type EquipmentServiceInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Equipment, error)
	Create(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error)
	Update(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	Delete(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	repo   repositories.EquipmentRepositoryInterface
	logger *zap.Logger
}

func NewEquipmentService(repo repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{repo: repo, logger: logger}
}

func (s *EquipmentService) GetAll(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *EquipmentService) FindByID(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return s.repo.FindByID(ctx, nil, id)
}

func (s *EquipmentService) Create(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	e := entities.Equipment{
		Name:            d.Name,
		SerialNumber:    d.SerialNumber,
		InventoryNumber: d.InventoryNumber,
		AcquiredAt:      d.AcquiredAt.Ptr(),
		Cost:            d.Cost,
		CurrentCost:     d.CurrentCost,
		NomenclatureID:  d.NomenclatureID,
		PlaceID:         d.PlaceID,
		UserID:          d.UserID.Ptr(),
		DepartmentID:    d.DepartmentID.Ptr(),
		Rack:            d.Rack,
		Cell:            d.Cell,
		UnitName:        d.UnitName,
		UnitCode:        d.UnitCode,
		Profile:         d.Profile,
		Size:            d.Size,
		StockNorm:       d.StockNorm,
		ServiceLifeEnd:  d.ServiceLifeEnd.Ptr(),
	}
	created, err := s.repo.Create(ctx, nil, e)
	if err != nil {
		s.logger.Error("Ошибка при создании оборудования", zap.String("name", d.Name), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Оборудование создано", zap.Uint64("id", created.ID))
	return created, nil
}

func (s *EquipmentService) Update(ctx context.Context, id uint64, d dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	current, err := s.repo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	applyEquipmentUpdate(current, d)

	updated, err := s.repo.Update(ctx, nil, id, *current)
	if err != nil {
		s.logger.Error("Ошибка при обновлении оборудования", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *EquipmentService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, nil, id)
}

func applyEquipmentUpdate(e *entities.Equipment, d dto.UpdateEquipmentDTO) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&e.Name, d.Name)
	setString(&e.SerialNumber, d.SerialNumber)
	setString(&e.InventoryNumber, d.InventoryNumber)
	setString(&e.Rack, d.Rack)
	setString(&e.Cell, d.Cell)
	setString(&e.UnitName, d.UnitName)
	setString(&e.UnitCode, d.UnitCode)
	setString(&e.Profile, d.Profile)
	setString(&e.Size, d.Size)
	setString(&e.StockNorm, d.StockNorm)

	if d.AcquiredAt.Valid {
		e.AcquiredAt = d.AcquiredAt.Ptr()
	}
	if d.ServiceLifeEnd.Valid {
		e.ServiceLifeEnd = d.ServiceLifeEnd.Ptr()
	}
	if d.Cost.Valid {
		e.Cost = d.Cost
	}
	if d.CurrentCost.Valid {
		e.CurrentCost = d.CurrentCost
	}
	if d.NomenclatureID != nil {
		e.NomenclatureID = *d.NomenclatureID
	}
	if d.PlaceID != nil {
		e.PlaceID = *d.PlaceID
	}
	if d.UserID.Valid {
		e.UserID = d.UserID.Ptr()
	}
	if d.DepartmentID.Valid {
		e.DepartmentID = d.DepartmentID.Ptr()
	}
}
