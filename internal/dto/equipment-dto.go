package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type CreateEquipmentDTO struct {
	Name            string              `json:"name" validate:"required,max=255"`
	SerialNumber    string              `json:"serial_number" validate:"omitempty,max=100"`
	InventoryNumber string              `json:"inventory_number" validate:"omitempty,max=100"`
	AcquiredAt      null.Time           `json:"acquired_at"`
	Cost            decimal.NullDecimal `json:"cost"`
	CurrentCost     decimal.NullDecimal `json:"current_cost"`
	NomenclatureID  uint64              `json:"nomenclature_id" validate:"required"`
	PlaceID         uint64              `json:"place_id" validate:"required"`
	UserID          null.Uint64         `json:"user_id"`
	DepartmentID    null.Uint64         `json:"department_id"`

	Rack           string    `json:"rack" validate:"omitempty,max=50"`
	Cell           string    `json:"cell" validate:"omitempty,max=50"`
	UnitName       string    `json:"unit_name" validate:"omitempty,max=50"`
	UnitCode       string    `json:"unit_code" validate:"omitempty,okei"`
	Profile        string    `json:"profile" validate:"omitempty,max=100"`
	Size           string    `json:"size" validate:"omitempty,max=100"`
	StockNorm      string    `json:"stock_norm" validate:"omitempty,max=50"`
	ServiceLifeEnd null.Time `json:"service_life_end"`
}

// UpdateEquipmentDTO - частичное обновление, nil/невалидные поля не трогаем.
type UpdateEquipmentDTO struct {
	Name            *string             `json:"name" validate:"omitempty,max=255"`
	SerialNumber    *string             `json:"serial_number" validate:"omitempty,max=100"`
	InventoryNumber *string             `json:"inventory_number" validate:"omitempty,max=100"`
	AcquiredAt      null.Time           `json:"acquired_at"`
	Cost            decimal.NullDecimal `json:"cost"`
	CurrentCost     decimal.NullDecimal `json:"current_cost"`
	NomenclatureID  *uint64             `json:"nomenclature_id" validate:"omitempty,gt=0"`
	PlaceID         *uint64             `json:"place_id" validate:"omitempty,gt=0"`
	UserID          null.Uint64         `json:"user_id"`
	DepartmentID    null.Uint64         `json:"department_id"`

	Rack           *string   `json:"rack" validate:"omitempty,max=50"`
	Cell           *string   `json:"cell" validate:"omitempty,max=50"`
	UnitName       *string   `json:"unit_name" validate:"omitempty,max=50"`
	UnitCode       *string   `json:"unit_code" validate:"omitempty,okei"`
	Profile        *string   `json:"profile" validate:"omitempty,max=100"`
	Size           *string   `json:"size" validate:"omitempty,max=100"`
	StockNorm      *string   `json:"stock_norm" validate:"omitempty,max=50"`
	ServiceLifeEnd null.Time `json:"service_life_end"`
}

// ImportResultDTO - итог загрузки xlsx с оборудованием.
type ImportResultDTO struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}
