package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"inventory-system/pkg/types"
)

type Equipment struct {
	ID              uint64              `json:"id"`
	Name            string              `json:"name"`
	SerialNumber    string              `json:"serial_number"`
	InventoryNumber string              `json:"inventory_number"`
	AcquiredAt      *time.Time          `json:"acquired_at"`
	Cost            decimal.NullDecimal `json:"cost"`
	CurrentCost     decimal.NullDecimal `json:"current_cost"`
	NomenclatureID  uint64              `json:"nomenclature_id"`
	PlaceID         uint64              `json:"place_id"`
	UserID          *uint64             `json:"user_id"`
	DepartmentID    *uint64             `json:"department_id"`

	// Складские реквизиты
	Rack           string     `json:"rack"`
	Cell           string     `json:"cell"`
	UnitName       string     `json:"unit_name"`
	UnitCode       string     `json:"unit_code"`
	Profile        string     `json:"profile"`
	Size           string     `json:"size"`
	StockNorm      string     `json:"stock_norm"`
	ServiceLifeEnd *time.Time `json:"service_life_end"`

	types.BaseEntity
}

// CostOrZero - стоимость, где NULL считается нулем.
func (e *Equipment) CostOrZero() decimal.Decimal {
	if e.Cost.Valid {
		return e.Cost.Decimal
	}
	return decimal.Zero
}
