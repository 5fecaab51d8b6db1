package entities

import "inventory-system/pkg/types"

const (
	MinCategory = 1
	MaxCategory = 5
)

// Nomenclature - номенклатурная группа оборудования.
type Nomenclature struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	VendorID *uint64 `json:"vendor_id"`
	Category *int16  `json:"category"`

	types.BaseEntity
}
