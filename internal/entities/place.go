package entities

import "inventory-system/pkg/types"

// Place - склад или иное место хранения.
type Place struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`

	types.BaseEntity
}
