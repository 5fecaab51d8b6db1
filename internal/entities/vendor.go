package entities

import "inventory-system/pkg/types"

type Vendor struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`

	types.BaseEntity
}
