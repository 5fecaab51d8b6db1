package entities

import "inventory-system/pkg/types"

type Organization struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	INN       string `json:"inn"`

	types.BaseEntity
}
