package dto

import "github.com/aarondl/null/v8"

type CreateNomenclatureDTO struct {
	Name     string      `json:"name" validate:"required,max=255"`
	VendorID null.Uint64 `json:"vendor_id"`
	Category null.Int    `json:"category" validate:"omitempty,min=1,max=5"`
}

type UpdateNomenclatureDTO struct {
	Name     *string     `json:"name" validate:"omitempty,max=255"`
	VendorID null.Uint64 `json:"vendor_id"`
	Category null.Int    `json:"category" validate:"omitempty,min=1,max=5"`
}
