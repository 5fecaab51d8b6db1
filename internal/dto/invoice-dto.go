package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateInvoiceDTO struct {
	Number       string      `json:"number" validate:"required,max=50"`
	TransferType string      `json:"transfer_type" validate:"required,transfer_type"`
	InvoiceDate  time.Time   `json:"invoice_date" validate:"required"`
	FromUserID   null.Uint64 `json:"from_user_id"`
	ToUserID     null.Uint64 `json:"to_user_id"`
	PlaceID      null.Uint64 `json:"place_id"`
	EquipmentIDs []uint64    `json:"equipment_ids" validate:"required,min=1,dive,gt=0"`
}

// UpdateInvoiceDTO - при непустом EquipmentIDs строки накладной заменяются целиком.
type UpdateInvoiceDTO struct {
	Number       *string     `json:"number" validate:"omitempty,max=50"`
	TransferType *string     `json:"transfer_type" validate:"omitempty,transfer_type"`
	InvoiceDate  *time.Time  `json:"invoice_date"`
	FromUserID   null.Uint64 `json:"from_user_id"`
	ToUserID     null.Uint64 `json:"to_user_id"`
	PlaceID      null.Uint64 `json:"place_id"`
	EquipmentIDs []uint64    `json:"equipment_ids" validate:"omitempty,dive,gt=0"`
}
