package entities

import (
	"time"

	"inventory-system/pkg/types"
)

// Invoice - документ передачи оборудования между складом и МОЛ или между МОЛ.
type Invoice struct {
	ID           uint64       `json:"id"`
	Number       string       `json:"number"`
	TransferType TransferType `json:"transfer_type"`
	InvoiceDate  time.Time    `json:"invoice_date"`
	FromUserID   *uint64      `json:"from_user_id"`
	ToUserID     *uint64      `json:"to_user_id"`
	PlaceID      *uint64      `json:"place_id"`

	Lines []InvoiceLine `json:"lines,omitempty"`

	types.BaseEntity
}

type InvoiceLine struct {
	ID          uint64 `json:"id"`
	InvoiceID   uint64 `json:"invoice_id"`
	EquipmentID uint64 `json:"equipment_id"`

	// Заполняется при выборке для отчета
	Invoice *Invoice `json:"invoice,omitempty" db:"-"`
}
