// Package form8 строит "Форму № 8" (книгу учета материальных ценностей подразделения):
// группировка оборудования по номенклатуре, раскладка по листам и выгрузка в PDF/xlsx.
package form8

import (
	"github.com/shopspring/decimal"
)

const dateLayout = "02.01.2006"

// Header - реквизиты титульного листа.
type Header struct {
	Institution string `json:"institution"`
	Department  string `json:"department"`
	Custodian   string `json:"custodian"`
}

// Group - одна номенклатурная группа: общие реквизиты берутся у первого элемента.
type Group struct {
	NomenclatureID uint64 `json:"nomenclature_id"`
	Name           string `json:"name"`

	Warehouse      string `json:"warehouse"`
	Rack           string `json:"rack"`
	Cell           string `json:"cell"`
	UnitName       string `json:"unit_name"`
	UnitCode       string `json:"unit_code"`
	Price          string `json:"price"`
	Brand          string `json:"brand"`
	Category       string `json:"category"`
	Profile        string `json:"profile"`
	Size           string `json:"size"`
	StockNorm      string `json:"stock_norm"`
	ServiceLifeEnd string `json:"service_life_end"`

	Rows      []LedgerRow     `json:"rows"`
	Total     decimal.Decimal `json:"-"`
	TotalText string          `json:"total"`
}

// LedgerRow - строка книги по одной единице оборудования.
type LedgerRow struct {
	Seq             int    `json:"seq"`
	EquipmentID     uint64 `json:"equipment_id"`
	RecordDate      string `json:"record_date"`
	DocumentName    string `json:"document_name"`
	DocumentRef     string `json:"document_ref"`
	Counterparty    string `json:"counterparty"`
	SerialNumber    string `json:"serial_number"`
	InventoryNumber string `json:"inventory_number"`
	Receipt         string `json:"receipt"`
	Expense         string `json:"expense"`
	Balance         string `json:"balance"`
	Control         string `json:"control"`

	Cost decimal.Decimal `json:"-"`
}
