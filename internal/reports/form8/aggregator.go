package form8

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const (
	docReceiptOrder = "Приходный ордер"
	docInvoice      = "Накладная"
	notSpecified    = "не указано"
)

// Lookup - доступ к связанным сущностям по идентификатору.
// Отсутствующая запись возвращается как apperrors.ErrNotFound.
type Lookup interface {
	Nomenclature(ctx context.Context, id uint64) (*entities.Nomenclature, error)
	Vendor(ctx context.Context, id uint64) (*entities.Vendor, error)
	Place(ctx context.Context, id uint64) (*entities.Place, error)
	User(ctx context.Context, id uint64) (*entities.User, error)
	EarliestInvoiceLine(ctx context.Context, equipmentID uint64) (*entities.InvoiceLine, error)
}

// Aggregator раскладывает оборудование по номенклатурным группам.
type Aggregator struct {
	lookup Lookup
	logger *zap.Logger
}

func NewAggregator(lookup Lookup, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{lookup: lookup, logger: logger}
}

// Aggregate - сокращение для NewAggregator(lookup, nil).Aggregate.
func Aggregate(ctx context.Context, items []entities.Equipment, lookup Lookup) ([]Group, error) {
	return NewAggregator(lookup, nil).Aggregate(ctx, items)
}

// Aggregate группирует items по NomenclatureID в порядке первого появления группы.
// Пустой список - ErrInvalidInput; ненайденные связи дают пустые строки.
func (a *Aggregator) Aggregate(ctx context.Context, items []entities.Equipment) ([]Group, error) {
	if len(items) == 0 {
		return nil, apperrors.ErrEmptyReport
	}

	order := make([]uint64, 0)
	members := make(map[uint64][]entities.Equipment)
	for _, item := range items {
		if _, seen := members[item.NomenclatureID]; !seen {
			order = append(order, item.NomenclatureID)
		}
		members[item.NomenclatureID] = append(members[item.NomenclatureID], item)
	}

	groups := make([]Group, 0, len(order))
	for _, id := range order {
		g, err := a.buildGroup(ctx, id, members[id])
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (a *Aggregator) buildGroup(ctx context.Context, nomenclatureID uint64, items []entities.Equipment) (Group, error) {
	first := items[0]
	g := Group{
		NomenclatureID: nomenclatureID,
		Rack:           first.Rack,
		Cell:           first.Cell,
		UnitName:       first.UnitName,
		UnitCode:       first.UnitCode,
		Price:          FormatMoney(first.CostOrZero()),
		Profile:        first.Profile,
		Size:           first.Size,
		StockNorm:      first.StockNorm,
		ServiceLifeEnd: formatDate(first.ServiceLifeEnd),
	}

	nomenclature, err := optional[entities.Nomenclature](a.lookup.Nomenclature(ctx, nomenclatureID))
	if err != nil {
		return Group{}, fmt.Errorf("номенклатура %d: %w", nomenclatureID, err)
	}
	if nomenclature != nil {
		g.Name = nomenclature.Name
		if nomenclature.Category != nil {
			g.Category = strconv.Itoa(int(*nomenclature.Category))
		}
		if nomenclature.VendorID != nil {
			vendor, err := optional[entities.Vendor](a.lookup.Vendor(ctx, *nomenclature.VendorID))
			if err != nil {
				return Group{}, fmt.Errorf("производитель %d: %w", *nomenclature.VendorID, err)
			}
			if vendor != nil {
				g.Brand = vendor.Name
			}
		}
	}

	if g.Warehouse, err = a.placeName(ctx, first.PlaceID); err != nil {
		return Group{}, err
	}

	balance := decimal.Zero
	g.Rows = make([]LedgerRow, 0, len(items))
	for i, item := range items {
		if item.PlaceID != first.PlaceID {
			// состав группы не проверяем, только отмечаем расхождение
			a.logger.Debug("Склад элемента отличается от склада группы",
				zap.Uint64("nomenclature_id", nomenclatureID),
				zap.Uint64("equipment_id", item.ID),
				zap.Uint64("group_place_id", first.PlaceID),
				zap.Uint64("place_id", item.PlaceID),
			)
		}

		row, err := a.buildRow(ctx, i+1, item)
		if err != nil {
			return Group{}, err
		}
		balance = balance.Add(row.Cost)
		row.Balance = FormatMoney(balance)
		g.Rows = append(g.Rows, row)
	}

	g.Total = balance
	g.TotalText = FormatMoney(balance)
	return g, nil
}

func (a *Aggregator) buildRow(ctx context.Context, seq int, item entities.Equipment) (LedgerRow, error) {
	cost := item.CostOrZero()
	row := LedgerRow{
		Seq:             seq,
		EquipmentID:     item.ID,
		RecordDate:      formatDate(item.AcquiredAt),
		SerialNumber:    item.SerialNumber,
		InventoryNumber: item.InventoryNumber,
		Receipt:         FormatMoney(cost),
		Cost:            cost,
	}

	line, err := optional[entities.InvoiceLine](a.lookup.EarliestInvoiceLine(ctx, item.ID))
	if err != nil {
		return LedgerRow{}, fmt.Errorf("накладная для оборудования %d: %w", item.ID, err)
	}

	if line == nil || line.Invoice == nil {
		if row.Counterparty, err = a.custodianLogin(ctx, item.UserID); err != nil {
			return LedgerRow{}, err
		}
		return row, nil
	}

	inv := line.Invoice
	row.DocumentName = docInvoice
	if inv.TransferType == entities.TransferWarehouseToCustodian {
		row.DocumentName = docReceiptOrder
	}
	row.DocumentRef = fmt.Sprintf("%s № %s", inv.InvoiceDate.Format(dateLayout), inv.Number)
	if row.RecordDate == "" {
		row.RecordDate = inv.InvoiceDate.Format(dateLayout)
	}
	if row.Counterparty, err = a.counterparty(ctx, inv); err != nil {
		return LedgerRow{}, err
	}
	return row, nil
}

// counterparty - графа "от кого получено / кому отпущено".
func (a *Aggregator) counterparty(ctx context.Context, inv *entities.Invoice) (string, error) {
	switch inv.TransferType {
	case entities.TransferWarehouseToCustodian, entities.TransferCustodianToWarehouse:
		if inv.PlaceID == nil {
			return "", nil
		}
		return a.placeName(ctx, *inv.PlaceID)
	case entities.TransferCustodianToCustodian:
		if inv.FromUserID == nil {
			return "", nil
		}
		user, err := optional[entities.User](a.lookup.User(ctx, *inv.FromUserID))
		if err != nil || user == nil {
			return "", wrapLookup("пользователь", *inv.FromUserID, err)
		}
		return user.DisplayName(), nil
	default:
		return notSpecified, nil
	}
}

func (a *Aggregator) placeName(ctx context.Context, id uint64) (string, error) {
	place, err := optional[entities.Place](a.lookup.Place(ctx, id))
	if err != nil || place == nil {
		return "", wrapLookup("склад", id, err)
	}
	return place.Name, nil
}

func (a *Aggregator) custodianLogin(ctx context.Context, userID *uint64) (string, error) {
	if userID == nil {
		return "", nil
	}
	user, err := optional[entities.User](a.lookup.User(ctx, *userID))
	if err != nil || user == nil {
		return "", wrapLookup("МОЛ", *userID, err)
	}
	return user.Login, nil
}

// optional превращает ErrNotFound в (nil, nil).
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return v, err
}

func wrapLookup(kind string, id uint64, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %d: %w", kind, id, err)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
