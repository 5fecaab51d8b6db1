package form8

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

type fakeLookup struct {
	nomenclatures map[uint64]*entities.Nomenclature
	vendors       map[uint64]*entities.Vendor
	places        map[uint64]*entities.Place
	users         map[uint64]*entities.User
	lines         map[uint64]*entities.InvoiceLine
	err           error
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		nomenclatures: map[uint64]*entities.Nomenclature{},
		vendors:       map[uint64]*entities.Vendor{},
		places:        map[uint64]*entities.Place{},
		users:         map[uint64]*entities.User{},
		lines:         map[uint64]*entities.InvoiceLine{},
	}
}

func find[T any](m map[uint64]*T, id uint64, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if v, ok := m[id]; ok {
		return v, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeLookup) Nomenclature(_ context.Context, id uint64) (*entities.Nomenclature, error) {
	return find(f.nomenclatures, id, f.err)
}

func (f *fakeLookup) Vendor(_ context.Context, id uint64) (*entities.Vendor, error) {
	return find(f.vendors, id, f.err)
}

func (f *fakeLookup) Place(_ context.Context, id uint64) (*entities.Place, error) {
	return find(f.places, id, f.err)
}

func (f *fakeLookup) User(_ context.Context, id uint64) (*entities.User, error) {
	return find(f.users, id, f.err)
}

func (f *fakeLookup) EarliestInvoiceLine(_ context.Context, equipmentID uint64) (*entities.InvoiceLine, error) {
	return find(f.lines, equipmentID, f.err)
}

func ptr[T any](v T) *T { return &v }

func money(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func item(id, group uint64, cost string) entities.Equipment {
	e := entities.Equipment{ID: id, NomenclatureID: group, PlaceID: 1, UserID: ptr(uint64(10))}
	if cost != "" {
		e.Cost = money(cost)
	}
	return e
}

func TestAggregate_EmptyInput(t *testing.T) {
	groups, err := Aggregate(context.Background(), nil, newFakeLookup())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Nil(t, groups)
}

func TestAggregate_TwoItemsOneGroup(t *testing.T) {
	lookup := newFakeLookup()
	lookup.users[10] = &entities.User{ID: 10, Login: "Ivanov"}

	groups, err := Aggregate(context.Background(), []entities.Equipment{
		item(1, 7, "100.00"),
		item(2, 7, "250.50"),
	}, lookup)
	require.NoError(t, err)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, uint64(7), g.NomenclatureID)
	require.Len(t, g.Rows, 2)
	assert.Equal(t, "350.50", g.TotalText)
	assert.True(t, g.Total.Equal(decimal.RequireFromString("350.5")))

	assert.Equal(t, "Ivanov", g.Rows[0].Counterparty)
	assert.Equal(t, "Ivanov", g.Rows[1].Counterparty)
	assert.Equal(t, "100.00", g.Rows[0].Balance)
	assert.Equal(t, "350.50", g.Rows[1].Balance)
	assert.Empty(t, g.Rows[1].Expense)
	assert.Empty(t, g.Rows[0].DocumentName)

	// связей нет - пустые строки, а не ошибка
	assert.Empty(t, g.Name)
	assert.Empty(t, g.Warehouse)
	assert.Empty(t, g.Brand)
}

func TestAggregate_GroupOrderAndPartition(t *testing.T) {
	items := []entities.Equipment{
		item(1, 3, "1"),
		item(2, 1, "2"),
		item(3, 3, ""),
		item(4, 2, "4"),
		item(5, 1, "5"),
	}

	groups, err := Aggregate(context.Background(), items, newFakeLookup())
	require.NoError(t, err)

	ids := make([]uint64, 0, len(groups))
	seen := map[uint64]int{}
	for _, g := range groups {
		ids = append(ids, g.NomenclatureID)
		sum := decimal.Zero
		for _, r := range g.Rows {
			seen[r.EquipmentID]++
			sum = sum.Add(r.Cost)
		}
		assert.True(t, sum.Equal(g.Total), "group %d", g.NomenclatureID)
	}
	assert.Equal(t, []uint64{3, 1, 2}, ids)
	assert.Len(t, seen, len(items))
	for id, n := range seen {
		assert.Equal(t, 1, n, "equipment %d", id)
	}

	// стоимость NULL считается нулем
	assert.Equal(t, "1.00", groups[0].TotalText)
	assert.Equal(t, "0.00", groups[0].Rows[1].Receipt)
}

func TestAggregate_RepresentativeFields(t *testing.T) {
	lookup := newFakeLookup()
	lookup.places[1] = &entities.Place{ID: 1, Name: "Центральный склад"}
	lookup.places[2] = &entities.Place{ID: 2, Name: "Второй склад"}
	lookup.vendors[5] = &entities.Vendor{ID: 5, Name: "Dell"}
	lookup.nomenclatures[7] = &entities.Nomenclature{ID: 7, Name: "Ноутбуки", VendorID: ptr(uint64(5)), Category: ptr(int16(2))}

	first := item(1, 7, "1500.5")
	first.Rack, first.Cell, first.UnitName, first.UnitCode = "A", "3", "шт", "796"
	first.Profile, first.Size, first.StockNorm = "15\"", "35x25", "2"
	first.ServiceLifeEnd = ptr(time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC))
	second := item(2, 7, "10")
	second.PlaceID = 2
	second.Rack = "Z"

	groups, err := Aggregate(context.Background(), []entities.Equipment{first, second}, lookup)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, "Ноутбуки", g.Name)
	assert.Equal(t, "Центральный склад", g.Warehouse)
	assert.Equal(t, "A", g.Rack)
	assert.Equal(t, "3", g.Cell)
	assert.Equal(t, "шт", g.UnitName)
	assert.Equal(t, "796", g.UnitCode)
	assert.Equal(t, "1 500.50", g.Price)
	assert.Equal(t, "Dell", g.Brand)
	assert.Equal(t, "2", g.Category)
	assert.Equal(t, "31.12.2030", g.ServiceLifeEnd)
	assert.Equal(t, "1 510.50", g.TotalText)
}

func TestAggregate_InvoiceDerivation(t *testing.T) {
	lookup := newFakeLookup()
	lookup.places[1] = &entities.Place{ID: 1, Name: "Центральный склад"}
	lookup.places[4] = &entities.Place{ID: 4, Name: "Склад возврата"}
	lookup.users[10] = &entities.User{ID: 10, Login: "ivanov"}
	lookup.users[11] = &entities.User{ID: 11, Login: "petrov", Fio: "Петров П.П."}

	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	invoice := func(tt entities.TransferType, number string) *entities.InvoiceLine {
		return &entities.InvoiceLine{Invoice: &entities.Invoice{
			Number: number, TransferType: tt, InvoiceDate: date,
			FromUserID: ptr(uint64(11)), PlaceID: ptr(uint64(4)),
		}}
	}
	lookup.lines[1] = invoice(entities.TransferWarehouseToCustodian, "15")
	lookup.lines[2] = invoice(entities.TransferCustodianToCustodian, "16")
	lookup.lines[3] = invoice(entities.TransferCustodianToWarehouse, "17")
	lookup.lines[4] = invoice(entities.TransferUnspecified, "18")

	items := []entities.Equipment{item(1, 1, "1"), item(2, 1, "1"), item(3, 1, "1"), item(4, 1, "1"), item(5, 1, "1")}
	groups, err := Aggregate(context.Background(), items, lookup)
	require.NoError(t, err)
	rows := groups[0].Rows

	assert.Equal(t, "Приходный ордер", rows[0].DocumentName)
	assert.Equal(t, "05.03.2024 № 15", rows[0].DocumentRef)
	assert.Equal(t, "Склад возврата", rows[0].Counterparty)
	assert.Equal(t, "05.03.2024", rows[0].RecordDate)

	assert.Equal(t, "Накладная", rows[1].DocumentName)
	assert.Equal(t, "Петров П.П.", rows[1].Counterparty)

	assert.Equal(t, "Накладная", rows[2].DocumentName)
	assert.Equal(t, "Склад возврата", rows[2].Counterparty)

	assert.Equal(t, "не указано", rows[3].Counterparty)

	// без накладной - логин МОЛ
	assert.Equal(t, "ivanov", rows[4].Counterparty)
	assert.Empty(t, rows[4].DocumentRef)
}

func TestAggregate_LookupFailurePropagates(t *testing.T) {
	lookup := newFakeLookup()
	lookup.err = errors.New("connection reset")

	_, err := Aggregate(context.Background(), []entities.Equipment{item(1, 1, "1")}, lookup)

	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "connection reset")
}
