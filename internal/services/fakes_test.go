package services

import (
	"context"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

// memTable - простое хранилище для фейковых репозиториев.
type memTable[T any] struct {
	rows   map[uint64]T
	nextID uint64
	setID  func(*T, uint64)
}

func newMemTable[T any](setID func(*T, uint64)) *memTable[T] {
	return &memTable[T]{rows: make(map[uint64]T), setID: setID}
}

func (m *memTable[T]) insert(v T) *T {
	m.nextID++
	m.setID(&v, m.nextID)
	m.rows[m.nextID] = v
	return &v
}

func (m *memTable[T]) get(id uint64) (*T, error) {
	v, ok := m.rows[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &v, nil
}

func (m *memTable[T]) put(id uint64, v T) (*T, error) {
	if _, ok := m.rows[id]; !ok {
		return nil, apperrors.ErrNotFound
	}
	m.setID(&v, id)
	m.rows[id] = v
	return &v, nil
}

func (m *memTable[T]) remove(id uint64) error {
	if _, ok := m.rows[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memTable[T]) all() []T {
	ids := make([]uint64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.rows[id])
	}
	return out
}

func (m *memTable[T]) find(match func(T) bool) (*T, error) {
	for _, v := range m.all() {
		if match(v) {
			return &v, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

type fakeTxManager struct{ calls int }

func (f *fakeTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	f.calls++
	return fn(nil)
}

type fakeOrganizationRepo struct{ t *memTable[entities.Organization] }

func newFakeOrganizationRepo() *fakeOrganizationRepo {
	return &fakeOrganizationRepo{t: newMemTable(func(o *entities.Organization, id uint64) { o.ID = id })}
}

func (f *fakeOrganizationRepo) GetAll(context.Context, types.Filter) ([]entities.Organization, uint64, error) {
	all := f.t.all()
	return all, uint64(len(all)), nil
}
func (f *fakeOrganizationRepo) FindByID(_ context.Context, _ pgx.Tx, id uint64) (*entities.Organization, error) {
	return f.t.get(id)
}
func (f *fakeOrganizationRepo) Create(_ context.Context, _ pgx.Tx, o entities.Organization) (*entities.Organization, error) {
	return f.t.insert(o), nil
}
func (f *fakeOrganizationRepo) Update(_ context.Context, _ pgx.Tx, id uint64, o entities.Organization) (*entities.Organization, error) {
	return f.t.put(id, o)
}
func (f *fakeOrganizationRepo) Delete(_ context.Context, _ pgx.Tx, id uint64) error {
	return f.t.remove(id)
}

type fakeDepartmentRepo struct{ t *memTable[entities.Department] }

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{t: newMemTable(func(d *entities.Department, id uint64) { d.ID = id })}
}

func (f *fakeDepartmentRepo) GetAll(context.Context, types.Filter) ([]entities.Department, uint64, error) {
	all := f.t.all()
	return all, uint64(len(all)), nil
}
func (f *fakeDepartmentRepo) FindByID(_ context.Context, _ pgx.Tx, id uint64) (*entities.Department, error) {
	return f.t.get(id)
}
func (f *fakeDepartmentRepo) Create(_ context.Context, _ pgx.Tx, d entities.Department) (*entities.Department, error) {
	return f.t.insert(d), nil
}
func (f *fakeDepartmentRepo) Update(_ context.Context, _ pgx.Tx, id uint64, d entities.Department) (*entities.Department, error) {
	return f.t.put(id, d)
}
func (f *fakeDepartmentRepo) Delete(_ context.Context, _ pgx.Tx, id uint64) error {
	return f.t.remove(id)
}

type fakePlaceRepo struct{ t *memTable[entities.Place] }

func newFakePlaceRepo() *fakePlaceRepo {
	return &fakePlaceRepo{t: newMemTable(func(p *entities.Place, id uint64) { p.ID = id })}
}

func (f *fakePlaceRepo) GetAll(context.Context, types.Filter) ([]entities.Place, uint64, error) {
	all := f.t.all()
	return all, uint64(len(all)), nil
}
func (f *fakePlaceRepo) FindByID(_ context.Context, _ pgx.Tx, id uint64) (*entities.Place, error) {
	return f.t.get(id)
}
func (f *fakePlaceRepo) FindByName(_ context.Context, _ pgx.Tx, name string) (*entities.Place, error) {
	return f.t.find(func(p entities.Place) bool { return strings.EqualFold(p.Name, name) })
}
func (f *fakePlaceRepo) Create(_ context.Context, _ pgx.Tx, p entities.Place) (*entities.Place, error) {
	return f.t.insert(p), nil
}
func (f *fakePlaceRepo) Update(_ context.Context, _ pgx.Tx, id uint64, p entities.Place) (*entities.Place, error) {
	return f.t.put(id, p)
}
func (f *fakePlaceRepo) Delete(_ context.Context, _ pgx.Tx, id uint64) error {
	return f.t.remove(id)
}

type fakeUserRepo struct{ t *memTable[entities.User] }

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{t: newMemTable(func(u *entities.User, id uint64) { u.ID = id })}
}

func (f *fakeUserRepo) GetAll(context.Context, types.Filter) ([]entities.User, uint64, error) {
	all := f.t.all()
	return all, uint64(len(all)), nil
}
func (f *fakeUserRepo) FindByID(_ context.Context, _ pgx.Tx, id uint64) (*entities.User, error) {
	return f.t.get(id)
}
func (f *fakeUserRepo) FindByLogin(_ context.Context, _ pgx.Tx, login string) (*entities.User, error) {
	return f.t.find(func(u entities.User) bool { return strings.EqualFold(u.Login, login) })
}
func (f *fakeUserRepo) Create(_ context.Context, _ pgx.Tx, u entities.User) (*entities.User, error) {
	return f.t.insert(u), nil
}
func (f *fakeUserRepo) Update(_ context.Context, _ pgx.Tx, id uint64, u entities.User) (*entities.User, error) {
	return f.t.put(id, u)
}
func (f *fakeUserRepo) Delete(_ context.Context, _ pgx.Tx, id uint64) error {
	return f.t.remove(id)
}

type fakeVendorRepo struct{ t *memTable[entities.Vendor] }

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{t: newMemTable(func(v *entities.Vendor, id uint64) { v.ID = id })}
}

func (f *fakeVendorRepo) GetAll(context.Context, types.Filter) ([]entities.Vendor, uint64, error) {
	all := f.t.all()
	return all, uint64(len(all)), nil
}
func (f *fakeVendorRepo) FindByID(_ context.Context, _ pgx.Tx, id uint64) (*entities.Vendor, error) {
	return f.t.get(id)
}
func (f *fakeVendorRepo) Create(_ context.Context, _ pgx.Tx, v entities.Vendor) (*entities.Vendor, error) {
	return f.t.insert(v), nil
}
func (f *fakeVendorRepo) Update(_ context.Context, _ pgx.Tx, id uint64, v entities.Vendor) (*entities.Vendor, error) {
	return f.t.put(id, v)
}
func (f *fakeVendorRepo) Delete(_ context.Context, _ pgx.Tx, id uint64) error {
	return f.t.remove(id)
}

type fakeNomenclatureRepo struct{ t *memTable[entities.Nomenclature] }

func newFakeNomenclatureRepo() *fakeNomenclatureRepo {
	return &fakeNomenclatureRepo{t: newMemTable(func(n *entities.Nomenclature, id uint64) { n.ID = id })}
}

func (f *fakeNomenclatureRepo) GetAll(context.Context, types.Filter) ([]entities.Nomenclature, uint64, error) {
	all := f.t.all()
	return all, uint64(len(all)), nil
}
func (f *fakeNomenclatureRepo) FindByID(_ context.Context, _ pgx.Tx, id uint64) (*entities.Nomenclature, error) {
	return f.t.get(id)
}
func (f *fakeNomenclatureRepo) FindByName(_ context.Context, _ pgx.Tx, name string) (*entities.Nomenclature, error) {
	return f.t.find(func(n entities.Nomenclature) bool { return strings.EqualFold(n.Name, name) })
}
func (f *fakeNomenclatureRepo) Create(_ context.Context, _ pgx.Tx, n entities.Nomenclature) (*entities.Nomenclature, error) {
	return f.t.insert(n), nil
}
func (f *fakeNomenclatureRepo) Update(_ context.Context, _ pgx.Tx, id uint64, n entities.Nomenclature) (*entities.Nomenclature, error) {
	return f.t.put(id, n)
}
func (f *fakeNomenclatureRepo) Delete(_ context.Context, _ pgx.Tx, id uint64) error {
	return f.t.remove(id)
}

type fakeEquipmentRepo struct {
	t       *memTable[entities.Equipment]
	listErr error
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{t: newMemTable(func(e *entities.Equipment, id uint64) { e.ID = id })}
}

func (f *fakeEquipmentRepo) GetAll(context.Context, types.Filter) ([]entities.Equipment, uint64, error) {
	all := f.t.all()
	return all, uint64(len(all)), nil
}
func (f *fakeEquipmentRepo) FindByID(_ context.Context, _ pgx.Tx, id uint64) (*entities.Equipment, error) {
	return f.t.get(id)
}
func (f *fakeEquipmentRepo) FindByInventoryNumber(_ context.Context, _ pgx.Tx, number string) (*entities.Equipment, error) {
	return f.t.find(func(e entities.Equipment) bool { return e.InventoryNumber == number })
}
func (f *fakeEquipmentRepo) ListByDepartment(_ context.Context, departmentID uint64) ([]entities.Equipment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []entities.Equipment
	for _, e := range f.t.all() {
		if e.DepartmentID != nil && *e.DepartmentID == departmentID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeEquipmentRepo) Create(_ context.Context, _ pgx.Tx, e entities.Equipment) (*entities.Equipment, error) {
	return f.t.insert(e), nil
}
func (f *fakeEquipmentRepo) Update(_ context.Context, _ pgx.Tx, id uint64, e entities.Equipment) (*entities.Equipment, error) {
	return f.t.put(id, e)
}
func (f *fakeEquipmentRepo) Delete(_ context.Context, _ pgx.Tx, id uint64) error {
	return f.t.remove(id)
}

type fakeInvoiceRepo struct {
	t        *memTable[entities.Invoice]
	lineSeq  uint64
	replaced int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{t: newMemTable(func(i *entities.Invoice, id uint64) { i.ID = id })}
}

func (f *fakeInvoiceRepo) GetAll(context.Context, types.Filter) ([]entities.Invoice, uint64, error) {
	all := f.t.all()
	return all, uint64(len(all)), nil
}
func (f *fakeInvoiceRepo) FindByID(_ context.Context, _ pgx.Tx, id uint64) (*entities.Invoice, error) {
	return f.t.get(id)
}
func (f *fakeInvoiceRepo) Create(ctx context.Context, tx pgx.Tx, inv entities.Invoice) (*entities.Invoice, error) {
	ids := make([]uint64, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		ids = append(ids, l.EquipmentID)
	}
	inv.Lines = nil
	created := f.t.insert(inv)
	lines, err := f.ReplaceLines(ctx, tx, created.ID, ids)
	if err != nil {
		return nil, err
	}
	created.Lines = lines
	return created, nil
}
func (f *fakeInvoiceRepo) Update(_ context.Context, _ pgx.Tx, id uint64, inv entities.Invoice) (*entities.Invoice, error) {
	stored, err := f.t.get(id)
	if err != nil {
		return nil, err
	}
	inv.Lines = stored.Lines
	updated, err := f.t.put(id, inv)
	if err != nil {
		return nil, err
	}
	updated.Lines = nil
	return updated, nil
}
func (f *fakeInvoiceRepo) ReplaceLines(_ context.Context, _ pgx.Tx, invoiceID uint64, equipmentIDs []uint64) ([]entities.InvoiceLine, error) {
	inv, err := f.t.get(invoiceID)
	if err != nil {
		return nil, err
	}
	f.replaced++
	lines := make([]entities.InvoiceLine, 0, len(equipmentIDs))
	for _, eq := range equipmentIDs {
		f.lineSeq++
		lines = append(lines, entities.InvoiceLine{ID: f.lineSeq, InvoiceID: invoiceID, EquipmentID: eq})
	}
	inv.Lines = lines
	f.t.rows[invoiceID] = *inv
	return lines, nil
}
func (f *fakeInvoiceRepo) Delete(_ context.Context, _ pgx.Tx, id uint64) error {
	return f.t.remove(id)
}

// EarliestLineForEquipment повторяет порядок репозитория: дата, затем id накладной.
func (f *fakeInvoiceRepo) EarliestLineForEquipment(_ context.Context, equipmentID uint64) (*entities.InvoiceLine, error) {
	var best *entities.InvoiceLine
	for _, inv := range f.t.all() {
		for _, l := range inv.Lines {
			if l.EquipmentID != equipmentID {
				continue
			}
			if best == nil || inv.InvoiceDate.Before(best.Invoice.InvoiceDate) {
				header := inv
				header.Lines = nil
				line := l
				line.Invoice = &header
				best = &line
			}
		}
	}
	if best == nil {
		return nil, apperrors.ErrNotFound
	}
	return best, nil
}
