package services

import (
	"context"

	"inventory-system/internal/entities"
	"inventory-system/internal/reports/form8"
	"inventory-system/internal/repositories"
)

// reportLookup отдает агрегатору связанные сущности через репозитории.
type reportLookup struct {
	nomenclatures repositories.NomenclatureRepositoryInterface
	vendors       repositories.VendorRepositoryInterface
	places        repositories.PlaceRepositoryInterface
	users         repositories.UserRepositoryInterface
	invoices      repositories.InvoiceRepositoryInterface
}

func NewReportLookup(
	nomenclatures repositories.NomenclatureRepositoryInterface,
	vendors repositories.VendorRepositoryInterface,
	places repositories.PlaceRepositoryInterface,
	users repositories.UserRepositoryInterface,
	invoices repositories.InvoiceRepositoryInterface,
) form8.Lookup {
	return &reportLookup{
		nomenclatures: nomenclatures,
		vendors:       vendors,
		places:        places,
		users:         users,
		invoices:      invoices,
	}
}

func (l *reportLookup) Nomenclature(ctx context.Context, id uint64) (*entities.Nomenclature, error) {
	return l.nomenclatures.FindByID(ctx, nil, id)
}

func (l *reportLookup) Vendor(ctx context.Context, id uint64) (*entities.Vendor, error) {
	return l.vendors.FindByID(ctx, nil, id)
}

func (l *reportLookup) Place(ctx context.Context, id uint64) (*entities.Place, error) {
	return l.places.FindByID(ctx, nil, id)
}

func (l *reportLookup) User(ctx context.Context, id uint64) (*entities.User, error) {
	return l.users.FindByID(ctx, nil, id)
}

func (l *reportLookup) EarliestInvoiceLine(ctx context.Context, equipmentID uint64) (*entities.InvoiceLine, error) {
	return l.invoices.EarliestLineForEquipment(ctx, equipmentID)
}
