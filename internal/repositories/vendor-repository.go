package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/pkg/types"
)

var vendorMap = map[string]string{
	"id":         "v.id",
	"name":       "v.name",
	"created_at": "v.created_at",
}

var vendorColumns = []string{"v.id", "v.name", "v.created_at", "v.updated_at"}

type VendorRepositoryInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Vendor, uint64, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Vendor, error)
	Create(ctx context.Context, tx pgx.Tx, v entities.Vendor) (*entities.Vendor, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, v entities.Vendor) (*entities.Vendor, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
}

type vendorRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewVendorRepository(storage *pgxpool.Pool, logger *zap.Logger) VendorRepositoryInterface {
	return &vendorRepository{storage: storage, logger: logger}
}

func (r *vendorRepository) getQuerier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanVendor(row pgx.Row) (*entities.Vendor, error) {
	var v entities.Vendor
	if err := row.Scan(&v.ID, &v.Name, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, wrapScanError(err, "vendor")
	}
	return &v, nil
}

func (r *vendorRepository) GetAll(ctx context.Context, filter types.Filter) ([]entities.Vendor, uint64, error) {
	return fetchList(ctx, r.storage, listQuery{
		From:         "vendors AS v",
		Columns:      vendorColumns,
		SearchFields: []string{"v.name"},
		FieldMap:     vendorMap,
		DefaultOrder: "v.name ASC",
	}, filter, scanVendor)
}

func (r *vendorRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Vendor, error) {
	query, args, err := psql.Select(vendorColumns...).From("vendors v").Where(sq.Eq{"v.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanVendor(r.getQuerier(tx).QueryRow(ctx, query, args...))
}

func (r *vendorRepository) Create(ctx context.Context, tx pgx.Tx, v entities.Vendor) (*entities.Vendor, error) {
	query := `
		INSERT INTO vendors AS v (name, created_at, updated_at) VALUES ($1, NOW(), NOW())
		RETURNING v.id, v.name, v.created_at, v.updated_at`
	return scanVendor(r.getQuerier(tx).QueryRow(ctx, query, v.Name))
}

func (r *vendorRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, v entities.Vendor) (*entities.Vendor, error) {
	query := `
		UPDATE vendors AS v SET name = $1, updated_at = NOW() WHERE v.id = $2
		RETURNING v.id, v.name, v.created_at, v.updated_at`
	return scanVendor(r.getQuerier(tx).QueryRow(ctx, query, v.Name, id))
}

func (r *vendorRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return execAffectingOne(ctx, r.getQuerier(tx), `DELETE FROM vendors WHERE id = $1`, id)
}
