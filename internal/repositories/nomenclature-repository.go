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

var nomenclatureMap = map[string]string{
	"id":         "n.id",
	"name":       "n.name",
	"vendor_id":  "n.vendor_id",
	"category":   "n.category",
	"created_at": "n.created_at",
}

var nomenclatureColumns = []string{"n.id", "n.name", "n.vendor_id", "n.category", "n.created_at", "n.updated_at"}

const nomenclatureReturning = "RETURNING n.id, n.name, n.vendor_id, n.category, n.created_at, n.updated_at"

type NomenclatureRepositoryInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Nomenclature, uint64, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Nomenclature, error)
	FindByName(ctx context.Context, tx pgx.Tx, name string) (*entities.Nomenclature, error)
	Create(ctx context.Context, tx pgx.Tx, n entities.Nomenclature) (*entities.Nomenclature, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, n entities.Nomenclature) (*entities.Nomenclature, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
}

type nomenclatureRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewNomenclatureRepository(storage *pgxpool.Pool, logger *zap.Logger) NomenclatureRepositoryInterface {
	return &nomenclatureRepository{storage: storage, logger: logger}
}

func (r *nomenclatureRepository) getQuerier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanNomenclature(row pgx.Row) (*entities.Nomenclature, error) {
	var n entities.Nomenclature
	if err := row.Scan(&n.ID, &n.Name, &n.VendorID, &n.Category, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, wrapScanError(err, "nomenclature")
	}
	return &n, nil
}

func (r *nomenclatureRepository) GetAll(ctx context.Context, filter types.Filter) ([]entities.Nomenclature, uint64, error) {
	return fetchList(ctx, r.storage, listQuery{
		From:         "nomenclatures AS n",
		Columns:      nomenclatureColumns,
		SearchFields: []string{"n.name"},
		FieldMap:     nomenclatureMap,
		DefaultOrder: "n.category ASC NULLS LAST, n.name ASC",
	}, filter, scanNomenclature)
}

func (r *nomenclatureRepository) findOne(ctx context.Context, q Querier, where sq.Sqlizer) (*entities.Nomenclature, error) {
	query, args, err := psql.Select(nomenclatureColumns...).From("nomenclatures n").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}
	return scanNomenclature(q.QueryRow(ctx, query, args...))
}

func (r *nomenclatureRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Nomenclature, error) {
	return r.findOne(ctx, r.getQuerier(tx), sq.Eq{"n.id": id})
}

func (r *nomenclatureRepository) FindByName(ctx context.Context, tx pgx.Tx, name string) (*entities.Nomenclature, error) {
	return r.findOne(ctx, r.getQuerier(tx), sq.Expr("LOWER(n.name) = LOWER(?)", name))
}

func (r *nomenclatureRepository) Create(ctx context.Context, tx pgx.Tx, n entities.Nomenclature) (*entities.Nomenclature, error) {
	query := `
		INSERT INTO nomenclatures AS n (name, vendor_id, category, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW()) ` + nomenclatureReturning
	return scanNomenclature(r.getQuerier(tx).QueryRow(ctx, query, n.Name, n.VendorID, n.Category))
}

func (r *nomenclatureRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, n entities.Nomenclature) (*entities.Nomenclature, error) {
	query := `
		UPDATE nomenclatures AS n
		SET name = $1, vendor_id = $2, category = $3, updated_at = NOW()
		WHERE n.id = $4 ` + nomenclatureReturning
	return scanNomenclature(r.getQuerier(tx).QueryRow(ctx, query, n.Name, n.VendorID, n.Category, id))
}

func (r *nomenclatureRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return execAffectingOne(ctx, r.getQuerier(tx), `DELETE FROM nomenclatures WHERE id = $1`, id)
}
