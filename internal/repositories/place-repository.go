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

var placeMap = map[string]string{
	"id":         "p.id",
	"name":       "p.name",
	"created_at": "p.created_at",
	"updated_at": "p.updated_at",
}

var placeColumns = []string{"p.id", "p.name", "p.address", "p.created_at", "p.updated_at"}

type PlaceRepositoryInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Place, uint64, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Place, error)
	FindByName(ctx context.Context, tx pgx.Tx, name string) (*entities.Place, error)
	Create(ctx context.Context, tx pgx.Tx, p entities.Place) (*entities.Place, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, p entities.Place) (*entities.Place, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
}

type placeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPlaceRepository(storage *pgxpool.Pool, logger *zap.Logger) PlaceRepositoryInterface {
	return &placeRepository{storage: storage, logger: logger}
}

func (r *placeRepository) getQuerier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanPlace(row pgx.Row) (*entities.Place, error) {
	var p entities.Place
	err := row.Scan(&p.ID, &p.Name, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, wrapScanError(err, "place")
	}
	return &p, nil
}

func (r *placeRepository) GetAll(ctx context.Context, filter types.Filter) ([]entities.Place, uint64, error) {
	return fetchList(ctx, r.storage, listQuery{
		From:         "places AS p",
		Columns:      placeColumns,
		SearchFields: []string{"p.name", "p.address"},
		FieldMap:     placeMap,
		DefaultOrder: "p.name ASC",
	}, filter, scanPlace)
}

func (r *placeRepository) findOne(ctx context.Context, q Querier, where sq.Sqlizer) (*entities.Place, error) {
	query, args, err := psql.Select(placeColumns...).From("places p").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}
	return scanPlace(q.QueryRow(ctx, query, args...))
}

func (r *placeRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Place, error) {
	return r.findOne(ctx, r.getQuerier(tx), sq.Eq{"p.id": id})
}

// FindByName - регистронезависимый поиск склада по имени (импорт xlsx).
func (r *placeRepository) FindByName(ctx context.Context, tx pgx.Tx, name string) (*entities.Place, error) {
	return r.findOne(ctx, r.getQuerier(tx), sq.Expr("LOWER(p.name) = LOWER(?)", name))
}

func (r *placeRepository) Create(ctx context.Context, tx pgx.Tx, p entities.Place) (*entities.Place, error) {
	query := `
		INSERT INTO places AS p (name, address, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING p.id, p.name, p.address, p.created_at, p.updated_at`
	return scanPlace(r.getQuerier(tx).QueryRow(ctx, query, p.Name, p.Address))
}

func (r *placeRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, p entities.Place) (*entities.Place, error) {
	query := `
		UPDATE places AS p
		SET name = $1, address = $2, updated_at = NOW()
		WHERE p.id = $3
		RETURNING p.id, p.name, p.address, p.created_at, p.updated_at`
	return scanPlace(r.getQuerier(tx).QueryRow(ctx, query, p.Name, p.Address, id))
}

func (r *placeRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return execAffectingOne(ctx, r.getQuerier(tx), `DELETE FROM places WHERE id = $1`, id)
}
