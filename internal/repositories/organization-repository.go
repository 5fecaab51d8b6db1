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

var organizationMap = map[string]string{
	"id":         "o.id",
	"name":       "o.name",
	"short_name": "o.short_name",
	"inn":        "o.inn",
	"created_at": "o.created_at",
	"updated_at": "o.updated_at",
}

var organizationColumns = []string{"o.id", "o.name", "o.short_name", "o.inn", "o.created_at", "o.updated_at"}

type OrganizationRepositoryInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Organization, uint64, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Organization, error)
	Create(ctx context.Context, tx pgx.Tx, o entities.Organization) (*entities.Organization, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, o entities.Organization) (*entities.Organization, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
}

type organizationRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewOrganizationRepository(storage *pgxpool.Pool, logger *zap.Logger) OrganizationRepositoryInterface {
	return &organizationRepository{storage: storage, logger: logger}
}

func (r *organizationRepository) getQuerier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanOrganization(row pgx.Row) (*entities.Organization, error) {
	var o entities.Organization
	err := row.Scan(&o.ID, &o.Name, &o.ShortName, &o.INN, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, wrapScanError(err, "organization")
	}
	return &o, nil
}

func (r *organizationRepository) GetAll(ctx context.Context, filter types.Filter) ([]entities.Organization, uint64, error) {
	return fetchList(ctx, r.storage, listQuery{
		From:         "organizations AS o",
		Columns:      organizationColumns,
		SearchFields: []string{"o.name", "o.short_name", "o.inn"},
		FieldMap:     organizationMap,
		DefaultOrder: "o.id DESC",
	}, filter, scanOrganization)
}

func (r *organizationRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Organization, error) {
	query, args, err := psql.Select(organizationColumns...).From("organizations o").Where(sq.Eq{"o.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanOrganization(r.getQuerier(tx).QueryRow(ctx, query, args...))
}

func (r *organizationRepository) Create(ctx context.Context, tx pgx.Tx, o entities.Organization) (*entities.Organization, error) {
	query := `
		INSERT INTO organizations AS o (name, short_name, inn, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING o.id, o.name, o.short_name, o.inn, o.created_at, o.updated_at`
	return scanOrganization(r.getQuerier(tx).QueryRow(ctx, query, o.Name, o.ShortName, o.INN))
}

func (r *organizationRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, o entities.Organization) (*entities.Organization, error) {
	query := `
		UPDATE organizations AS o
		SET name = $1, short_name = $2, inn = $3, updated_at = NOW()
		WHERE o.id = $4
		RETURNING o.id, o.name, o.short_name, o.inn, o.created_at, o.updated_at`
	return scanOrganization(r.getQuerier(tx).QueryRow(ctx, query, o.Name, o.ShortName, o.INN, id))
}

func (r *organizationRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return execAffectingOne(ctx, r.getQuerier(tx), `DELETE FROM organizations WHERE id = $1`, id)
}
