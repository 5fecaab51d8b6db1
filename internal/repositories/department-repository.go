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

var departmentMap = map[string]string{
	"id":              "d.id",
	"name":            "d.name",
	"organization_id": "d.organization_id",
	"custodian_id":    "d.custodian_id",
	"created_at":      "d.created_at",
	"updated_at":      "d.updated_at",
}

var departmentColumns = []string{"d.id", "d.name", "d.organization_id", "d.custodian_id", "d.created_at", "d.updated_at"}

type DepartmentRepositoryInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Department, error)
	Create(ctx context.Context, tx pgx.Tx, d entities.Department) (*entities.Department, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, d entities.Department) (*entities.Department, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
}

type departmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &departmentRepository{storage: storage, logger: logger}
}

func (r *departmentRepository) getQuerier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	err := row.Scan(&d.ID, &d.Name, &d.OrganizationID, &d.CustodianID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, wrapScanError(err, "department")
	}
	return &d, nil
}

func (r *departmentRepository) GetAll(ctx context.Context, filter types.Filter) ([]entities.Department, uint64, error) {
	return fetchList(ctx, r.storage, listQuery{
		From:         "departments AS d",
		Columns:      departmentColumns,
		SearchFields: []string{"d.name"},
		FieldMap:     departmentMap,
		DefaultOrder: "d.id DESC",
	}, filter, scanDepartment)
}

func (r *departmentRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Department, error) {
	query, args, err := psql.Select(departmentColumns...).From("departments d").Where(sq.Eq{"d.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanDepartment(r.getQuerier(tx).QueryRow(ctx, query, args...))
}

func (r *departmentRepository) Create(ctx context.Context, tx pgx.Tx, d entities.Department) (*entities.Department, error) {
	query := `
		INSERT INTO departments AS d (name, organization_id, custodian_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING d.id, d.name, d.organization_id, d.custodian_id, d.created_at, d.updated_at`
	return scanDepartment(r.getQuerier(tx).QueryRow(ctx, query, d.Name, d.OrganizationID, d.CustodianID))
}

func (r *departmentRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d entities.Department) (*entities.Department, error) {
	query := `
		UPDATE departments AS d
		SET name = $1, organization_id = $2, custodian_id = $3, updated_at = NOW()
		WHERE d.id = $4
		RETURNING d.id, d.name, d.organization_id, d.custodian_id, d.created_at, d.updated_at`
	return scanDepartment(r.getQuerier(tx).QueryRow(ctx, query, d.Name, d.OrganizationID, d.CustodianID, id))
}

func (r *departmentRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return execAffectingOne(ctx, r.getQuerier(tx), `DELETE FROM departments WHERE id = $1`, id)
}
