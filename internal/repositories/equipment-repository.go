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

var equipmentMap = map[string]string{
	"id":               "e.id",
	"name":             "e.name",
	"serial_number":    "e.serial_number",
	"inventory_number": "e.inventory_number",
	"nomenclature_id":  "e.nomenclature_id",
	"place_id":         "e.place_id",
	"user_id":          "e.user_id",
	"department_id":    "e.department_id",
	"acquired_at":      "e.acquired_at",
	"cost":             "e.cost",
	"created_at":       "e.created_at",
}

var equipmentColumns = []string{
	"e.id", "e.name", "e.serial_number", "e.inventory_number", "e.acquired_at",
	"e.cost", "e.current_cost", "e.nomenclature_id", "e.place_id", "e.user_id", "e.department_id",
	"e.rack", "e.cell", "e.unit_name", "e.unit_code", "e.profile", "e.size", "e.stock_norm", "e.service_life_end",
	"e.created_at", "e.updated_at",
}

const equipmentReturning = `RETURNING e.id, e.name, e.serial_number, e.inventory_number, e.acquired_at,
	e.cost, e.current_cost, e.nomenclature_id, e.place_id, e.user_id, e.department_id,
	e.rack, e.cell, e.unit_name, e.unit_code, e.profile, e.size, e.stock_norm, e.service_life_end,
	e.created_at, e.updated_at`

type EquipmentRepositoryInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error)
	FindByInventoryNumber(ctx context.Context, tx pgx.Tx, number string) (*entities.Equipment, error)
	ListByDepartment(ctx context.Context, departmentID uint64) ([]entities.Equipment, error)
	Create(ctx context.Context, tx pgx.Tx, e entities.Equipment) (*entities.Equipment, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, e entities.Equipment) (*entities.Equipment, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
}

type equipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage, logger: logger}
}

func (r *equipmentRepository) getQuerier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.InventoryNumber, &e.AcquiredAt,
		&e.Cost, &e.CurrentCost, &e.NomenclatureID, &e.PlaceID, &e.UserID, &e.DepartmentID,
		&e.Rack, &e.Cell, &e.UnitName, &e.UnitCode, &e.Profile, &e.Size, &e.StockNorm, &e.ServiceLifeEnd,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, wrapScanError(err, "equipment")
	}
	return &e, nil
}

func equipmentArgs(e entities.Equipment) []interface{} {
	return []interface{}{
		e.Name, e.SerialNumber, e.InventoryNumber, e.AcquiredAt,
		e.Cost, e.CurrentCost, e.NomenclatureID, e.PlaceID, e.UserID, e.DepartmentID,
		e.Rack, e.Cell, e.UnitName, e.UnitCode, e.Profile, e.Size, e.StockNorm, e.ServiceLifeEnd,
	}
}

func (r *equipmentRepository) GetAll(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return fetchList(ctx, r.storage, listQuery{
		From:         "equipments AS e",
		Columns:      equipmentColumns,
		SearchFields: []string{"e.name", "e.serial_number", "e.inventory_number"},
		FieldMap:     equipmentMap,
		DefaultOrder: "e.id DESC",
	}, filter, scanEquipment)
}

func (r *equipmentRepository) findOne(ctx context.Context, q Querier, where sq.Sqlizer) (*entities.Equipment, error) {
	query, args, err := psql.Select(equipmentColumns...).From("equipments e").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(q.QueryRow(ctx, query, args...))
}

func (r *equipmentRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	return r.findOne(ctx, r.getQuerier(tx), sq.Eq{"e.id": id})
}

func (r *equipmentRepository) FindByInventoryNumber(ctx context.Context, tx pgx.Tx, number string) (*entities.Equipment, error) {
	return r.findOne(ctx, r.getQuerier(tx), sq.Eq{"e.inventory_number": number})
}

// ListByDepartment - оборудование подразделения в порядке id; от этого порядка зависит
// выбор представителя группы в форме 8.
func (r *equipmentRepository) ListByDepartment(ctx context.Context, departmentID uint64) ([]entities.Equipment, error) {
	query, args, err := psql.Select(equipmentColumns...).
		From("equipments e").
		Where(sq.Eq{"e.department_id": departmentID}).
		OrderBy("e.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

func (r *equipmentRepository) Create(ctx context.Context, tx pgx.Tx, e entities.Equipment) (*entities.Equipment, error) {
	query := `
		INSERT INTO equipments AS e (
			name, serial_number, inventory_number, acquired_at,
			cost, current_cost, nomenclature_id, place_id, user_id, department_id,
			rack, cell, unit_name, unit_code, profile, size, stock_norm, service_life_end,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW(), NOW())
		` + equipmentReturning
	return scanEquipment(r.getQuerier(tx).QueryRow(ctx, query, equipmentArgs(e)...))
}

func (r *equipmentRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, e entities.Equipment) (*entities.Equipment, error) {
	query := `
		UPDATE equipments AS e SET
			name = $1, serial_number = $2, inventory_number = $3, acquired_at = $4,
			cost = $5, current_cost = $6, nomenclature_id = $7, place_id = $8, user_id = $9, department_id = $10,
			rack = $11, cell = $12, unit_name = $13, unit_code = $14, profile = $15, size = $16,
			stock_norm = $17, service_life_end = $18, updated_at = NOW()
		WHERE e.id = $19
		` + equipmentReturning
	args := append(equipmentArgs(e), id)
	return scanEquipment(r.getQuerier(tx).QueryRow(ctx, query, args...))
}

func (r *equipmentRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return execAffectingOne(ctx, r.getQuerier(tx), `DELETE FROM equipments WHERE id = $1`, id)
}
