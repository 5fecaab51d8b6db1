package repositories

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/pkg/types"
)

var invoiceMap = map[string]string{
	"id":            "i.id",
	"number":        "i.number",
	"transfer_type": "i.transfer_type",
	"invoice_date":  "i.invoice_date",
	"from_user_id":  "i.from_user_id",
	"to_user_id":    "i.to_user_id",
	"place_id":      "i.place_id",
	"created_at":    "i.created_at",
}

var invoiceColumns = []string{
	"i.id", "i.number", "i.transfer_type", "i.invoice_date",
	"i.from_user_id", "i.to_user_id", "i.place_id", "i.created_at", "i.updated_at",
}

const invoiceReturning = `RETURNING i.id, i.number, i.transfer_type, i.invoice_date,
	i.from_user_id, i.to_user_id, i.place_id, i.created_at, i.updated_at`

type InvoiceRepositoryInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Invoice, uint64, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Invoice, error)
	Create(ctx context.Context, tx pgx.Tx, inv entities.Invoice) (*entities.Invoice, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, inv entities.Invoice) (*entities.Invoice, error)
	ReplaceLines(ctx context.Context, tx pgx.Tx, invoiceID uint64, equipmentIDs []uint64) ([]entities.InvoiceLine, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
	EarliestLineForEquipment(ctx context.Context, equipmentID uint64) (*entities.InvoiceLine, error)
}

type invoiceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewInvoiceRepository(storage *pgxpool.Pool, logger *zap.Logger) InvoiceRepositoryInterface {
	return &invoiceRepository{storage: storage, logger: logger}
}

func (r *invoiceRepository) getQuerier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanInvoice(row pgx.Row) (*entities.Invoice, error) {
	var (
		inv          entities.Invoice
		transferType string
	)
	err := row.Scan(
		&inv.ID, &inv.Number, &transferType, &inv.InvoiceDate,
		&inv.FromUserID, &inv.ToUserID, &inv.PlaceID, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, wrapScanError(err, "invoice")
	}
	inv.TransferType = entities.ParseTransferType(transferType)
	return &inv, nil
}

func (r *invoiceRepository) GetAll(ctx context.Context, filter types.Filter) ([]entities.Invoice, uint64, error) {
	return fetchList(ctx, r.storage, listQuery{
		From:         "invoices AS i",
		Columns:      invoiceColumns,
		SearchFields: []string{"i.number"},
		FieldMap:     invoiceMap,
		DefaultOrder: "i.invoice_date DESC, i.id DESC",
	}, filter, scanInvoice)
}

func (r *invoiceRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Invoice, error) {
	q := r.getQuerier(tx)
	query, args, err := psql.Select(invoiceColumns...).From("invoices i").Where(sq.Eq{"i.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	inv, err := scanInvoice(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	if inv.Lines, err = r.findLines(ctx, q, id); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invoiceRepository) findLines(ctx context.Context, q Querier, invoiceID uint64) ([]entities.InvoiceLine, error) {
	rows, err := q.Query(ctx, `SELECT id, invoice_id, equipment_id FROM invoice_lines WHERE invoice_id = $1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]entities.InvoiceLine, 0)
	for rows.Next() {
		var l entities.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.EquipmentID); err != nil {
			return nil, wrapScanError(err, "invoice_line")
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// Create сохраняет шапку и строки; вызывать внутри транзакции.
func (r *invoiceRepository) Create(ctx context.Context, tx pgx.Tx, inv entities.Invoice) (*entities.Invoice, error) {
	query := `
		INSERT INTO invoices AS i (number, transfer_type, invoice_date, from_user_id, to_user_id, place_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		` + invoiceReturning
	created, err := scanInvoice(r.getQuerier(tx).QueryRow(ctx, query,
		inv.Number, inv.TransferType.Code(), inv.InvoiceDate, inv.FromUserID, inv.ToUserID, inv.PlaceID,
	))
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		ids = append(ids, l.EquipmentID)
	}
	if created.Lines, err = r.ReplaceLines(ctx, tx, created.ID, ids); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *invoiceRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, inv entities.Invoice) (*entities.Invoice, error) {
	query := `
		UPDATE invoices AS i
		SET number = $1, transfer_type = $2, invoice_date = $3, from_user_id = $4, to_user_id = $5, place_id = $6, updated_at = NOW()
		WHERE i.id = $7
		` + invoiceReturning
	return scanInvoice(r.getQuerier(tx).QueryRow(ctx, query,
		inv.Number, inv.TransferType.Code(), inv.InvoiceDate, inv.FromUserID, inv.ToUserID, inv.PlaceID, id,
	))
}

func (r *invoiceRepository) ReplaceLines(ctx context.Context, tx pgx.Tx, invoiceID uint64, equipmentIDs []uint64) ([]entities.InvoiceLine, error) {
	q := r.getQuerier(tx)
	if _, err := q.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1`, invoiceID); err != nil {
		return nil, mapPgError(err)
	}

	lines := make([]entities.InvoiceLine, 0, len(equipmentIDs))
	for _, equipmentID := range equipmentIDs {
		l := entities.InvoiceLine{InvoiceID: invoiceID, EquipmentID: equipmentID}
		err := q.QueryRow(ctx,
			`INSERT INTO invoice_lines (invoice_id, equipment_id) VALUES ($1, $2) RETURNING id`,
			invoiceID, equipmentID,
		).Scan(&l.ID)
		if err != nil {
			return nil, fmt.Errorf("строка накладной (оборудование %d): %w", equipmentID, mapPgError(err))
		}
		lines = append(lines, l)
	}
	return lines, nil
}

func (r *invoiceRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	// строки удаляются каскадно
	return execAffectingOne(ctx, r.getQuerier(tx), `DELETE FROM invoices WHERE id = $1`, id)
}

// EarliestLineForEquipment - первая по дате накладной строка для оборудования, при равных датах меньший id.
func (r *invoiceRepository) EarliestLineForEquipment(ctx context.Context, equipmentID uint64) (*entities.InvoiceLine, error) {
	query, args, err := psql.Select(
		"l.id", "l.invoice_id", "l.equipment_id",
		"i.number", "i.transfer_type", "i.invoice_date", "i.from_user_id", "i.to_user_id", "i.place_id",
	).
		From("invoice_lines l").
		Join("invoices i ON i.id = l.invoice_id").
		Where(sq.Eq{"l.equipment_id": equipmentID}).
		OrderBy("i.invoice_date ASC", "i.id ASC", "l.id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		line         entities.InvoiceLine
		inv          entities.Invoice
		transferType string
		invoiceDate  time.Time
	)
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&line.ID, &line.InvoiceID, &line.EquipmentID,
		&inv.Number, &transferType, &invoiceDate, &inv.FromUserID, &inv.ToUserID, &inv.PlaceID,
	)
	if err != nil {
		return nil, wrapScanError(err, "invoice_line")
	}
	inv.ID = line.InvoiceID
	inv.TransferType = entities.ParseTransferType(transferType)
	inv.InvoiceDate = invoiceDate
	line.Invoice = &inv
	return &line, nil
}
