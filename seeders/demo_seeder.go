package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"inventory-system/pkg/utils"
)

func seedDemo(ctx context.Context, db *pgxpool.Pool) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var organizationID uint64
	if err := tx.QueryRow(ctx, `SELECT id FROM organizations ORDER BY id LIMIT 1`).Scan(&organizationID); err != nil {
		return fmt.Errorf("нет организации, сначала запустите -dictionaries: %w", err)
	}

	log.Println("  - Подразделение и пользователи...")
	var departmentID uint64
	err = tx.QueryRow(ctx, `SELECT id FROM departments WHERE name = $1`, demoDepartment.Name).Scan(&departmentID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = tx.QueryRow(ctx, `INSERT INTO departments (name, organization_id) VALUES ($1, $2) RETURNING id`,
			demoDepartment.Name, organizationID).Scan(&departmentID)
	}
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		return err
	}
	users := make(map[string]uint64)
	for _, u := range demoUsersData {
		var id uint64
		err := tx.QueryRow(ctx, `
			INSERT INTO users (login, fio, password_hash, department_id)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (LOWER(login)) DO UPDATE SET fio = EXCLUDED.fio
			RETURNING id`, u.Login, u.Fio, hash, departmentID).Scan(&id)
		if err != nil {
			return fmt.Errorf("пользователь %s: %w", u.Login, err)
		}
		users[u.Login] = id
	}
	if _, err := tx.Exec(ctx, `UPDATE departments SET custodian_id = $1 WHERE id = $2`, users[demoDepartment.Custodian], departmentID); err != nil {
		return err
	}

	places, err := mapIDsByName(ctx, tx, "places")
	if err != nil {
		return err
	}
	nomenclatures, err := mapIDsByName(ctx, tx, "nomenclatures")
	if err != nil {
		return err
	}

	log.Println("  - Оборудование...")
	equipment := make(map[string]uint64)
	for _, e := range demoEquipmentData {
		var acquired *time.Time
		if e.AcquiredAt != "" {
			t, err := time.Parse("2006-01-02", e.AcquiredAt)
			if err != nil {
				return err
			}
			acquired = &t
		}
		var id uint64
		err := tx.QueryRow(ctx, `SELECT id FROM equipments WHERE inventory_number = $1`, e.InventoryNumber).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			err = tx.QueryRow(ctx, `
				INSERT INTO equipments (name, serial_number, inventory_number, acquired_at, cost,
					nomenclature_id, place_id, user_id, department_id, unit_name, unit_code)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
				RETURNING id`,
				e.Name, e.SerialNumber, e.InventoryNumber, acquired, decimal.RequireFromString(e.Cost),
				nomenclatures[e.Nomenclature], places[e.Place], users[e.Owner], departmentID, e.UnitName, e.UnitCode,
			).Scan(&id)
		}
		if err != nil {
			return fmt.Errorf("оборудование %s: %w", e.InventoryNumber, err)
		}
		equipment[e.InventoryNumber] = id
	}

	log.Println("  - Накладные...")
	for _, inv := range demoInvoicesData {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM invoices WHERE number = $1)`, inv.Number).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}
		date, err := time.Parse("2006-01-02", inv.Date)
		if err != nil {
			return err
		}
		var invoiceID uint64
		err = tx.QueryRow(ctx, `
			INSERT INTO invoices (number, transfer_type, invoice_date, from_user_id, to_user_id, place_id)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			inv.Number, inv.TransferType, date, optionalID(users, inv.From), optionalID(users, inv.To), optionalID(places, inv.Place),
		).Scan(&invoiceID)
		if err != nil {
			return err
		}
		for _, number := range inv.Equipment {
			if _, err := tx.Exec(ctx, `INSERT INTO invoice_lines (invoice_id, equipment_id) VALUES ($1, $2)`, invoiceID, equipment[number]); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

func mapIDsByName(ctx context.Context, tx pgx.Tx, table string) (map[string]uint64, error) {
	rows, err := tx.Query(ctx, fmt.Sprintf("SELECT id, name FROM %s", pgx.Identifier{table}.Sanitize()))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]uint64)
	for rows.Next() {
		var id uint64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[name] = id
	}
	return out, rows.Err()
}

func optionalID(ids map[string]uint64, key string) *uint64 {
	if id, ok := ids[key]; ok {
		return &id
	}
	return nil
}
