package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// У organizations, places и nomenclatures нет уникальных ключей, поэтому WHERE NOT EXISTS.

func seedOrganizations(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'organizations'...")
	query := `
		INSERT INTO organizations (name, short_name, inn)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (SELECT 1 FROM organizations WHERE name = $1)`
	for _, o := range organizationsData {
		if _, err := db.Exec(ctx, query, o.Name, o.ShortName, o.INN); err != nil {
			return err
		}
	}
	return nil
}

func seedPlaces(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'places'...")
	query := `
		INSERT INTO places (name, address)
		SELECT $1, $2
		WHERE NOT EXISTS (SELECT 1 FROM places WHERE LOWER(name) = LOWER($1))`
	for _, p := range placesData {
		if _, err := db.Exec(ctx, query, p.Name, p.Address); err != nil {
			return err
		}
	}
	return nil
}

func seedVendors(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'vendors'...")
	for _, name := range vendorsData {
		if _, err := db.Exec(ctx, `INSERT INTO vendors (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			return err
		}
	}
	return nil
}

func seedNomenclatures(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'nomenclatures'...")
	query := `
		INSERT INTO nomenclatures (name, vendor_id, category)
		SELECT $1, (SELECT id FROM vendors WHERE name = $2), $3
		WHERE NOT EXISTS (SELECT 1 FROM nomenclatures WHERE LOWER(name) = LOWER($1))`
	for _, n := range nomenclaturesData {
		if _, err := db.Exec(ctx, query, n.Name, n.Vendor, n.Category); err != nil {
			return err
		}
	}
	return nil
}
