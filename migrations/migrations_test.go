package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "sql/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, name := range files {
		body, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestWarehouseFieldsAreIdempotent(t *testing.T) {
	body, err := fs.ReadFile(embedMigrations, "sql/00002_equipment_warehouse_fields.sql")
	require.NoError(t, err)

	up := strings.SplitN(string(body), "-- +goose Down", 2)[0]
	for _, column := range []string{"rack", "cell", "unit_name", "unit_code", "profile", "size", "stock_norm", "service_life_end"} {
		assert.Contains(t, up, "ADD COLUMN IF NOT EXISTS "+column+" ", column)
	}
}
