package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := FS.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries, "no migrations embedded")

	first, err := FS.ReadFile("00001_create_booking_tables.sql")
	require.NoError(t, err)

	ddl := string(first)
	assert.Contains(t, ddl, "-- +goose Up")
	assert.Contains(t, ddl, "-- +goose Down")
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS products")
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS bookings")
	assert.Contains(t, ddl, "REFERENCES products (id)")
}
