package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)
		text := string(body)
		assert.True(t, strings.Contains(text, "-- +goose Up"), name)
		assert.True(t, strings.Contains(text, "-- +goose Down"), name)
	}
}

func TestInitMigration_WriteupsCascade(t *testing.T) {
	body, err := fs.ReadFile(embedMigrations, migrationsDir+"/00001_init.sql")
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, "REFERENCES employees(id) ON DELETE CASCADE")
	assert.Contains(t, text, "CHECK (points >= 0)")
	assert.Contains(t, text, "incident_date DATE,")
}
