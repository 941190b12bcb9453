package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_AreOrderedGooseFiles(t *testing.T) {
	names, err := fs.Glob(Migrations(), "*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{"00001_create_users.sql", "00002_create_jobs.sql"}, names)

	for _, name := range names {
		body, err := fs.ReadFile(Migrations(), name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestMigrations_JobsAreScopedToUsers(t *testing.T) {
	body, err := fs.ReadFile(Migrations(), "00002_create_jobs.sql")
	require.NoError(t, err)
	schema := string(body)

	assert.True(t, strings.Contains(schema, "created_by UUID NOT NULL REFERENCES users (id)"))
	assert.Contains(t, schema, "'interview', 'declined', 'pending'")
	assert.Contains(t, schema, "(created_by, created_at)")
}
