package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsOrdered(t *testing.T) {
	names, err := Migrations()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_schema.sql", "002_category_functions.sql", "003_account_profile.sql"}, names)
}

func TestAccountProfileColumnsAreIdempotent(t *testing.T) {
	body, err := migrationFiles.ReadFile("migrations/003_account_profile.sql")
	require.NoError(t, err)

	for _, column := range []string{"phone", "company"} {
		assert.Contains(t, string(body), "ADD COLUMN IF NOT EXISTS "+column+" ", column)
	}
}

func TestMigrationsDefineCategoryFunctions(t *testing.T) {
	body, err := migrationFiles.ReadFile("migrations/002_category_functions.sql")
	require.NoError(t, err)

	for _, fn := range []string{"get_categories", "get_category_by_id", "create_category", "update_category", "delete_category"} {
		assert.Contains(t, string(body), "FUNCTION "+fn+"(", fn)
	}
}
