package postgres_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/goblinden/internal/testutil"
)

// Stock columns hold Go ints, so they must be 64-bit in Postgres too.
func TestMigrations_StockColumnsAreBigint(t *testing.T) {
	b, err := os.ReadFile(filepath.Join(testutil.RepoRoot(t), "migrations", "000001_create_dens.up.sql"))
	require.NoError(t, err)
	for _, col := range []string{"turn", "gold", "food", "unlock_gold", "unlock_food"} {
		re := regexp.MustCompile(`(?m)^\s*` + col + `\s+(\w+)`)
		m := re.FindSubmatch(b)
		require.NotNil(t, m, "column %s", col)
		assert.Equal(t, "BIGINT", string(m[1]), "column %s", col)
	}
}
