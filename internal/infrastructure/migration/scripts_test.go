package migration

import (
	"os"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The up/down/status commands all feed the scripts directory to goose, so
// every shipped script must parse as a goose migration with a unique version.
func TestMigrationScriptsParseAsGooseMigrations(t *testing.T) {
	migrations, err := goose.CollectMigrations("scripts", 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, migrations, 3)

	seen := make(map[int64]bool)
	for _, m := range migrations {
		assert.False(t, seen[m.Version], "duplicate migration version %d (%s)", m.Version, m.Source)
		seen[m.Version] = true
	}
}

func TestMigrationScriptsCarryGooseSections(t *testing.T) {
	entries, err := os.ReadDir("scripts")
	require.NoError(t, err)

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		content, err := os.ReadFile("scripts/" + entry.Name())
		require.NoError(t, err)

		text := string(content)
		assert.Contains(t, text, "-- +goose Up", "script %s", entry.Name())
		assert.Contains(t, text, "-- +goose Down", "script %s", entry.Name())
	}
}
