package configs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenConnection_SQLite(t *testing.T) {
	cfg := ENV{DBDriver: "sqlite", DBName: filepath.Join(t.TempDir(), "logistics.db"), DBMaxRetries: 1}

	db, err := OpenConnection(cfg, nil)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Close())
}

func TestOpenConnection_UnknownDriver(t *testing.T) {
	_, err := OpenConnection(ENV{DBDriver: "oracle"}, nil)
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
