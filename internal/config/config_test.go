package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "inventory.txt", cfg.File)
	assert.Equal(t, "append", cfg.ImportMode)
	assert.Equal(t, "£", cfg.Currency)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.BackupFormat)
	assert.Equal(t, "shoes", cfg.MongoCollection)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SHOESTOCK_FILE", "/tmp/stock.txt")
	t.Setenv("SHOESTOCK_IMPORT_MODE", "replace")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/stock.txt", cfg.File)
	assert.Equal(t, "replace", cfg.ImportMode)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"file":          "",
		"import_mode":   "merge",
		"backup_format": "xml",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(key, value)

			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}
