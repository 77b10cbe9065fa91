package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultFile is the inventory file used when nothing else is configured.
const DefaultFile = "inventory.txt"

// Config holds runtime settings. Each key can come from a flag, a
// SHOESTOCK_<KEY> env var, a .env file, or the default below.
type Config struct {
	File       string `mapstructure:"file"`
	ImportMode string `mapstructure:"import_mode"` // append | replace
	Currency   string `mapstructure:"currency"`

	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	BackupDir    string `mapstructure:"backup_dir"`
	BackupFormat string `mapstructure:"backup_format"` // json | bson

	MongoURI        string `mapstructure:"mongo_uri"`
	MongoDB         string `mapstructure:"mongo_db"`
	MongoCollection string `mapstructure:"mongo_collection"`
}

// SetDefaults registers defaults and env binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetEnvPrefix("SHOESTOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("file", DefaultFile)
	v.SetDefault("import_mode", "append")
	v.SetDefault("currency", "£")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
	v.SetDefault("backup_dir", "./backups")
	v.SetDefault("backup_format", "json")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_db", "shoestock")
	v.SetDefault("mongo_collection", "shoes")
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("inventory file path must not be empty")
	}
	switch c.ImportMode {
	case "append", "replace":
	default:
		return fmt.Errorf("invalid import mode: %s. Use 'append' or 'replace'", c.ImportMode)
	}
	switch c.BackupFormat {
	case "json", "bson":
	default:
		return fmt.Errorf("invalid backup format: %s. Use 'bson' or 'json'", c.BackupFormat)
	}
	return nil
}
