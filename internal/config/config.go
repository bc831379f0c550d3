package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SHOESEED_DATABASE_PROVIDER.
const EnvPrefix = "SHOESEED"

// FileName is the config file looked up in the working directory.
const FileName = "shoeseed.config"

type Config struct {
	ExportPath string   `json:"export_path" mapstructure:"export_path"`
	Database   Database `json:"database" mapstructure:"database"`
	Tables     Tables   `json:"tables" mapstructure:"tables"`
	Seed       Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"` // SQL providers only

	// DynamoDB
	Region      string `json:"region,omitempty" mapstructure:"region"`
	Profile     string `json:"profile,omitempty" mapstructure:"profile"`
	Endpoint    string `json:"endpoint,omitempty" mapstructure:"endpoint"`
	MaxAttempts int    `json:"max_attempts,omitempty" mapstructure:"max_attempts"`
}

type Tables struct {
	Orders string `json:"orders" mapstructure:"orders"`
	Shoes  string `json:"shoes" mapstructure:"shoes"`
}

type Seed struct {
	Strict    bool `json:"strict" mapstructure:"strict"`
	BatchSize int  `json:"batch_size" mapstructure:"batch_size"`
}

var validTableName = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,255}$`)

var supportedProviders = []string{"dynamodb", "postgresql", "postgres", "mysql", "sqlite", "sqlite3", "memory"}

// SetDefaults registers every key so env overrides work without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("export_path", "data.json")
	v.SetDefault("database.provider", "dynamodb")
	v.SetDefault("database.url_env", "DATABASE_URL")
	v.SetDefault("database.region", "")
	v.SetDefault("database.profile", "")
	v.SetDefault("database.endpoint", "")
	v.SetDefault("database.max_attempts", 0)
	v.SetDefault("tables.orders", "OrderTable")
	v.SetDefault("tables.shoes", "ShoeTable")
	v.SetDefault("seed.strict", false)
	v.SetDefault("seed.batch_size", 25)
}

// BindEnv maps nested keys onto SHOESEED_ variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func Load(v *viper.Viper) (*Config, error) {
	var cfg Config

	SetDefaults(v)
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	for key, name := range map[string]string{"tables.orders": c.Tables.Orders, "tables.shoes": c.Tables.Shoes} {
		if name == "" {
			return fmt.Errorf("%s cannot be empty", key)
		}
		if !validTableName.MatchString(name) {
			return fmt.Errorf("%s: invalid table name %q", key, name)
		}
	}
	if c.Tables.Orders == c.Tables.Shoes {
		return fmt.Errorf("tables.orders and tables.shoes must differ, both are %s", c.Tables.Orders)
	}

	if c.Seed.BatchSize <= 0 {
		return fmt.Errorf("seed.batch_size must be positive, got %d", c.Seed.BatchSize)
	}
	if c.Database.MaxAttempts < 0 {
		return fmt.Errorf("database.max_attempts cannot be negative")
	}

	if c.ExportPath == "" {
		return fmt.Errorf("export_path cannot be empty")
	}

	return nil
}

// IsSQL reports whether the provider is served by the SQL store.
func (c *Config) IsSQL() bool {
	switch c.Database.Provider {
	case "postgresql", "postgres", "mysql", "sqlite", "sqlite3":
		return true
	default:
		return false
	}
}
