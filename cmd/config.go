package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"shipdesk/internal/core/domain/model/kernel"

	"github.com/kelseyhightower/envconfig"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DBDriver   string `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"shipdesk.db"`

	ShippoAPIKey     string        `envconfig:"SHIPPO_API_KEY" required:"true"`
	ShippoBaseURL    string        `envconfig:"SHIPPO_BASE_URL" default:"https://api.goshippo.com"`
	ShippoAPIVersion string        `envconfig:"SHIPPO_API_VERSION" default:"2018-02-08"`
	ShippoTimeout    time.Duration `envconfig:"SHIPPO_TIMEOUT" default:"30s"`

	CatalogCarrier     string `envconfig:"CATALOG_CARRIER" default:"usps"`
	CatalogRefreshSpec string `envconfig:"CATALOG_REFRESH_SPEC" default:"0 */15 * * * *"`

	OperatorAPIKey string `envconfig:"OPERATOR_API_KEY"`

	Origin OriginConfig `envconfig:"ORIGIN"`
}

// OriginConfig is the store address every shipment leaves from.
type OriginConfig struct {
	Name    string `envconfig:"NAME"`
	Company string `envconfig:"COMPANY"`
	Street1 string `envconfig:"STREET1"`
	Street2 string `envconfig:"STREET2"`
	City    string `envconfig:"CITY"`
	State   string `envconfig:"STATE"`
	Zip     string `envconfig:"ZIP"`
	Country string `envconfig:"COUNTRY" default:"US"`
	Phone   string `envconfig:"PHONE"`
	Email   string `envconfig:"EMAIL"`
}

// LoadConfig reads the environment. The origin address must be complete.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	if cfg.DBDriver != DBDriverPostgres && cfg.DBDriver != DBDriverSQLite {
		return Config{}, fmt.Errorf("parsing config: DB_DRIVER must be %s or %s, got %q",
			DBDriverPostgres, DBDriverSQLite, cfg.DBDriver)
	}
	if err := cfg.OriginAddress().Validate(); err != nil {
		return Config{}, fmt.Errorf("parsing config: ORIGIN_*: %w", err)
	}
	return cfg, nil
}

func (c Config) OriginAddress() kernel.Address {
	return kernel.Address{
		Name:    c.Origin.Name,
		Company: c.Origin.Company,
		Street1: c.Origin.Street1,
		Street2: c.Origin.Street2,
		City:    c.Origin.City,
		State:   c.Origin.State,
		Zip:     c.Origin.Zip,
		Country: c.Origin.Country,
		Phone:   c.Origin.Phone,
		Email:   c.Origin.Email,
	}
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
