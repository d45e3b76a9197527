package config

import (
	"github.com/gaze-network/series-registry/internal/postgres"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database    string          `mapstructure:"database"` // Database to store registry data.
	Postgres    postgres.Config `mapstructure:"postgres"`
	APIHandlers []string        `mapstructure:"api_handlers"` // API handlers to enable. e.g. `http`

	// StorageByteCost is the deposit charged per stored byte, in whole
	// denomination units. It is scaled to the smallest denomination
	// (10^24) at startup.
	StorageByteCost decimal.Decimal `mapstructure:"storage_byte_cost"`

	Registry RegistryInfoConfig `mapstructure:"registry"`
}

// RegistryInfoConfig seeds the collection-level metadata on first run.
type RegistryInfoConfig struct {
	Name    string  `mapstructure:"name"`
	Symbol  string  `mapstructure:"symbol"`
	BaseURI *string `mapstructure:"base_uri"`
	OwnerId string  `mapstructure:"owner_id"`
}
