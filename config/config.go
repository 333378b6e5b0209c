// Package config loads the engine's runtime configuration with viper,
// following the teacher's common/config/app_config.go pattern: a typed
// struct tagged with mapstructure, loaded from a file and overridable by
// environment variables with "." replaced by "_". The teacher's per-node
// config sprawl (connector/game/gate/hall/march/user, each with its own
// struct) collapses here into one Config, since this module has exactly one
// kind of process to configure.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the engine process's full configuration.
type Config struct {
	Log   LogConf   `mapstructure:"log"`
	Mongo MongoConf `mapstructure:"mongo"`
	Cache CacheConf `mapstructure:"cache"`
	Table TableConf `mapstructure:"table"`
}

// LogConf controls the log package's verbosity.
type LogConf struct {
	Level string `mapstructure:"level"`
}

// MongoConf points at the database backing the hand-evaluation history
// persister; empty Url disables persistence entirely.
type MongoConf struct {
	Url         string `mapstructure:"url"`
	Db          string `mapstructure:"db"`
	MinPoolSize int    `mapstructure:"minPoolSize"`
	MaxPoolSize int    `mapstructure:"maxPoolSize"`
}

// CacheConf sizes the in-process memoization cache.
type CacheConf struct {
	MaxCostBytes int64 `mapstructure:"maxCostBytes"`
	TTLSeconds   int   `mapstructure:"ttlSeconds"`
}

// TableConf carries the default round/seat context used when the CLI is
// given a bare hand string with no explicit situational flags.
type TableConf struct {
	RoundWind string `mapstructure:"roundWind"`
	SeatWind  string `mapstructure:"seatWind"`
}

// Default returns the configuration used when no file is supplied: logging
// at info level, no persistence, a small cache, East round/seat.
func Default() Config {
	return Config{
		Log:   LogConf{Level: "info"},
		Cache: CacheConf{MaxCostBytes: 1 << 24, TTLSeconds: 3600},
		Table: TableConf{RoundWind: "east", SeatWind: "east"},
	}
}

// Load reads configFile (any format viper supports: yaml, toml, json) and
// overlays environment variables, e.g. MONGO_URL overrides mongo.url.
func Load(configFile string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
