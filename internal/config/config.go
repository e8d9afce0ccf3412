package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	DB struct {
		Host           string
		Port           int
		Name           string
		User           string
		Password       string
		ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	} `mapstructure:"db"`

	Redis struct {
		Addr string // empty disables the dashboard snapshot cache
		TTL  time.Duration
	} `mapstructure:"redis"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

// Load reads configuration once at startup. Values come from an optional
// config file plus SCD_* environment variables; missing keys fall back to
// the documented defaults.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("app.env", "prod")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "supply_chain_db")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.connect_timeout", 10*time.Second)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.ttl", 30*time.Second)
	v.SetDefault("metrics.enabled", true)

	v.SetEnvPrefix("SCD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
