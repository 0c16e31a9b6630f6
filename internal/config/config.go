package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/simplysrv/WA-Driving-Test-Prep/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Bot     BotConfig     `mapstructure:"bot" validate:"required"`
	DB      DBConfig      `mapstructure:"db" validate:"required"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Catalog CatalogConfig `mapstructure:"catalog" validate:"required"`
	Persist PersistConfig `mapstructure:"persist" validate:"required"`
	Env     string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
	UserID  string        `mapstructure:"user_id" validate:"required"`
}

type BotConfig struct {
	Token   string `mapstructure:"token"`
	OwnerID int64  `mapstructure:"owner_id" validate:"min=0"`
	Debug   bool   `mapstructure:"debug"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=postgres sqlite3"`
	DSN    string `mapstructure:"dsn"`
	Conn   DBConn `mapstructure:"conn"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr" validate:"required_if=Enabled true"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db" validate:"min=0"`
	TTL      time.Duration `mapstructure:"ttl" validate:"min=0"`
}

type CatalogConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

type PersistConfig struct {
	Buffer       int           `mapstructure:"buffer" validate:"min=1"`
	FlushTimeout time.Duration `mapstructure:"flush_timeout" validate:"min=1"`
}

var envBindings = map[string]string{
	"bot.token":        "BOT_TOKEN",
	"bot.owner_id":     "BOT_OWNER_ID",
	"app.user_id":      "APP_USER_ID",
	"db.driver":        "DB_DRIVER",
	"db.dsn":           "DB_DSN",
	"db.conn.host":     "DB_HOST",
	"db.conn.port":     "DB_PORT",
	"db.conn.user":     "DB_USER",
	"db.conn.password": "DB_PASSWORD",
	"db.conn.name":     "DB_NAME",
	"db.conn.ssl":      "DB_SSL",
	"redis.enabled":    "REDIS_ENABLED",
	"redis.addr":       "REDIS_ADDR",
	"redis.password":   "REDIS_PASSWORD",
	"catalog.dir":      "CATALOG_DIR",
	"env":              "APP_ENV",
}

// Init loads .env when present, then configs/<CONFIG_NAME>.yaml with
// environment overrides.
func Init() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	return load("configs", configName)
}

func load(dir, name string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(dir)
	v.SetConfigName(name)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if cfg.DB.Driver == "postgres" && cfg.DB.DSN == "" && cfg.DB.Conn.Host == "" {
		return nil, errors.New("validation failed: postgres needs db.dsn or db.conn.host")
	}

	return &cfg, nil
}

// ValidateBot checks the settings only the bot needs.
func (c *Config) ValidateBot() error {
	if c.Bot.Token == "" {
		return errors.New("bot.token is required to serve")
	}
	if c.Bot.OwnerID <= 0 {
		return errors.New("bot.owner_id is required to serve")
	}
	return nil
}
