package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Upload   UploadConfig
	CORS     CORSConfig
	Cache    CacheConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	// URL is a full connection string. The discrete fields below take
	// precedence when the complete set is present.
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type UploadConfig struct {
	Dir string
}

type CORSConfig struct {
	AllowOrigins string
}

type CacheConfig struct {
	SummaryTTL time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine; the environment alone may be complete.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("PORT"),
		},
		Database: DatabaseConfig{
			URL:             viper.GetString("DATABASE_URL"),
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Upload: UploadConfig{
			Dir: viper.GetString("UPLOAD_DIR"),
		},
		CORS: CORSConfig{
			AllowOrigins: viper.GetString("CORS_ORIGINS"),
		},
		Cache: CacheConfig{
			SummaryTTL: time.Duration(viper.GetInt("SUMMARY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Upload.Dir == "" {
		cfg.Upload.Dir = "./uploads"
	}
	if cfg.CORS.AllowOrigins == "" {
		cfg.CORS.AllowOrigins = "http://localhost:3000"
	}
	if cfg.Cache.SummaryTTL == 0 {
		cfg.Cache.SummaryTTL = 60 * time.Second
	}

	if _, err := cfg.GetDatabaseDSN(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetDatabaseDSN assembles the discrete DB_* values when the complete set is
// present, otherwise falls back to DATABASE_URL. With neither, the error
// names the missing variables so startup fails loudly.
func (c *Config) GetDatabaseDSN() (string, error) {
	d := &c.Database
	if d.User != "" && d.Password != "" && d.Host != "" && d.DBName != "" {
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s",
			d.Host, d.Port, d.User, d.Password, d.DBName,
		)
		if d.SSLMode != "" {
			dsn += fmt.Sprintf(" sslmode=%s", d.SSLMode)
		}
		return dsn, nil
	}

	if d.URL != "" {
		return d.URL, nil
	}

	missing := make([]string, 0, 4)
	for _, v := range []struct {
		name, value string
	}{
		{"DB_USER", d.User},
		{"DB_PASSWORD", d.Password},
		{"DB_HOST", d.Host},
		{"DB_NAME", d.DBName},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}

	return "", fmt.Errorf(
		"missing required database env vars: %s (set DB_USER/DB_PASSWORD/DB_HOST/DB_NAME or provide DATABASE_URL)",
		strings.Join(missing, ", "),
	)
}

// HasRedis reports whether an optional redis cache is configured.
func (c *Config) HasRedis() bool {
	return c.Redis.Host != ""
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
