// Package config loads settings from an optional YAML file and S3MODEL_*
// environment variables
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/s3-model/internal/errors"
)

// EnvPrefix is prepended to every environment variable, so cache.ttl is
// read from S3MODEL_CACHE_TTL
const EnvPrefix = "S3MODEL"

// Cache backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Log   LogConfig   `mapstructure:"log" yaml:"log" json:"log"`
	Cache CacheConfig `mapstructure:"cache" yaml:"cache" json:"cache"`
	Redis RedisConfig `mapstructure:"redis" yaml:"redis" json:"redis"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

type CacheConfig struct {
	Backend string        `mapstructure:"backend" yaml:"backend" json:"backend"`
	Size    int           `mapstructure:"size" yaml:"size" json:"size"`
	TTL     time.Duration `mapstructure:"ttl" yaml:"ttl" json:"ttl"`
	// MaxAge is how old a snapshot may be and still seed a conditional get
	MaxAge time.Duration `mapstructure:"max_age" yaml:"max_age" json:"max_age"`
}

type RedisConfig struct {
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" json:"endpoint"`
	PoolSize int    `mapstructure:"pool_size" yaml:"pool_size" json:"pool_size"`
	UseTLS   bool   `mapstructure:"use_tls" yaml:"use_tls" json:"use_tls"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cache.backend", BackendMemory)
	v.SetDefault("cache.size", 1024)
	v.SetDefault("cache.ttl", 15*time.Minute)
	v.SetDefault("cache.max_age", 5*time.Minute)
	v.SetDefault("redis.endpoint", "")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.use_tls", false)
}

// Load reads configuration. An empty path skips the file; environment
// variables override both file and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section and reports all problems together
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level),
		[]string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}, vb)
	errors.ValidateEnum("log.format", c.Log.Format, []string{"text", "json"}, vb)
	errors.ValidateEnum("cache.backend", c.Cache.Backend, []string{BackendMemory, BackendRedis}, vb)

	if c.Cache.Size < 0 {
		vb.Fieldf("cache.size", "cannot be negative, got %d", c.Cache.Size)
	}
	if c.Cache.TTL < 0 {
		vb.Fieldf("cache.ttl", "cannot be negative, got %s", c.Cache.TTL)
	}
	if c.Cache.MaxAge < 0 {
		vb.Fieldf("cache.max_age", "cannot be negative, got %s", c.Cache.MaxAge)
	}
	if c.Cache.Backend == BackendRedis {
		errors.ValidateRequired("redis.endpoint", c.Redis.Endpoint, vb)
		errors.ValidatePositive("redis.pool_size", c.Redis.PoolSize, vb)
	}

	return vb.Build()
}
