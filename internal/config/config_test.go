package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/s3-model/internal/config"
	"github.com/KirkDiggler/s3-model/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) writeFile(body string) string {
	path := filepath.Join(s.T().TempDir(), "s3model.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal("info", cfg.Log.Level)
	s.Equal("text", cfg.Log.Format)
	s.Equal(config.BackendMemory, cfg.Cache.Backend)
	s.Equal(1024, cfg.Cache.Size)
	s.Equal(15*time.Minute, cfg.Cache.TTL)
	s.Equal(10, cfg.Redis.PoolSize)
}

func (s *ConfigTestSuite) TestFileAndEnvironment() {
	path := s.writeFile(`
log:
  level: debug
  format: json
cache:
  backend: redis
  ttl: 90s
redis:
  endpoint: localhost:6379
  use_tls: true
`)
	s.T().Setenv("S3MODEL_CACHE_TTL", "2m")
	s.T().Setenv("S3MODEL_REDIS_POOL_SIZE", "4")

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal("debug", cfg.Log.Level)
	s.Equal("json", cfg.Log.Format)
	s.Equal(config.BackendRedis, cfg.Cache.Backend)
	s.Equal(2*time.Minute, cfg.Cache.TTL)
	s.Equal("localhost:6379", cfg.Redis.Endpoint)
	s.Equal(4, cfg.Redis.PoolSize)
	s.True(cfg.Redis.UseTLS)
}

func (s *ConfigTestSuite) TestMissingFile() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "absent.yaml"))
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to read config file")
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		modify  func(*config.Config)
		wantErr string
	}{
		{name: "valid", modify: func(*config.Config) {}},
		{name: "bad level", modify: func(c *config.Config) { c.Log.Level = "loud" }, wantErr: "log.level"},
		{name: "bad format", modify: func(c *config.Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
		{name: "bad backend", modify: func(c *config.Config) { c.Cache.Backend = "disk" }, wantErr: "cache.backend"},
		{name: "negative ttl", modify: func(c *config.Config) { c.Cache.TTL = -time.Second }, wantErr: "cache.ttl"},
		{
			name:    "redis without endpoint",
			modify:  func(c *config.Config) { c.Cache.Backend = config.BackendRedis },
			wantErr: "redis.endpoint",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := &config.Config{
				Log:   config.LogConfig{Level: "info", Format: "text"},
				Cache: config.CacheConfig{Backend: config.BackendMemory},
				Redis: config.RedisConfig{PoolSize: 1},
			}
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				s.NoError(err)
				return
			}
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}
