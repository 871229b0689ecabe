package cfg

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "LOG_LEVEL", "BASE_URL", "STORE_BACKEND",
		"STORE_DIR", "DATABASE_PATH", "REDIS_URL", "LRU_CACHE_SIZE",
		"MAX_PASTE_SIZE", "CONTEXT_TIMEOUT", "TRUSTED_PROXIES",
	} {
		if v, ok := os.LookupEnv(key); ok {
			t.Setenv(key, v) // register restore
			os.Unsetenv(key)
		}
	}
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, BackendFile, c.StoreBackend)
	assert.Equal(t, "pastes", c.StoreDir)
	assert.Equal(t, 1000, c.LRUCacheSize)
	assert.Equal(t, int64(1024*1024), c.MaxPasteSize)
	assert.Equal(t, 5*time.Second, c.ContextTimeout)
}

func TestLoadExplicitValues(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("DATABASE_PATH", "test.db")
	t.Setenv("BASE_URL", "https://paste.example.com/")
	t.Setenv("MAX_PASTE_SIZE", "2048")
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, BackendSQLite, c.StoreBackend)
	assert.Equal(t, int64(2048), c.MaxPasteSize)
	assert.Equal(t, "https://paste.example.com", c.BaseURL, "trailing slash trimmed")
}

func TestLoadRejectsBadInteger(t *testing.T) {
	t.Setenv("LRU_CACHE_SIZE", "lots")
	_, err := Load()
	assert.Error(t, err)
}

func validCfg() *Cfg {
	return &Cfg{
		Port:           "8080",
		Environment:    "test",
		StoreBackend:   BackendFile,
		StoreDir:       "pastes",
		LRUCacheSize:   10,
		MaxPasteSize:   1024,
		ContextTimeout: time.Second,
	}
}

func TestValidateOK(t *testing.T) {
	assert.NoError(t, Validate(validCfg()))
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Cfg)
	}{
		{"non-numeric port", func(c *Cfg) { c.Port = "eighty" }},
		{"unknown backend", func(c *Cfg) { c.StoreBackend = "postgres" }},
		{"file backend without dir", func(c *Cfg) { c.StoreDir = "" }},
		{"sqlite backend without path", func(c *Cfg) {
			c.StoreBackend = BackendSQLite
			c.DatabasePath = ""
		}},
		{"redis backend without url", func(c *Cfg) { c.StoreBackend = BackendRedis }},
		{"bad redis scheme", func(c *Cfg) {
			c.StoreBackend = BackendRedis
			c.RedisURL = "http://localhost:6379"
		}},
		{"rediss without TLS", func(c *Cfg) {
			c.StoreBackend = BackendRedis
			c.RedisURL = "rediss://localhost:6379"
		}},
		{"relative base url", func(c *Cfg) { c.BaseURL = "paste.example.com" }},
		{"zero cache size", func(c *Cfg) { c.LRUCacheSize = 0 }},
		{"oversized cache", func(c *Cfg) { c.LRUCacheSize = 200000 }},
		{"oversized max paste", func(c *Cfg) { c.MaxPasteSize = 11 * 1024 * 1024 }},
		{"bad trusted proxy", func(c *Cfg) { c.TrustedProxies = []string{"not-an-ip"} }},
		{"bad trusted proxy cidr", func(c *Cfg) { c.TrustedProxies = []string{"10.0.0.0/99"} }},
		{"production without metrics auth", func(c *Cfg) { c.Environment = "production" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCfg()
			tt.mutate(c)
			assert.Error(t, Validate(c))
		})
	}
}

func TestSecretRedaction(t *testing.T) {
	s := NewSecret("hunter2")
	assert.Equal(t, "hunter2", s.Value())
	assert.Equal(t, "***REDACTED***", s.String())
	s.Wipe()
	assert.Equal(t, "\x00\x00\x00\x00\x00\x00\x00", s.Value())
}
