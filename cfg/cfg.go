package cfg

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Secret struct {
	value []byte
}

func NewSecret(s string) Secret {
	return Secret{value: []byte(s)}
}
func (s Secret) Value() string {
	return string(s.value)
}
func (s Secret) Wipe() {
	for i := range s.value {
		s.value[i] = 0
	}
}
func (s Secret) String() string {
	return "***REDACTED***"
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Cfg struct {
	Port           string
	Environment    string
	LogLevel       string
	BaseURL        string
	StoreBackend   string
	StoreDir       string
	DatabasePath   string
	RedisURL       string
	RedisTLS       bool
	RedisUsername  string
	RedisPassword  Secret
	RedisTimeout   time.Duration
	LRUCacheSize   int
	MaxPasteSize   int64
	ContextTimeout time.Duration
	TrustedProxies []string
	MetricsUser    string
	MetricsPass    Secret
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBQueryTimeout time.Duration
}

func Load() (*Cfg, error) {
	c := &Cfg{}
	c.Port = getEnv("PORT", "8080")
	c.Environment = getEnv("ENVIRONMENT", "development")
	c.LogLevel = getEnv("LOG_LEVEL", "info")
	c.BaseURL = strings.TrimRight(getEnv("BASE_URL", ""), "/")
	c.StoreBackend = getEnv("STORE_BACKEND", BackendFile)
	c.StoreDir = getEnv("STORE_DIR", "pastes")
	c.DatabasePath = getEnv("DATABASE_PATH", "pastepad.db")
	c.RedisURL = getEnv("REDIS_URL", "")
	c.RedisTLS = getEnv("REDIS_TLS", "false") == "true"
	c.RedisUsername = getEnv("REDIS_USERNAME", "")
	c.RedisPassword = NewSecret(getEnv("REDIS_PASSWORD", ""))
	var err error
	c.RedisTimeout, err = getDuration("REDIS_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	c.LRUCacheSize, err = getInt("LRU_CACHE_SIZE", 1000)
	if err != nil {
		return nil, err
	}
	c.MaxPasteSize, err = getInt64("MAX_PASTE_SIZE", 1024*1024)
	if err != nil {
		return nil, err
	}
	c.ContextTimeout, err = getDuration("CONTEXT_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	c.TrustedProxies = getSlice("TRUSTED_PROXIES", []string{})
	c.MetricsUser = getEnv("METRICS_USER", "")
	c.MetricsPass = NewSecret(getEnv("METRICS_PASS", ""))
	c.DBMaxOpenConns, err = getInt("DB_MAX_OPEN_CONNS", 25)
	if err != nil {
		return nil, err
	}
	c.DBMaxIdleConns, err = getInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return nil, err
	}
	c.DBQueryTimeout, err = getDuration("DB_QUERY_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func Validate(c *Cfg) error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return errors.New("PORT must be a number")
	}
	switch c.StoreBackend {
	case BackendFile:
		if c.StoreDir == "" {
			return errors.New("STORE_DIR is required for the file backend")
		}
	case BackendSQLite:
		if c.DatabasePath == "" {
			return errors.New("DATABASE_PATH is required for the sqlite backend")
		}
	case BackendRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (want file, sqlite or redis)", c.StoreBackend)
	}
	if c.RedisURL != "" {
		if !strings.HasPrefix(c.RedisURL, "redis://") && !strings.HasPrefix(c.RedisURL, "rediss://") {
			return errors.New("REDIS_URL must start with redis:// or rediss://")
		}
		if strings.HasPrefix(c.RedisURL, "rediss://") && !c.RedisTLS {
			return errors.New("REDIS_URL uses rediss:// but REDIS_TLS=false")
		}
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("BASE_URL must be an absolute http(s) URL, got %q", c.BaseURL)
		}
	}
	if c.LRUCacheSize <= 0 {
		return errors.New("LRU_CACHE_SIZE must be positive")
	}
	// Same bound cache.NewLRU enforces, checked here so a bad value fails
	// validation instead of startup.
	if c.LRUCacheSize > 100000 {
		return errors.New("LRU_CACHE_SIZE cannot exceed 100000")
	}
	if c.MaxPasteSize <= 0 {
		return errors.New("MAX_PASTE_SIZE must be positive")
	}
	if c.MaxPasteSize > 10*1024*1024 {
		return errors.New("MAX_PASTE_SIZE cannot exceed 10MB")
	}
	for _, proxy := range c.TrustedProxies {
		if strings.Contains(proxy, "/") {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return fmt.Errorf("invalid CIDR in TRUSTED_PROXIES: %s", proxy)
			}
		} else {
			if net.ParseIP(proxy) == nil {
				return fmt.Errorf("invalid IP in TRUSTED_PROXIES: %s", proxy)
			}
		}
	}
	if c.Environment == "production" {
		if c.MetricsUser == "" || c.MetricsPass.Value() == "" {
			return errors.New("METRICS_USER and METRICS_PASS are required in production")
		}
	}
	return nil
}

func (c *Cfg) Wipe() {
	c.RedisPassword.Wipe()
	c.MetricsPass.Wipe()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
func getInt(key string, fallback int) (int, error) {
	s := getEnv(key, "")
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return v, nil
}
func getInt64(key string, fallback int64) (int64, error) {
	s := getEnv(key, "")
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return v, nil
}
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := getEnv(key, "")
	if s == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return v, nil
}
func getSlice(key string, fallback []string) []string {
	s := getEnv(key, "")
	if s == "" {
		return fallback
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
