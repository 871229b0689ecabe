package store

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"pastepad/cfg"
	"pastepad/pkg/domain"
	"pastepad/svc/util"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const pasteKeyPrefix = "paste:"

// Redis stores each paste as a JSON value under paste:{id}. Values are set
// without a TTL: pastes never expire.
type Redis struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedis(url string, c *cfg.Cfg) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}
	opt.PoolSize = 50
	opt.MinIdleConns = 10
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute
	opt.MaxRetries = 3
	opt.MinRetryBackoff = 8 * time.Millisecond
	opt.MaxRetryBackoff = 512 * time.Millisecond
	if c.RedisTLS {
		tlsConfig, err := buildRedisTLSConfig()
		if err != nil {
			return nil, errors.Wrap(err, "build redis TLS config")
		}
		opt.TLSConfig = tlsConfig
	}
	if c.RedisUsername != "" {
		opt.Username = c.RedisUsername
	}
	if c.RedisPassword.Value() != "" {
		opt.Password = c.RedisPassword.Value()
	}
	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.Wrap(err, "ping redis")
	}
	return &Redis{client: client, timeout: c.RedisTimeout}, nil
}

func buildRedisTLSConfig() (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS13,
	}
	redisHostname := os.Getenv("REDIS_HOSTNAME")
	if redisHostname == "" {
		return nil, fmt.Errorf("REDIS_HOSTNAME must be set when REDIS_TLS=true")
	}
	tlsConfig.ServerName = redisHostname
	certPath := os.Getenv("REDIS_TLS_CA_CERT")
	if certPath != "" {
		caCert, err := os.ReadFile(certPath)
		if err != nil {
			return nil, fmt.Errorf("read redis CA cert: %w", err)
		}
		certPool := x509.NewCertPool()
		if !certPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("append redis CA cert to pool")
		}
		tlsConfig.RootCAs = certPool
	} else {
		systemPool, err := x509.SystemCertPool()
		if err != nil {
			return nil, fmt.Errorf("load system cert pool: %w", err)
		}
		tlsConfig.RootCAs = systemPool
	}
	return tlsConfig, nil
}

func (r *Redis) Put(ctx context.Context, p *domain.Paste) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "marshal paste")
	}
	return errors.Wrap(r.client.Set(ctx, pasteKeyPrefix+p.ID, data, 0).Err(), "set paste")
}

func (r *Redis) Get(ctx context.Context, id string) (*domain.Paste, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	data, err := r.client.Get(ctx, pasteKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrPasteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get paste")
	}
	var p domain.Paste
	if err := json.Unmarshal(data, &p); err != nil {
		util.Warn().Err(err).Str("id", id).Msg("unparsable paste record")
		return nil, domain.ErrPasteNotFound
	}
	return &p, nil
}

func (r *Redis) List(ctx context.Context) ([]*domain.Paste, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	var pastes []*domain.Paste
	iter := r.client.Scan(ctx, 0, pasteKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "get paste")
		}
		var p domain.Paste
		if err := json.Unmarshal(data, &p); err != nil {
			util.Warn().Err(err).Str("key", iter.Val()).Msg("unparsable paste record")
			continue
		}
		pastes = append(pastes, &p)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "scan pastes")
	}
	return pastes, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
