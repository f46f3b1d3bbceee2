// Package bootstrap opens the optional infrastructure the storefront can run
// with: redis for tokens and rabbitmq for domain events.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/giovannicg/INMEDT/configs"
	"github.com/giovannicg/INMEDT/internal/logging"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 3 * time.Second

// OpenRedis returns nil when no address is configured.
func OpenRedis(ctx context.Context, cfg configs.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		logging.FromCtx(ctx).Info("redis not configured, tokens kept in memory")
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}
	return rdb, nil
}

// Rabbit holds one connection with a channel per role: confirm mode on the
// publishing channel must not affect the consumer.
type Rabbit struct {
	Conn    *amqp.Connection
	Publish *amqp.Channel
	Consume *amqp.Channel
}

func (r *Rabbit) Close() {
	if r == nil {
		return
	}
	if r.Consume != nil {
		_ = r.Consume.Close()
	}
	if r.Publish != nil {
		_ = r.Publish.Close()
	}
	_ = r.Conn.Close()
}

// OpenRabbit returns nil when no URL is configured.
func OpenRabbit(ctx context.Context, cfg configs.Config) (*Rabbit, error) {
	if cfg.Rabbit.URL == "" {
		logging.FromCtx(ctx).Info("rabbitmq not configured, order events are only logged")
		return nil, nil
	}
	conn, err := amqp.DialConfig(cfg.Rabbit.URL, amqp.Config{Dial: amqp.DefaultDial(pingTimeout)})
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	r := &Rabbit{Conn: conn}
	if r.Publish, err = conn.Channel(); err != nil {
		r.Close()
		return nil, fmt.Errorf("rabbitmq publish channel: %w", err)
	}
	if cfg.Rabbit.ConsumeFeed {
		if r.Consume, err = conn.Channel(); err != nil {
			r.Close()
			return nil, fmt.Errorf("rabbitmq consume channel: %w", err)
		}
	}
	return r, nil
}
