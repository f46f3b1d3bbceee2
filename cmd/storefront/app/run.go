package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/giovannicg/INMEDT/configs"
	"github.com/giovannicg/INMEDT/internal/adapter/api"
	"github.com/giovannicg/INMEDT/internal/adapter/cache"
	httpx "github.com/giovannicg/INMEDT/internal/adapter/http"
	"github.com/giovannicg/INMEDT/internal/adapter/queue"
	"github.com/giovannicg/INMEDT/internal/bootstrap"
	"github.com/giovannicg/INMEDT/internal/logging"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

type tokenStores interface {
	ForSession(sessionID string) usecase.TokenStore
}

func InitWithConfig(ctx context.Context, cfg configs.Config) (*App, func(), error) {
	log := logging.New("bootstrap")
	ctx = logging.WithCtx(ctx, log)
	log.Info("storefront: Starting up...")

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// tokens + checkout lock: redis when configured, memory otherwise
	var (
		tokens tokenStores
		locker httpx.Locker
	)
	rdb, err := bootstrap.OpenRedis(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if rdb != nil {
		closers = append(closers, func() { _ = rdb.Close() })
		tokens = cache.NewRedisTokens(rdb, cfg.Session.TokenTTL)
		locker = cache.NewRedisLocker(rdb, cfg.Session.SubmitLockTTL)
	} else {
		tokens = cache.NewMemoryTokens(cfg.Session.TokenTTL)
		locker = cache.NewMemoryLocker(cfg.Session.SubmitLockTTL)
	}

	// order.placed: publish to rabbitmq and feed the admin activity panel
	var events usecase.EventPublisher = queue.LogPublisher{Log: logging.New("events")}
	feed := usecase.NewActivityFeed(cfg.Rabbit.FeedSize)
	rmq, err := bootstrap.OpenRabbit(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if rmq != nil {
		closers = append(closers, rmq.Close)
		producer, err := queue.NewRabbitProducer(rmq.Publish)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		events = producer
		if rmq.Consume != nil {
			if err := setupQueue(rmq, cfg, feed); err != nil {
				cleanup()
				return nil, nil, err
			}
		}
	} else {
		events = feedingPublisher{next: events, feed: feed}
	}

	// one transport shared by every session's client
	hc := &http.Client{Timeout: cfg.Backend.Timeout}
	apiLog := logging.New("api")
	factory := func(sessionID string) *usecase.Storefront {
		client := api.New(cfg.Backend.BaseURL, tokens.ForSession(sessionID), httpx.Navigator{},
			api.WithHTTPClient(hc), api.WithLogger(apiLog))
		sf := usecase.NewStorefront(client.StorefrontDeps(httpx.Confirmer{}, events))
		client.OnUnauthorized(sf.Session.Expire)
		return sf
	}
	reg, err := httpx.NewRegistry(cfg.Session.MaxSessions, cfg.Session.CookieMaxAge, cfg.Session.SecureCookie, factory)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	router := httpx.NewRouter(reg, httpx.Handlers{
		Auth:      httpx.NewAuthHandler(cfg.Backend.GoogleClientID),
		Catalog:   httpx.NewCatalogHandler(),
		Cart:      httpx.NewCartHandler(),
		Favorites: httpx.NewFavoritesHandler(),
		Addresses: httpx.NewAddressHandler(),
		Checkout:  httpx.NewCheckoutHandler(locker, cfg.Session.SubmitTimeout),
		Orders:    httpx.NewOrderHandler(),
		Admin:     httpx.NewAdminHandler(feed),
	}, logging.New("http"))

	return &App{Router: router}, cleanup, nil
}

func setupQueue(rmq *bootstrap.Rabbit, cfg configs.Config, feed *usecase.ActivityFeed) error {
	if err := queue.DeclareTopology(rmq.Consume); err != nil {
		return err
	}
	router := queue.NewRouter(rmq.Consume, queue.WithPrefetch(cfg.Rabbit.Prefetch), queue.WithRequeue(false))
	router.Register(queue.OrderPlacedQueue, queue.JSONHandler[usecase.OrderPlacedMsg]{HandleFunc: feed.Record})
	return router.Start()
}

// feedingPublisher records events locally when there is no broker to loop
// them back through.
type feedingPublisher struct {
	next usecase.EventPublisher
	feed *usecase.ActivityFeed
}

func (p feedingPublisher) PublishOrderPlaced(ctx context.Context, msg usecase.OrderPlacedMsg) error {
	_ = p.feed.Record(ctx, msg)
	return p.next.PublishOrderPlaced(ctx, msg)
}
