package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/giovannicg/INMEDT/internal/adapter/http/middleware"
	"github.com/giovannicg/INMEDT/internal/logging"
	"github.com/giovannicg/INMEDT/internal/usecase"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

const (
	sessionCookie = "inmedt_sid"
	storefrontKey = "storefront"
	sessionIDKey  = "session_id"
)

// StorefrontFactory builds the stores of a new browser session.
type StorefrontFactory func(sessionID string) *usecase.Storefront

type sessionEntry struct {
	sf   *usecase.Storefront
	once sync.Once
}

// Registry keeps the most recently used sessions in memory. An evicted
// session is rebuilt from its stored token on the next request.
type Registry struct {
	mu      sync.Mutex
	cache   *lru.Cache
	factory StorefrontFactory
	maxAge  time.Duration
	secure  bool
}

func NewRegistry(size int, cookieMaxAge time.Duration, secureCookie bool, factory StorefrontFactory) (*Registry, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Registry{cache: c, factory: factory, maxAge: cookieMaxAge, secure: secureCookie}, nil
}

func (r *Registry) Len() int { return r.cache.Len() }

func (r *Registry) entry(id string) *sessionEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.cache.Get(id); ok {
		return v.(*sessionEntry)
	}
	e := &sessionEntry{sf: r.factory(id)}
	r.cache.Add(id, e)
	return e
}

// Middleware attaches the session's storefront and a fresh interaction to
// every request.
func (r *Registry) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, id, int(r.maxAge.Seconds()), "/", "", r.secure, true)

		e := r.entry(id)
		e.once.Do(func() {
			// a stale token must not bounce this request to the login page
			ctx, _ := withInteraction(c.Request.Context(), false)
			if e.sf.Session.Restore(ctx) {
				logging.From(c).Info("session restored", "session", id)
			}
		})

		ctx, _ := withInteraction(c.Request.Context(), c.Query("confirm") == "true")
		ctx = logging.WithCtx(ctx, logging.From(c).With("session", shortID(id)))
		c.Request = c.Request.WithContext(ctx)
		c.Set(storefrontKey, e.sf)
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func storefront(c *gin.Context) *usecase.Storefront {
	return c.MustGet(storefrontKey).(*usecase.Storefront)
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

// principal adapts the session for the authz middleware.
func principal(c *gin.Context) middleware.Principal {
	if v, ok := c.Get(storefrontKey); ok {
		return v.(*usecase.Storefront).Session
	}
	return nil
}

func reqCtx(c *gin.Context) context.Context { return c.Request.Context() }
