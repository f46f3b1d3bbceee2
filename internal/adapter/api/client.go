// Package api is the storefront's REST client for the INMEDT backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/logging"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

const (
	DefaultBaseURL = "http://localhost:8085/api"
	DefaultTimeout = 10 * time.Second
	LoginPath      = "/login"

	maxErrorBody = 8 * 1024
)

// Client attaches the session's bearer token to every call. A 401 clears the
// token and redirects to the login page.
type Client struct {
	base   string
	hc     *http.Client
	tokens usecase.TokenStore
	nav    usecase.Navigator
	log    *slog.Logger

	mu       sync.Mutex
	onUnauth []func(ctx context.Context)
}

type Option func(*Client)

// WithHTTPClient shares a transport between sessions. Its Timeout is kept
// unless zero.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL string, tokens usecase.TokenStore, nav usecase.Navigator, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		base:   strings.TrimRight(baseURL, "/"),
		tokens: tokens,
		nav:    nav,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hc == nil {
		c.hc = &http.Client{Timeout: DefaultTimeout}
	} else if c.hc.Timeout == 0 {
		cp := *c.hc
		cp.Timeout = DefaultTimeout
		c.hc = &cp
	}
	if c.log == nil {
		c.log = logging.New("api")
	}
	return c
}

// OnUnauthorized registers fn to run after a 401 has cleared the token.
func (c *Client) OnUnauthorized(fn func(ctx context.Context)) {
	c.mu.Lock()
	c.onUnauth = append(c.onUnauth, fn)
	c.mu.Unlock()
}

func (c *Client) Auth() *Auth                       { return &Auth{c: c} }
func (c *Client) Catalog() *Catalog                 { return &Catalog{c: c} }
func (c *Client) Cart() *Cart                       { return &Cart{c: c} }
func (c *Client) Favorites() *Favorites             { return &Favorites{c: c} }
func (c *Client) Addresses() *Addresses             { return &Addresses{c: c} }
func (c *Client) Orders() *Orders                   { return &Orders{c: c} }
func (c *Client) AdminCategories() *AdminCategories { return &AdminCategories{c: c} }
func (c *Client) AdminProducts() *AdminProducts     { return &AdminProducts{c: c} }
func (c *Client) AdminUsers() *AdminUsers           { return &AdminUsers{c: c} }
func (c *Client) AdminOrders() *AdminOrders         { return &AdminOrders{c: c} }
func (c *Client) Images() *Images                   { return &Images{c: c} }

type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
	// raw, when set, is sent as-is with contentType
	raw         io.Reader
	contentType string
}

// do runs one call and decodes a 2xx body into out (nil to discard).
func (c *Client) do(ctx context.Context, cl call, out any) error {
	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return fmt.Errorf("%s: %w", cl.op, err)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observe(cl.op, 0, start)
		c.log.Warn("backend call failed", "op", cl.op, "err", err)
		return fmt.Errorf("%s: %w: %v", cl.op, ErrTransport, err)
	}
	defer resp.Body.Close()
	observe(cl.op, resp.StatusCode, start)

	if resp.StatusCode == http.StatusUnauthorized {
		c.unauthorized(ctx)
		return &Error{Op: cl.op, Status: resp.StatusCode, Message: defaultMessage(resp.StatusCode), cause: ErrUnauthorized}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		e := &Error{Op: cl.op, Status: resp.StatusCode, Message: messageFrom(resp.StatusCode, body)}
		logging.FromCtx(ctx).Info("backend rejected call", "op", cl.op, "status", e.Status, "msg", e.Message)
		return e
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%s: decode: %w: %v", cl.op, ErrBadResponse, err)
	}
	if err := checkShape(out); err != nil {
		c.log.Error("backend response failed validation", "op", cl.op, "err", err)
		return fmt.Errorf("%s: %w: %s", cl.op, ErrBadResponse, entity.Describe(err))
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	u := c.base + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case cl.raw != nil:
		body, contentType = cl.raw, cl.contentType
	case cl.body != nil:
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		body, contentType = bytes.NewReader(b), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	tok, err := c.tokens.Get(ctx)
	if err != nil {
		c.log.Warn("token lookup failed", "err", err)
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return req, nil
}

func (c *Client) unauthorized(ctx context.Context) {
	if err := c.tokens.Clear(ctx); err != nil {
		c.log.Warn("clear token failed", "err", err)
	}
	c.mu.Lock()
	hooks := append([]func(context.Context){}, c.onUnauth...)
	c.mu.Unlock()
	for _, fn := range hooks {
		fn(ctx)
	}
	c.nav.Navigate(ctx, LoginPath)
}

// checkShape validates a decoded struct, or each struct in a decoded slice.
func checkShape(out any) error {
	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		return entity.Validate(v.Interface())
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			el := v.Index(i)
			if el.Kind() != reflect.Struct {
				return nil
			}
			if err := entity.Validate(el.Interface()); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	}
	return nil
}

func pageQuery(pr entity.PageRequest) url.Values {
	q := url.Values{}
	q.Set("page", fmt.Sprint(pr.Page))
	if pr.Size > 0 {
		q.Set("size", fmt.Sprint(pr.Size))
	}
	if pr.SortBy != "" {
		q.Set("sortBy", pr.SortBy)
	}
	if pr.SortDir != "" {
		q.Set("sortDir", pr.SortDir)
	}
	return q
}

// StorefrontDeps wires every backend service of this client into the stores
// of one session.
func (c *Client) StorefrontDeps(confirm usecase.Confirmer, events usecase.EventPublisher) usecase.Deps {
	return usecase.Deps{
		Auth:      c.Auth(),
		Catalog:   c.Catalog(),
		Cart:      c.Cart(),
		Favorites: c.Favorites(),
		Addresses: c.Addresses(),
		Orders:    c.Orders(),
		Admin: usecase.AdminDeps{
			Categories: c.AdminCategories(),
			Products:   c.AdminProducts(),
			Users:      c.AdminUsers(),
			Orders:     c.AdminOrders(),
			Images:     c.Images(),
			Confirm:    confirm,
		},
		Tokens: c.tokens,
		Nav:    c.nav,
		Events: events,
	}
}
