package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/logging"
)

// SessionListener is called after every identity change; id is nil on logout
// or expiry.
type SessionListener func(ctx context.Context, id *entity.Identity)

// Session holds who is logged in. Only the bearer token is persisted.
type Session struct {
	mu        sync.RWMutex
	auth      AuthAPI
	tokens    TokenStore
	nav       Navigator
	identity  *entity.Identity
	listeners []SessionListener
}

func NewSession(auth AuthAPI, tokens TokenStore, nav Navigator) *Session {
	return &Session{auth: auth, tokens: tokens, nav: nav}
}

func (s *Session) OnChange(fn SessionListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Session) Identity() (entity.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return entity.Identity{}, false
	}
	return *s.identity, true
}

func (s *Session) Authenticated() bool {
	_, ok := s.Identity()
	return ok
}

func (s *Session) IsAdmin() bool {
	id, ok := s.Identity()
	return ok && id.IsAdmin()
}

func (s *Session) Login(ctx context.Context, email, password string) Result {
	req := entity.LoginRequest{Email: strings.TrimSpace(email), Password: password}
	if err := entity.Validate(req); err != nil {
		return invalid(err)
	}
	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		return failed(err, "Invalid credentials")
	}
	return s.establish(ctx, resp, "Welcome back, "+resp.Name)
}

// RegisterForm is the sign-up form, including the confirmation field the
// backend never sees.
type RegisterForm struct {
	Name            string `json:"nombre"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	TaxID           string `json:"rucCedula"`
}

func (s *Session) Register(ctx context.Context, f RegisterForm) Result {
	if f.Password != f.ConfirmPassword {
		return rejected("Passwords do not match")
	}
	req := entity.RegisterRequest{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
		TaxID:    strings.TrimSpace(f.TaxID),
	}
	if err := entity.Validate(req); err != nil {
		return invalid(err)
	}
	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		return failed(err, "Registration failed")
	}
	return s.establish(ctx, resp, "Account created")
}

func (s *Session) GoogleLogin(ctx context.Context, credential string) Result {
	req := entity.GoogleLoginRequest{Credential: credential}
	if err := entity.Validate(req); err != nil {
		return rejected("Google credential missing")
	}
	resp, err := s.auth.GoogleLogin(ctx, req)
	if err != nil {
		return failed(err, "Google sign-in failed")
	}
	return s.establish(ctx, resp, "Welcome, "+resp.Name)
}

func (s *Session) establish(ctx context.Context, resp entity.AuthResponse, msg string) Result {
	if resp.Token == "" {
		return rejected("Login failed")
	}
	if err := s.tokens.Set(ctx, resp.Token); err != nil {
		logging.FromCtx(ctx).Error("store token failed", "err", err)
		return rejected("Login failed")
	}
	id := resp.Identity()
	s.setIdentity(ctx, &id)
	return ok(msg)
}

// Restore rebuilds the identity from a stored token. A rejected token is
// dropped.
func (s *Session) Restore(ctx context.Context) bool {
	if s.Authenticated() {
		return true
	}
	tok, err := s.tokens.Get(ctx)
	if err != nil || tok == "" {
		return false
	}
	resp, err := s.auth.Me(ctx)
	if err != nil {
		logging.FromCtx(ctx).Info("session restore failed", "err", err)
		_ = s.tokens.Clear(ctx)
		return false
	}
	id := resp.Identity()
	s.setIdentity(ctx, &id)
	return true
}

func (s *Session) Logout(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		logging.FromCtx(ctx).Warn("clear token failed", "err", err)
	}
	s.setIdentity(ctx, nil)
	s.nav.Navigate(ctx, "/")
}

// Expire forgets the identity after the backend rejected the token. The
// token itself is already gone.
func (s *Session) Expire(ctx context.Context) {
	if !s.Authenticated() {
		return
	}
	s.setIdentity(ctx, nil)
}

func (s *Session) setIdentity(ctx context.Context, id *entity.Identity) {
	s.mu.Lock()
	s.identity = id
	ls := append([]SessionListener(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range ls {
		fn(ctx, id)
	}
}
