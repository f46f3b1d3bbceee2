package api

import (
	"context"
	"net/http"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

type Auth struct{ c *Client }

func (a *Auth) Login(ctx context.Context, req entity.LoginRequest) (entity.AuthResponse, error) {
	return a.authCall(ctx, "auth.login", "/auth/login", req)
}

func (a *Auth) Register(ctx context.Context, req entity.RegisterRequest) (entity.AuthResponse, error) {
	return a.authCall(ctx, "auth.register", "/auth/register", req)
}

func (a *Auth) GoogleLogin(ctx context.Context, req entity.GoogleLoginRequest) (entity.AuthResponse, error) {
	return a.authCall(ctx, "auth.google", "/auth/google", req)
}

func (a *Auth) Me(ctx context.Context) (entity.AuthResponse, error) {
	var out entity.AuthResponse
	err := a.c.do(ctx, call{op: "auth.me", method: http.MethodGet, path: "/auth/me"}, &out)
	return out, err
}

func (a *Auth) authCall(ctx context.Context, op, path string, body any) (entity.AuthResponse, error) {
	var out entity.AuthResponse
	err := a.c.do(ctx, call{op: op, method: http.MethodPost, path: path, body: body}, &out)
	return out, err
}

var _ usecase.AuthAPI = (*Auth)(nil)
