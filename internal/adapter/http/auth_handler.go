package http

import (
	"github.com/gin-gonic/gin"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

type AuthHandler struct {
	googleClientID string
}

func NewAuthHandler(googleClientID string) *AuthHandler {
	return &AuthHandler{googleClientID: googleClientID}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON")
		return
	}
	sf := storefront(c)
	res := sf.Session.Login(reqCtx(c), req.Email, req.Password)
	finish(c, res, gin.H{"badges": sf.Badges()})
}

// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var form usecase.RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, "invalid JSON")
		return
	}
	sf := storefront(c)
	res := sf.Session.Register(reqCtx(c), form)
	finish(c, res, gin.H{"badges": sf.Badges()})
}

type googleReq struct {
	Credential string `json:"credential"`
}

// POST /auth/google
func (h *AuthHandler) Google(c *gin.Context) {
	var req googleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON")
		return
	}
	sf := storefront(c)
	finish(c, sf.Session.GoogleLogin(reqCtx(c), req.Credential), gin.H{"badges": sf.Badges()})
}

// GET /auth/google/config exposes the client id the sign-in button needs.
func (h *AuthHandler) GoogleConfig(c *gin.Context) {
	c.JSON(200, gin.H{"clientId": h.googleClientID, "enabled": h.googleClientID != ""})
}

// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	storefront(c).Session.Logout(reqCtx(c))
	finish(c, usecase.Result{Success: true, Message: "Logged out"}, nil)
}

// GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(200, storefront(c).Badges())
}
