package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Principal is what the authz checks need to know about the caller.
type Principal interface {
	Authenticated() bool
	IsAdmin() bool
}

type Authz struct {
	principal func(*gin.Context) Principal
	loginPath string
}

func NewAuthz(principal func(*gin.Context) Principal, loginPath string) *Authz {
	return &Authz{principal: principal, loginPath: loginPath}
}

// RequireLogin sends anonymous callers to the login page.
func (a *Authz) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := a.principal(c)
		if p == nil || !p.Authenticated() {
			a.unauth(c, "login required")
			return
		}
		c.Next()
	}
}

// RequireAdmin also rejects logged-in callers without the ADMIN role.
func (a *Authz) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := a.principal(c)
		if p == nil || !p.Authenticated() {
			a.unauth(c, "login required")
			return
		}
		if !p.IsAdmin() {
			forbidden(c, "admin role required")
			return
		}
		c.Next()
	}
}

func (a *Authz) unauth(c *gin.Context, desc string) {
	c.Header("Location", a.loginPath)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": desc, "redirect": a.loginPath})
}

func forbidden(c *gin.Context, desc string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": desc, "redirect": "/"})
}
