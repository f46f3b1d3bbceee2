package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/giovannicg/INMEDT/internal/adapter/http/middleware"
	"github.com/giovannicg/INMEDT/internal/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth      *AuthHandler
	Catalog   *CatalogHandler
	Cart      *CartHandler
	Favorites *FavoritesHandler
	Addresses *AddressHandler
	Checkout  *CheckoutHandler
	Orders    *OrderHandler
	Admin     *AdminHandler
}

func NewRouter(reg *Registry, h Handlers, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = 12 << 20
	r.Use(gin.Recovery(), middleware.Metrics("/metrics", "/healthz"))

	if log == nil {
		log = logging.New("http")
	}
	r.Use(middleware.Logging(log))

	r.GET("/healthz", func(c *gin.Context) {
		logging.From(c).Debug("health check")
		c.JSON(200, gin.H{"ok": true, "sessions": reg.Len()})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authz := middleware.NewAuthz(principal, LoginPath)

	s := r.Group("/", reg.Middleware())
	{
		s.POST("/login", h.Auth.Login)
		s.POST("/register", h.Auth.Register)
		s.POST("/auth/google", h.Auth.Google)
		s.GET("/auth/google/config", h.Auth.GoogleConfig)
		s.POST("/logout", h.Auth.Logout)
		s.GET("/me", h.Auth.Me)

		s.GET("/", h.Catalog.Home)
		s.GET("/productos", h.Catalog.Browse)
		s.GET("/productos/:id", h.Catalog.Product)
		s.GET("/categorias", h.Catalog.Categories)
		s.GET("/categorias/:id", h.Catalog.Category)
	}

	u := s.Group("/", authz.RequireLogin())
	{
		u.GET("/carrito", h.Cart.Get)
		u.POST("/carrito/items", h.Cart.Add)
		u.PUT("/carrito/items/:id", h.Cart.Update)
		u.DELETE("/carrito/items/:id", h.Cart.Remove)
		u.DELETE("/carrito", h.Cart.Clear)

		u.GET("/favoritos", h.Favorites.List)
		u.POST("/favoritos/:id", h.Favorites.Add)
		u.DELETE("/favoritos/:id", h.Favorites.Remove)
		u.POST("/favoritos/:id/toggle", h.Favorites.Toggle)

		u.GET("/direcciones", h.Addresses.List)
		u.POST("/direcciones", h.Addresses.Create)
		u.PUT("/direcciones/:id", h.Addresses.Update)
		u.DELETE("/direcciones/:id", h.Addresses.Delete)
		u.PUT("/direcciones/:id/principal", h.Addresses.SetDefault)

		u.GET("/pedidos", h.Orders.List)
		u.GET("/pedidos/:id", h.Orders.GetOrderByID)
	}

	// checkout guards itself so it can tell "log in" from "cart is empty"
	co := s.Group("/checkout")
	{
		co.GET("", h.Checkout.Get)
		co.PUT("/draft", h.Checkout.SetDraft)
		co.POST("/direccion/:id", h.Checkout.UseAddress)
		co.POST("/next", h.Checkout.Next)
		co.POST("/back", h.Checkout.Back)
		co.POST("/submit", h.Checkout.Submit)
		co.DELETE("", h.Checkout.Reset)
	}

	h.Admin.Mount(s.Group("/admin", authz.RequireAdmin()))
	return r
}
