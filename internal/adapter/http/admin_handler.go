package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

const recentActivity = 10

type AdminHandler struct {
	feed *usecase.ActivityFeed
}

func NewAdminHandler(feed *usecase.ActivityFeed) *AdminHandler {
	return &AdminHandler{feed: feed}
}

// Mount registers the back-office routes on an admin-only group.
func (h *AdminHandler) Mount(g *gin.RouterGroup) {
	g.GET("/dashboard", h.Dashboard)

	mountScreen(g, "/productos", "id",
		func(c *gin.Context) (*usecase.Screen[entity.Product, entity.ProductDraft], bool) {
			return storefront(c).Admin.Products, true
		},
		func(*gin.Context, *entity.ProductDraft) {})
	g.POST("/productos/:id/imagen-principal", h.UploadMainImage)
	g.DELETE("/productos/:id/imagen-principal", h.DeleteMainImage)
	g.POST("/productos/:id/imagenes-galeria", h.UploadGalleryImage)
	g.DELETE("/productos/:id/imagenes-galeria", h.DeleteGalleryImage)

	mountScreen(g, "/productos/:id/variantes", "vid",
		func(c *gin.Context) (*usecase.Screen[entity.Variant, entity.VariantDraft], bool) {
			pid, ok := idParam(c, "id")
			if !ok {
				return nil, false
			}
			return storefront(c).Admin.Variants(pid), true
		},
		func(c *gin.Context, d *entity.VariantDraft) {
			d.ProductID, _ = strconv.ParseInt(c.Param("id"), 10, 64)
		})

	mountScreen(g, "/variantes/:vid/unidades", "uid",
		func(c *gin.Context) (*usecase.Screen[entity.SaleUnit, entity.SaleUnitDraft], bool) {
			vid, ok := idParam(c, "vid")
			if !ok {
				return nil, false
			}
			return storefront(c).Admin.SaleUnits(vid), true
		},
		func(c *gin.Context, d *entity.SaleUnitDraft) {
			d.VariantID, _ = strconv.ParseInt(c.Param("vid"), 10, 64)
		})

	mountScreen(g, "/categorias", "id",
		func(c *gin.Context) (*usecase.Screen[entity.Category, entity.CategoryDraft], bool) {
			return storefront(c).Admin.Categories, true
		},
		func(*gin.Context, *entity.CategoryDraft) {})
	g.PUT("/categorias/:id/status", h.SetCategoryActive)

	mountScreen(g, "/usuarios", "id",
		func(c *gin.Context) (*usecase.Screen[entity.User, entity.UserDraft], bool) {
			return storefront(c).Admin.Users, true
		},
		func(*gin.Context, *entity.UserDraft) {})
	g.PUT("/usuarios/:id/password", h.ResetPassword)

	// GET /pedidos?estado= filters by status instead of paging
	g.GET("/pedidos", h.OrdersByStatus)
	mountScreenRoutes(g, "/pedidos", "id", false,
		func(c *gin.Context) (*usecase.Screen[entity.Order, entity.OrderDraft], bool) {
			return storefront(c).Admin.Orders, true
		},
		func(*gin.Context, *entity.OrderDraft) {})
	g.GET("/pedidos/:id", h.Order)
}

// GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := storefront(c).Admin.Dashboard(reqCtx(c))
	if err != nil {
		fail(c, err)
		return
	}
	out := gin.H{"resumen": d}
	if h.feed != nil {
		out["actividad"] = h.feed.Recent(recentActivity)
	}
	view(c, out, nil)
}

// PUT /admin/categorias/:id/status?activa=
func (h *AdminHandler) SetCategoryActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	active, err := strconv.ParseBool(c.Query("activa"))
	if err != nil {
		badRequest(c, "activa must be true or false")
		return
	}
	admin := storefront(c).Admin
	finish(c, admin.SetCategoryActive(reqCtx(c), id, active), gin.H{"pagina": admin.Categories.Page()})
}

type passwordReq struct {
	Password string `json:"password"`
}

// PUT /admin/usuarios/:id/password
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req passwordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON")
		return
	}
	finish(c, storefront(c).Admin.ResetPassword(reqCtx(c), id, req.Password), nil)
}

// GET /admin/pedidos/:id
func (h *AdminHandler) Order(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	o, err := storefront(c).Admin.Order(reqCtx(c), id)
	view(c, o, err)
}

// GET /admin/pedidos[?estado=&page=]
func (h *AdminHandler) OrdersByStatus(c *gin.Context) {
	status := entity.OrderStatus(c.Query("estado"))
	if status == "" {
		listScreen(c, func(c *gin.Context) (*usecase.Screen[entity.Order, entity.OrderDraft], bool) {
			return storefront(c).Admin.Orders, true
		})
		return
	}
	list, err := storefront(c).Admin.OrdersByStatus(reqCtx(c), status)
	view(c, list, err)
}

func upload(c *gin.Context) (usecase.Upload, func(), bool) {
	fh, err := c.FormFile("imagen")
	if err != nil {
		badRequest(c, "imagen file is required")
		return usecase.Upload{}, nil, false
	}
	f, err := fh.Open()
	if err != nil {
		badRequest(c, "could not read imagen")
		return usecase.Upload{}, nil, false
	}
	return usecase.Upload{Filename: fh.Filename, Size: fh.Size, Body: f}, func() { _ = f.Close() }, true
}

// POST /admin/productos/:id/imagen-principal
func (h *AdminHandler) UploadMainImage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	u, done, ok := upload(c)
	if !ok {
		return
	}
	defer done()
	imgs, res := storefront(c).Admin.Images.UploadMain(reqCtx(c), id, u)
	finish(c, res, gin.H{"imagenes": imgs})
}

// DELETE /admin/productos/:id/imagen-principal
func (h *AdminHandler) DeleteMainImage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	finish(c, storefront(c).Admin.Images.DeleteMain(reqCtx(c), id), nil)
}

// POST /admin/productos/:id/imagenes-galeria
func (h *AdminHandler) UploadGalleryImage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	u, done, ok := upload(c)
	if !ok {
		return
	}
	defer done()
	imgs, res := storefront(c).Admin.Images.UploadGallery(reqCtx(c), id, u)
	finish(c, res, gin.H{"imagenes": imgs})
}

// DELETE /admin/productos/:id/imagenes-galeria?filename=
func (h *AdminHandler) DeleteGalleryImage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	imgs, res := storefront(c).Admin.Images.DeleteGallery(reqCtx(c), id, c.Query("filename"))
	finish(c, res, gin.H{"imagenes": imgs})
}

// mountScreen exposes one admin table: list, create, edit and delete.
func mountScreen[T, D any](g *gin.RouterGroup, path, rowParam string, screen func(*gin.Context) (*usecase.Screen[T, D], bool), prepare func(*gin.Context, *D)) {
	g.GET(path, func(c *gin.Context) { listScreen(c, screen) })
	mountScreenRoutes(g, path, rowParam, true, screen, prepare)
}

func mountScreenRoutes[T, D any](g *gin.RouterGroup, path, rowParam string, withCreate bool, screen func(*gin.Context) (*usecase.Screen[T, D], bool), prepare func(*gin.Context, *D)) {
	row := path + "/:" + rowParam

	if withCreate {
		g.POST(path, func(c *gin.Context) {
			s, ok := screen(c)
			if !ok {
				return
			}
			var d D
			if err := c.ShouldBindJSON(&d); err != nil {
				badRequest(c, "invalid JSON")
				return
			}
			prepare(c, &d)
			if err := s.OpenCreate(d); err != nil {
				fail(c, err)
				return
			}
			submitScreen(c, s)
		})
	}

	// GET .../:row/edit prefills the edit modal
	g.GET(row+"/edit", func(c *gin.Context) {
		s, ok := screen(c)
		if !ok {
			return
		}
		id, ok := idParam(c, rowParam)
		if !ok {
			return
		}
		if !openEdit(c, s, id) {
			return
		}
		view(c, s.Modal(), nil)
	})

	g.PUT(row, func(c *gin.Context) {
		s, ok := screen(c)
		if !ok {
			return
		}
		id, ok := idParam(c, rowParam)
		if !ok {
			return
		}
		var d D
		if err := c.ShouldBindJSON(&d); err != nil {
			badRequest(c, "invalid JSON")
			return
		}
		prepare(c, &d)
		if !openEdit(c, s, id) {
			return
		}
		s.SetDraft(d)
		submitScreen(c, s)
	})

	g.DELETE(row, func(c *gin.Context) {
		s, ok := screen(c)
		if !ok {
			return
		}
		id, ok := idParam(c, rowParam)
		if !ok {
			return
		}
		finish(c, s.Delete(reqCtx(c), id), gin.H{"pagina": s.Page()})
	})
}

func listScreen[T, D any](c *gin.Context, screen func(*gin.Context) (*usecase.Screen[T, D], bool)) {
	s, ok := screen(c)
	if !ok {
		return
	}
	if err := s.Load(reqCtx(c), intQuery(c, "page", 0)); err != nil {
		fail(c, err)
		return
	}
	view(c, gin.H{"pagina": s.Page(), "modal": s.Modal(), "creable": s.Creatable()}, nil)
}

// openEdit reloads the current page once when the row is not on it. It
// writes the error response itself.
func openEdit[T, D any](c *gin.Context, s *usecase.Screen[T, D], id int64) bool {
	err := s.OpenEdit(id)
	if errors.Is(err, usecase.ErrRowNotLoaded) {
		if err := s.Refresh(reqCtx(c)); err != nil {
			fail(c, err)
			return false
		}
		err = s.OpenEdit(id)
	}
	if errors.Is(err, usecase.ErrRowNotLoaded) {
		c.JSON(http.StatusNotFound, gin.H{"error": "row not found on the current page"})
		return false
	}
	if err != nil {
		fail(c, err)
		return false
	}
	return true
}

func submitScreen[T, D any](c *gin.Context, s *usecase.Screen[T, D]) {
	res := s.Submit(reqCtx(c))
	finish(c, res, gin.H{"pagina": s.Page(), "modal": s.Modal()})
}
