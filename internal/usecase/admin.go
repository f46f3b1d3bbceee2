package usecase

import (
	"context"
	"sync"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const MinPasswordLength = 6

type AdminDeps struct {
	Categories AdminCategoryAPI
	Products   AdminProductAPI
	Users      AdminUserAPI
	Orders     AdminOrderAPI
	Images     ImageAPI
	Confirm    Confirmer
}

// Admin groups the back-office screens of one session.
type Admin struct {
	Products   *Screen[entity.Product, entity.ProductDraft]
	Categories *Screen[entity.Category, entity.CategoryDraft]
	Users      *Screen[entity.User, entity.UserDraft]
	Orders     *Screen[entity.Order, entity.OrderDraft]
	Images     *ImageManager

	deps AdminDeps

	mu        sync.Mutex
	variants  *Screen[entity.Variant, entity.VariantDraft]
	variantOf int64
	units     *Screen[entity.SaleUnit, entity.SaleUnitDraft]
	unitsOf   int64
}

func NewAdmin(d AdminDeps) *Admin {
	return &Admin{
		Products: NewScreen[entity.Product, entity.ProductDraft]("product", d.Products, d.Confirm,
			productID, productDraft),
		Categories: NewScreen[entity.Category, entity.CategoryDraft]("category", d.Categories, d.Confirm,
			categoryID, categoryDraft,
			WithDeleteGuard[entity.Category, entity.CategoryDraft](guardCategoryDelete),
			WithSort[entity.Category, entity.CategoryDraft]("id", "asc")),
		Users: NewScreen[entity.User, entity.UserDraft]("user", userResource{api: d.Users}, d.Confirm,
			userID, userDraft,
			WithoutCreate[entity.User, entity.UserDraft]()),
		Orders: NewScreen[entity.Order, entity.OrderDraft]("order", orderResource{api: d.Orders}, d.Confirm,
			orderID, orderDraft,
			WithoutCreate[entity.Order, entity.OrderDraft](),
			WithSort[entity.Order, entity.OrderDraft]("createdAt", "desc")),
		Images: NewImageManager(d.Images),
		deps:   d,
	}
}

// Variants returns the variant screen of a product, reusing it while the
// same product stays selected.
func (a *Admin) Variants(productID int64) *Screen[entity.Variant, entity.VariantDraft] {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.variants == nil || a.variantOf != productID {
		a.variants = NewScreen[entity.Variant, entity.VariantDraft]("variant",
			variantResource{api: a.deps.Products, productID: productID}, a.deps.Confirm,
			variantID, variantDraft)
		a.variantOf = productID
	}
	return a.variants
}

func (a *Admin) SaleUnits(variantID int64) *Screen[entity.SaleUnit, entity.SaleUnitDraft] {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.units == nil || a.unitsOf != variantID {
		a.units = NewScreen[entity.SaleUnit, entity.SaleUnitDraft]("sale unit",
			saleUnitResource{api: a.deps.Products, variantID: variantID}, a.deps.Confirm,
			saleUnitID, saleUnitDraft)
		a.unitsOf = variantID
	}
	return a.units
}

func (a *Admin) SetCategoryActive(ctx context.Context, id int64, active bool) Result {
	if _, err := a.deps.Categories.SetActive(ctx, id, active); err != nil {
		return failed(err, "Could not change the category status")
	}
	a.Categories.refetch(ctx)
	return ok("Category updated")
}

func (a *Admin) ResetPassword(ctx context.Context, userID int64, password string) Result {
	if len(password) < MinPasswordLength {
		return rejected("Password must be at least 6 characters")
	}
	if err := a.deps.Users.ResetPassword(ctx, userID, password); err != nil {
		return failed(err, "Could not change the password")
	}
	return ok("Password updated")
}

func (a *Admin) Order(ctx context.Context, id int64) (entity.Order, error) {
	return a.deps.Orders.Get(ctx, id)
}

func (a *Admin) OrdersByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	if !status.Valid() {
		return nil, ErrUnsupported
	}
	list, err := a.deps.Orders.ByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(list)
	return list, nil
}

const recentOrders = 5

type DashboardView struct {
	Users        int                        `json:"totalUsuarios"`
	Products     int64                      `json:"totalProductos"`
	Orders       int                        `json:"totalPedidos"`
	Categories   int64                      `json:"totalCategorias"`
	Revenue      decimal.Decimal            `json:"ingresos"`
	ByStatus     map[entity.OrderStatus]int `json:"porEstado"`
	RecentOrders []entity.Order             `json:"pedidosRecientes"`
}

// Dashboard fetches the four counters concurrently.
func (a *Admin) Dashboard(ctx context.Context) (DashboardView, error) {
	var (
		users    []entity.User
		products entity.Page[entity.Product]
		orders   []entity.Order
		cats     int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = a.deps.Users.All(gctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = a.deps.Products.List(gctx, entity.PageRequest{Size: 1})
		return err
	})
	g.Go(func() (err error) {
		orders, err = a.deps.Orders.All(gctx)
		return err
	})
	g.Go(func() (err error) {
		cats, err = a.deps.Categories.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardView{}, err
	}

	v := DashboardView{
		Users:      len(users),
		Products:   products.TotalElements,
		Orders:     len(orders),
		Categories: cats,
		Revenue:    decimal.Zero,
		ByStatus:   map[entity.OrderStatus]int{},
	}
	for _, o := range orders {
		v.Revenue = v.Revenue.Add(o.Total)
		v.ByStatus[o.Status]++
	}
	sortNewestFirst(orders)
	if len(orders) > recentOrders {
		orders = orders[:recentOrders]
	}
	v.RecentOrders = orders
	return v, nil
}
