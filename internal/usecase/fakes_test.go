package usecase

import (
	"context"
	"sync"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/shopspring/decimal"
)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type memTokens struct {
	mu  sync.Mutex
	tok string
}

func (m *memTokens) Get(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tok, nil
}

func (m *memTokens) Set(_ context.Context, t string) error {
	m.mu.Lock()
	m.tok = t
	m.mu.Unlock()
	return nil
}

func (m *memTokens) Clear(context.Context) error { return m.Set(context.Background(), "") }

type recNav struct{ paths []string }

func (n *recNav) Navigate(_ context.Context, p string) { n.paths = append(n.paths, p) }

func (n *recNav) last() string {
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}

type fixedConfirm struct {
	answer  bool
	prompts []string
}

func (c *fixedConfirm) Confirm(_ context.Context, p string) bool {
	c.prompts = append(c.prompts, p)
	return c.answer
}

type recEvents struct{ msgs []OrderPlacedMsg }

func (e *recEvents) PublishOrderPlaced(_ context.Context, m OrderPlacedMsg) error {
	e.msgs = append(e.msgs, m)
	return nil
}

type apiErr struct{ msg string }

func (e apiErr) Error() string       { return "api: " + e.msg }
func (e apiErr) UserMessage() string { return e.msg }

type fakeAuth struct {
	loginFn    func(entity.LoginRequest) (entity.AuthResponse, error)
	registerFn func(entity.RegisterRequest) (entity.AuthResponse, error)
	googleFn   func(entity.GoogleLoginRequest) (entity.AuthResponse, error)
	meFn       func() (entity.AuthResponse, error)
	calls      int
}

func (f *fakeAuth) Login(_ context.Context, r entity.LoginRequest) (entity.AuthResponse, error) {
	f.calls++
	return f.loginFn(r)
}

func (f *fakeAuth) Register(_ context.Context, r entity.RegisterRequest) (entity.AuthResponse, error) {
	f.calls++
	return f.registerFn(r)
}

func (f *fakeAuth) GoogleLogin(_ context.Context, r entity.GoogleLoginRequest) (entity.AuthResponse, error) {
	f.calls++
	return f.googleFn(r)
}

func (f *fakeAuth) Me(context.Context) (entity.AuthResponse, error) {
	f.calls++
	return f.meFn()
}

type fakeCart struct {
	getFn    func() (entity.Cart, error)
	addFn    func(entity.AddCartItemRequest) (entity.Cart, error)
	updateFn func(int64, entity.UpdateCartItemRequest) (entity.Cart, error)
	removeFn func(int64) (entity.Cart, error)
	clearFn  func() (entity.Cart, error)
	calls    int
}

func (f *fakeCart) Get(context.Context) (entity.Cart, error) {
	f.calls++
	return f.getFn()
}

func (f *fakeCart) AddItem(_ context.Context, r entity.AddCartItemRequest) (entity.Cart, error) {
	f.calls++
	return f.addFn(r)
}

func (f *fakeCart) UpdateItem(_ context.Context, id int64, r entity.UpdateCartItemRequest) (entity.Cart, error) {
	f.calls++
	return f.updateFn(id, r)
}

func (f *fakeCart) RemoveItem(_ context.Context, id int64) (entity.Cart, error) {
	f.calls++
	return f.removeFn(id)
}

func (f *fakeCart) Clear(context.Context) (entity.Cart, error) {
	f.calls++
	if f.clearFn == nil {
		return entity.Cart{}, nil
	}
	return f.clearFn()
}

// serverCart keeps state like the backend would and answers with it.
type serverCart struct {
	fakeCart
	state entity.Cart
	next  int64
}

func newServerCart() *serverCart {
	s := &serverCart{next: 1}
	s.getFn = func() (entity.Cart, error) { return s.state, nil }
	s.addFn = func(r entity.AddCartItemRequest) (entity.Cart, error) {
		price := money("10.00")
		s.state.Items = append(s.state.Items, entity.CartItem{
			ID: s.next, Quantity: r.Quantity, UnitPrice: price,
			Subtotal: price.Mul(decimal.NewFromInt(int64(r.Quantity))),
			SaleUnit: entity.SaleUnit{ID: r.SaleUnitID},
		})
		s.next++
		s.recount()
		return s.state, nil
	}
	s.updateFn = func(id int64, r entity.UpdateCartItemRequest) (entity.Cart, error) {
		for i := range s.state.Items {
			if s.state.Items[i].ID == id {
				s.state.Items[i].Quantity = r.Quantity
				s.state.Items[i].Subtotal = s.state.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
			}
		}
		s.recount()
		return s.state, nil
	}
	s.removeFn = func(id int64) (entity.Cart, error) {
		kept := s.state.Items[:0]
		for _, it := range s.state.Items {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		s.state.Items = kept
		s.recount()
		return s.state, nil
	}
	s.clearFn = func() (entity.Cart, error) {
		s.state = entity.Cart{}
		return s.state, nil
	}
	return s
}

func (s *serverCart) recount() {
	t := decimal.Zero
	for _, it := range s.state.Items {
		t = t.Add(it.Subtotal)
	}
	s.state.Total = t
}

type fakeFavorites struct {
	set     map[int64]bool
	calls   int
	failing bool
}

func newFakeFavorites(ids ...int64) *fakeFavorites {
	f := &fakeFavorites{set: map[int64]bool{}}
	for _, id := range ids {
		f.set[id] = true
	}
	return f
}

func (f *fakeFavorites) List(context.Context) ([]entity.Favorite, error) {
	f.calls++
	var out []entity.Favorite
	for id := range f.set {
		out = append(out, entity.Favorite{ProductID: id})
	}
	return out, nil
}

func (f *fakeFavorites) Add(_ context.Context, id int64) (entity.Favorite, error) {
	f.calls++
	f.set[id] = true
	return entity.Favorite{ProductID: id}, nil
}

func (f *fakeFavorites) Remove(_ context.Context, id int64) error {
	f.calls++
	delete(f.set, id)
	return nil
}

func (f *fakeFavorites) Toggle(_ context.Context, id int64) (entity.FavoriteToggle, error) {
	f.calls++
	if f.failing {
		return entity.FavoriteToggle{}, apiErr{"Producto no encontrado"}
	}
	if f.set[id] {
		delete(f.set, id)
		return entity.FavoriteToggle{Action: entity.FavoriteRemoved}, nil
	}
	f.set[id] = true
	return entity.FavoriteToggle{Action: entity.FavoriteAdded, Favorite: &entity.Favorite{ProductID: id, ProductName: "P"}}, nil
}

func (f *fakeFavorites) Check(_ context.Context, id int64) (bool, error) {
	f.calls++
	return f.set[id], nil
}

func (f *fakeFavorites) CountFor(context.Context, int64) (int64, error) {
	f.calls++
	return 0, nil
}

type fakeAddresses struct {
	items   []entity.Address
	created []entity.Address
	next    int64
}

func (f *fakeAddresses) List(context.Context) ([]entity.Address, error) { return f.items, nil }

func (f *fakeAddresses) Create(_ context.Context, a entity.Address) (entity.Address, error) {
	f.next++
	a.ID = f.next
	f.items = append(f.items, a)
	f.created = append(f.created, a)
	return a, nil
}

func (f *fakeAddresses) Update(_ context.Context, id int64, a entity.Address) (entity.Address, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i] = a
		}
	}
	return a, nil
}

func (f *fakeAddresses) Delete(_ context.Context, id int64) error {
	kept := f.items[:0]
	for _, a := range f.items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeAddresses) SetDefault(_ context.Context, id int64) (entity.Address, error) {
	var out entity.Address
	for i := range f.items {
		f.items[i].Default = f.items[i].ID == id
		if f.items[i].Default {
			out = f.items[i]
		}
	}
	return out, nil
}

func (f *fakeAddresses) Default(context.Context) (entity.Address, bool, error) {
	for _, a := range f.items {
		if a.Default {
			return a, true, nil
		}
	}
	return entity.Address{}, false, nil
}

type fakeOrders struct {
	checkoutFn func(entity.CheckoutRequest) (entity.Order, error)
	mine       []entity.Order
	calls      int
}

func (f *fakeOrders) Checkout(_ context.Context, r entity.CheckoutRequest) (entity.Order, error) {
	f.calls++
	return f.checkoutFn(r)
}

func (f *fakeOrders) Mine(context.Context) ([]entity.Order, error) { return f.mine, nil }

func (f *fakeOrders) Get(_ context.Context, id int64) (entity.Order, error) {
	for _, o := range f.mine {
		if o.ID == id {
			return o, nil
		}
	}
	return entity.Order{}, apiErr{"Pedido no encontrado"}
}

// pagedStore is a generic in-memory admin resource.
type pagedStore[T, D any] struct {
	rows      []T
	build     func(id int64, d D) T
	idOf      func(T) int64
	next      int64
	lists     int
	deletes   int
	deleteErr error
}

func (p *pagedStore[T, D]) List(_ context.Context, pr entity.PageRequest) (entity.Page[T], error) {
	p.lists++
	size := pr.Size
	if size == 0 {
		size = 10
	}
	start := pr.Page * size
	end := start + size
	if start > len(p.rows) {
		start = len(p.rows)
	}
	if end > len(p.rows) {
		end = len(p.rows)
	}
	pages := (len(p.rows) + size - 1) / size
	return entity.Page[T]{Content: append([]T(nil), p.rows[start:end]...), TotalElements: int64(len(p.rows)),
		TotalPages: pages, Number: pr.Page, Size: size}, nil
}

func (p *pagedStore[T, D]) Create(_ context.Context, d D) (T, error) {
	p.next++
	t := p.build(p.next, d)
	p.rows = append(p.rows, t)
	return t, nil
}

func (p *pagedStore[T, D]) Update(_ context.Context, id int64, d D) (T, error) {
	t := p.build(id, d)
	for i := range p.rows {
		if p.idOf(p.rows[i]) == id {
			p.rows[i] = t
		}
	}
	return t, nil
}

func (p *pagedStore[T, D]) Delete(_ context.Context, id int64) error {
	p.deletes++
	if p.deleteErr != nil {
		return p.deleteErr
	}
	kept := p.rows[:0]
	for _, r := range p.rows {
		if p.idOf(r) != id {
			kept = append(kept, r)
		}
	}
	p.rows = kept
	return nil
}

type fakeAdminCategories struct {
	*pagedStore[entity.Category, entity.CategoryDraft]
	activeCalls int
}

func newFakeAdminCategories(rows ...entity.Category) *fakeAdminCategories {
	return &fakeAdminCategories{pagedStore: &pagedStore[entity.Category, entity.CategoryDraft]{
		rows: rows,
		next: 100,
		idOf: categoryID,
		build: func(id int64, d entity.CategoryDraft) entity.Category {
			return entity.Category{ID: id, Name: d.Name, Description: d.Description, Active: d.Active}
		},
	}}
}

func (f *fakeAdminCategories) SetActive(_ context.Context, id int64, active bool) (entity.Category, error) {
	f.activeCalls++
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Active = active
			return f.rows[i], nil
		}
	}
	return entity.Category{}, apiErr{"Categoría no encontrada"}
}

func (f *fakeAdminCategories) Count(context.Context) (int64, error) { return int64(len(f.rows)), nil }

type fakeAdminProducts struct {
	*pagedStore[entity.Product, entity.ProductDraft]
	variants     map[int64][]entity.Variant
	units        map[int64][]entity.SaleUnit
	lastVariant  entity.VariantDraft
	lastSaleUnit entity.SaleUnitDraft
}

func newFakeAdminProducts(rows ...entity.Product) *fakeAdminProducts {
	return &fakeAdminProducts{
		pagedStore: &pagedStore[entity.Product, entity.ProductDraft]{
			rows: rows,
			next: 100,
			idOf: productID,
			build: func(id int64, d entity.ProductDraft) entity.Product {
				return entity.Product{ID: id, Name: d.Name, Brand: d.Brand, CategoryID: d.CategoryID, Active: d.Active}
			},
		},
		variants: map[int64][]entity.Variant{},
		units:    map[int64][]entity.SaleUnit{},
	}
}

func (f *fakeAdminProducts) Variants(_ context.Context, pid int64) ([]entity.Variant, error) {
	return f.variants[pid], nil
}

func (f *fakeAdminProducts) CreateVariant(_ context.Context, d entity.VariantDraft) (entity.Variant, error) {
	f.lastVariant = d
	v := entity.Variant{ID: int64(len(f.variants[d.ProductID]) + 1), Name: d.Name, ProductID: d.ProductID}
	f.variants[d.ProductID] = append(f.variants[d.ProductID], v)
	return v, nil
}

func (f *fakeAdminProducts) UpdateVariant(_ context.Context, id int64, d entity.VariantDraft) (entity.Variant, error) {
	f.lastVariant = d
	return entity.Variant{ID: id, Name: d.Name}, nil
}

func (f *fakeAdminProducts) DeleteVariant(context.Context, int64) error { return nil }

func (f *fakeAdminProducts) SaleUnits(_ context.Context, vid int64) ([]entity.SaleUnit, error) {
	return f.units[vid], nil
}

func (f *fakeAdminProducts) CreateSaleUnit(_ context.Context, d entity.SaleUnitDraft) (entity.SaleUnit, error) {
	f.lastSaleUnit = d
	u := entity.SaleUnit{ID: int64(len(f.units[d.VariantID]) + 1), SKU: d.SKU, Price: d.Price, VariantID: d.VariantID}
	f.units[d.VariantID] = append(f.units[d.VariantID], u)
	return u, nil
}

func (f *fakeAdminProducts) UpdateSaleUnit(_ context.Context, id int64, d entity.SaleUnitDraft) (entity.SaleUnit, error) {
	f.lastSaleUnit = d
	return entity.SaleUnit{ID: id, SKU: d.SKU}, nil
}

func (f *fakeAdminProducts) DeleteSaleUnit(context.Context, int64) error { return nil }

type fakeAdminUsers struct {
	users    []entity.User
	roleSet  map[int64]entity.Role
	enabled  map[int64]bool
	password map[int64]string
}

func newFakeAdminUsers(users ...entity.User) *fakeAdminUsers {
	return &fakeAdminUsers{users: users, roleSet: map[int64]entity.Role{}, enabled: map[int64]bool{}, password: map[int64]string{}}
}

func (f *fakeAdminUsers) List(_ context.Context, pr entity.PageRequest) (entity.Page[entity.User], error) {
	return entity.Page[entity.User]{Content: f.users, TotalElements: int64(len(f.users)), TotalPages: 1, Number: pr.Page}, nil
}

func (f *fakeAdminUsers) All(context.Context) ([]entity.User, error) { return f.users, nil }

func (f *fakeAdminUsers) SetRole(_ context.Context, id int64, r entity.Role) (entity.User, error) {
	f.roleSet[id] = r
	return entity.User{ID: id, Role: r}, nil
}

func (f *fakeAdminUsers) SetEnabled(_ context.Context, id int64, e bool) (entity.User, error) {
	f.enabled[id] = e
	return entity.User{ID: id, Enabled: e}, nil
}

func (f *fakeAdminUsers) ResetPassword(_ context.Context, id int64, pw string) error {
	f.password[id] = pw
	return nil
}

func (f *fakeAdminUsers) Delete(context.Context, int64) error { return nil }

type fakeAdminOrders struct {
	orders  []entity.Order
	status  map[int64]entity.OrderStatus
	info    map[int64]entity.ShippingInfo
	infoErr error
}

func newFakeAdminOrders(orders ...entity.Order) *fakeAdminOrders {
	return &fakeAdminOrders{orders: orders, status: map[int64]entity.OrderStatus{}, info: map[int64]entity.ShippingInfo{}}
}

func (f *fakeAdminOrders) List(_ context.Context, pr entity.PageRequest) (entity.Page[entity.Order], error) {
	return entity.Page[entity.Order]{Content: f.orders, TotalElements: int64(len(f.orders)), TotalPages: 1, Number: pr.Page}, nil
}

func (f *fakeAdminOrders) All(context.Context) ([]entity.Order, error) {
	return append([]entity.Order(nil), f.orders...), nil
}

func (f *fakeAdminOrders) Get(_ context.Context, id int64) (entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entity.Order{}, apiErr{"Pedido no encontrado"}
}

func (f *fakeAdminOrders) ByStatus(_ context.Context, s entity.OrderStatus) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if o.Status == s {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeAdminOrders) SetStatus(_ context.Context, id int64, s entity.OrderStatus) (entity.Order, error) {
	f.status[id] = s
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = s
		}
	}
	return entity.Order{ID: id, Status: s}, nil
}

func (f *fakeAdminOrders) UpdateInfo(_ context.Context, id int64, i entity.ShippingInfo) (entity.Order, error) {
	if f.infoErr != nil {
		return entity.Order{}, f.infoErr
	}
	f.info[id] = i
	return entity.Order{ID: id}, nil
}

func (f *fakeAdminOrders) Delete(context.Context, int64) error { return nil }

type fakeImages struct {
	uploaded []Upload
}

func (f *fakeImages) UploadMain(_ context.Context, _ int64, u Upload) (entity.ProductImages, error) {
	f.uploaded = append(f.uploaded, u)
	return entity.ProductImages{Main: "/uploads/main.png", Thumbnail: "/uploads/thumb.png"}, nil
}

func (f *fakeImages) DeleteMain(context.Context, int64) error { return nil }

func (f *fakeImages) UploadGallery(_ context.Context, _ int64, u Upload) (entity.ProductImages, error) {
	f.uploaded = append(f.uploaded, u)
	return entity.ProductImages{Gallery: []string{"/uploads/g1.png"}}, nil
}

func (f *fakeImages) DeleteGallery(context.Context, int64, string) (entity.ProductImages, error) {
	return entity.ProductImages{}, nil
}
