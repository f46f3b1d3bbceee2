package usecase

import (
	"context"
	"io"

	"github.com/giovannicg/INMEDT/internal/entity"
)

// TokenStore persists the bearer token of one browser session.
// Get returns "" and no error when nothing is stored.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Navigator issues a client-side redirect to an app path.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}

// Confirmer asks the user to confirm a destructive action. It blocks until
// the user answers.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, msg OrderPlacedMsg) error
}

type AuthAPI interface {
	Login(ctx context.Context, req entity.LoginRequest) (entity.AuthResponse, error)
	Register(ctx context.Context, req entity.RegisterRequest) (entity.AuthResponse, error)
	GoogleLogin(ctx context.Context, req entity.GoogleLoginRequest) (entity.AuthResponse, error)
	Me(ctx context.Context) (entity.AuthResponse, error)
}

type CatalogAPI interface {
	Products(ctx context.Context, pr entity.PageRequest) (entity.Page[entity.Product], error)
	Search(ctx context.Context, q string, pr entity.PageRequest) (entity.Page[entity.Product], error)
	ByCategory(ctx context.Context, categoryID int64, pr entity.PageRequest) (entity.Page[entity.Product], error)
	ByBrand(ctx context.Context, brand string, pr entity.PageRequest) (entity.Page[entity.Product], error)
	Product(ctx context.Context, id int64) (entity.Product, error)
	Categories(ctx context.Context) ([]entity.Category, error)
	Category(ctx context.Context, id int64) (entity.Category, error)
}

// CartAPI mutations answer with the full server cart.
type CartAPI interface {
	Get(ctx context.Context) (entity.Cart, error)
	AddItem(ctx context.Context, req entity.AddCartItemRequest) (entity.Cart, error)
	UpdateItem(ctx context.Context, itemID int64, req entity.UpdateCartItemRequest) (entity.Cart, error)
	RemoveItem(ctx context.Context, itemID int64) (entity.Cart, error)
	Clear(ctx context.Context) (entity.Cart, error)
}

type FavoritesAPI interface {
	List(ctx context.Context) ([]entity.Favorite, error)
	Add(ctx context.Context, productID int64) (entity.Favorite, error)
	Remove(ctx context.Context, productID int64) error
	Toggle(ctx context.Context, productID int64) (entity.FavoriteToggle, error)
	Check(ctx context.Context, productID int64) (bool, error)
	CountFor(ctx context.Context, productID int64) (int64, error)
}

type AddressAPI interface {
	List(ctx context.Context) ([]entity.Address, error)
	Create(ctx context.Context, a entity.Address) (entity.Address, error)
	Update(ctx context.Context, id int64, a entity.Address) (entity.Address, error)
	Delete(ctx context.Context, id int64) error
	SetDefault(ctx context.Context, id int64) (entity.Address, error)
	Default(ctx context.Context) (entity.Address, bool, error)
}

type OrderAPI interface {
	Checkout(ctx context.Context, req entity.CheckoutRequest) (entity.Order, error)
	Mine(ctx context.Context) ([]entity.Order, error)
	Get(ctx context.Context, id int64) (entity.Order, error)
}

// AdminResource is the paged CRUD contract every admin screen drives.
type AdminResource[T, D any] interface {
	List(ctx context.Context, pr entity.PageRequest) (entity.Page[T], error)
	Create(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id int64, draft D) (T, error)
	Delete(ctx context.Context, id int64) error
}

type AdminCategoryAPI interface {
	AdminResource[entity.Category, entity.CategoryDraft]
	SetActive(ctx context.Context, id int64, active bool) (entity.Category, error)
	Count(ctx context.Context) (int64, error)
}

type AdminProductAPI interface {
	AdminResource[entity.Product, entity.ProductDraft]
	Variants(ctx context.Context, productID int64) ([]entity.Variant, error)
	CreateVariant(ctx context.Context, d entity.VariantDraft) (entity.Variant, error)
	UpdateVariant(ctx context.Context, id int64, d entity.VariantDraft) (entity.Variant, error)
	DeleteVariant(ctx context.Context, id int64) error
	SaleUnits(ctx context.Context, variantID int64) ([]entity.SaleUnit, error)
	CreateSaleUnit(ctx context.Context, d entity.SaleUnitDraft) (entity.SaleUnit, error)
	UpdateSaleUnit(ctx context.Context, id int64, d entity.SaleUnitDraft) (entity.SaleUnit, error)
	DeleteSaleUnit(ctx context.Context, id int64) error
}

type AdminUserAPI interface {
	List(ctx context.Context, pr entity.PageRequest) (entity.Page[entity.User], error)
	All(ctx context.Context) ([]entity.User, error)
	SetRole(ctx context.Context, id int64, role entity.Role) (entity.User, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) (entity.User, error)
	ResetPassword(ctx context.Context, id int64, password string) error
	Delete(ctx context.Context, id int64) error
}

type AdminOrderAPI interface {
	List(ctx context.Context, pr entity.PageRequest) (entity.Page[entity.Order], error)
	All(ctx context.Context) ([]entity.Order, error)
	Get(ctx context.Context, id int64) (entity.Order, error)
	ByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error)
	SetStatus(ctx context.Context, id int64, status entity.OrderStatus) (entity.Order, error)
	UpdateInfo(ctx context.Context, id int64, info entity.ShippingInfo) (entity.Order, error)
	Delete(ctx context.Context, id int64) error
}

// Upload is an image file picked by the admin.
type Upload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

type ImageAPI interface {
	UploadMain(ctx context.Context, productID int64, file Upload) (entity.ProductImages, error)
	DeleteMain(ctx context.Context, productID int64) error
	UploadGallery(ctx context.Context, productID int64, file Upload) (entity.ProductImages, error)
	DeleteGallery(ctx context.Context, productID int64, filename string) (entity.ProductImages, error)
}
