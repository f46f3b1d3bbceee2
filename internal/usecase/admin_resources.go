package usecase

import (
	"context"
	"errors"

	"github.com/giovannicg/INMEDT/internal/entity"
)

var ErrCategoryHasProducts = errors.New("Cannot delete a category that has associated products")

// variantResource scopes variant CRUD to one product. The backend answers
// with a plain list, served here as a single page.
type variantResource struct {
	api       AdminProductAPI
	productID int64
}

func (r variantResource) List(ctx context.Context, _ entity.PageRequest) (entity.Page[entity.Variant], error) {
	list, err := r.api.Variants(ctx, r.productID)
	if err != nil {
		return entity.Page[entity.Variant]{}, err
	}
	return singlePage(list), nil
}

func (r variantResource) Create(ctx context.Context, d entity.VariantDraft) (entity.Variant, error) {
	d.ProductID = r.productID
	return r.api.CreateVariant(ctx, d)
}

func (r variantResource) Update(ctx context.Context, id int64, d entity.VariantDraft) (entity.Variant, error) {
	d.ProductID = r.productID
	return r.api.UpdateVariant(ctx, id, d)
}

func (r variantResource) Delete(ctx context.Context, id int64) error {
	return r.api.DeleteVariant(ctx, id)
}

type saleUnitResource struct {
	api       AdminProductAPI
	variantID int64
}

func (r saleUnitResource) List(ctx context.Context, _ entity.PageRequest) (entity.Page[entity.SaleUnit], error) {
	list, err := r.api.SaleUnits(ctx, r.variantID)
	if err != nil {
		return entity.Page[entity.SaleUnit]{}, err
	}
	return singlePage(list), nil
}

func (r saleUnitResource) Create(ctx context.Context, d entity.SaleUnitDraft) (entity.SaleUnit, error) {
	d.VariantID = r.variantID
	return r.api.CreateSaleUnit(ctx, d)
}

func (r saleUnitResource) Update(ctx context.Context, id int64, d entity.SaleUnitDraft) (entity.SaleUnit, error) {
	d.VariantID = r.variantID
	return r.api.UpdateSaleUnit(ctx, id, d)
}

func (r saleUnitResource) Delete(ctx context.Context, id int64) error {
	return r.api.DeleteSaleUnit(ctx, id)
}

// userResource edits role and enabled flag; accounts are only created by
// self-registration.
type userResource struct {
	api AdminUserAPI
}

func (r userResource) List(ctx context.Context, pr entity.PageRequest) (entity.Page[entity.User], error) {
	return r.api.List(ctx, pr)
}

func (r userResource) Create(context.Context, entity.UserDraft) (entity.User, error) {
	return entity.User{}, ErrUnsupported
}

func (r userResource) Update(ctx context.Context, id int64, d entity.UserDraft) (entity.User, error) {
	if _, err := r.api.SetRole(ctx, id, d.Role); err != nil {
		return entity.User{}, err
	}
	return r.api.SetEnabled(ctx, id, d.Enabled)
}

func (r userResource) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, id)
}

// orderResource applies a status change and then the shipping block.
type orderResource struct {
	api AdminOrderAPI
}

func (r orderResource) List(ctx context.Context, pr entity.PageRequest) (entity.Page[entity.Order], error) {
	return r.api.List(ctx, pr)
}

func (r orderResource) Create(context.Context, entity.OrderDraft) (entity.Order, error) {
	return entity.Order{}, ErrUnsupported
}

func (r orderResource) Update(ctx context.Context, id int64, d entity.OrderDraft) (entity.Order, error) {
	if _, err := r.api.SetStatus(ctx, id, d.Status); err != nil {
		return entity.Order{}, err
	}
	return r.api.UpdateInfo(ctx, id, d.Info)
}

func (r orderResource) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, id)
}

func singlePage[T any](list []T) entity.Page[T] {
	pages := 0
	if len(list) > 0 {
		pages = 1
	}
	return entity.Page[T]{Content: list, TotalElements: int64(len(list)), TotalPages: pages, Size: len(list)}
}

func productID(p entity.Product) int64   { return p.ID }
func categoryID(c entity.Category) int64 { return c.ID }
func variantID(v entity.Variant) int64   { return v.ID }
func saleUnitID(u entity.SaleUnit) int64 { return u.ID }
func userID(u entity.User) int64         { return u.ID }
func orderID(o entity.Order) int64       { return o.ID }

func productDraft(p entity.Product) entity.ProductDraft {
	return entity.ProductDraft{Name: p.Name, Description: p.Description, Brand: p.Brand, CategoryID: p.CategoryID, Active: p.Active}
}

func categoryDraft(c entity.Category) entity.CategoryDraft {
	return entity.CategoryDraft{Name: c.Name, Description: c.Description, Active: c.Active}
}

func variantDraft(v entity.Variant) entity.VariantDraft {
	return entity.VariantDraft{Name: v.Name, Description: v.Description, ProductID: v.ProductID, Active: v.Active}
}

func saleUnitDraft(u entity.SaleUnit) entity.SaleUnitDraft {
	return entity.SaleUnitDraft{SKU: u.SKU, Description: u.Description, Price: u.Price, Stock: u.Stock, VariantID: u.VariantID, Active: u.Active}
}

func userDraft(u entity.User) entity.UserDraft {
	return entity.UserDraft{Role: u.Role, Enabled: u.Enabled}
}

func orderDraft(o entity.Order) entity.OrderDraft {
	return entity.OrderDraft{Status: o.Status, Info: entity.ShippingInfo{
		ShippingAddress: o.ShippingAddress,
		Phone:           o.Phone,
		Notes:           o.Notes,
		City:            o.City,
		Sector:          o.Sector,
	}}
}

func guardCategoryDelete(c entity.Category) error {
	if c.HasProducts() {
		return ErrCategoryHasProducts
	}
	return nil
}
