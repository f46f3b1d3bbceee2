package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	cats     *fakeAdminCategories
	products *fakeAdminProducts
	users    *fakeAdminUsers
	orders   *fakeAdminOrders
	confirm  *fixedConfirm
	admin    *Admin
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		cats: newFakeAdminCategories(
			entity.Category{ID: 1, Name: "Guantes", Active: true, ProductCount: 4},
			entity.Category{ID: 2, Name: "Vacía", Active: true},
		),
		products: newFakeAdminProducts(entity.Product{ID: 1, Name: "Guantes de nitrilo", CategoryID: 1}),
		users:    newFakeAdminUsers(entity.User{ID: 1, Email: "a@inmedt.ec", Role: entity.RoleUser, Enabled: true}),
		orders:   newFakeAdminOrders(),
		confirm:  &fixedConfirm{answer: true},
	}
	f.admin = NewAdmin(AdminDeps{
		Categories: f.cats,
		Products:   f.products,
		Users:      f.users,
		Orders:     f.orders,
		Images:     &fakeImages{},
		Confirm:    f.confirm,
	})
	return f
}

func TestDeleteCategoryWithProductsIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	require.NoError(t, f.admin.Categories.Load(ctx, 0))

	res := f.admin.Categories.Delete(ctx, 1)

	assert.False(t, res.Success)
	assert.Equal(t, ErrCategoryHasProducts.Error(), res.Message)
	assert.Zero(t, f.cats.deletes)
	assert.Empty(t, f.confirm.prompts)
}

func TestDeleteCategoryBackendRejectionIsVerbatim(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	f.cats.deleteErr = apiErr{"No se puede eliminar la categoría porque tiene productos asociados"}

	// row not loaded, so only the backend can refuse
	res := f.admin.Categories.Delete(ctx, 1)

	assert.False(t, res.Success)
	assert.Equal(t, "No se puede eliminar la categoría porque tiene productos asociados", res.Message)
}

func TestDeleteAsksForConfirmationThenRefetches(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	require.NoError(t, f.admin.Categories.Load(ctx, 0))
	lists := f.cats.lists

	f.confirm.answer = false
	res := f.admin.Categories.Delete(ctx, 2)
	assert.False(t, res.Success)
	assert.Zero(t, f.cats.deletes)

	f.confirm.answer = true
	res = f.admin.Categories.Delete(ctx, 2)
	require.True(t, res.Success)
	assert.Len(t, f.confirm.prompts, 2)
	assert.Equal(t, lists+1, f.cats.lists)
	assert.Len(t, f.admin.Categories.Page().Content, 1)
}

func TestScreenCreateAndEdit(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	s := f.admin.Categories
	require.NoError(t, s.Load(ctx, 0))

	require.NoError(t, s.OpenCreate(entity.CategoryDraft{Active: true}))
	res := s.Submit(ctx)
	assert.False(t, res.Success)
	assert.Equal(t, "nombre is required", res.Message)

	s.SetDraft(entity.CategoryDraft{Name: "Jeringas", Active: true})
	require.True(t, s.Submit(ctx).Success)
	assert.False(t, s.Modal().Open)
	assert.Len(t, s.Page().Content, 3)

	require.NoError(t, s.OpenEdit(2))
	assert.Equal(t, "Vacía", s.Modal().Draft.Name)
	s.SetDraft(entity.CategoryDraft{Name: "Descartables"})
	require.True(t, s.Submit(ctx).Success)
	assert.Equal(t, "Descartables", s.Page().Content[1].Name)

	assert.ErrorIs(t, s.OpenEdit(999), ErrRowNotLoaded)
}

func TestUsersAndOrdersCannotBeCreated(t *testing.T) {
	f := newAdminFixture()
	assert.ErrorIs(t, f.admin.Users.OpenCreate(entity.UserDraft{}), ErrUnsupported)
	assert.ErrorIs(t, f.admin.Orders.OpenCreate(entity.OrderDraft{}), ErrUnsupported)
	assert.False(t, f.admin.Users.Creatable())
}

func TestUserEditSetsRoleAndStatus(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	require.NoError(t, f.admin.Users.Load(ctx, 0))

	require.NoError(t, f.admin.Users.OpenEdit(1))
	f.admin.Users.SetDraft(entity.UserDraft{Role: entity.RoleAdmin, Enabled: false})
	require.True(t, f.admin.Users.Submit(ctx).Success)

	assert.Equal(t, entity.RoleAdmin, f.users.roleSet[1])
	assert.False(t, f.users.enabled[1])
}

func TestOrderEditSetsStatusAndInfo(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	f.orders.orders = []entity.Order{{ID: 9, Status: entity.StatusPending, City: "Quito", Sector: "Iñaquito"}}
	require.NoError(t, f.admin.Orders.Load(ctx, 0))

	require.NoError(t, f.admin.Orders.OpenEdit(9))
	d := f.admin.Orders.Modal().Draft
	d.Status = entity.StatusShipped
	d.Info.Notes = "Entregar en recepción"
	f.admin.Orders.SetDraft(d)
	require.True(t, f.admin.Orders.Submit(ctx).Success)

	assert.Equal(t, entity.StatusShipped, f.orders.status[9])
	assert.Equal(t, "Entregar en recepción", f.orders.info[9].Notes)
}

func TestOrderEditPartialFailureReloadsPage(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	f.orders.orders = []entity.Order{{ID: 9, Status: entity.StatusPending, City: "Quito", Sector: "Iñaquito"}}
	f.orders.infoErr = apiErr{"El teléfono no puede exceder 20 caracteres"}
	require.NoError(t, f.admin.Orders.Load(ctx, 0))

	require.NoError(t, f.admin.Orders.OpenEdit(9))
	d := f.admin.Orders.Modal().Draft
	d.Status = entity.StatusShipped
	f.admin.Orders.SetDraft(d)
	res := f.admin.Orders.Submit(ctx)

	assert.False(t, res.Success)
	assert.Equal(t, "El teléfono no puede exceder 20 caracteres", res.Message)
	assert.Equal(t, entity.StatusShipped, f.admin.Orders.Page().Content[0].Status)
	assert.True(t, f.admin.Orders.Modal().Open)
}

func TestVariantAndSaleUnitScreensAreScoped(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	vs := f.admin.Variants(1)
	assert.Same(t, vs, f.admin.Variants(1))
	require.NoError(t, vs.OpenCreate(entity.VariantDraft{Name: "Talla M", ProductID: 1}))
	require.True(t, vs.Submit(ctx).Success)
	assert.Equal(t, int64(1), f.products.lastVariant.ProductID)
	assert.Len(t, vs.Page().Content, 1)
	assert.NotSame(t, vs, f.admin.Variants(2))

	us := f.admin.SaleUnits(5)
	require.NoError(t, us.OpenCreate(entity.SaleUnitDraft{SKU: "GUA-M-100", Description: "Caja x100", Price: money("12.50"), Stock: 10, VariantID: 5}))
	require.True(t, us.Submit(ctx).Success)
	assert.Equal(t, int64(5), f.products.lastSaleUnit.VariantID)
	assert.Len(t, us.Page().Content, 1)
}

func TestSetCategoryActiveAndResetPassword(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	require.True(t, f.admin.SetCategoryActive(ctx, 2, false).Success)
	assert.Equal(t, 1, f.cats.activeCalls)

	assert.False(t, f.admin.ResetPassword(ctx, 1, "123").Success)
	assert.Empty(t, f.users.password)
	require.True(t, f.admin.ResetPassword(ctx, 1, "nueva-clave").Success)
	assert.Equal(t, "nueva-clave", f.users.password[1])
}

func TestDashboardAggregates(t *testing.T) {
	f := newAdminFixture()
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		st := entity.StatusPending
		if i%2 == 0 {
			st = entity.StatusDelivered
		}
		f.orders.orders = append(f.orders.orders, entity.Order{
			ID: int64(i + 1), Status: st, Total: money("10.50"),
			CreatedAt: entity.Timestamp{Time: base.Add(time.Duration(i) * time.Hour)},
		})
	}

	v, err := f.admin.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, v.Users)
	assert.Equal(t, int64(1), v.Products)
	assert.Equal(t, 7, v.Orders)
	assert.Equal(t, int64(2), v.Categories)
	assert.True(t, v.Revenue.Equal(money("73.50")))
	assert.Equal(t, 4, v.ByStatus[entity.StatusDelivered])
	require.Len(t, v.RecentOrders, 5)
	assert.Equal(t, int64(7), v.RecentOrders[0].ID)
}

func TestOrdersByStatusRejectsUnknownStatus(t *testing.T) {
	f := newAdminFixture()
	_, err := f.admin.OrdersByStatus(context.Background(), "LOST")
	assert.ErrorIs(t, err, ErrUnsupported)
}
