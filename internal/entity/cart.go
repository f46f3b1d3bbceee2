package entity

import "github.com/shopspring/decimal"

type CartItem struct {
	ID        int64           `json:"id" validate:"required"`
	Quantity  int             `json:"cantidad" validate:"gte=1"`
	UnitPrice decimal.Decimal `json:"precioUnitario" validate:"gte=0"`
	Subtotal  decimal.Decimal `json:"subtotal" validate:"gte=0"`
	SaleUnit  SaleUnit        `json:"unidadVenta"`
}

// Cart is the server's snapshot of the user's cart. Total is authoritative.
type Cart struct {
	ID        int64           `json:"id"`
	Total     decimal.Decimal `json:"total" validate:"gte=0"`
	Items     []CartItem      `json:"items" validate:"dive"`
	CreatedAt Timestamp       `json:"createdAt"`
	UpdatedAt Timestamp       `json:"updatedAt"`
}

type AddCartItemRequest struct {
	SaleUnitID int64 `json:"unidadVentaId"`
	Quantity   int   `json:"cantidad"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"cantidad"`
}
