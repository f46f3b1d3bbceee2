package entity

import "github.com/shopspring/decimal"

// Admin modal drafts. Validation tags mirror the backend request DTOs so a
// draft that fails here would also be rejected server-side.

type ProductDraft struct {
	Name        string `json:"nombre" validate:"required,max=200"`
	Description string `json:"descripcion" validate:"max=1000"`
	Brand       string `json:"marca" validate:"max=100"`
	CategoryID  int64  `json:"categoriaId" validate:"required"`
	Active      bool   `json:"activo"`
}

type VariantDraft struct {
	Name        string `json:"nombre" validate:"required,max=200"`
	Description string `json:"descripcion" validate:"max=500"`
	ProductID   int64  `json:"productoId" validate:"required"`
	Active      bool   `json:"activa"`
}

type SaleUnitDraft struct {
	SKU         string          `json:"sku" validate:"required,max=50"`
	Description string          `json:"descripcion" validate:"required,max=200"`
	Price       decimal.Decimal `json:"precio" validate:"gt=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	VariantID   int64           `json:"varianteId" validate:"required"`
	Active      bool            `json:"activa"`
}

type CategoryDraft struct {
	Name        string `json:"nombre" validate:"required,max=100"`
	Description string `json:"descripcion" validate:"max=500"`
	Active      bool   `json:"activa"`
}

// UserDraft is the editable part of a user row: role and enabled flag.
type UserDraft struct {
	Role    Role `json:"role" validate:"required,oneof=USER ADMIN"`
	Enabled bool `json:"enabled"`
}

// OrderDraft is a status transition plus the shipping block.
type OrderDraft struct {
	Status OrderStatus  `json:"estado" validate:"required,oneof=PENDIENTE CONFIRMADO EN_PROCESO ENVIADO ENTREGADO CANCELADO"`
	Info   ShippingInfo `json:"info"`
}
