package entity

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDIENTE"
	StatusConfirmed  OrderStatus = "CONFIRMADO"
	StatusProcessing OrderStatus = "EN_PROCESO"
	StatusShipped    OrderStatus = "ENVIADO"
	StatusDelivered  OrderStatus = "ENTREGADO"
	StatusCancelled  OrderStatus = "CANCELADO"
)

var orderStatuses = []OrderStatus{
	StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled,
}

func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

func (s OrderStatus) Valid() bool {
	for _, v := range orderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Terminal statuses accept no further transitions on the backend.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusConfirmed:
		return "Confirmed"
	case StatusProcessing:
		return "In process"
	case StatusShipped:
		return "Shipped"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

type OrderItem struct {
	ID        int64           `json:"id"`
	Quantity  int             `json:"cantidad" validate:"gte=1"`
	UnitPrice decimal.Decimal `json:"precioUnitario" validate:"gte=0"`
	Subtotal  decimal.Decimal `json:"subtotal" validate:"gte=0"`
	SaleUnit  SaleUnit        `json:"unidadVenta"`
}

type Order struct {
	ID              int64           `json:"id" validate:"required"`
	Number          string          `json:"numeroPedido"`
	Items           []OrderItem     `json:"items" validate:"dive"`
	Status          OrderStatus     `json:"estado" validate:"required"`
	ShippingAddress string          `json:"direccionEnvio"`
	Phone           string          `json:"telefonoContacto"`
	City            string          `json:"ciudad"`
	Sector          string          `json:"sector"`
	Notes           string          `json:"notas"`
	Subtotal        decimal.Decimal `json:"subtotal" validate:"gte=0"`
	ShippingCost    decimal.Decimal `json:"costoEnvio" validate:"gte=0"`
	Tax             decimal.Decimal `json:"iva" validate:"gte=0"`
	Total           decimal.Decimal `json:"total" validate:"gte=0"`
	UserEmail       string          `json:"userEmail,omitempty"`
	UserName        string          `json:"userNombre,omitempty"`
	CreatedAt       Timestamp       `json:"createdAt"`
	UpdatedAt       Timestamp       `json:"updatedAt"`
}

// CheckoutRequest is the body of the order placement call.
type CheckoutRequest struct {
	ShippingAddress string `json:"direccionEnvio"`
	Phone           string `json:"telefonoContacto"`
	City            string `json:"ciudad"`
	Sector          string `json:"sector"`
	Notes           string `json:"notas"`
}

// ShippingInfo is what an admin may rewrite on an existing order.
type ShippingInfo struct {
	ShippingAddress string `json:"direccionEnvio"`
	Phone           string `json:"telefonoContacto"`
	Notes           string `json:"notas"`
	City            string `json:"ciudad"`
	Sector          string `json:"sector"`
}
