package entity

import "github.com/shopspring/decimal"

// SaleUnit is the purchasable SKU. Cart lines embed the flattened form
// (VariantName, ProductName, Brand) instead of the nested tree.
type SaleUnit struct {
	ID          int64           `json:"id" validate:"required"`
	SKU         string          `json:"sku"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio" validate:"gte=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Active      bool            `json:"activa"`
	Available   bool            `json:"disponible"`
	VariantID   int64           `json:"varianteId,omitempty"`
	VariantName string          `json:"varianteNombre,omitempty"`
	ProductName string          `json:"productoNombre,omitempty"`
	Brand       string          `json:"marca,omitempty"`
}

// InStock reports whether qty units can be ordered.
func (u SaleUnit) InStock(qty int) bool {
	return qty >= 1 && qty <= u.Stock
}

type Variant struct {
	ID          int64      `json:"id" validate:"required"`
	Name        string     `json:"nombre"`
	Description string     `json:"descripcion"`
	Active      bool       `json:"activa"`
	ProductID   int64      `json:"productoId,omitempty"`
	SaleUnits   []SaleUnit `json:"unidadesVenta" validate:"dive"`
}

type Product struct {
	ID           int64     `json:"id" validate:"required"`
	Name         string    `json:"nombre" validate:"required"`
	Description  string    `json:"descripcion"`
	Brand        string    `json:"marca"`
	CategoryID   int64     `json:"categoriaId,omitempty"`
	CategoryName string    `json:"categoriaNombre"`
	Active       bool      `json:"activo"`
	MainImage    string    `json:"imagenPrincipal,omitempty"`
	Thumbnail    string    `json:"imagenThumbnail,omitempty"`
	Gallery      []string  `json:"imagenesGaleria,omitempty"`
	Variants     []Variant `json:"variantes" validate:"dive"`
	CreatedAt    Timestamp `json:"createdAt"`
}

// SaleUnit looks a unit up across all variants.
func (p Product) SaleUnit(id int64) (SaleUnit, bool) {
	for _, v := range p.Variants {
		for _, u := range v.SaleUnits {
			if u.ID == id {
				return u, true
			}
		}
	}
	return SaleUnit{}, false
}

// MinPrice is the cheapest active unit, used for "from $x" labels.
func (p Product) MinPrice() (decimal.Decimal, bool) {
	var (
		min   decimal.Decimal
		found bool
	)
	for _, v := range p.Variants {
		for _, u := range v.SaleUnits {
			if !u.Active {
				continue
			}
			if !found || u.Price.LessThan(min) {
				min, found = u.Price, true
			}
		}
	}
	return min, found
}

type Category struct {
	ID           int64  `json:"id" validate:"required"`
	Name         string `json:"nombre" validate:"required"`
	Description  string `json:"descripcion"`
	Active       bool   `json:"activa"`
	ProductCount int    `json:"cantidadProductos"`
	// older backend builds only fill this one
	ProductsCount int `json:"productosCount"`
}

// HasProducts blocks deletion on the admin screen.
func (c Category) HasProducts() bool { return c.ProductCount > 0 || c.ProductsCount > 0 }

// ProductImages is what the image endpoints answer with.
type ProductImages struct {
	Main      string   `json:"imagenPrincipal,omitempty"`
	Thumbnail string   `json:"imagenThumbnail,omitempty"`
	Gallery   []string `json:"imagenesGaleria,omitempty"`
}
