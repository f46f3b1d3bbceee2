// Package pricing holds the one formula used for both the cart estimate and
// the checkout summary.
package pricing

import (
	"strings"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/shopspring/decimal"
)

var (
	TaxRate           = decimal.RequireFromString("0.15")
	FreeShippingFrom  = decimal.RequireFromString("40.00")
	CapitalShipping   = decimal.RequireFromString("2.99")
	OutOfTownShipping = decimal.RequireFromString("3.99")
)

// Destination is where the order ships. Zero value means "unknown yet".
type Destination struct {
	City   string
	Sector string
}

// InCapital classifies by sector first; a bare city of Quito with no sector
// still counts.
func (d Destination) InCapital() bool {
	if strings.TrimSpace(d.Sector) != "" {
		return entity.HasCapitalFee(d.Sector)
	}
	return strings.EqualFold(strings.TrimSpace(d.City), entity.Capital)
}

type Breakdown struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"iva"`
	Shipping        decimal.Decimal `json:"costoEnvio"`
	Total           decimal.Decimal `json:"total"`
	FreeShipping    bool            `json:"envioGratis"`
	FreeShippingGap decimal.Decimal `json:"faltaParaEnvioGratis"`
	// Estimated is set when the destination was assumed.
	Estimated bool `json:"estimado"`
}

// Quote prices a subtotal for a known destination.
func Quote(subtotal decimal.Decimal, dest Destination) Breakdown {
	subtotal = subtotal.Round(2)
	b := Breakdown{
		Subtotal: subtotal,
		Tax:      Tax(subtotal),
	}
	if subtotal.GreaterThanOrEqual(FreeShippingFrom) {
		b.FreeShipping = true
		b.Shipping = decimal.Zero
		b.FreeShippingGap = decimal.Zero
	} else {
		b.FreeShippingGap = FreeShippingFrom.Sub(subtotal)
		if dest.InCapital() {
			b.Shipping = CapitalShipping
		} else {
			b.Shipping = OutOfTownShipping
		}
	}
	b.Total = subtotal.Add(b.Tax).Add(b.Shipping)
	return b
}

// Estimate is the cart-screen figure: destination unknown, capital assumed.
func Estimate(subtotal decimal.Decimal) Breakdown {
	b := Quote(subtotal, Destination{City: entity.Capital})
	b.Estimated = true
	return b
}

// Tax rounds half-up to cents.
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate).Round(2)
}
