package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderPlacedMsg is published after a successful checkout.
type OrderPlacedMsg struct {
	EventID   string          `json:"eventId"`
	OrderID   int64           `json:"orderId"`
	Number    string          `json:"numeroPedido"`
	UserEmail string          `json:"userEmail"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
	City      string          `json:"ciudad"`
	Sector    string          `json:"sector"`
	PlacedAt  time.Time       `json:"placedAt"`
}
