package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/logging"
	"github.com/giovannicg/INMEDT/internal/pricing"
	"github.com/google/uuid"
)

type Step int

const (
	StepCollectingAddress Step = iota + 1
	StepReviewingOrder
	StepConfirmingPayment
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepCollectingAddress:
		return "address"
	case StepReviewingOrder:
		return "review"
	case StepConfirmingPayment:
		return "payment"
	case StepSubmitted:
		return "submitted"
	}
	return "unknown"
}

// PaymentMethod is the only one offered.
const PaymentMethod = "CASH_ON_DELIVERY"

// Draft is the shipping form of step one.
type Draft struct {
	Address string `json:"direccionEnvio"`
	City    string `json:"ciudad"`
	Sector  string `json:"sector"`
	Phone   string `json:"telefonoContacto"`
	Notes   string `json:"notas"`
}

func (d Draft) complete() bool {
	return strings.TrimSpace(d.Address) != "" &&
		strings.TrimSpace(d.City) != "" &&
		strings.TrimSpace(d.Sector) != ""
}

func (d Draft) destination() pricing.Destination {
	return pricing.Destination{City: d.City, Sector: d.Sector}
}

// Checkout is the three-step wizard. Order status is owned by the backend;
// nothing here enforces transitions after Submitted.
type Checkout struct {
	mu      sync.Mutex
	orders  OrderAPI
	cart    *Cart
	session authenticated
	nav     Navigator
	events  EventPublisher
	step    Step
	draft   Draft
	placed  *entity.Order
}

func NewCheckout(orders OrderAPI, cart *Cart, session authenticated, nav Navigator, events EventPublisher) *Checkout {
	return &Checkout{
		orders:  orders,
		cart:    cart,
		session: session,
		nav:     nav,
		events:  events,
		step:    StepCollectingAddress,
	}
}

// Guard returns where to send the user instead, or "" to proceed.
func (c *Checkout) Guard() string {
	if !c.session.Authenticated() {
		return "/login"
	}
	if c.cart.Empty() && c.Step() != StepSubmitted {
		return "/carrito"
	}
	return ""
}

func (c *Checkout) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

func (c *Checkout) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

func (c *Checkout) Placed() (entity.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.placed == nil {
		return entity.Order{}, false
	}
	return *c.placed, true
}

// Reset starts a fresh wizard.
func (c *Checkout) Reset() {
	c.mu.Lock()
	c.step = StepCollectingAddress
	c.draft = Draft{}
	c.placed = nil
	c.mu.Unlock()
}

// Resume starts over when a placed order is followed by a refilled cart.
// It reports whether the wizard was reset.
func (c *Checkout) Resume() bool {
	if c.Step() != StepSubmitted || c.cart.Empty() {
		return false
	}
	c.Reset()
	return true
}

// SetDraft replaces the shipping form. Only allowed on step one.
func (c *Checkout) SetDraft(d Draft) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step != StepCollectingAddress {
		return rejected("Go back to the address step to change it")
	}
	c.draft = d
	return ok("")
}

// UseAddress fills the draft from a saved address.
func (c *Checkout) UseAddress(a entity.Address) Result {
	return c.SetDraft(Draft{
		Address: a.Line,
		City:    a.City,
		Sector:  a.Sector,
		Phone:   a.Phone,
		Notes:   a.References,
	})
}

func (c *Checkout) Next() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.step {
	case StepCollectingAddress:
		if !c.draft.complete() {
			return rejected("Address, city and sector are required")
		}
		c.step = StepReviewingOrder
	case StepReviewingOrder:
		c.step = StepConfirmingPayment
	case StepConfirmingPayment:
		return rejected("Confirm the order to continue")
	default:
		return rejected("Order already placed")
	}
	return ok("")
}

func (c *Checkout) Back() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.step {
	case StepReviewingOrder, StepConfirmingPayment:
		c.step--
		return ok("")
	case StepSubmitted:
		return rejected("Order already placed")
	}
	return rejected("Already on the first step")
}

// Quote is the authoritative figure for the draft's destination.
func (c *Checkout) Quote() pricing.Breakdown {
	return pricing.Quote(c.cart.Total(), c.Draft().destination())
}

// Submit places the order. On failure the wizard stays on the payment step.
func (c *Checkout) Submit(ctx context.Context) Result {
	c.mu.Lock()
	if c.step != StepConfirmingPayment {
		c.mu.Unlock()
		return rejected("Complete the previous steps first")
	}
	d := c.draft
	c.mu.Unlock()

	order, err := c.orders.Checkout(ctx, entity.CheckoutRequest{
		ShippingAddress: strings.TrimSpace(d.Address),
		Phone:           strings.TrimSpace(d.Phone),
		City:            strings.TrimSpace(d.City),
		Sector:          strings.TrimSpace(d.Sector),
		Notes:           strings.TrimSpace(d.Notes),
	})
	if err != nil {
		return failed(err, "Could not place the order")
	}

	items := c.cart.ItemCount()
	if res := c.cart.Clear(ctx); !res.Success {
		logging.FromCtx(ctx).Warn("cart clear after checkout failed", "msg", res.Message)
	}

	c.mu.Lock()
	c.step = StepSubmitted
	c.placed = &order
	c.mu.Unlock()

	c.publish(ctx, order, items)
	c.nav.Navigate(ctx, "/pedidos")
	return ok("Order " + order.Number + " placed")
}

func (c *Checkout) publish(ctx context.Context, o entity.Order, items int) {
	msg := OrderPlacedMsg{
		EventID:   uuid.NewString(),
		OrderID:   o.ID,
		Number:    o.Number,
		UserEmail: o.UserEmail,
		Total:     o.Total,
		ItemCount: items,
		City:      o.City,
		Sector:    o.Sector,
		PlacedAt:  time.Now().UTC(),
	}
	if err := c.events.PublishOrderPlaced(ctx, msg); err != nil {
		logging.FromCtx(ctx).Warn("publish order placed failed", "order_id", o.ID, "err", err)
	}
}
