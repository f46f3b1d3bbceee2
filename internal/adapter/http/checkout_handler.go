package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/logging"
	"github.com/giovannicg/INMEDT/internal/pricing"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

const checkoutScope = "checkout"

// Locker keeps a session from submitting two checkouts at once.
type Locker interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Unlock(ctx context.Context, scope, key string) error
}

type CheckoutHandler struct {
	lock          Locker
	submitTimeout time.Duration
}

func NewCheckoutHandler(lock Locker, submitTimeout time.Duration) *CheckoutHandler {
	if submitTimeout <= 0 {
		submitTimeout = 15 * time.Second
	}
	return &CheckoutHandler{lock: lock, submitTimeout: submitTimeout}
}

type checkoutView struct {
	Step          string            `json:"paso"`
	StepNumber    int               `json:"numeroPaso"`
	Draft         usecase.Draft     `json:"borrador"`
	Quote         pricing.Breakdown `json:"resumen"`
	Items         []entity.CartItem `json:"items"`
	Addresses     []entity.Address  `json:"direcciones"`
	PaymentMethod string            `json:"metodoPago"`
	Placed        *entity.Order     `json:"pedido,omitempty"`
	Sectors       []string          `json:"sectores"`
}

func checkoutState(sf *usecase.Storefront) checkoutView {
	co := sf.Checkout
	v := checkoutView{
		Step:          co.Step().String(),
		StepNumber:    int(co.Step()),
		Draft:         co.Draft(),
		Quote:         co.Quote(),
		Items:         sf.Cart.Items(),
		Addresses:     sf.Addresses.Items(),
		PaymentMethod: usecase.PaymentMethod,
		Sectors:       entity.QuitoSectors(),
	}
	if o, ok := co.Placed(); ok {
		v.Placed = &o
	}
	return v
}

// guard answers with the redirect when the wizard cannot be shown. A wizard
// left on a placed order restarts once the cart has items again.
func (h *CheckoutHandler) guard(c *gin.Context) (*usecase.Storefront, bool) {
	sf := storefront(c)
	sf.Checkout.Resume()
	to := sf.Checkout.Guard()
	if to == "" {
		return sf, true
	}
	c.Header("Location", to)
	status := http.StatusConflict
	if to == LoginPath {
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": "checkout unavailable", "redirect": to})
	return nil, false
}

// GET /checkout
func (h *CheckoutHandler) Get(c *gin.Context) {
	sf := storefront(c)
	if !sf.Cart.Loaded() {
		sf.Cart.Fetch(reqCtx(c))
	}
	if sf, ok := h.guard(c); ok {
		// prefill from the default address on a fresh wizard
		if sf.Checkout.Step() == usecase.StepCollectingAddress && sf.Checkout.Draft() == (usecase.Draft{}) {
			if a, found := sf.Addresses.Default(); found {
				sf.Checkout.UseAddress(a)
			}
		}
		view(c, checkoutState(sf), nil)
	}
}

// PUT /checkout/draft
func (h *CheckoutHandler) SetDraft(c *gin.Context) {
	sf, ok := h.guard(c)
	if !ok {
		return
	}
	var d usecase.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, "invalid JSON")
		return
	}
	finish(c, sf.Checkout.SetDraft(d), gin.H{"checkout": checkoutState(sf)})
}

// POST /checkout/direccion/:id
func (h *CheckoutHandler) UseAddress(c *gin.Context) {
	sf, ok := h.guard(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	a, found := sf.Addresses.Find(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		return
	}
	finish(c, sf.Checkout.UseAddress(a), gin.H{"checkout": checkoutState(sf)})
}

// POST /checkout/next
func (h *CheckoutHandler) Next(c *gin.Context) {
	sf, ok := h.guard(c)
	if !ok {
		return
	}
	finish(c, sf.Checkout.Next(), gin.H{"checkout": checkoutState(sf)})
}

// POST /checkout/back
func (h *CheckoutHandler) Back(c *gin.Context) {
	sf, ok := h.guard(c)
	if !ok {
		return
	}
	finish(c, sf.Checkout.Back(), gin.H{"checkout": checkoutState(sf)})
}

// POST /checkout/submit
func (h *CheckoutHandler) Submit(c *gin.Context) {
	sf, ok := h.guard(c)
	if !ok {
		return
	}
	sid := sessionID(c)
	ctx, cancel := context.WithTimeout(reqCtx(c), h.submitTimeout)
	defer cancel()

	locked, err := h.lock.TryLock(ctx, checkoutScope, sid)
	if err != nil {
		logging.From(c).Warn("checkout lock unavailable", "err", err)
	} else if !locked {
		c.JSON(http.StatusConflict, gin.H{"error": "An order is already being placed"})
		return
	}
	if locked {
		defer func() {
			if err := h.lock.Unlock(context.WithoutCancel(ctx), checkoutScope, sid); err != nil {
				logging.From(c).Warn("checkout unlock failed", "err", err)
			}
		}()
	}

	res := sf.Checkout.Submit(ctx)
	finish(c, res, gin.H{"checkout": checkoutState(sf)})
}

// DELETE /checkout
func (h *CheckoutHandler) Reset(c *gin.Context) {
	sf := storefront(c)
	sf.Checkout.Reset()
	view(c, checkoutState(sf), nil)
}
