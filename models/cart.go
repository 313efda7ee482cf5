package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yashrajoria/classroom-shop/cart"
)

// CartSession is a cart stored under an opaque session ID.
type CartSession struct {
	ID        string     `json:"id"`
	Cart      *cart.Cart `json:"cart"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AddItemRequest is the payload of POST /cart/items. Name and price are
// taken from the shop catalogue when omitted. Price may be a JSON number or
// a quoted decimal.
type AddItemRequest struct {
	ID       int              `json:"id" binding:"required"`
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int             `json:"quantity"`
}

// DiscountRequest is the payload of POST /cart/discount.
type DiscountRequest struct {
	Code string `json:"code"`
}

// CheckoutResponse is returned by a successful shop checkout.
type CheckoutResponse struct {
	Message       string     `json:"message"`
	Cart          *cart.Cart `json:"cart"`
	LoyaltyPoints int        `json:"loyaltyPoints"`
	BonusApplied  bool       `json:"bonusApplied"`
}
