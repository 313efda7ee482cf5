package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/yashrajoria/classroom-shop/loyalty"
	"github.com/yashrajoria/classroom-shop/subscription"
)

// LoyaltyRequest is the payload of POST /api/loyalty. Cart is kept raw so a
// non-array value can be told apart from a malformed body.
type LoyaltyRequest struct {
	Cart json.RawMessage `json:"cart"`
}

// Items decodes the cart array. ok is false when cart is not an array.
func (r LoyaltyRequest) Items() (items []loyalty.Item, ok bool) {
	if len(r.Cart) == 0 || r.Cart[0] != '[' {
		return nil, false
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(r.Cart, &raw); err != nil {
		return nil, false
	}
	items = make([]loyalty.Item, 0, len(raw))
	for _, entry := range raw {
		var line struct {
			Type  string          `json:"type"`
			Price json.RawMessage `json:"price"`
		}
		// entries that are not objects contribute nothing
		_ = json.Unmarshal(entry, &line)
		items = append(items, loyalty.Item{Type: line.Type, Price: numericPrice(line.Price)})
	}
	return items, true
}

// numericPrice returns nil unless raw is a JSON number.
func numericPrice(raw json.RawMessage) *decimal.Decimal {
	if len(raw) == 0 || !(raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
		return nil
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return nil
	}
	return &d
}

// RenewalRequest is the payload of POST /api/subscriptions/renewal.
// CurrentDate defaults to now.
type RenewalRequest struct {
	Subscription subscription.Subscription `json:"subscription"`
	CurrentDate  string                    `json:"currentDate"`
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}
