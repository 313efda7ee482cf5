package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidDiscountCode is returned when a code is not in the discount table.
var ErrInvalidDiscountCode = errors.New("Invalid discount code")

// Item is a single cart line.
type Item struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Subtotal returns price * quantity for the line.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds line items and a running total.
type Cart struct {
	Items []Item          `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// New creates an empty cart
func New() *Cart {
	return &Cart{
		Items: []Item{},
		Total: decimal.Zero,
	}
}

// AddItem merges the item by ID or appends it, then adds its subtotal to the total.
// Prices and quantities are not validated; negative values lower the total.
func (c *Cart) AddItem(item Item) {
	found := false
	for i, existing := range c.Items {
		if existing.ID == item.ID {
			c.Items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		c.Items = append(c.Items, item)
	}

	c.Total = c.Total.Add(item.Subtotal())
}

// RemoveItem drops the item with the given ID and subtracts its stored subtotal.
// Unknown IDs leave the cart unchanged.
func (c *Cart) RemoveItem(id int) {
	for i, existing := range c.Items {
		if existing.ID == id {
			c.Total = c.Total.Sub(existing.Subtotal())
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// ApplyDiscount applies a code from the default discount table.
func (c *Cart) ApplyDiscount(code string) error {
	return c.ApplyDiscountFrom(DefaultDiscounts, code)
}

// ApplyDiscountFrom applies a code looked up in table. Discounts compound.
func (c *Cart) ApplyDiscountFrom(table Discounts, code string) error {
	rate, ok := table.Rate(code)
	if !ok {
		return ErrInvalidDiscountCode
	}

	c.Total = c.Total.Mul(decimal.NewFromInt(1).Sub(rate))
	return nil
}

// Clear removes every item and resets the total.
func (c *Cart) Clear() {
	c.Items = []Item{}
	c.Total = decimal.Zero
}
