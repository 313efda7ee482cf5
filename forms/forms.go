// Package forms validates the contact, order and shop checkout forms.
package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ContactConfirmation = "Merci pour votre message"
	OrderConfirmation   = "Commande confirmée"
)

const (
	DeliveryStandard = "standard"
	DeliveryExpress  = "express"
)

// OrderProducts are the products offered by the order form.
var OrderProducts = []string{"T-shirt", "Mug"}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Contact is the contact form payload. Values are kept as submitted.
type Contact struct {
	FirstName string `json:"firstname" form:"firstname" validate:"required"`
	LastName  string `json:"lastname" form:"lastname" validate:"required"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Message   string `json:"message" form:"message" validate:"required"`
}

// Validate reports whether every contact field is filled and the email is valid.
func (c Contact) Validate() error {
	trimmed := Contact{
		FirstName: strings.TrimSpace(c.FirstName),
		LastName:  strings.TrimSpace(c.LastName),
		Email:     strings.TrimSpace(c.Email),
		Message:   strings.TrimSpace(c.Message),
	}
	return validate.Struct(trimmed)
}

// Order is the order form payload.
type Order struct {
	Product  string `json:"product" form:"product" validate:"required,oneof=T-shirt Mug"`
	Quantity int    `json:"quantity" form:"quantity" validate:"gt=0"`
	Delivery string `json:"delivery" form:"delivery" validate:"omitempty,oneof=standard express"`
}

// Normalize fills the default delivery method.
func (o Order) Normalize() Order {
	o.Product = strings.TrimSpace(o.Product)
	o.Delivery = strings.TrimSpace(o.Delivery)
	if o.Delivery == "" {
		o.Delivery = DeliveryStandard
	}
	return o
}

// Validate checks the normalized order.
func (o Order) Validate() error {
	return validate.Struct(o.Normalize())
}

// Summary renders the confirmation line, e.g.
// "Commande confirmée : 2 x T-shirt, livraison standard".
func (o Order) Summary() string {
	n := o.Normalize()
	return fmt.Sprintf("%s : %d x %s, livraison %s", OrderConfirmation, n.Quantity, n.Product, n.Delivery)
}

// Checkout is the shop checkout form. CGU must be accepted.
type Checkout struct {
	Name  string `json:"name" form:"name" validate:"required"`
	Email string `json:"email" form:"email" validate:"required,email"`
	CGU   bool   `json:"cgu" form:"cgu" validate:"required"`
}

// Validate checks name, email and terms acceptance.
func (c Checkout) Validate() error {
	return validate.Struct(Checkout{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		CGU:   c.CGU,
	})
}

// FieldErrors lists the names of the failing fields, in declaration order.
func FieldErrors(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fields
}
