//go:build e2e

package e2e

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/go-rod/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addToCart(page *rod.Page, product string, wantLines int) {
	page.MustElementR("#products li", product).MustElement(".add-to-cart").MustClick()
	page.MustWait(`(n) => document.querySelectorAll('#cart li').length === n`, wantLines)
}

func TestShop_ProductsListed(t *testing.T) {
	s := newSuite(t)
	page := s.open(t, "/shop.html")

	items := page.MustElements("#products li")
	require.Len(t, items, 2)
	for _, li := range items {
		assert.True(t, li.MustVisible())
	}
}

func TestShop_AddUpdatesCartAndTotal(t *testing.T) {
	s := newSuite(t)
	page := s.open(t, "/shop.html")

	assert.False(t, page.MustElement("#checkout-form").MustVisible(), "form hidden while cart is empty")

	addToCart(page, "T-shirt", 1)
	assert.Contains(t, page.MustElement("#cart li").MustText(), "T-shirt - 20€")
	assert.True(t, page.MustElement("#checkout-form").MustVisible())

	addToCart(page, "Mug", 2)
	assert.Len(t, page.MustElements("#cart li"), 2)
	assert.Equal(t, "30", page.MustElement("#total").MustText())
}

func TestShop_InvalidCheckoutAlerts(t *testing.T) {
	cases := map[string]struct {
		name, email string
		cgu         bool
	}{
		"empty name and invalid email": {"", "notanemail", true},
		"terms not accepted":           {"Alice", "alice@example.com", false},
		"empty email and no terms":     {"Charlie", "", false},
	}
	for label, tc := range cases {
		t.Run(label, func(t *testing.T) {
			s := newSuite(t)
			page := s.open(t, "/shop.html")
			addToCart(page, "Mug", 1)

			fillCheckout(page, tc.name, tc.email, tc.cgu)
			msg := expectAlert(page, page.MustElement("#submit-order"))
			assert.Contains(t, msg, "Formulaire invalide")
			assert.False(t, page.MustElement("#confirmation").MustVisible())
		})
	}
}

func TestShop_CheckoutConfirms(t *testing.T) {
	s := newSuite(t)
	page := s.open(t, "/shop.html")
	addToCart(page, "T-shirt", 1)

	fillCheckout(page, "Bob", "bob@example.com", true)
	page.MustElement("#submit-order").MustClick()

	confirmation := page.MustElement("#confirmation").MustWaitVisible()
	assert.Contains(t, confirmation.MustText(), "Commande confirmée")
}

func TestShop_FixtureUsers(t *testing.T) {
	data, err := os.ReadFile("../forms/testdata/users.json")
	require.NoError(t, err)
	var users []struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		CGU   bool   `json:"cgu"`
		Valid bool   `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(data, &users))

	s := newSuite(t)
	for _, u := range users {
		t.Run(u.Email, func(t *testing.T) {
			page := s.open(t, "/shop.html")
			addToCart(page, "T-shirt", 1)
			fillCheckout(page, u.Name, u.Email, u.CGU)

			submit := page.MustElement("#submit-order")
			if u.Valid {
				submit.MustClick()
				assert.True(t, page.MustElement("#confirmation").MustWaitVisible().MustVisible())
				return
			}
			assert.Contains(t, expectAlert(page, submit), "Formulaire invalide")
			assert.False(t, page.MustElement("#confirmation").MustVisible())
		})
	}
}

func fillCheckout(page *rod.Page, name, email string, cgu bool) {
	if name != "" {
		page.MustElement("#name").MustInput(name)
	}
	if email != "" {
		page.MustElement("#email").MustInput(email)
	}
	if cgu {
		page.MustElement("#cgu").MustClick()
	}
}
