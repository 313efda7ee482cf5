package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/yashrajoria/classroom-shop/cart"
)

// ShopItems are the products listed on the shop page, one unit each.
var ShopItems = []cart.Item{
	{ID: 1, Name: "T-shirt", Price: decimal.NewFromInt(20), Quantity: 1},
	{ID: 2, Name: "Mug", Price: decimal.NewFromInt(10), Quantity: 1},
}

// ShopItem finds a shop product by ID.
func ShopItem(id int) (cart.Item, bool) {
	for _, it := range ShopItems {
		if it.ID == id {
			return it, true
		}
	}
	return cart.Item{}, false
}
