package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/classroom-shop/catalog"
	"github.com/yashrajoria/classroom-shop/forms"
)

// PageController renders the static exercise pages.
type PageController struct{}

func NewPageController() *PageController {
	return &PageController{}
}

func (pc *PageController) Catalogue(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "catalogue.html", gin.H{"Title": "Catalogue produits"})
}

func (pc *PageController) Contact(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "contact.html", gin.H{"Title": "Contact"})
}

func (pc *PageController) Order(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "order.html", gin.H{
		"Title":    "Commande",
		"Products": forms.OrderProducts,
	})
}

func (pc *PageController) Shop(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "shop.html", gin.H{
		"Title": "Boutique",
		"Items": catalog.ShopItems,
	})
}

func (pc *PageController) Books(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "books.html", gin.H{
		"Title":     "Recherche de livres",
		"Books":     catalog.Books,
		"NoResults": catalog.NoResultsMessage,
	})
}
