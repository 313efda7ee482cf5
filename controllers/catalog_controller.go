package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashrajoria/classroom-shop/catalog"
	"github.com/yashrajoria/classroom-shop/logger"
)

// CatalogController serves the mock product catalogue and the book search.
type CatalogController struct {
	generator *catalog.Generator
	seed      uint64
	count     int
}

func NewCatalogController(generator *catalog.Generator, seed uint64, count int) *CatalogController {
	return &CatalogController{generator: generator, seed: seed, count: count}
}

// ListProducts handles GET /api/products.
func (cc *CatalogController) ListProducts(ctx *gin.Context) {
	logger.Info(ctx, "Handling GET /api/products request")
	ctx.JSON(http.StatusOK, cc.generator.Generate(cc.seed, cc.count))
}

// SearchBooks handles GET /api/books?q=.
func (cc *CatalogController) SearchBooks(ctx *gin.Context) {
	books := catalog.SearchBooks(catalog.Books, ctx.Query("q"))

	resp := gin.H{"books": books}
	if len(books) == 0 {
		resp["message"] = catalog.NoResultsMessage
	}
	ctx.JSON(http.StatusOK, resp)
}
