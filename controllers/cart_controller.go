package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yashrajoria/classroom-shop/errors"
	"github.com/yashrajoria/classroom-shop/forms"
	"github.com/yashrajoria/classroom-shop/models"
	"github.com/yashrajoria/classroom-shop/services"
)

// CartIDHeader addresses the session cart. It is echoed on every response.
const CartIDHeader = "X-Cart-ID"

// CartController handles HTTP requests for the session cart.
type CartController struct {
	cartService services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func (cc *CartController) respond(ctx *gin.Context, session *models.CartSession) {
	ctx.Header(CartIDHeader, session.ID)
	ctx.JSON(http.StatusOK, session)
}

// GetCart handles GET /cart.
func (cc *CartController) GetCart(ctx *gin.Context) {
	session, err := cc.cartService.GetCart(ctx.Request.Context(), ctx.GetHeader(CartIDHeader))
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	cc.respond(ctx, session)
}

// AddItem handles POST /cart/items.
func (cc *CartController) AddItem(ctx *gin.Context) {
	var req models.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(apperrors.ErrInvalidInput.Wrap(err))
		return
	}

	session, err := cc.cartService.AddItem(ctx.Request.Context(), ctx.GetHeader(CartIDHeader), req)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	cc.respond(ctx, session)
}

// RemoveItem handles DELETE /cart/items/:id.
func (cc *CartController) RemoveItem(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		_ = ctx.Error(apperrors.ErrInvalidInput.Wrap(err))
		return
	}

	session, err := cc.cartService.RemoveItem(ctx.Request.Context(), ctx.GetHeader(CartIDHeader), itemID)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	cc.respond(ctx, session)
}

// ApplyDiscount handles POST /cart/discount.
func (cc *CartController) ApplyDiscount(ctx *gin.Context) {
	var req models.DiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(apperrors.ErrInvalidInput.Wrap(err))
		return
	}

	session, err := cc.cartService.ApplyDiscount(ctx.Request.Context(), ctx.GetHeader(CartIDHeader), req.Code)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	cc.respond(ctx, session)
}

// ClearCart handles DELETE /cart.
func (cc *CartController) ClearCart(ctx *gin.Context) {
	session, err := cc.cartService.ClearCart(ctx.Request.Context(), ctx.GetHeader(CartIDHeader))
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	cc.respond(ctx, session)
}

// Checkout handles POST /cart/checkout.
func (cc *CartController) Checkout(ctx *gin.Context) {
	var form forms.Checkout
	if err := ctx.ShouldBindJSON(&form); err != nil {
		_ = ctx.Error(apperrors.ErrInvalidForm.Wrap(err))
		return
	}

	id := ctx.GetHeader(CartIDHeader)
	resp, err := cc.cartService.Checkout(ctx.Request.Context(), id, form)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.Header(CartIDHeader, id)
	ctx.JSON(http.StatusOK, resp)
}
