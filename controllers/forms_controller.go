package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/yashrajoria/classroom-shop/errors"
	"github.com/yashrajoria/classroom-shop/forms"
	"github.com/yashrajoria/classroom-shop/logger"
)

// FormsController accepts the contact and order forms.
type FormsController struct{}

func NewFormsController() *FormsController {
	return &FormsController{}
}

// Contact handles POST /api/contact. The submitted values are echoed back.
func (fc *FormsController) Contact(ctx *gin.Context) {
	var contact forms.Contact
	if err := ctx.ShouldBind(&contact); err != nil {
		_ = ctx.Error(apperrors.ErrMissingFields.Wrap(err))
		return
	}
	if err := contact.Validate(); err != nil {
		logger.Debug(ctx, "Contact form rejected", zap.Strings("fields", forms.FieldErrors(err)))
		_ = ctx.Error(apperrors.ErrMissingFields.Wrap(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": forms.ContactConfirmation,
		"contact": contact,
	})
}

// Order handles POST /api/orders.
func (fc *FormsController) Order(ctx *gin.Context) {
	var order forms.Order
	if err := ctx.ShouldBind(&order); err != nil {
		_ = ctx.Error(apperrors.ErrMissingFields.Wrap(err))
		return
	}
	if err := order.Validate(); err != nil {
		logger.Debug(ctx, "Order form rejected", zap.Strings("fields", forms.FieldErrors(err)))
		_ = ctx.Error(apperrors.ErrMissingFields.Wrap(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"summary": order.Summary()})
}
