package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/yashrajoria/classroom-shop/errors"
	"github.com/yashrajoria/classroom-shop/logger"
	"github.com/yashrajoria/classroom-shop/loyalty"
	"github.com/yashrajoria/classroom-shop/models"
	"github.com/yashrajoria/classroom-shop/subscription"
)

// ExerciseController exposes the loyalty and renewal calculators.
type ExerciseController struct {
	now func() time.Time
}

func NewExerciseController() *ExerciseController {
	return &ExerciseController{now: time.Now}
}

// Loyalty handles POST /api/loyalty.
func (ec *ExerciseController) Loyalty(ctx *gin.Context) {
	var req models.LoyaltyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(apperrors.ErrBadRequest.Wrap(err))
		return
	}

	items, ok := req.Items()
	if !ok {
		_ = ctx.Error(apperrors.ErrCartNotArray)
		return
	}

	result := loyalty.Analyze(items)
	logger.Debug(ctx, "Loyalty computed",
		zap.Int("lines", len(items)),
		zap.Int("points", result.TotalPoints),
		zap.Bool("bonus", result.BonusApplied),
	)
	ctx.JSON(http.StatusOK, result)
}

// Renewal handles POST /api/subscriptions/renewal.
func (ec *ExerciseController) Renewal(ctx *gin.Context) {
	var req models.RenewalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(apperrors.ErrBadRequest.Wrap(err))
		return
	}

	now := ec.now()
	if req.CurrentDate != "" {
		parsed, ok := subscription.ParseDate(req.CurrentDate)
		if !ok {
			_ = ctx.Error(apperrors.ErrInvalidInput.Wrap(errors.New("currentDate must be YYYY-MM-DD or RFC 3339")))
			return
		}
		now = parsed
	}

	ctx.JSON(http.StatusOK, subscription.Check(req.Subscription, now))
}
