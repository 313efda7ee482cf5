package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/yashrajoria/classroom-shop/errors"
	"github.com/yashrajoria/classroom-shop/logger"
	"github.com/yashrajoria/classroom-shop/middleware"
	"github.com/yashrajoria/classroom-shop/models"
	"github.com/yashrajoria/classroom-shop/services"
)

// AuthController renders the login page and manages the session cookie.
type AuthController struct {
	authService services.IAuthService
	tokenTTL    time.Duration
	secure      bool
}

// NewAuthController creates an AuthController. secure marks the cookie HTTPS only.
func NewAuthController(authService services.IAuthService, tokenTTL time.Duration, secure bool) *AuthController {
	return &AuthController{authService: authService, tokenTTL: tokenTTL, secure: secure}
}

// LoginPage handles GET /login.
func (ac *AuthController) LoginPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", gin.H{"Title": "Connexion"})
}

// Login handles POST /login with a form or JSON body.
func (ac *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ac.loginFailed(ctx, req.Email, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := ac.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		ac.loginFailed(ctx, req.Email, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.TokenCookie, token, int(ac.tokenTTL.Seconds()), "/", "", ac.secure, true)
	logger.Info(ctx, "User logged in", zap.String("email", req.Email))
	ctx.Redirect(http.StatusSeeOther, "/dashboard")
}

func (ac *AuthController) loginFailed(ctx *gin.Context, email string, err error) {
	appErr := apperrors.From(err)
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		logger.Error(ctx, "Login failed", err)
	}
	ctx.HTML(appErr.Code, "login.html", gin.H{
		"Title": "Connexion",
		"Email": email,
		"Error": appErr.Message,
	})
}

// Dashboard handles GET /dashboard. RequireLogin runs first.
func (ac *AuthController) Dashboard(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title": "Tableau de bord",
		"Email": ctx.GetString(middleware.EmailContextKey),
	})
}

// Logout handles POST /logout.
func (ac *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(middleware.TokenCookie, "", -1, "/", "", ac.secure, true)
	ctx.Redirect(http.StatusSeeOther, "/login")
}
