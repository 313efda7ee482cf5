package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yashrajoria/classroom-shop/cart"
	"github.com/yashrajoria/classroom-shop/catalog"
	"github.com/yashrajoria/classroom-shop/config"
	"github.com/yashrajoria/classroom-shop/controllers"
	"github.com/yashrajoria/classroom-shop/database"
	apperrors "github.com/yashrajoria/classroom-shop/errors"
	"github.com/yashrajoria/classroom-shop/middleware"
	"github.com/yashrajoria/classroom-shop/services"
	"github.com/yashrajoria/classroom-shop/web"
)

// NewRouter wires services and controllers over repo and returns the engine
// serving the pages and the JSON API.
func NewRouter(cfg config.Config, repo database.CartRepository, discounts cart.Discounts, log *zap.Logger) (*gin.Engine, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}
	users, err := services.NewDemoUserStore()
	if err != nil {
		return nil, err
	}

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(users, tokens, log)
	cartService := services.NewCartService(repo, discounts, log)

	production := cfg.AppEnv == "production"

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.SecurityHeaders(production),
		apperrors.ErrorMiddleware(),
	)
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", controllers.CartIDHeader, middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", controllers.CartIDHeader, middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.SetHTMLTemplate(templates)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterCartRoutes(r, controllers.NewCartController(cartService))
	RegisterAPIRoutes(r,
		controllers.NewExerciseController(),
		controllers.NewCatalogController(catalog.NewGenerator(log), cfg.ProductsSeed, cfg.ProductsCount),
		controllers.NewFormsController(),
	)
	RegisterAuthRoutes(r,
		controllers.NewAuthController(authService, cfg.TokenTTL, production),
		tokens,
		middleware.PerMinute(cfg.LoginRatePerMinute),
	)
	RegisterPageRoutes(r, controllers.NewPageController())

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})

	return r, nil
}

// RegisterCartRoutes sets up the session cart routes.
func RegisterCartRoutes(r *gin.Engine, cc *controllers.CartController) {
	api := r.Group("/cart")
	{
		api.GET("", cc.GetCart)
		api.DELETE("", cc.ClearCart)
		api.POST("/items", cc.AddItem)
		api.DELETE("/items/:id", cc.RemoveItem)
		api.POST("/discount", cc.ApplyDiscount)
		api.POST("/checkout", cc.Checkout)
	}
}

// RegisterAPIRoutes sets up the exercise, catalogue and form endpoints.
func RegisterAPIRoutes(r *gin.Engine, ec *controllers.ExerciseController, cat *controllers.CatalogController, fc *controllers.FormsController) {
	api := r.Group("/api")
	{
		api.POST("/loyalty", ec.Loyalty)
		api.POST("/subscriptions/renewal", ec.Renewal)
		api.GET("/products", cat.ListProducts)
		api.GET("/books", cat.SearchBooks)
		api.POST("/contact", fc.Contact)
		api.POST("/orders", fc.Order)
	}
}

// RegisterAuthRoutes sets up login, logout and the protected dashboard.
func RegisterAuthRoutes(r *gin.Engine, ac *controllers.AuthController, tokens middleware.TokenValidator, limiter *middleware.RateLimiter) {
	r.GET("/login", ac.LoginPage)
	r.POST("/login", limiter.Middleware(), ac.Login)
	r.POST("/logout", ac.Logout)
	r.GET("/dashboard", middleware.RequireLogin(tokens), ac.Dashboard)
}

// RegisterPageRoutes sets up the exercise pages.
func RegisterPageRoutes(r *gin.Engine, pc *controllers.PageController) {
	r.GET("/", pc.Catalogue)
	r.GET("/contact", pc.Contact)
	r.GET("/order.html", pc.Order)
	r.GET("/shop.html", pc.Shop)
	r.GET("/books.html", pc.Books)
}
