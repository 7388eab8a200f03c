package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kelasku_backend/internals/features/users/auth/controller"
	middlewares "kelasku_backend/internals/middlewares"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

// AuthRoutes registers /api/auth endpoints.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	grp.Post("/refresh-token", ctrl.RefreshToken)

	// authenticated
	grp.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
	grp.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
