package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares wires the base middleware chain. Order matters:
// recovery first so panics in later handlers still return JSON 500.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())

	log.Println("[INFO] base middlewares registered")
}
