package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"gorm.io/gorm"
)

// SetupMiddlewares installs the global middleware chain: security headers,
// CORS, panic recovery, rate limiting and audit capture.
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(helmet.New())
	app.Use(CorsMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(AuditMiddleware(db))
}
