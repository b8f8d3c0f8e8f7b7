package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allowOrigins มาจาก CORS_ALLOW_ORIGINS (comma list)
func CorsMiddleware(allowOrigins string) fiber.Handler {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS,HEAD",
		AllowHeaders:  "Origin,Content-Type,Accept,X-Requested-With,X-Request-ID",
		ExposeHeaders: "Content-Length,Content-Type,X-Request-ID",
		// credentials ใช้กับ wildcard origin ไม่ได้
		AllowCredentials: allowOrigins != "*",
	})
}
