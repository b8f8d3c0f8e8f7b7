package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"pc2-api/pkg/logger"
)

// path ที่ถูกเรียกถี่จาก probe/scraper ไม่ต้อง log ถ้าสำเร็จ
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// LoggerMiddleware log หนึ่งบรรทัดต่อ request (ต้องอยู่หลัง RequestIDMiddleware)
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// ErrorHandler ยังไม่ได้เขียน status ตอนนี้
			status = fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}
		if _, quiet := quietPaths[c.Path()]; quiet && status < fiber.StatusBadRequest {
			return err
		}

		logFunc := logger.InfoContext
		if status >= fiber.StatusInternalServerError {
			logFunc = logger.ErrorContext
		} else if status >= fiber.StatusBadRequest {
			logFunc = logger.WarnContext
		}

		logFunc(c.UserContext(), "Request completed",
			"method", c.Method(),
			"path", c.Path(),
			"route", c.Route().Path,
			"status", status,
			"latency", time.Since(start).String(),
			"bytes", len(c.Response().Body()),
			"ip", c.IP(),
		)
		return err
	}
}
