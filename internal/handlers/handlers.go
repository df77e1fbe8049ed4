package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// isHTMX returns true if the request was issued by HTMX.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}
