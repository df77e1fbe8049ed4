package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/gofiber/utils/v2"

	"galaxycheck/internal/lookup"
)

const lookupsKey = "lookups"

// LookupMiddleware attaches the visitor's lookup list to the request.
type LookupMiddleware struct {
	registry *lookup.Registry
}

// NewLookupMiddleware creates a new lookup middleware instance.
func NewLookupMiddleware(registry *lookup.Registry) *LookupMiddleware {
	return &LookupMiddleware{registry: registry}
}

// LoadLookups resolves the session's controller and stores it in Locals.
// Requires the session middleware to run first.
func (m *LookupMiddleware) LoadLookups(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	// A fresh, untouched session is never saved, so mark it to get a cookie.
	if sess.Get("visited") == nil {
		sess.Set("visited", true)
	}

	// The id may come straight from the request cookie; the registry keeps it.
	c.Locals(lookupsKey, m.registry.Get(utils.CopyString(sess.ID())))
	return c.Next()
}

// Lookups returns the controller set by LoadLookups, or nil.
func Lookups(c fiber.Ctx) *lookup.Controller {
	ctrl, _ := c.Locals(lookupsKey).(*lookup.Controller)
	return ctrl
}
