package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/utils/v2"
	"github.com/google/uuid"

	"galaxycheck/internal/config"
	"galaxycheck/internal/lookup"
	"galaxycheck/internal/middleware"
	"galaxycheck/internal/validation"
)

// LookupHandler serves the lookup page and its partials.
type LookupHandler struct {
	cfg *config.Config
}

// NewLookupHandler creates a new lookup handler.
func NewLookupHandler(cfg *config.Config) *LookupHandler {
	return &LookupHandler{cfg: cfg}
}

// Index renders the lookup page. A token query parameter is submitted once
// and the browser is sent to the same page without it, so reloading does
// not repeat the lookup.
func (h *LookupHandler) Index(c fiber.Ctx) error {
	ctrl := middleware.Lookups(c)
	if ctrl == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "lookups unavailable")
	}

	// string() copies, so the restored token does not alias the request.
	rawQuery := string(c.Request().URI().QueryString())
	if c.Query(lookup.TokenParam) != "" {
		ctrl.RestoreFromLocation(rawQuery)
		return c.Redirect().To(withoutToken(c.Path(), rawQuery))
	}

	return c.Render("index", MergeBranding(fiber.Map{
		"Entries": ctrl.Entries(),
	}, h.cfg))
}

// Submit starts a lookup for the posted token. HTMX requests get the new
// entry's partial; plain form posts are redirected back to the page.
func (h *LookupHandler) Submit(c fiber.Ctx) error {
	ctrl := middleware.Lookups(c)
	if ctrl == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "lookups unavailable")
	}

	// FormValue aliases the request buffer, which is reused once the
	// handler returns; the entry and its lookup outlive it.
	entry, ok := ctrl.Submit(utils.CopyString(c.FormValue(lookup.TokenParam)))

	if isHTMX(c) {
		if !ok {
			return c.SendString("")
		}
		return c.Render("partials/entry", entry, "")
	}
	return c.Redirect().To("/")
}

// Entry renders one entry. Pending entries poll this endpoint.
func (h *LookupHandler) Entry(c fiber.Ctx) error {
	ctrl := middleware.Lookups(c)
	if ctrl == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "lookups unavailable")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid entry id")
	}

	entry, err := ctrl.Entry(id)
	if err != nil {
		if errors.Is(err, lookup.ErrEntryNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "entry not found")
		}
		return err
	}

	return c.Render("partials/entry", entry, "")
}

// Share returns the page URL with the token parameter set, as plain text.
// The page is taken from the HX-Current-URL header, falling back to BASE_URL.
func (h *LookupHandler) Share(c fiber.Ctx) error {
	tokenID, ok := validation.NormalizePathTokenID(c.Params("token"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "invalid token id")
	}

	pageURL := c.Get("HX-Current-URL")
	if valid, _ := validation.ValidateURL(pageURL); !valid {
		pageURL = strings.TrimRight(h.cfg.BaseURL, "/") + "/"
	}

	link, err := lookup.BuildShareLink(pageURL, tokenID)
	if err != nil {
		slog.Warn("failed to build share link", "page_url", pageURL, "error", err)
		return fiber.NewError(fiber.StatusBadRequest, "invalid page url")
	}

	return c.SendString(link)
}

// withoutToken returns path with the token parameter removed from rawQuery.
func withoutToken(path, rawQuery string) string {
	if rest := lookup.DelQueryParam(rawQuery, lookup.TokenParam); rest != "" {
		return path + "?" + rest
	}
	return path
}
