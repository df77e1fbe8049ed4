package api

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"galaxycheck/internal/lookup"
	"galaxycheck/internal/models"
	"galaxycheck/internal/validation"
)

// ShareHandler builds shareable page links via JSON API.
type ShareHandler struct {
	baseURL string
}

// NewShareHandler creates a new API share handler.
func NewShareHandler(baseURL string) *ShareHandler {
	return &ShareHandler{baseURL: strings.TrimRight(baseURL, "/") + "/"}
}

// Get returns the link for a token. The optional page query parameter
// names the page to link to; it defaults to the site root.
func (h *ShareHandler) Get(c fiber.Ctx) error {
	tokenID, ok := validation.NormalizePathTokenID(c.Params("token"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid token id")
	}

	page := c.Query("page", h.baseURL)
	if valid, msg := validation.ValidateURL(page); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	link, err := lookup.BuildShareLink(page, tokenID)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid page url")
	}

	return jsonSuccess(c, models.ShareLinkResponse{
		TokenID: tokenID,
		URL:     link,
	})
}
