package validation

import (
	"net/url"
	"strings"
)

// MaxTokenIDLength bounds a submitted token id.
const MaxTokenIDLength = 100

// NormalizeTokenID trims surrounding whitespace from a submitted token id.
// The id is otherwise opaque: it is not checked to be numeric.
func NormalizeTokenID(raw string) (string, bool) {
	tokenID := strings.TrimSpace(raw)
	if tokenID == "" || len(tokenID) > MaxTokenIDLength {
		return "", false
	}
	return tokenID, true
}

// NormalizePathTokenID unescapes a token id taken from a URL path segment,
// then normalizes it like NormalizeTokenID.
func NormalizePathTokenID(raw string) (string, bool) {
	unescaped, err := url.PathUnescape(raw)
	if err != nil {
		return "", false
	}
	return NormalizeTokenID(unescaped)
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	// Parse the URL
	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	// Check scheme - only allow http and https
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	// Ensure host is present
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
