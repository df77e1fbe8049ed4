package lookup

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildShareLink returns pageURL with its token parameter set to tokenID.
// Other query parameters keep their order; the first existing token takes
// the new value in place and any further ones are dropped.
func BuildShareLink(pageURL, tokenID string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse page url: %w", err)
	}

	u.RawQuery = SetQueryParam(u.RawQuery, TokenParam, tokenID)
	return u.String(), nil
}

// SetQueryParam sets key to value in rawQuery without reordering the other
// pairs. The key is appended when it is not present.
func SetQueryParam(rawQuery, key, value string) string {
	pair := url.QueryEscape(key) + "=" + url.QueryEscape(value)

	var out []string
	set := false
	for _, part := range splitQuery(rawQuery) {
		if queryKey(part) != key {
			out = append(out, part)
			continue
		}
		if !set {
			out = append(out, pair)
			set = true
		}
	}
	if !set {
		out = append(out, pair)
	}
	return strings.Join(out, "&")
}

// DelQueryParam removes every key pair from rawQuery, keeping the order of
// the rest.
func DelQueryParam(rawQuery, key string) string {
	var out []string
	for _, part := range splitQuery(rawQuery) {
		if queryKey(part) != key {
			out = append(out, part)
		}
	}
	return strings.Join(out, "&")
}

func splitQuery(rawQuery string) []string {
	var parts []string
	for _, part := range strings.Split(rawQuery, "&") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// queryKey returns the unescaped key of a raw "key=value" pair.
func queryKey(part string) string {
	key, _, _ := strings.Cut(part, "=")
	if unescaped, err := url.QueryUnescape(key); err == nil {
		return unescaped
	}
	return key
}
