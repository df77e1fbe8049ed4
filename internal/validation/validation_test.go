package validation

import (
	"strings"
	"testing"
)

func TestNormalizeTokenID(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"plain number", "123", "123", true},
		{"surrounding spaces", "  55 \t", "55", true},
		{"not numeric is still accepted", "abc", "abc", true},
		{"empty string", "", "", false},
		{"whitespace only", " \t\n ", "", false},
		{"too long", strings.Repeat("1", MaxTokenIDLength+1), "", false},
		{"max length", strings.Repeat("1", MaxTokenIDLength), strings.Repeat("1", MaxTokenIDLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeTokenID(tt.raw)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NormalizeTokenID(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://example.com", true, ""},
		{"valid with query", "https://example.com/?foo=bar", true, ""},
		{"valid with port", "http://localhost:3000/", true, ""},
		{"empty string", "", false, "URL is required"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"relative url", "/?token=1", false, "URL must use http:// or https:// scheme"},
		{"uppercase scheme", "HTTPS://example.com", true, ""},
		{"scheme only", "https://", false, "URL must have a valid host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}

func TestNormalizePathTokenID(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"123", "123", true},
		{"a%20b", "a b", true},
		{"%2055%20", "55", true},
		{"%20", "", false},
		{"bad%zz", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizePathTokenID(tt.raw)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("NormalizePathTokenID(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}
