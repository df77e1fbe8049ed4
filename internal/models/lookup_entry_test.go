package models

import (
	"testing"
)

func TestLookupEntryDisplay(t *testing.T) {
	tests := []struct {
		name         string
		entry        LookupEntry
		wantClass    string
		wantAttached bool
		wantFailed   bool
		wantLevel    string
	}{
		{
			name:      "pending",
			entry:     LookupEntry{TokenID: "1", Loading: true},
			wantClass: "bg-gray-100",
			wantLevel: "Unknown",
		},
		{
			name:      "no node attached",
			entry:     LookupEntry{TokenID: "1", NodeID: "0", Level: "2", Owner: "0xABC"},
			wantClass: "bg-green-100",
			wantLevel: "Moon",
		},
		{
			name:         "node attached",
			entry:        LookupEntry{TokenID: "1", NodeID: "42", Level: "10", Owner: "0xABC"},
			wantClass:    "bg-yellow-100",
			wantAttached: true,
			wantLevel:    "Galaxy",
		},
		{
			name:       "failed",
			entry:      LookupEntry{TokenID: "1", NodeID: "Error", Level: "Error", Owner: "Error"},
			wantClass:  "bg-yellow-100",
			wantFailed: true,
			wantLevel:  "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.CardClass(); got != tt.wantClass {
				t.Errorf("CardClass() = %q, want %q", got, tt.wantClass)
			}
			if got := tt.entry.NodeAttached(); got != tt.wantAttached {
				t.Errorf("NodeAttached() = %v, want %v", got, tt.wantAttached)
			}
			if got := tt.entry.Failed(); got != tt.wantFailed {
				t.Errorf("Failed() = %v, want %v", got, tt.wantFailed)
			}
			if got := tt.entry.LevelInfo().Name; got != tt.wantLevel {
				t.Errorf("LevelInfo().Name = %q, want %q", got, tt.wantLevel)
			}
		})
	}
}
