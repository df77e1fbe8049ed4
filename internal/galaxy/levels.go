// Package galaxy holds the static GalaxyMember reference data and the display
// rules derived from a token's on-chain values.
package galaxy

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

// ErrorMarker is what a lookup field shows after a failed contract call.
const ErrorMarker = "Error"

// LevelInfo describes one GalaxyMember level.
type LevelInfo struct {
	Code string
	Name string
	B3TR string // reward amount, preformatted for display
}

// Unknown is returned for any level code outside the table.
var Unknown = LevelInfo{Name: "Unknown"}

var levels = map[string]LevelInfo{
	"0":  {Code: "0", Name: "None", B3TR: "0"},
	"1":  {Code: "1", Name: "Earth", B3TR: "0"},
	"2":  {Code: "2", Name: "Moon", B3TR: "10,000"},
	"3":  {Code: "3", Name: "Mercury", B3TR: "25,000"},
	"4":  {Code: "4", Name: "Venus", B3TR: "50,000"},
	"5":  {Code: "5", Name: "Mars", B3TR: "100,000"},
	"6":  {Code: "6", Name: "Jupiter", B3TR: "250,000"},
	"7":  {Code: "7", Name: "Saturn", B3TR: "500,000"},
	"8":  {Code: "8", Name: "Uranus", B3TR: "2,500,000"},
	"9":  {Code: "9", Name: "Neptune", B3TR: "5,000,000"},
	"10": {Code: "10", Name: "Galaxy", B3TR: "25,000,000"},
}

// Level returns the level for code, or Unknown.
func Level(code string) LevelInfo {
	if info, ok := levels[code]; ok {
		return info
	}
	return Unknown
}

// LevelName returns the display name for code.
func LevelName(code string) string {
	return Level(code).Name
}

// Levels returns every known level ordered by code.
func Levels() []LevelInfo {
	out := make([]LevelInfo, 0, len(levels))
	for i := 0; i <= 10; i++ {
		out = append(out, levels[strconv.Itoa(i)])
	}
	return out
}

// NodeAttached reports whether a token is attached to a ThorNode.
// "0" means no node; failed and pending lookups are never attached.
func NodeAttached(nodeID string) bool {
	return nodeID != "" && nodeID != "0" && nodeID != ErrorMarker
}

// ChecksumAddress returns owner in EIP-55 mixed-case form. Values that are
// not hex addresses (including the error marker) are returned unchanged.
func ChecksumAddress(owner string) string {
	if !common.IsHexAddress(owner) {
		return owner
	}
	return common.HexToAddress(owner).Hex()
}
