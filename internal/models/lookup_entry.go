package models

import (
	"github.com/google/uuid"

	"galaxycheck/internal/galaxy"
)

// LookupEntry is one submitted token lookup in a session's list.
// NodeID, Level and Owner stay empty while Loading and hold
// galaxy.ErrorMarker after a failed lookup.
type LookupEntry struct {
	ID      uuid.UUID `json:"id"`
	TokenID string    `json:"token_id"`
	NodeID  string    `json:"node_id"`
	Level   string    `json:"level"`
	Owner   string    `json:"owner"`
	Loading bool      `json:"loading"`
}

// Failed returns true if the lookup ended with the error marker.
func (e LookupEntry) Failed() bool {
	return !e.Loading && e.NodeID == galaxy.ErrorMarker
}

// NodeAttached returns true if the token is attached to a ThorNode.
func (e LookupEntry) NodeAttached() bool {
	return !e.Loading && galaxy.NodeAttached(e.NodeID)
}

// LevelInfo returns the level table row for the entry's level code.
func (e LookupEntry) LevelInfo() galaxy.LevelInfo {
	return galaxy.Level(e.Level)
}

// OwnerDisplay returns the owner address in checksum form.
func (e LookupEntry) OwnerDisplay() string {
	return galaxy.ChecksumAddress(e.Owner)
}

// CardClass returns the color class of the entry card: gray while loading,
// green when no node is attached, yellow otherwise.
func (e LookupEntry) CardClass() string {
	switch {
	case e.Loading:
		return "bg-gray-100"
	case e.NodeID == "0":
		return "bg-green-100"
	default:
		return "bg-yellow-100"
	}
}
