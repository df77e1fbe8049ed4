package models

// TokenInfoResponse contains the result of a token lookup for the JSON API.
type TokenInfoResponse struct {
	TokenID      string `json:"token_id"`
	NodeID       string `json:"node_id"`
	NodeAttached bool   `json:"node_attached"`
	Level        string `json:"level"`
	LevelName    string `json:"level_name"`
	B3TR         string `json:"b3tr"`
	Owner        string `json:"owner"`
}

// ShareLinkResponse carries a shareable page URL for a token.
type ShareLinkResponse struct {
	TokenID string `json:"token_id"`
	URL     string `json:"url"`
}
