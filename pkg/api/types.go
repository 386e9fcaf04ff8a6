package api

//go:generate mockgen -destination=./mock_codec.go -package=api . ICardCodec

import (
	"github.com/ssargent/charcard/pkg/card"
	"github.com/ssargent/charcard/pkg/codec"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port          int
	Bind          string
	APIKey        string // Empty disables authentication
	MaxImageBytes int64  // Upper bound on request bodies
	Export        card.ExportOptions
}

// ICardCodec defines the card operations the API exposes
type ICardCodec interface {
	Inspect(data []byte) ([]codec.Chunk, error)
	DecodeProfile(data []byte) (*card.Profile, bool, error)
	EncodeProfileInto(base []byte, p *card.Profile) ([]byte, error)
}

// ChunkInfo describes a single chunk of an inspected image
type ChunkInfo struct {
	Offset   int    `json:"offset"`
	Type     string `json:"type"`
	Length   uint32 `json:"length"`
	CRC      string `json:"crc"`
	CRCValid bool   `json:"crc_valid"`
	Keyword  string `json:"keyword,omitempty"`
}

// InspectResponse is returned by the inspect endpoint
type InspectResponse struct {
	Size       int         `json:"size"`
	Chunks     []ChunkInfo `json:"chunks"`
	HasProfile bool        `json:"has_profile"`
}

// DecodeResponse is returned by the decode endpoint
type DecodeResponse struct {
	Found    bool           `json:"found"`
	Profile  *card.Profile  `json:"profile,omitempty"`
	Settings *card.Settings `json:"settings,omitempty"`
}

// EncodeRequest is the body of the encode endpoint.
// Image is base64 in JSON. Settings is used when Profile is absent.
type EncodeRequest struct {
	Image    []byte         `json:"image"`
	Profile  *card.Profile  `json:"profile,omitempty"`
	Settings *card.Settings `json:"settings,omitempty"`
}
