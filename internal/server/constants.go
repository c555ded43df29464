// Package server provides HTTP and WebSocket handlers
package server

// Server configuration constants
const (
	// MaxHashDistance is the perception-hash distance at or under which
	// two consecutive frames on a stream count as unchanged.
	MaxHashDistance = 4

	// ThumbWidthFloor and ThumbWidthCap bound the thumb query parameter
	// regardless of configuration.
	ThumbWidthFloor = 16
	ThumbWidthCap   = 2048

	// MaxWindowTitle truncates titles in list responses.
	MaxWindowTitle = 255
)
