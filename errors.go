package chatlayout

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrInvalidWidth indicates a layout was requested for a non-positive width.
	ErrInvalidWidth = errors.New("invalid layout width")

	// ErrInvalidScale indicates a layout was requested for a non-positive scale.
	ErrInvalidScale = errors.New("invalid layout scale")

	// ErrInvalidLine indicates a raw chat line could not be parsed.
	ErrInvalidLine = errors.New("invalid chat line")

	// ErrUnsupportedCommand indicates a well-formed chat line that carries no
	// chat message, such as PING or JOIN.
	ErrUnsupportedCommand = errors.New("unsupported command")

	// ErrUnsupportedImage indicates an asset could not be decoded.
	ErrUnsupportedImage = errors.New("unsupported image")
)
