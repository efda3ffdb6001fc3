package isa

import "errors"

// Decode errors. Every decode function returns one of these, wrapped with
// context via fmt.Errorf and %w, so callers can match with errors.Is.
// Encoding never fails.
var (
	ErrBufferTooShort        = errors.New("buffer too short")
	ErrUnknownActionCode     = errors.New("unknown action code")
	ErrUnknownSubjectCode    = errors.New("unknown subject code")
	ErrUnknownPayloadType    = errors.New("unknown payload type")
	ErrPayloadLengthMismatch = errors.New("payload length mismatch")
	ErrUnknownOperation      = errors.New("unknown calculator operation")
	ErrUnknownTimeUnit       = errors.New("unknown time unit")
)

// Stream container errors.
var (
	ErrInvalidMagic   = errors.New("invalid stream magic: expected SAM1")
	ErrInvalidVersion = errors.New("unsupported stream version")
	ErrTrailingBytes  = errors.New("trailing bytes after instruction stream")
)
