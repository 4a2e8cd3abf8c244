package main

import "errors"

// Sentinel errors for CLI commands.
var (
	ErrUsage           = errors.New("invalid usage")
	ErrUnknownAsset    = errors.New("unknown asset type")
	ErrUnknownTemplate = errors.New("unknown template")
	ErrUnknownField    = errors.New("unknown field")
	ErrInvalidField    = errors.New("invalid field, want key=value")
	ErrReadOnlyField   = errors.New("field is read-only")
	ErrMissingFields   = errors.New("required fields are empty")
	ErrReadFields      = errors.New("failed to read fields file")
	ErrUnsupportedMark = errors.New("unsupported image type")
	ErrReadMark        = errors.New("failed to read image")
	ErrWriteOutput     = errors.New("failed to write output")
	ErrUnknownFormat   = errors.New("unknown output format")
)
