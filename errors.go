package brandprint

import "errors"

// Sentinel errors for library operations.
var (
	// Rendering errors, reported by the headless browser step.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Request validation errors.
	ErrInvalidPage        = errors.New("invalid page selector")
	ErrEmptyAssetID       = errors.New("asset id cannot be empty")
	ErrInvalidAssetType   = errors.New("invalid asset type")
	ErrInvalidImageSource = errors.New("invalid image source")

	// Layout errors.
	ErrInvalidLength = errors.New("invalid length")

	// Pool errors.
	ErrPoolClosed = errors.New("converter pool is closed")

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
