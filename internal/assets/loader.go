package assets

import "encoding/base64"

// Mark kinds.
const (
	KindLogo = "logo" // wide horizontal logo
	KindIcon = "icon" // square brand mark
)

// Media types recognized for marks, keyed by file extension.
var markMediaTypes = []struct {
	ext       string
	mediaType string
}{
	{".svg", "image/svg+xml"},
	{".png", "image/png"},
}

// Mark is a raw brand mark image.
type Mark struct {
	MediaType string
	Data      []byte
}

// DataURI encodes the mark as a base64 data URI usable as an img src.
func (m Mark) DataURI() string {
	return "data:" + m.MediaType + ";base64," + base64.StdEncoding.EncodeToString(m.Data)
}

// AssetLoader defines the contract for loading brand marks.
// Implementations may load from embedded assets, filesystem, object storage, etc.
type AssetLoader interface {
	// LoadMark loads the mark of the given kind ("logo", "icon") for a theme
	// ("light", "dark").
	// Returns ErrMarkNotFound if the mark doesn't exist.
	// Returns ErrInvalidAssetName if theme or kind contain invalid characters.
	LoadMark(theme, kind string) (Mark, error)
}
