package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadMark loads a built-in mark using the default embedded loader.
// Returns ErrMarkNotFound if the mark does not exist.
// Returns ErrInvalidAssetName if theme or kind contain path separators or traversal.
func LoadMark(theme, kind string) (Mark, error) {
	return defaultLoader.LoadMark(theme, kind)
}
