package assets

import (
	"embed"
	"fmt"
)

//go:embed marks/*
var marks embed.FS

// EmbeddedLoader loads marks from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadMark loads a built-in mark. Built-in marks are always SVG.
func (e *EmbeddedLoader) LoadMark(theme, kind string) (Mark, error) {
	if err := validateMarkNames(theme, kind); err != nil {
		return Mark{}, err
	}

	for _, mt := range markMediaTypes {
		data, err := marks.ReadFile("marks/" + theme + "/" + kind + mt.ext)
		if err == nil {
			return Mark{MediaType: mt.mediaType, Data: data}, nil
		}
	}

	return Mark{}, fmt.Errorf("%w: %s/%s", ErrMarkNotFound, theme, kind)
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
