package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a theme or kind name is safe for use as a
// path component. Returns ErrInvalidAssetName if the name is empty or
// contains path separators, dots, or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

func validateMarkNames(theme, kind string) error {
	if err := ValidateAssetName(theme); err != nil {
		return err
	}
	return ValidateAssetName(kind)
}
