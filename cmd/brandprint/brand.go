package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-brandprint"
	"github.com/alnah/go-brandprint/internal/config"
	"github.com/alnah/go-brandprint/internal/fileutil"
)

// maxMarkSize bounds logo and icon files inlined as data URIs.
const maxMarkSize = 2 << 20

// markMediaTypes maps supported image extensions to media types.
var markMediaTypes = map[string]string{
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// resolveMarkSource turns a logo or icon setting into an image source the
// browser can load from a temp file: valid URLs and data URIs pass through,
// files are inlined as base64 data URIs. Empty stays empty so the theme default
// applies.
func resolveMarkSource(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	if fileutil.IsURL(src) || fileutil.IsDataURI(src) {
		if err := brandprint.ValidateImageSource(src); err != nil {
			return "", fmt.Errorf("%w: %w", ErrUnsupportedMark, err)
		}
		return src, nil
	}

	mediaType, ok := markMediaTypes[strings.ToLower(filepath.Ext(src))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMark, src)
	}

	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMark, err)
	}
	if info.Size() > maxMarkSize {
		return "", fmt.Errorf("%w: %s is %d bytes (max %d)", ErrUnsupportedMark, src, info.Size(), maxMarkSize)
	}

	data, err := os.ReadFile(src) // #nosec G304 -- user-provided image path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMark, err)
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// mergeBrandFlags applies non-empty brand flags to cfg.
func mergeBrandFlags(f brandFlags, cfg *config.Config) {
	if f.logo != "" {
		cfg.Brand.Logo = f.logo
	}
	if f.icon != "" {
		cfg.Brand.Icon = f.icon
	}
	if f.tagline != "" {
		cfg.Brand.Tagline = f.tagline
	}
}

// brandProfile converts the brand section into the profile used to seed
// fields.
func brandProfile(b config.BrandConfig) brandprint.BrandProfile {
	return brandprint.BrandProfile{
		Name:    b.Name,
		Email:   b.Email,
		Phone:   b.Phone,
		Website: b.Website,
		Tagline: b.Tagline,
		Logo:    b.Logo,
		Icon:    b.Icon,
	}
}
