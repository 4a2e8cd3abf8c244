// Package fileutil provides file and path helpers shared by the renderer
// and the CLI.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// tempPrefix names temporary documents handed to the browser.
const tempPrefix = "brandprint-"

// maxFilenameLength keeps generated names well under filesystem limits.
const maxFilenameLength = 120

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", tempPrefix+"*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. Any string containing / or \ is a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like an http(s) URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// IsDataURI returns true if the string is an inline data URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// SanitizeFilename reduces name to a portable file name stem: letters,
// digits, dot and underscore survive; runs of anything else collapse to a
// single dash and runs of dots to a single dot, so ".." never survives.
// Returns fallback when nothing usable remains.
func SanitizeFilename(name, fallback string) string {
	var b strings.Builder
	var last rune
	for _, r := range name {
		switch {
		case r == '.' && last == '.':
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.'):
			b.WriteRune(r)
			last = r
		case last != '-' && b.Len() > 0:
			b.WriteByte('-')
			last = '-'
		}
	}
	s := strings.Trim(b.String(), "-.")
	if len(s) > maxFilenameLength {
		s = strings.Trim(s[:maxFilenameLength], "-.")
	}
	if s == "" {
		return fallback
	}
	return s
}
