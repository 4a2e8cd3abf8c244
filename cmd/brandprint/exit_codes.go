package main

import (
	"context"
	"errors"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-brandprint"
	"github.com/alnah/go-brandprint/internal/config"
	"github.com/alnah/go-brandprint/internal/delivery"
	"github.com/alnah/go-brandprint/internal/hints"
	"github.com/alnah/go-brandprint/internal/storage"
	"github.com/alnah/go-brandprint/internal/yamlutil"
)

// Exit codes for the brandprint CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful command
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// usageError marks a flag parsing failure. flag.ErrHelp passes through so
// -h exits cleanly.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return errors.Join(ErrUsage, err)
}

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if isBrowserError(err) {
		return ExitBrowser
	}

	if errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrReadFields) ||
		errors.Is(err, ErrReadMark) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownAsset) ||
		errors.Is(err, ErrUnknownTemplate) ||
		errors.Is(err, ErrUnknownField) ||
		errors.Is(err, ErrInvalidField) ||
		errors.Is(err, ErrReadOnlyField) ||
		errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrUnsupportedMark) ||
		errors.Is(err, ErrUnknownFormat) ||
		errors.Is(err, brandprint.ErrInvalidPage) ||
		errors.Is(err, brandprint.ErrInvalidImageSource) ||
		errors.Is(err, brandprint.ErrEmptyAssetID) ||
		errors.Is(err, brandprint.ErrInvalidAssetPath) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEnvParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrIncompleteDelivery) ||
		errors.Is(err, config.ErrIncompleteStorage) ||
		errors.Is(err, delivery.ErrInvalidConfig) ||
		errors.Is(err, storage.ErrInvalidConfig) ||
		errors.Is(err, yamlutil.ErrInputTooLarge) {
		return ExitUsage
	}

	return ExitGeneral
}

func isBrowserError(err error) bool {
	return errors.Is(err, brandprint.ErrBrowserConnect) ||
		errors.Is(err, brandprint.ErrPageCreate) ||
		errors.Is(err, brandprint.ErrPageLoad) ||
		errors.Is(err, brandprint.ErrPDFGeneration)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var missing *missingFieldsError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case isBrowserError(err):
		return hints.ForBrowserConnect()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(config.AppName))
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrUnknownAsset):
		return hints.ForUnknownAsset(assetIDs())
	case errors.Is(err, ErrUnknownTemplate):
		return hints.ForUnknownTemplate(templateIDs())
	case errors.Is(err, ErrUnsupportedMark), errors.Is(err, ErrReadMark):
		return hints.ForMarkImage()
	case errors.As(err, &missing):
		return hints.ForMissingFields(missing.keys)
	}
	return ""
}

func assetIDs() []string {
	var ids []string
	for _, a := range brandprint.AssetTypes() {
		ids = append(ids, a.ID)
	}
	return ids
}

func templateIDs() []string {
	var ids []string
	for _, id := range brandprint.TemplateIDs() {
		ids = append(ids, id.String())
	}
	return ids
}

// missingFieldsError lists required fields left blank.
type missingFieldsError struct {
	keys []string
}

func (e *missingFieldsError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.keys, ", ")
}

func (e *missingFieldsError) Unwrap() error {
	return ErrMissingFields
}
