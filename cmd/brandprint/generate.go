package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alnah/go-brandprint"
	"github.com/alnah/go-brandprint/internal/fileutil"
	"github.com/alnah/go-brandprint/internal/yamlutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// stdoutPath writes the document to standard output.
const stdoutPath = "-"

// runGenerate implements generate (HTML) and render (PDF).
func runGenerate(ctx context.Context, args []string, env *Environment, pdf bool) error {
	name := "generate"
	if pdf {
		name = "render"
	}

	f, positional, err := parseGenerateFlags(name, args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: %s expects exactly one asset type, got %d", ErrUsage, name, len(positional))
	}

	cfg, err := loadSettings(f.common)
	if err != nil {
		return err
	}
	mergeBrandFlags(f.brand, cfg)
	mergeRenderFlags(f.render, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	asset, ok := brandprint.LookupAssetType(positional[0])
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAsset, positional[0])
	}
	templateID := f.template
	if templateID == "" {
		templateID = brandprint.TemplateLight.String()
	}
	if !asset.HasTemplate(templateID) {
		return fmt.Errorf("%w: %q for %s", ErrUnknownTemplate, templateID, asset.ID)
	}
	page := brandprint.Page(f.page)
	if err := page.Validate(); err != nil {
		return err
	}

	fields, err := buildFields(asset, brandprint.SeedFields(asset, brandProfile(cfg.Brand)), f.fieldsFile, f.fields)
	if err != nil {
		return err
	}
	if missing := brandprint.MissingRequired(asset, fields); len(missing) > 0 {
		if pdf {
			return &missingFieldsError{keys: missing}
		}
		if !f.common.quiet {
			fmt.Fprintf(env.Stderr, "warning: empty required fields: %s\n", strings.Join(missing, ", "))
		}
	}

	logo, err := resolveMarkSource(cfg.Brand.Logo)
	if err != nil {
		return err
	}
	icon, err := resolveMarkSource(cfg.Brand.Icon)
	if err != nil {
		return err
	}

	opts, timeout, err := converterOptions(cfg)
	if err != nil {
		return err
	}
	renderer := env.NewRenderer(1, opts...)
	defer func() { _ = renderer.Close() }()

	req := brandprint.Request{
		Asset:      asset,
		TemplateID: templateID,
		Fields:     fields,
		Logo:       logo,
		Icon:       icon,
		Tagline:    cfg.Brand.Tagline,
		Dark:       brandprint.ParseTemplateID(templateID).Theme == brandprint.ThemeDark,
		Page:       page,
	}

	start := time.Now()
	renderCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	res, err := renderer.Convert(renderCtx, brandprint.Input{Request: req, HTMLOnly: !pdf})
	if err != nil {
		return fmt.Errorf("%s %s: %w", name, asset.ID, err)
	}

	data, ext := res.HTML, ".html"
	if pdf {
		data, ext = res.PDF, ".pdf"
	}
	outPath := resolveOutputPath(f.output, cfg.Output.DefaultDir, defaultBaseName(asset.ID, templateID, page), ext)
	if err := writeOutput(outPath, data, env); err != nil {
		return err
	}

	switch {
	case f.common.quiet || outPath == stdoutPath:
	case f.common.verbose:
		fmt.Fprintf(env.Stdout, "%s/%s -> %s (%v)\n", asset.ID, templateID, outPath, time.Since(start).Round(time.Millisecond))
	default:
		fmt.Fprintf(env.Stdout, "Created %s\n", outPath)
	}
	return nil
}

// buildFields layers the fields file and key=value pairs over seed.
// Values are formatted for their field type. Keys must belong to asset and
// read-only fields cannot be overridden.
func buildFields(asset brandprint.AssetTypeConfig, seed map[string]string, fieldsFile string, pairs []string) (map[string]string, error) {
	fields := maps.Clone(seed)
	if fields == nil {
		fields = make(map[string]string)
	}

	set := func(key, value string) error {
		field, ok := asset.Field(key)
		if !ok {
			keys := make([]string, 0, len(asset.Fields))
			for _, fd := range asset.Fields {
				keys = append(keys, fd.Key)
			}
			if len(keys) == 0 {
				return fmt.Errorf("%w: %q (%s has no fields)", ErrUnknownField, key, asset.ID)
			}
			return fmt.Errorf("%w: %q (available: %s)", ErrUnknownField, key, strings.Join(keys, ", "))
		}
		if field.ReadOnly {
			return fmt.Errorf("%w: %q; set it in the brand config", ErrReadOnlyField, key)
		}
		if field.Type == brandprint.FieldTextarea {
			value = strings.ReplaceAll(value, `\n`, "\n")
		}
		fields[key] = brandprint.FormatField(field.Type, value)
		return nil
	}

	if fieldsFile != "" {
		var fromFile map[string]string
		if err := yamlutil.ReadFile(fieldsFile, &fromFile, true); err != nil {
			if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
				return nil, fmt.Errorf("%w: %w", ErrReadFields, err)
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrUsage, fieldsFile, err)
		}
		for _, key := range slices.Sorted(maps.Keys(fromFile)) {
			if err := set(key, fromFile[key]); err != nil {
				return nil, err
			}
		}
	}

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidField, pair)
		}
		if err := set(strings.TrimSpace(key), value); err != nil {
			return nil, err
		}
	}
	return fields, nil
}

// defaultBaseName names output files <asset>-<template>[-<page>].
func defaultBaseName(assetID, templateID string, page brandprint.Page) string {
	name := assetID + "-" + templateID
	if page != brandprint.PageAll {
		name += "-" + string(page)
	}
	return fileutil.SanitizeFilename(name, "asset")
}

// resolveOutputPath picks the output file. An explicit file wins; a
// directory (existing, or ending in a separator) receives the default name;
// otherwise the default name goes into defaultDir.
func resolveOutputPath(flagOutput, defaultDir, baseName, ext string) string {
	if flagOutput == stdoutPath {
		return stdoutPath
	}
	if flagOutput != "" {
		if strings.HasSuffix(flagOutput, "/") || strings.HasSuffix(flagOutput, string(filepath.Separator)) {
			return filepath.Join(flagOutput, baseName+ext)
		}
		if info, err := os.Stat(flagOutput); err == nil && info.IsDir() {
			return filepath.Join(flagOutput, baseName+ext)
		}
		return flagOutput
	}
	return filepath.Join(defaultDir, baseName+ext)
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte, env *Environment) error {
	if path == stdoutPath {
		if _, err := env.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil { // #nosec G306 -- printable output is meant to be shared
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
