package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-brandprint"
	"github.com/alnah/go-brandprint/internal/yamlutil"
)

// Output formats for the assets command.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// runAssets lists the asset catalog, or one asset when an id is given.
func runAssets(args []string, env *Environment) error {
	f, positional, err := parseAssetsFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: assets takes at most one asset type", ErrUsage)
	}

	catalog := brandprint.AssetTypes()
	if len(positional) == 1 {
		asset, ok := brandprint.LookupAssetType(positional[0])
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAsset, positional[0])
		}
		catalog = []brandprint.AssetTypeConfig{asset}
	}

	switch f.format {
	case formatText:
		printCatalog(env.Stdout, catalog)
		return nil
	case formatYAML:
		out, err := yamlutil.Marshal(catalog)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(out)
		return err
	case formatJSON:
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog)
	}
	return fmt.Errorf("%w: %q (want %s, %s or %s)", ErrUnknownFormat, f.format, formatText, formatYAML, formatJSON)
}

// printCatalog writes a human summary: one block per asset.
func printCatalog(w io.Writer, catalog []brandprint.AssetTypeConfig) {
	for i, a := range catalog {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s  %s (%s x %s)\n", a.ID, a.Label, a.Width, a.Height)

		ids := make([]string, 0, len(a.Templates))
		for _, t := range a.Templates {
			ids = append(ids, t.ID)
		}
		fmt.Fprintf(w, "  templates: %s\n", strings.Join(ids, ", "))

		if len(a.Fields) == 0 {
			fmt.Fprintln(w, "  fields:    none")
			continue
		}
		keys := make([]string, 0, len(a.Fields))
		for _, fd := range a.Fields {
			switch {
			case fd.Required:
				keys = append(keys, fd.Key+"*")
			case fd.ReadOnly:
				keys = append(keys, fd.Key+" (read-only)")
			default:
				keys = append(keys, fd.Key)
			}
		}
		fmt.Fprintf(w, "  fields:    %s\n", strings.Join(keys, ", "))
	}
}
