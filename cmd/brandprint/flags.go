package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// brandFlags override the brand section of the config.
type brandFlags struct {
	logo    string
	icon    string
	tagline string
}

// renderFlags tune the browser.
type renderFlags struct {
	timeout   string
	assetPath string
}

// generateFlags holds flags for the generate and render commands.
type generateFlags struct {
	common     commonFlags
	brand      brandFlags
	render     renderFlags
	template   string
	page       string
	output     string
	fields     []string
	fieldsFile string
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	common  commonFlags
	render  renderFlags
	addr    string
	env     string
	workers int
}

// assetsFlags holds flags for the assets command.
type assetsFlags struct {
	format string
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

func addBrandFlags(fs *flag.FlagSet, f *brandFlags) {
	fs.StringVar(&f.logo, "logo", "", "logo file, URL or data URI")
	fs.StringVar(&f.icon, "icon", "", "icon file, URL or data URI")
	fs.StringVar(&f.tagline, "tagline", "", "brand tagline")
}

func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.timeout, "timeout", "", "PDF rendering timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom light/ and dark/ marks")
}

// newFlagSet returns a ContinueOnError flag set that reports to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseGenerateFlags parses generate/render flags and returns positional args.
func parseGenerateFlags(name string, args []string, w io.Writer) (*generateFlags, []string, error) {
	usage := printGenerateUsage
	if name == "render" {
		usage = printRenderUsage
	}
	fs := newFlagSet(name, w, usage)
	f := &generateFlags{}

	fs.StringVarP(&f.template, "template", "t", "", "template id: light, light-es, dark, dark-es")
	fs.StringVar(&f.page, "page", "", "face to render: front, back (default both)")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (- for stdout)")
	fs.StringArrayVarP(&f.fields, "field", "f", nil, "field value as key=value (repeatable)")
	fs.StringVar(&f.fieldsFile, "fields-file", "", "YAML file mapping field keys to values")

	addCommonFlags(fs, &f.common)
	addBrandFlags(fs, &f.brand)
	addRenderFlags(fs, &f.render)

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve flags.
func parseServeFlags(args []string, w io.Writer) (*serveFlags, []string, error) {
	fs := newFlagSet("serve", w, printServeUsage)
	f := &serveFlags{}

	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default :8080)")
	fs.StringVar(&f.env, "env", "", "server environment: development, production")
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent browsers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parseAssetsFlags parses assets flags.
func parseAssetsFlags(args []string, w io.Writer) (*assetsFlags, []string, error) {
	fs := newFlagSet("assets", w, printAssetsUsage)
	f := &assetsFlags{}

	fs.StringVarP(&f.format, "format", "F", formatText, "output format: text, yaml, json")

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}
