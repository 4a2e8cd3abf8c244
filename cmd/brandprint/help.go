package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandprint <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate the print-ready HTML of an asset")
	fmt.Fprintln(w, "  render     Render an asset to PDF")
	fmt.Fprintln(w, "  assets     List asset types, templates and fields")
	fmt.Fprintln(w, "  serve      Start the HTTP API")
	fmt.Fprintln(w, "  doctor     Check Chrome and configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'brandprint help <command>' for details on a specific command.")
}

func printGenerateFlags(w io.Writer) {
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  asset    Asset type: business-card, envelope, sticker")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -t, --template <id>       Template: light, light-es, dark, dark-es (default: light)")
	fmt.Fprintln(w, "  -f, --field <key=value>   Field value, repeatable; \\n breaks address lines")
	fmt.Fprintln(w, "      --fields-file <path>  YAML file of field values")
	fmt.Fprintln(w, "      --page <face>         front or back (default: both)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Brand:")
	fmt.Fprintln(w, "      --logo <src>          Logo file, URL or data URI")
	fmt.Fprintln(w, "      --icon <src>          Icon file, URL or data URI")
	fmt.Fprintln(w, "      --tagline <text>      Brand tagline (English templates)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory, - for stdout")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom default marks (light/ and dark/)")
	fmt.Fprintln(w, "      --timeout <duration>  Rendering timeout (default: 30s)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandprint generate <asset> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate the self-contained HTML document of an asset. Required")
	fmt.Fprintln(w, "fields left empty are reported as warnings.")
	fmt.Fprintln(w)
	printGenerateFlags(w)
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandprint render <asset> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render an asset to a print-ready PDF with headless Chrome.")
	fmt.Fprintln(w, "Every required field must be set.")
	fmt.Fprintln(w)
	printGenerateFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, "  brandprint render business-card -t dark -f name=\"Jane Smith\" -f phone=5551234567")
}

// printAssetsUsage prints usage for the assets command.
func printAssetsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandprint assets [asset] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List asset types with their templates and fields. Required fields")
	fmt.Fprintln(w, "are marked with *.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -F, --format <fmt>        text, yaml or json (default: text)")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandprint serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the HTTP API. Orders are enabled when delivery is configured")
	fmt.Fprintln(w, "and published to object storage when a bucket is set.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -a, --addr <addr>         Listen address (default: :8080)")
	fmt.Fprintln(w, "      --env <env>           development or production")
	fmt.Fprintln(w, "  -w, --workers <n>         Concurrent browsers (0 = auto)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom default marks (light/ and dark/)")
	fmt.Fprintln(w, "      --timeout <duration>  Rendering timeout (default: 30s)")
	fmt.Fprintln(w, "  -q, --quiet               Only log warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose             Log at debug level")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BRANDPRINT_* variables override the config file, e.g.")
	fmt.Fprintln(w, "  BRANDPRINT_DELIVERY_SERVER_TOKEN, BRANDPRINT_STORAGE_BUCKET.")
	fmt.Fprintln(w, "  A .env file in the working directory is loaded first.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: brandprint doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that Chrome can be launched, the temp directory is writable")
	fmt.Fprintln(w, "and the configuration is valid. Exits 1 when any check fails.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Print the report as JSON")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "render":
		printRenderUsage(env.Stdout)
	case "assets":
		printAssetsUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: brandprint version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: brandprint help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
