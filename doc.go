// Package brandprint generates print-ready HTML documents for branded
// physical assets (business cards, envelopes, stickers) and renders them to
// PDF.
//
// # Generation
//
// Generation is a pure function of a Request: the asset family and template
// id select a Generator from a Registry, the template id selects a theme
// (palette and default marks) and a locale, and the generator fills the
// template with escaped field values.
//
//	asset, _ := brandprint.LookupAssetType(brandprint.AssetBusinessCard)
//	html := brandprint.Generate(brandprint.Request{
//	    Asset:      asset,
//	    TemplateID: "dark-es",
//	    Fields:     map[string]string{"name": "Ana Ruiz", "email": "ana@example.com"},
//	})
//
// Every document pins its printed page to the physical size of the asset
// with zero margins, so the browser's print-to-PDF output is ready for a
// print shop. Unknown asset and template combinations produce a themed
// placeholder document instead of an error.
//
// # Template identifiers
//
// Template ids are "light", "light-es", "dark" and "dark-es". Ids starting
// with "dark" use the dark palette; ids ending in "-es" replace the brand
// tagline with fixed Spanish copy.
//
// # Rendering
//
// Converter renders documents to PDF in headless Chrome via go-rod:
//
//	conv, err := brandprint.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	res, err := conv.Convert(ctx, brandprint.Input{Request: req})
//
// Set ROD_BROWSER_BIN to use a pre-installed browser. ConverterPool runs
// several browsers for parallel renders.
//
// # Custom marks
//
// WithAssetPath loads default logo and icon marks from a directory laid out
// as {path}/marks/{light,dark}/{logo,icon}.{svg,png}. Missing files fall
// back to the embedded marks.
package brandprint
