package brandprint

import (
	"fmt"
	"strings"
)

// defaultFontFamily is the font stack of every generated document.
const defaultFontFamily = "system-ui, -apple-system, sans-serif"

// buildPrintResetCSS pins the printed page to the physical asset size with
// zero margins and forces backgrounds to print.
func buildPrintResetCSS(width, height, background string) string {
	return fmt.Sprintf(`
  * { margin: 0; padding: 0; box-sizing: border-box; }
  @page { size: %[1]s %[2]s; margin: 0; }
  html, body {
    width: %[1]s; height: %[2]s;
    margin: 0; padding: 0; background: %[3]s;
    -webkit-print-color-adjust: exact;
    print-color-adjust: exact;
    color-adjust: exact;
  }
  body { font-family: %[4]s; }
`, width, height, background, defaultFontFamily)
}

// Wrap assembles a complete single-file HTML document whose printed page
// size is width x height. The css and body fragments are inserted verbatim;
// callers escape any user text before building them.
func Wrap(width, height, background, css, body string) string {
	var buf strings.Builder
	buf.Grow(len(css) + len(body) + 512)
	buf.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"UTF-8\"><style>\n")
	buf.WriteString(buildPrintResetCSS(width, height, background))
	buf.WriteString("\n")
	buf.WriteString(css)
	buf.WriteString("\n</style></head><body>")
	buf.WriteString(body)
	buf.WriteString("</body></html>")
	return buf.String()
}

// logoImg renders an image constrained to a bounding box, preserving its
// aspect ratio.
func logoImg(src, maxHeight, maxWidth string) string {
	return `<img src="` + src + `" alt="Logo" style="max-height:` + maxHeight +
		`;max-width:` + maxWidth + `;object-fit:contain;">`
}
