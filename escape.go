package brandprint

import "strings"

// htmlEscaper replaces the HTML-significant characters in a single pass.
// The output of one replacement is never rescanned, which is equivalent to
// replacing "&" first and the remaining characters afterwards.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape makes untrusted text safe to embed as HTML element content or inside
// a double-quoted attribute.
//
// Single quotes are left untouched: generated markup only ever uses
// double-quoted attributes. Escape is not idempotent; escaping "&amp;"
// yields "&amp;amp;".
func Escape(text string) string {
	return htmlEscaper.Replace(text)
}
