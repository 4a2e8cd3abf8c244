package brandprint

import (
	"fmt"
	"strings"

	"github.com/alnah/go-brandprint/internal/assets"
)

// ThemeID selects the palette and default marks of a template.
type ThemeID string

// Themes.
const (
	ThemeLight ThemeID = "light"
	ThemeDark  ThemeID = "dark"
)

// Locale selects the fixed copy of a template.
type Locale string

// Locales.
const (
	LocaleEnglish Locale = "en"
	LocaleSpanish Locale = "es"
)

// spanishSuffix marks Spanish templates in the wire identifier.
const spanishSuffix = "-es"

// taglineSpanish replaces the brand tagline on every Spanish template.
const taglineSpanish = "Disciplina militar. Precisión de oficio."

// TemplateID is the structured form of a template identifier.
// The zero value is the light English template.
type TemplateID struct {
	Theme  ThemeID
	Locale Locale
}

// Built-in template identifiers.
var (
	TemplateLight   = TemplateID{Theme: ThemeLight, Locale: LocaleEnglish}
	TemplateLightES = TemplateID{Theme: ThemeLight, Locale: LocaleSpanish}
	TemplateDark    = TemplateID{Theme: ThemeDark, Locale: LocaleEnglish}
	TemplateDarkES  = TemplateID{Theme: ThemeDark, Locale: LocaleSpanish}
)

// TemplateIDs returns the closed set of template identifiers.
func TemplateIDs() []TemplateID {
	return []TemplateID{TemplateLight, TemplateLightES, TemplateDark, TemplateDarkES}
}

// String returns the wire identifier: "light", "light-es", "dark" or "dark-es".
func (id TemplateID) String() string {
	theme := ThemeLight
	if id.Theme == ThemeDark {
		theme = ThemeDark
	}
	if id.Locale == LocaleSpanish {
		return string(theme) + spanishSuffix
	}
	return string(theme)
}

// ParseTemplateID reads a wire identifier. The theme is dark iff the id
// starts with "dark" and the locale is Spanish iff it ends with "-es"; the
// two axes are independent. Any other input maps to light English.
func ParseTemplateID(s string) TemplateID {
	id := TemplateLight
	if strings.HasPrefix(s, string(ThemeDark)) {
		id.Theme = ThemeDark
	}
	if strings.HasSuffix(s, spanishSuffix) {
		id.Locale = LocaleSpanish
	}
	return id
}

// Palette holds the eight color roles used by every template.
type Palette struct {
	Background  string
	Name        string
	Secondary   string
	Detail      string
	Muted       string
	Placeholder string
	Accent      string
	Rule        string
}

var (
	lightPalette = Palette{
		Background:  "#ffffff",
		Name:        "#1a1a1a",
		Secondary:   "#4d4d4d",
		Detail:      "#595959",
		Muted:       "#808080",
		Placeholder: "#cccccc",
		Accent:      "#1a56db",
		Rule:        "#cccccc",
	}
	darkPalette = Palette{
		Background:  "#09090b",
		Name:        "#fafafa",
		Secondary:   "#a1a1aa",
		Detail:      "#71717a",
		Muted:       "#52525b",
		Placeholder: "#3f3f46",
		Accent:      "#2563eb",
		Rule:        "#27272a",
	}
)

// PaletteFor returns the palette of a theme. Unknown themes get the light
// palette.
func PaletteFor(theme ThemeID) Palette {
	if theme == ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// Marks are the default logo and icon image sources of a theme.
type Marks struct {
	Logo string
	Icon string
}

// Theme bundles everything a generator needs to style a template.
type Theme struct {
	ID      ThemeID
	Palette Palette
	Marks   Marks
}

// logo returns the request logo when supplied, otherwise the default mark.
func (t Theme) logo(req Request) string {
	if req.Logo != "" {
		return req.Logo
	}
	return t.Marks.Logo
}

// icon returns the request icon when supplied, otherwise the default mark.
func (t Theme) icon(req Request) string {
	if req.Icon != "" {
		return req.Icon
	}
	return t.Marks.Icon
}

// builtinMarks are decoded once from the embedded resources.
var builtinMarks = mustLoadMarks(assets.NewEmbeddedLoader())

// LoadMarks reads the logo and icon of both themes from loader.
func LoadMarks(loader assets.AssetLoader) (light, dark Marks, err error) {
	if light, err = loadThemeMarks(loader, ThemeLight); err != nil {
		return Marks{}, Marks{}, err
	}
	if dark, err = loadThemeMarks(loader, ThemeDark); err != nil {
		return Marks{}, Marks{}, err
	}
	return light, dark, nil
}

func loadThemeMarks(loader assets.AssetLoader, theme ThemeID) (Marks, error) {
	logo, err := loader.LoadMark(string(theme), assets.KindLogo)
	if err != nil {
		return Marks{}, fmt.Errorf("loading %s logo: %w", theme, err)
	}
	icon, err := loader.LoadMark(string(theme), assets.KindIcon)
	if err != nil {
		return Marks{}, fmt.Errorf("loading %s icon: %w", theme, err)
	}
	return Marks{Logo: logo.DataURI(), Icon: icon.DataURI()}, nil
}

func mustLoadMarks(loader assets.AssetLoader) map[ThemeID]Marks {
	light, dark, err := LoadMarks(loader)
	if err != nil {
		panic("brandprint: embedded marks: " + err.Error())
	}
	return map[ThemeID]Marks{ThemeLight: light, ThemeDark: dark}
}

// ResolveTheme maps a wire template identifier to its theme, using the
// built-in default marks.
func ResolveTheme(templateID string) Theme {
	theme := ParseTemplateID(templateID).Theme
	return Theme{ID: theme, Palette: PaletteFor(theme), Marks: builtinMarks[theme]}
}

// ResolveTagline picks the tagline shown on a template. Spanish templates
// always use the fixed Spanish copy; otherwise the brand tagline wins over
// the field tagline.
func ResolveTagline(templateID, brandTagline, fieldTagline string) string {
	if ParseTemplateID(templateID).Locale == LocaleSpanish {
		return taglineSpanish
	}
	if brandTagline != "" {
		return brandTagline
	}
	return fieldTagline
}
