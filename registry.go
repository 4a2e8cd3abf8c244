package brandprint

import (
	"maps"
	"slices"
)

// keySeparator joins asset and template ids into a registry key.
const keySeparator = "::"

// Generator produces a complete HTML document for a request. Generators are
// pure: the same request and theme always yield the same document.
type Generator func(req Request, theme Theme) string

type registryEntry struct {
	id  TemplateID
	gen Generator
}

// Registry routes generation requests to generators by exact
// "<assetID>::<templateID>" key. Populate it before sharing; after that
// Generate is safe for concurrent use.
type Registry struct {
	entries map[string]registryEntry
	marks   map[ThemeID]Marks
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithMarks replaces the default marks used when a request carries no logo
// or icon.
func WithMarks(light, dark Marks) RegistryOption {
	return func(r *Registry) {
		r.marks = map[ThemeID]Marks{ThemeLight: light, ThemeDark: dark}
	}
}

// NewRegistry creates an empty registry using the embedded default marks.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries: make(map[string]registryEntry),
		marks:   builtinMarks,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewBuiltinRegistry creates a registry holding every built-in asset family
// and template.
func NewBuiltinRegistry(opts ...RegistryOption) *Registry {
	r := NewRegistry(opts...)
	registerBuiltins(r)
	return r
}

// registryKey builds the lookup key. No normalization is applied.
func registryKey(assetID, templateID string) string {
	return assetID + keySeparator + templateID
}

// Register binds gen to an asset family and template. A later registration
// for the same key replaces the earlier one.
func (r *Registry) Register(assetID string, id TemplateID, gen Generator) {
	r.entries[registryKey(assetID, id.String())] = registryEntry{id: id, gen: gen}
}

// Lookup reports whether a generator exists for the exact ids.
func (r *Registry) Lookup(assetID, templateID string) (Generator, bool) {
	e, ok := r.entries[registryKey(assetID, templateID)]
	if !ok {
		return nil, false
	}
	return e.gen, true
}

// Keys returns every registered key in sorted order.
func (r *Registry) Keys() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// Theme returns the palette and default marks of a theme for this registry.
func (r *Registry) Theme(id ThemeID) Theme {
	if id != ThemeDark {
		id = ThemeLight
	}
	return Theme{ID: id, Palette: PaletteFor(id), Marks: r.marks[id]}
}

// Generate renders req with the generator registered for its asset and
// template. Unknown combinations yield the fallback document; Generate never
// fails.
func (r *Registry) Generate(req Request) string {
	e, ok := r.entries[registryKey(req.Asset.ID, req.TemplateID)]
	if !ok {
		return fallback(req)
	}
	return e.gen(req, r.Theme(e.id.Theme))
}

// defaultRegistry is populated once at package init and never mutated.
var defaultRegistry = NewBuiltinRegistry()

// DefaultRegistry returns the shared built-in registry. Callers must not
// register into it.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Generate renders req with the built-in registry.
func Generate(req Request) string {
	return defaultRegistry.Generate(req)
}
