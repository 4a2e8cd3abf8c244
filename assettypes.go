package brandprint

import (
	"fmt"
	"math"
	"slices"
)

// FieldType is the input kind of an asset field.
type FieldType string

// Field types.
const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldTel      FieldType = "tel"
	FieldTextarea FieldType = "textarea"
	FieldCurrency FieldType = "currency"
)

// Valid reports whether t is a known field type.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldEmail, FieldTel, FieldTextarea, FieldCurrency:
		return true
	}
	return false
}

// AssetField is one user-editable value of an asset.
type AssetField struct {
	Key         string    `json:"key" yaml:"key"`
	Label       string    `json:"label" yaml:"label"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Type        FieldType `json:"type" yaml:"type"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	ReadOnly    bool      `json:"readonly,omitempty" yaml:"readonly,omitempty"`
	Hint        string    `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// AssetTemplate is a template offered for an asset.
type AssetTemplate struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// AssetTypeConfig describes a printable asset family. Width and Height are
// CSS lengths; the preview size is the same area at 96 pixels per inch.
type AssetTypeConfig struct {
	ID            string          `json:"id" yaml:"id"`
	Label         string          `json:"label" yaml:"label"`
	Description   string          `json:"description" yaml:"description"`
	Width         string          `json:"width" yaml:"width"`
	Height        string          `json:"height" yaml:"height"`
	PreviewWidth  int             `json:"previewWidth" yaml:"previewWidth"`
	PreviewHeight int             `json:"previewHeight" yaml:"previewHeight"`
	Aspect        string          `json:"aspect" yaml:"aspect"`
	Templates     []AssetTemplate `json:"templates" yaml:"templates"`
	Fields        []AssetField    `json:"fields" yaml:"fields"`
}

// Validate checks that the configuration is internally consistent.
func (a *AssetTypeConfig) Validate() error {
	if a.ID == "" {
		return ErrEmptyAssetID
	}

	width, err := ParseLength(a.Width)
	if err != nil {
		return fmt.Errorf("%w: %s width: %w", ErrInvalidAssetType, a.ID, err)
	}
	height, err := ParseLength(a.Height)
	if err != nil {
		return fmt.Errorf("%w: %s height: %w", ErrInvalidAssetType, a.ID, err)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %s has a non-positive dimension", ErrInvalidAssetType, a.ID)
	}
	if a.PreviewWidth != int(math.Round(width*PixelsPerInch)) ||
		a.PreviewHeight != int(math.Round(height*PixelsPerInch)) {
		return fmt.Errorf("%w: %s preview %dx%d does not match %s x %s",
			ErrInvalidAssetType, a.ID, a.PreviewWidth, a.PreviewHeight, a.Width, a.Height)
	}

	if len(a.Templates) == 0 {
		return fmt.Errorf("%w: %s has no templates", ErrInvalidAssetType, a.ID)
	}
	templates := make(map[string]bool, len(a.Templates))
	for _, t := range a.Templates {
		if t.ID == "" || templates[t.ID] {
			return fmt.Errorf("%w: %s template id %q is empty or duplicated", ErrInvalidAssetType, a.ID, t.ID)
		}
		templates[t.ID] = true
	}

	keys := make(map[string]bool, len(a.Fields))
	for _, f := range a.Fields {
		if f.Key == "" || keys[f.Key] {
			return fmt.Errorf("%w: %s field key %q is empty or duplicated", ErrInvalidAssetType, a.ID, f.Key)
		}
		if !f.Type.Valid() {
			return fmt.Errorf("%w: %s field %q has unknown type %q", ErrInvalidAssetType, a.ID, f.Key, f.Type)
		}
		keys[f.Key] = true
	}
	return nil
}

// HasTemplate reports whether the asset offers the template id.
func (a *AssetTypeConfig) HasTemplate(id string) bool {
	return slices.ContainsFunc(a.Templates, func(t AssetTemplate) bool { return t.ID == id })
}

// Field returns the field with the given key.
func (a *AssetTypeConfig) Field(key string) (AssetField, bool) {
	i := slices.IndexFunc(a.Fields, func(f AssetField) bool { return f.Key == key })
	if i < 0 {
		return AssetField{}, false
	}
	return a.Fields[i], true
}

// builtinTemplates are offered by every built-in asset family.
func builtinTemplates() []AssetTemplate {
	return []AssetTemplate{
		{ID: TemplateLight.String(), Name: "English", Description: "Light background, English copy"},
		{ID: TemplateLightES.String(), Name: "Spanish", Description: "Light background, Spanish copy"},
		{ID: TemplateDark.String(), Name: "English (Dark)", Description: "Dark background, English copy"},
		{ID: TemplateDarkES.String(), Name: "Spanish (Dark)", Description: "Dark background, Spanish copy"},
	}
}

// AssetTypes returns the built-in asset families. The returned slice is a
// fresh copy on every call.
func AssetTypes() []AssetTypeConfig {
	return []AssetTypeConfig{
		{
			ID:            AssetBusinessCard,
			Label:         "Business Cards",
			Description:   `US Standard 3.5" × 2"`,
			Width:         "3.5in",
			Height:        "2in",
			PreviewWidth:  336,
			PreviewHeight: 192,
			Aspect:        "1.75/1",
			Templates:     builtinTemplates(),
			Fields: []AssetField{
				{Key: "name", Label: "Full Name", Placeholder: "Jane Smith", Type: FieldText, Required: true},
				{Key: "title", Label: "Job Title", Placeholder: "Director of Operations", Type: FieldText},
				{Key: "email", Label: "Email", Placeholder: "jane@company.com", Type: FieldEmail},
				{Key: "phone", Label: "Phone", Placeholder: "(555) 123-4567", Type: FieldTel},
				{Key: "tagline", Label: "Tagline", Type: FieldText, ReadOnly: true, Hint: "Edit in Branding → Company Info"},
			},
		},
		{
			ID:            AssetEnvelope,
			Label:         "Envelopes",
			Description:   `#10 Envelope 9.5" × 4.125"`,
			Width:         "9.5in",
			Height:        "4.125in",
			PreviewWidth:  912,
			PreviewHeight: 396,
			Aspect:        "9.5/4.125",
			Templates:     builtinTemplates(),
			Fields: []AssetField{
				{Key: "fromName", Label: "From Name", Placeholder: "Company Name", Type: FieldText, Required: true},
				{Key: "fromAddress", Label: "From Address", Placeholder: "123 Main St\nCity, ST 12345", Type: FieldTextarea},
				{Key: "toName", Label: "To Name", Placeholder: "Recipient Name", Type: FieldText, Required: true},
				{Key: "toAddress", Label: "To Address", Placeholder: "456 Oak Ave\nCity, ST 67890", Type: FieldTextarea},
			},
		},
		{
			ID:            AssetSticker,
			Label:         "Stickers",
			Description:   `3" × 2.5" Rectangle`,
			Width:         "3in",
			Height:        "2.5in",
			PreviewWidth:  288,
			PreviewHeight: 240,
			Aspect:        "3/2.5",
			Templates:     builtinTemplates(),
			Fields:        []AssetField{},
		},
	}
}

// LookupAssetType returns the built-in asset family with the given id.
func LookupAssetType(id string) (AssetTypeConfig, bool) {
	for _, a := range AssetTypes() {
		if a.ID == id {
			return a, true
		}
	}
	return AssetTypeConfig{}, false
}
