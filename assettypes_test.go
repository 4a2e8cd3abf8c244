package brandprint

import (
	"errors"
	"slices"
	"testing"
)

func TestAssetTypes_Valid(t *testing.T) {
	t.Parallel()

	for _, a := range AssetTypes() {
		t.Run(a.ID, func(t *testing.T) {
			t.Parallel()

			if err := a.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestAssetTypes_TemplatesMatchRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	for _, a := range AssetTypes() {
		for _, tpl := range a.Templates {
			if _, ok := r.Lookup(a.ID, tpl.ID); !ok {
				t.Errorf("%s offers template %q but no generator is registered", a.ID, tpl.ID)
			}
		}
	}
}

func TestAssetTypes_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := AssetTypes()
	first[0].Label = "mutated"
	first[0].Fields[0].Key = "mutated"

	second := AssetTypes()
	if second[0].Label == "mutated" || second[0].Fields[0].Key == "mutated" {
		t.Error("AssetTypes() should return an independent copy")
	}
}

func TestLookupAssetType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id         string
		wantOK     bool
		wantWidth  string
		wantHeight string
		wantFields []string
	}{
		{AssetBusinessCard, true, "3.5in", "2in", []string{"name", "title", "email", "phone", "tagline"}},
		{AssetEnvelope, true, "9.5in", "4.125in", []string{"fromName", "fromAddress", "toName", "toAddress"}},
		{AssetSticker, true, "3in", "2.5in", nil},
		{"poster", false, "", "", nil},
		{"business-card ", false, "", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()

			a, ok := LookupAssetType(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("LookupAssetType(%q) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if a.Width != tt.wantWidth || a.Height != tt.wantHeight {
				t.Errorf("size = %s x %s, want %s x %s", a.Width, a.Height, tt.wantWidth, tt.wantHeight)
			}
			var keys []string
			for _, f := range a.Fields {
				keys = append(keys, f.Key)
			}
			if !slices.Equal(keys, tt.wantFields) {
				t.Errorf("field keys = %v, want %v", keys, tt.wantFields)
			}
		})
	}
}

func TestAssetTypeConfig_Field(t *testing.T) {
	t.Parallel()

	a := mustAsset(t, AssetBusinessCard)

	f, ok := a.Field("tagline")
	if !ok {
		t.Fatal("Field(tagline) not found")
	}
	if !f.ReadOnly || f.Hint == "" {
		t.Errorf("tagline field = %+v, want read-only with hint", f)
	}
	if _, ok := a.Field("website"); ok {
		t.Error("Field(website) should not exist on business cards")
	}
	if !a.HasTemplate("dark-es") || a.HasTemplate("dark-fr") {
		t.Error("HasTemplate mismatch")
	}
}

func TestAssetTypeConfig_Validate_Errors(t *testing.T) {
	t.Parallel()


	tests := []struct {
		name    string
		mutate  func(*AssetTypeConfig)
		wantErr error
	}{
		{"empty id", func(a *AssetTypeConfig) { a.ID = "" }, ErrEmptyAssetID},
		{"bad width unit", func(a *AssetTypeConfig) { a.Width = "9.5ft" }, ErrInvalidLength},
		{"bad height number", func(a *AssetTypeConfig) { a.Height = "abcin" }, ErrInvalidLength},
		{"zero width", func(a *AssetTypeConfig) { a.Width = "0in"; a.PreviewWidth = 0 }, ErrInvalidAssetType},
		{"preview mismatch", func(a *AssetTypeConfig) { a.PreviewWidth = 900 }, ErrInvalidAssetType},
		{"no templates", func(a *AssetTypeConfig) { a.Templates = nil }, ErrInvalidAssetType},
		{"duplicate template", func(a *AssetTypeConfig) { a.Templates = append(a.Templates, a.Templates[0]) }, ErrInvalidAssetType},
		{"duplicate field", func(a *AssetTypeConfig) { a.Fields = append(a.Fields, a.Fields[0]) }, ErrInvalidAssetType},
		{"unknown field type", func(a *AssetTypeConfig) { a.Fields[0].Type = "date" }, ErrInvalidAssetType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := mustAsset(t, AssetEnvelope)
			tt.mutate(&a)
			err := a.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
