package brandprint

import "strings"

// Asset family identifiers.
const (
	AssetBusinessCard = "business-card"
	AssetEnvelope     = "envelope"
	AssetSticker      = "sticker"
)

// fallbackMessage is shown when no generator matches a request.
const fallbackMessage = "Template preview not available"

// registerBuiltins registers every built-in family under every template id.
func registerBuiltins(r *Registry) {
	for _, id := range TemplateIDs() {
		r.Register(AssetBusinessCard, id, businessCard(id))
		r.Register(AssetEnvelope, id, envelope(id))
		r.Register(AssetSticker, id, sticker(id))
	}
}

// businessCard renders a two-sided card. The front carries the identity
// block and contact lines; the back carries the marks and the tagline.
func businessCard(id TemplateID) Generator {
	wire := id.String()
	return func(req Request, theme Theme) string {
		asset := req.Asset
		tagline := Escape(ResolveTagline(wire, req.Tagline, req.Fields["tagline"]))
		logo := theme.logo(req)

		var front strings.Builder
		front.WriteString(`<div class="card">`)
		front.WriteString(`<div class="top">` + logoImg(logo, "48px", "120px") + `<div class="accent"></div></div>`)
		front.WriteString(`<div>`)
		front.WriteString(`<div class="name">` + Escape(req.Fields["name"]) + `</div>`)
		front.WriteString(`<div class="sub">` + Escape(req.Fields["title"]) + `</div>`)
		front.WriteString(`<div class="tagline">` + tagline + `</div>`)
		front.WriteString(`<div class="contact"><p>` + Escape(req.Fields["email"]) + `</p><p>` + Escape(req.Fields["phone"]) + `</p></div>`)
		front.WriteString(`</div></div>`)

		back := `<div class="back">` +
			`<img src="` + theme.icon(req) + `" alt="Icon" class="icon">` +
			`<img src="` + logo + `" alt="Logo" class="logo">` +
			`<div class="tagline">` + tagline + `</div>` +
			`</div>`

		var body string
		switch req.Page {
		case PageFront:
			body = front.String()
		case PageBack:
			body = back
		default:
			body = front.String() + back
		}
		css := buildBusinessCardCSS(asset.Width, asset.Height, theme.Palette)
		return Wrap(asset.Width, asset.Height, theme.Palette.Background, css, body)
	}
}

// envelope renders a #10 envelope face. Addresses keep their line breaks
// through CSS, so multi-line input is never split into elements.
func envelope(TemplateID) Generator {
	return func(req Request, theme Theme) string {
		asset := req.Asset
		body := `<div class="env">` +
			`<div class="from">` +
			logoImg(theme.logo(req), "72px", "202px") +
			`<div class="from-name">` + Escape(req.Fields["fromName"]) + `</div>` +
			`<div class="from-addr">` + Escape(req.Fields["fromAddress"]) + `</div>` +
			`</div>` +
			`<div class="to">` +
			`<div class="to-name">` + Escape(req.Fields["toName"]) + `</div>` +
			`<div class="to-addr">` + Escape(req.Fields["toAddress"]) + `</div>` +
			`</div>` +
			`<div class="rule"></div>` +
			`</div>`
		css := buildEnvelopeCSS(asset.Width, asset.Height, theme.Palette)
		return Wrap(asset.Width, asset.Height, theme.Palette.Background, css, body)
	}
}

// sticker renders the brand marks and tagline. Stickers have no editable
// fields, so only the brand tagline is considered.
func sticker(id TemplateID) Generator {
	wire := id.String()
	return func(req Request, theme Theme) string {
		asset := req.Asset
		body := `<div class="sticker">` +
			`<img src="` + theme.icon(req) + `" alt="Icon" class="icon">` +
			`<img src="` + theme.logo(req) + `" alt="Logo" class="logo">` +
			`<div class="tagline">` + Escape(ResolveTagline(wire, req.Tagline, "")) + `</div>` +
			`</div>`
		css := buildStickerCSS(asset.Width, asset.Height, theme.Palette)
		return Wrap(asset.Width, asset.Height, theme.Palette.Background, css, body)
	}
}

// fallback renders a centered placeholder. Its theme follows the request's
// dark flag because no template id could be matched.
func fallback(req Request) string {
	c := lightPalette
	if req.Dark {
		c = darkPalette
	}
	asset := req.Asset
	body := `<div class="page"><p class="msg">` + fallbackMessage + `</p></div>`
	return Wrap(asset.Width, asset.Height, c.Background, buildFallbackCSS(asset.Width, asset.Height, c), body)
}
