package brandprint

import "fmt"

// buildBusinessCardCSS styles both faces of a business card. Each face is
// exactly one card in size and breaks to its own page.
func buildBusinessCardCSS(width, height string, c Palette) string {
	return fmt.Sprintf(`
  .card { width:%[1]s; height:%[2]s; background:%[3]s; display:flex; flex-direction:column; justify-content:space-between; padding:16px; page-break-after:always; }
  .top { display:flex; align-items:flex-start; justify-content:space-between; }
  .accent { width:32px; height:4px; background:%[4]s; margin-top:8px; }
  .name { font-size:14px; font-weight:600; color:%[5]s; margin-bottom:2px; }
  .sub { font-size:11px; color:%[6]s; margin-bottom:2px; }
  .tagline { font-size:11px; color:%[6]s; margin-bottom:8px; }
  .contact { font-size:11px; color:%[7]s; line-height:1.4; }
  .back { width:%[1]s; height:%[2]s; background:%[3]s; display:flex; flex-direction:column; align-items:center; justify-content:center; gap:8px; }
  .back .icon { max-height:50px; max-width:50px; object-fit:contain; }
  .back .logo { max-height:42px; max-width:210px; object-fit:contain; }
  .back .tagline { font-size:9px; color:%[6]s; margin:0; }
`, width, height, c.Background, c.Accent, c.Name, c.Secondary, c.Detail)
}

// buildEnvelopeCSS places the return address top-left, the recipient
// slightly below center and a thin rule along the bottom edge.
func buildEnvelopeCSS(width, height string, c Palette) string {
	return fmt.Sprintf(`
  .env { width:%[1]s; height:%[2]s; background:%[3]s; padding:24px 32px; position:relative; }
  .from { position:absolute; top:24px; left:32px; }
  .from-name { font-size:12px; font-weight:600; color:%[4]s; margin-bottom:2px; }
  .from-addr { font-size:10px; color:%[5]s; white-space:pre-line; }
  .to { position:absolute; top:50%%; left:50%%; transform:translate(-50%%,-30%%); text-align:center; }
  .to-name { font-size:14px; font-weight:600; color:%[4]s; margin-bottom:4px; }
  .to-addr { font-size:12px; color:%[5]s; white-space:pre-line; }
  .rule { position:absolute; bottom:24px; left:32px; right:32px; height:1px; background:%[6]s; }
`, width, height, c.Background, c.Name, c.Detail, c.Rule)
}

// buildStickerCSS centers the marks inside a rounded border.
func buildStickerCSS(width, height string, c Palette) string {
	return fmt.Sprintf(`
  .sticker { width:%[1]s; height:%[2]s; background:%[3]s; display:flex; flex-direction:column; align-items:center; justify-content:center; gap:16px; border:2px solid %[4]s; border-radius:12px; }
  .icon { max-height:75px; max-width:75px; object-fit:contain; }
  .logo { max-height:60px; max-width:270px; object-fit:contain; }
  .tagline { font-size:11px; color:%[5]s; margin-top:4px; }
`, width, height, c.Background, c.Rule, c.Secondary)
}

// buildFallbackCSS centers the placeholder message.
func buildFallbackCSS(width, height string, c Palette) string {
	return fmt.Sprintf(`
  .page { width:%[1]s; height:%[2]s; background:%[3]s; display:flex; align-items:center; justify-content:center; }
  .msg { font-size:14px; color:%[4]s; }
`, width, height, c.Background, c.Muted)
}
