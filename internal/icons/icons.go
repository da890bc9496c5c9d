// Package icons maps catalog icon keys to inline SVG glyphs.
package icons

import (
	"html/template"
	"sort"
)

// DefaultKey is the fallback glyph used for unrecognized icon keys.
const DefaultKey = "calculator"

// glyphs hold 24x24 stroke-style SVG bodies. The wrapping <svg> element is
// added by glyph() so the viewBox and ARIA attributes stay consistent.
var glyphs = map[string]string{
	"calculator": `<rect x="5" y="3" width="14" height="18" rx="2"/><line x1="8" y1="7" x2="16" y2="7"/><line x1="8" y1="11" x2="8" y2="11.01"/><line x1="12" y1="11" x2="12" y2="11.01"/><line x1="16" y1="11" x2="16" y2="11.01"/><line x1="8" y1="15" x2="8" y2="15.01"/><line x1="12" y1="15" x2="12" y2="18"/><line x1="16" y1="15" x2="16" y2="15.01"/>`,
	"coins":      `<circle cx="9" cy="9" r="6"/><path d="M14.8 7.2a6 6 0 1 1-7.6 7.6"/>`,
	"plank":      `<path d="M3 8h18v8H3z"/><line x1="9" y1="8" x2="9" y2="16"/><line x1="15" y1="8" x2="15" y2="16"/>`,
	"layers":     `<path d="M12 3 3 8l9 5 9-5-9-5z"/><path d="m3 13 9 5 9-5"/>`,
	"grid":       `<rect x="4" y="4" width="16" height="16" rx="1"/><line x1="12" y1="4" x2="12" y2="20"/><line x1="4" y1="12" x2="20" y2="12"/>`,
	"roll":       `<circle cx="7" cy="8" r="4"/><path d="M7 12h11a3 3 0 0 1 3 3v5H11"/><path d="M3 8v9a4 4 0 0 0 4 4"/>`,
	"wave":       `<path d="M3 9c2-3 4-3 6 0s4 3 6 0 4-3 6 0"/><path d="M3 15c2-3 4-3 6 0s4 3 6 0 4-3 6 0"/>`,
	"stairs":     `<path d="M3 20h4v-4h4v-4h4V8h4V4"/>`,
	"ruler":      `<rect x="2" y="9" width="20" height="6" rx="1"/><line x1="6" y1="9" x2="6" y2="12"/><line x1="10" y1="9" x2="10" y2="12"/><line x1="14" y1="9" x2="14" y2="12"/><line x1="18" y1="9" x2="18" y2="12"/>`,
	"cushion":    `<path d="M4 10c0-2 3-4 8-4s8 2 8 4v4c0 2-3 4-8 4s-8-2-8-4v-4z"/><path d="M4 12c0 2 3 4 8 4s8-2 8-4"/>`,
	"droplet":    `<path d="M12 3s6 6.5 6 11a6 6 0 0 1-12 0c0-4.5 6-11 6-11z"/>`,
}

// Resolve returns the glyph for key, falling back to the default calculator
// icon when the key is not in the supported set. It never fails.
func Resolve(key string) template.HTML {
	body, ok := glyphs[key]
	if !ok {
		body = glyphs[DefaultKey]
	}
	return glyph(body)
}

// Supported lists the known icon keys in sorted order.
func Supported() []string {
	keys := make([]string, 0, len(glyphs))
	for k := range glyphs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func glyph(body string) template.HTML {
	const open = `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.8" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`
	return template.HTML(open + body + `</svg>`)
}
