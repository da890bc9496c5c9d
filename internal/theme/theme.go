// Package theme maps catalog color keys to CSS token pairs.
package theme

import "sort"

// Theme carries the class tokens a card needs: Tile is the icon background,
// Ink the icon foreground, Accent a hover/border tint.
type Theme struct {
	Tile   string
	Ink    string
	Accent string
}

// Default is the neutral palette entry used for unrecognized color keys.
var Default = Theme{Tile: "bg-stone-100", Ink: "text-stone-600", Accent: "border-stone-200"}

var palette = map[string]Theme{
	"amber":   {Tile: "bg-amber-100", Ink: "text-amber-700", Accent: "border-amber-200"},
	"oak":     {Tile: "bg-orange-100", Ink: "text-orange-800", Accent: "border-orange-200"},
	"sky":     {Tile: "bg-sky-100", Ink: "text-sky-700", Accent: "border-sky-200"},
	"teal":    {Tile: "bg-teal-100", Ink: "text-teal-700", Accent: "border-teal-200"},
	"rose":    {Tile: "bg-rose-100", Ink: "text-rose-700", Accent: "border-rose-200"},
	"indigo":  {Tile: "bg-indigo-100", Ink: "text-indigo-700", Accent: "border-indigo-200"},
	"slate":   {Tile: "bg-slate-200", Ink: "text-slate-700", Accent: "border-slate-300"},
	"emerald": {Tile: "bg-emerald-100", Ink: "text-emerald-700", Accent: "border-emerald-200"},
	"violet":  {Tile: "bg-violet-100", Ink: "text-violet-700", Accent: "border-violet-200"},
	"cyan":    {Tile: "bg-cyan-100", Ink: "text-cyan-700", Accent: "border-cyan-200"},
}

// Resolve returns the palette entry for key, or Default when the key is not
// part of the supported palette. It never fails.
func Resolve(key string) Theme {
	if t, ok := palette[key]; ok {
		return t
	}
	return Default
}

// Supported lists the known color keys in sorted order.
func Supported() []string {
	keys := make([]string, 0, len(palette))
	for k := range palette {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
