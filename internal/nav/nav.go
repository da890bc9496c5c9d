package nav

import (
	"path"
	"strings"

	"floorcalchub.com/floorcalc-web/internal/catalog"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/calculators"
	LabelKey string // i18n key, e.g. "nav.calculators"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
// Active marks the current page; it renders as plain text without a link.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/calculators", LabelKey: "nav.calculators"},
	{Path: "/guides", LabelKey: "nav.guides"},
	{Path: "/about", LabelKey: "nav.about"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/guides" or "/guides/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path.
// Rules:
// - Always start with Home
// - Known top-level sections use nav label keys
// - Calculator routes use the catalog title
// - Anything else falls back to a prettified segment label
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", LabelKey: "nav.home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	if clean == "." {
		clean = "/"
	}
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	href := ""
	for i, seg := range parts {
		if seg == "" {
			continue
		}
		href = href + "/" + seg
		c := Crumb{Href: href, Active: i == len(parts)-1}
		if i == 0 {
			for _, it := range Main {
				if it.Path == href {
					c.LabelKey = it.LabelKey
					break
				}
			}
		}
		if calc, ok := catalog.ByRoute(href); ok {
			c.Label = calc.Title
		} else {
			c.Label = titleFromSegment(seg)
		}
		crumbs = append(crumbs, c)
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
