package handlers

import (
	"fmt"
	"html/template"
	"strings"

	"floorcalchub.com/floorcalc-web/internal/catalog"
	"floorcalchub.com/floorcalc-web/internal/faq"
	"floorcalchub.com/floorcalc-web/internal/icons"
	"floorcalchub.com/floorcalc-web/internal/nav"
	"floorcalchub.com/floorcalc-web/internal/seo"
	"floorcalchub.com/floorcalc-web/internal/theme"
)

// Card is one calculator rendered as a navigable grid cell: resolved icon,
// resolved theme, and a link to the calculator's route.
type Card struct {
	Title       string
	Description string
	Route       string
	Icon        template.HTML
	Theme       theme.Theme
}

// BuildCards resolves icon and color keys for each descriptor. Unknown keys
// degrade to the default glyph and neutral palette, never an error.
func BuildCards(entries []catalog.Calculator) []Card {
	cards := make([]Card, 0, len(entries))
	for _, c := range entries {
		cards = append(cards, Card{
			Title:       c.Title,
			Description: c.Description,
			Route:       c.Route,
			Icon:        icons.Resolve(c.Icon),
			Theme:       theme.Resolve(c.Color),
		})
	}
	return cards
}

// QuickCell is one cell of the quick-navigation grid.
type QuickCell struct {
	Name        string
	Route       string
	Description string
	Icon        template.HTML
}

// BuildQuickNav renders the curated quick links with resolved glyphs.
func BuildQuickNav() []QuickCell {
	cells := make([]QuickCell, 0, len(nav.Quick))
	for _, q := range nav.Quick {
		cells = append(cells, QuickCell{
			Name:        q.Name,
			Route:       q.Route,
			Description: q.Description,
			Icon:        icons.Resolve(q.Icon),
		})
	}
	return cells
}

// FAQItem is one accordion row. FragURL carries the precomputed next state,
// so activating the open row collapses it and any other row opens instead.
type FAQItem struct {
	Index    int
	Question string
	Answer   string
	Open     bool
	FragURL  string
}

// FAQView is the accordion view model plus its FAQPage JSON-LD projection,
// which always covers every entry regardless of the open index.
type FAQView struct {
	Key    string
	Open   int
	Items  []FAQItem
	JSONLD string
}

// BuildFAQ assembles the accordion for key with openIndex normalized against
// the entry count.
func BuildFAQ(key string, entries []faq.Entry, openIndex int) FAQView {
	open := faq.Clamp(openIndex, len(entries))
	view := FAQView{
		Key:    key,
		Open:   open,
		JSONLD: seo.JSON(seo.FAQPage(entries)),
	}
	for i, e := range entries {
		view.Items = append(view.Items, FAQItem{
			Index:    i,
			Question: e.Question,
			Answer:   e.Answer,
			Open:     i == open,
			FragURL:  fmt.Sprintf("/fragments/faq?key=%s&open=%d", key, faq.Toggle(open, i)),
		})
	}
	return view
}

// BreadcrumbView pairs the visual trail with its BreadcrumbList JSON-LD.
type BreadcrumbView struct {
	Crumbs []nav.Crumb
	JSONLD string
}

// BuildBreadcrumbs derives the trail for path and its structured-data
// document. Labels may be i18n keys; resolve translates them for the JSON-LD
// so crawlers see the same text as visitors. The final crumb carries no item
// URL.
func BuildBreadcrumbs(baseURL, path string, resolve func(labelKey string) string) BreadcrumbView {
	crumbs := nav.Breadcrumbs(path)
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	base := strings.TrimRight(baseURL, "/")
	for _, c := range crumbs {
		item := seo.BreadcrumbItem{Name: c.Label}
		if c.LabelKey != "" && resolve != nil {
			if translated := resolve(c.LabelKey); translated != "" && translated != c.LabelKey {
				item.Name = translated
			}
		}
		if item.Name == "" {
			item.Name = c.LabelKey
		}
		if !c.Active && c.Href != "" {
			item.Item = base + c.Href
		}
		items = append(items, item)
	}
	return BreadcrumbView{
		Crumbs: crumbs,
		JSONLD: seo.JSON(seo.BreadcrumbList(items)),
	}
}
