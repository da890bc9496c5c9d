package handlers

import (
	"floorcalchub.com/floorcalc-web/internal/config"
	"floorcalchub.com/floorcalc-web/internal/nav"
	"floorcalchub.com/floorcalc-web/internal/seo"
)

// PageData is the shared view model for pages using the base layout.
type PageData struct {
	Title     string
	Lang      string
	SEO       SEOData
	Analytics config.Analytics

	Path        string
	Nav         []nav.RenderedItem
	MenuOpen    bool
	CSRFToken   string
	Breadcrumbs BreadcrumbView

	// Optional per-page view model payloads
	Home       any
	Calculator any
	Guides     any
	Guide      any
	Content    any
}

// SEOData is the head-metadata view model. JSONLD entries are pre-marshaled
// structured-data documents embedded verbatim into script tags.
type SEOData struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          seo.OpenGraph
	Twitter     seo.Twitter
	Alternates  []Alternate
	JSONLD      []string
}

// Alternate is one hreflang link entry.
type Alternate struct {
	Href     string
	Hreflang string
}
