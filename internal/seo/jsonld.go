package seo

import (
	"encoding/json"

	"floorcalchub.com/floorcalc-web/internal/faq"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// BreadcrumbItem maps a crumb label to its absolute URL. Item stays empty for
// the non-navigable final crumb.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds a schema.org BreadcrumbList. Positions are 1-based in
// input order; an entry without an URL omits the item field rather than failing.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		entry := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
		}
		if it.Item != "" {
			entry["item"] = it.Item
		}
		el = append(el, entry)
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// FAQPage builds a schema.org FAQPage covering every entry, independent of
// which one the accordion currently shows.
func FAQPage(entries []faq.Entry) map[string]any {
	qs := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		qs = append(qs, map[string]any{
			"@type": "Question",
			"name":  e.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  e.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": qs,
	}
}
