package seo

import (
	"encoding/xml"
	"strings"
)

// SitemapURL is one <url> entry in the sitemap.
type SitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// Sitemap renders a sitemap.xml document for the given relative paths,
// resolved against base. Paths already absolute are kept as-is.
func Sitemap(base string, paths []string) ([]byte, error) {
	base = strings.TrimRight(base, "/")
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range paths {
		loc := p
		if !strings.HasPrefix(p, "http://") && !strings.HasPrefix(p, "https://") {
			if !strings.HasPrefix(p, "/") {
				p = "/" + p
			}
			loc = base + p
		}
		u := SitemapURL{Loc: loc, ChangeFreq: "monthly"}
		if p == "/" {
			u.ChangeFreq = "weekly"
			u.Priority = "1.0"
		}
		set.URLs = append(set.URLs, u)
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
