package main

import (
	"fmt"
	"net/http"

	"floorcalchub.com/floorcalc-web/internal/catalog"
	"floorcalchub.com/floorcalc-web/internal/seo"
)

// RobotsHandler serves robots.txt pointing crawlers at the sitemap.
func RobotsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /fragments/\n\nSitemap: %s/sitemap.xml\n", cfg.BaseURL)
}

// SitemapHandler serves the XML sitemap over all indexable routes.
func SitemapHandler(w http.ResponseWriter, r *http.Request) {
	paths := []string{"/", "/calculators"}
	for _, calc := range catalog.All() {
		paths = append(paths, calc.Route)
	}
	paths = append(paths, "/guides")
	for _, slug := range contentStore.Slugs("guides", "en") {
		paths = append(paths, "/guides/"+slug)
	}
	paths = append(paths, "/about")

	body, err := seo.Sitemap(cfg.BaseURL, paths)
	if err != nil {
		http.Error(w, "sitemap error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(body)
}
