package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"floorcalchub.com/floorcalc-web/internal/format"
	"floorcalchub.com/floorcalc-web/internal/handlers"
	mw "floorcalchub.com/floorcalc-web/internal/middleware"
	"floorcalchub.com/floorcalc-web/internal/nav"
)

var tmplCache *template.Template

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		"t": func(lang, key string) string {
			return i18nOrDefault(lang, key, key)
		},
		"fmtDate": format.FmtDate,
		// pre-marshaled structured data, embedded verbatim in script tags
		"jsonld": func(doc string) template.JS {
			return template.JS(doc)
		},
	}
	// Recursively discover and parse all .tmpl files. ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(cfg.TemplatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", cfg.TemplatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

func templates(w http.ResponseWriter) *template.Template {
	if cfg.Dev {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return nil
		}
		return tc
	}
	return tmplCache
}

// renderPage executes a full page template.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	renderTemplate(w, r, name, data)
}

// renderTemplate executes the named template (page or fragment).
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	t := templates(w)
	if t == nil {
		return
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}

// i18nOrDefault translates key, falling back to def when no entry exists.
func i18nOrDefault(lang, key, def string) string {
	if i18nBundle == nil {
		return def
	}
	if v := i18nBundle.T(lang, key); v != key {
		return v
	}
	return def
}

// absoluteURL resolves the request path against the configured public origin.
func absoluteURL(r *http.Request) string {
	return cfg.BaseURL + r.URL.Path
}

// buildAlternates lists hreflang alternates for every supported locale.
func buildAlternates(r *http.Request) []handlers.Alternate {
	if i18nBundle == nil {
		return nil
	}
	base := absoluteURL(r)
	alts := make([]handlers.Alternate, 0, len(i18nBundle.Supported())+1)
	for _, lang := range i18nBundle.Supported() {
		alts = append(alts, handlers.Alternate{Href: base + "?hl=" + lang, Hreflang: lang})
	}
	alts = append(alts, handlers.Alternate{Href: base, Hreflang: "x-default"})
	return alts
}

// basePage fills the layout fields shared by every page.
func basePage(r *http.Request) handlers.PageData {
	lang := mw.Lang(r)
	vm := handlers.PageData{
		Lang:      lang,
		Path:      r.URL.Path,
		Nav:       nav.Build(r.URL.Path),
		Analytics: cfg.Analytics,
		CSRFToken: mw.GetSession(r).CSRFToken,
	}
	vm.Breadcrumbs = handlers.BuildBreadcrumbs(cfg.BaseURL, r.URL.Path, func(key string) string {
		return i18nOrDefault(lang, key, "")
	})
	vm.SEO.Canonical = absoluteURL(r)
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.OG.SiteName = brandName(lang)
	vm.SEO.OG.Type = "website"
	vm.SEO.Twitter.Card = "summary_large_image"
	vm.SEO.Alternates = buildAlternates(r)
	return vm
}

func brandName(lang string) string {
	return i18nOrDefault(lang, "brand.name", "FloorCalc Hub")
}
