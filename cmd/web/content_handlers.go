package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/net/html"

	"floorcalchub.com/floorcalc-web/internal/content"
	"floorcalchub.com/floorcalc-web/internal/format"
	mw "floorcalchub.com/floorcalc-web/internal/middleware"
)

var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

var htmlPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// keep heading anchors for the table of contents
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4")
	return p
}()

// TOCItem is one "On this page" entry extracted from rendered headings.
type TOCItem struct {
	ID    string
	Title string
	Level int
}

// ContentView is the rendered page payload.
type ContentView struct {
	Page    content.Page
	HTML    template.HTML
	TOC     []TOCItem
	Updated string
}

// GuideListItem is one row of the guides index.
type GuideListItem struct {
	Title   string
	Summary string
	Href    string
	Updated string
}

type renderedContentEntry struct {
	view ContentView
	etag string
}

var contentRenderCache = struct {
	mu    sync.RWMutex
	items map[string]renderedContentEntry
}{items: map[string]renderedContentEntry{}}

// GuidesHandler renders the guides index.
func GuidesHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := basePage(r)
	vm.Title = i18nOrDefault(lang, "guides.title", "Flooring guides")
	vm.SEO.Title = vm.Title + " | " + brandName(lang)
	vm.SEO.Description = i18nOrDefault(lang, "guides.seo.description", "Measuring, materials, and prep guides for flooring projects.")
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description

	var items []GuideListItem
	for _, slug := range contentStore.Slugs("guides", "en") {
		page, err := contentStore.Get("guides", slug, lang)
		if err != nil {
			continue
		}
		item := GuideListItem{Title: page.Title, Summary: page.Summary, Href: "/guides/" + page.Slug}
		if !page.UpdatedAt.IsZero() {
			item.Updated = format.FmtDate(page.UpdatedAt, lang)
		}
		items = append(items, item)
	}
	vm.Guides = items
	renderPage(w, r, "guides", vm)
}

// GuidePageHandler renders one markdown guide.
func GuidePageHandler(w http.ResponseWriter, r *http.Request) {
	serveContentPage(w, r, "guides", chi.URLParam(r, "slug"))
}

// AboutHandler renders the about page from content/pages.
func AboutHandler(w http.ResponseWriter, r *http.Request) {
	serveContentPage(w, r, "pages", "about")
}

func serveContentPage(w http.ResponseWriter, r *http.Request, kind, slug string) {
	lang := mw.Lang(r)
	entry, err := renderedContent(kind, slug, lang)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "content error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=600")
	w.Header().Set("ETag", entry.etag)
	if !entry.view.Page.UpdatedAt.IsZero() {
		w.Header().Set("Last-Modified", entry.view.Page.UpdatedAt.UTC().Format(http.TimeFormat))
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == entry.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	vm := basePage(r)
	vm.Title = entry.view.Page.Title
	vm.SEO.Title = firstNonEmpty(entry.view.Page.SEO.Title, entry.view.Page.Title) + " | " + brandName(lang)
	vm.SEO.Description = firstNonEmpty(entry.view.Page.SEO.Description, entry.view.Page.Summary)
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description
	vm.Content = entry.view
	renderPage(w, r, "content_page", vm)
}

func renderedContent(kind, slug, lang string) (renderedContentEntry, error) {
	key := strings.Join([]string{kind, lang, slug}, "|")
	contentRenderCache.mu.RLock()
	entry, ok := contentRenderCache.items[key]
	contentRenderCache.mu.RUnlock()
	if ok && !cfg.Dev {
		return entry, nil
	}

	page, err := contentStore.Get(kind, slug, lang)
	if err != nil {
		return renderedContentEntry{}, err
	}
	rendered, toc, err := renderMarkdown(page.Body)
	if err != nil {
		return renderedContentEntry{}, err
	}
	view := ContentView{Page: page, HTML: rendered, TOC: toc}
	if !page.UpdatedAt.IsZero() {
		view.Updated = format.FmtDate(page.UpdatedAt, lang)
	}
	sum := sha256.Sum256([]byte(lang + "|" + page.Body))
	entry = renderedContentEntry{view: view, etag: `W/"` + hex.EncodeToString(sum[:16]) + `"`}

	contentRenderCache.mu.Lock()
	contentRenderCache.items[key] = entry
	contentRenderCache.mu.Unlock()
	return entry, nil
}

// renderMarkdown converts markdown to sanitized HTML and extracts the
// heading outline for the table of contents.
func renderMarkdown(body string) (template.HTML, []TOCItem, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(body), &buf); err != nil {
		return "", nil, err
	}
	sanitized := htmlPolicy.SanitizeBytes(buf.Bytes())
	toc, err := extractTOC(sanitized)
	if err != nil {
		return "", nil, err
	}
	return template.HTML(sanitized), toc, nil
}

func extractTOC(doc []byte) ([]TOCItem, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, err
	}
	var toc []TOCItem
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "h2" || n.Data == "h3") {
			item := TOCItem{Level: 2}
			if n.Data == "h3" {
				item.Level = 3
			}
			for _, attr := range n.Attr {
				if attr.Key == "id" {
					item.ID = attr.Val
				}
			}
			item.Title = nodeText(n)
			if item.ID != "" && item.Title != "" {
				toc = append(toc, item)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return toc, nil
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
