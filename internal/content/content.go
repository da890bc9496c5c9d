// Package content loads local markdown pages with YAML front matter.
//
// Pages live under <dir>/<kind>/<lang>/<slug>.md, e.g. content/guides/en/.
// There is no remote source: the site ships its copy in the repo.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a page cannot be located for any candidate lang.
var ErrNotFound = errors.New("content: not found")

// Page is a localized markdown page.
type Page struct {
	Kind      string
	Slug      string
	Lang      string
	Title     string
	Summary   string
	Body      string
	UpdatedAt time.Time
	SEO       PageSEO
}

// PageSEO holds optional metadata overrides.
type PageSEO struct {
	Title       string
	Description string
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	Lang      string `yaml:"lang"`
	UpdatedAt string `yaml:"updated_at"`
	SEO       struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"seo"`
}

const defaultDir = "content"

// Store reads and caches pages from a content directory.
type Store struct {
	dir string

	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]cacheEntry
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

// NewStore returns a Store rooted at dir with a 5 minute cache.
func NewStore(dir string) *Store {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultDir
	}
	return &Store{dir: dir, ttl: 5 * time.Minute, items: map[string]cacheEntry{}}
}

// SetCacheDuration overrides the cache TTL (primarily for tests).
func (s *Store) SetCacheDuration(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	s.mu.Lock()
	s.ttl = d
	s.items = map[string]cacheEntry{}
	s.mu.Unlock()
}

// Get fetches a localized page, preferring lang and falling back to English.
func (s *Store) Get(kind, slug, lang string) (Page, error) {
	kind = strings.TrimSpace(strings.ToLower(kind))
	if kind == "" {
		kind = "pages"
	}
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}
	lang = normalizeLang(lang)

	key := strings.Join([]string{kind, lang, slug}, "|")
	if page, ok := s.cached(key); ok {
		return page, nil
	}

	priority := []string{lang}
	if lang != "en" {
		priority = append(priority, "en")
	}
	for _, candidate := range priority {
		page, err := s.read(kind, slug, candidate)
		if err == nil {
			s.store(key, page)
			return page, nil
		}
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrNotFound) {
			continue
		}
		return Page{}, err
	}
	return Page{}, ErrNotFound
}

// Slugs lists the page slugs available for kind in lang, for the sitemap.
func (s *Store) Slugs(kind, lang string) []string {
	dir := filepath.Join(s.dir, kind, normalizeLang(lang))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var slugs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, ".md"))
	}
	return slugs
}

func (s *Store) read(kind, slug, lang string) (Page, error) {
	file := filepath.Join(s.dir, kind, lang, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		return Page{}, err
	}
	info, statErr := os.Stat(file)
	if statErr != nil {
		info = nil
	}
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("content: parse front matter %s: %w", file, err)
		}
	}
	page := Page{
		Kind:    kind,
		Slug:    slug,
		Lang:    firstNonEmpty(strings.TrimSpace(front.Lang), lang),
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Body:    body,
		SEO: PageSEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
		},
	}
	page.UpdatedAt = parseDate(front.UpdatedAt)
	if page.UpdatedAt.IsZero() && info != nil {
		page.UpdatedAt = info.ModTime()
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\uFEFF")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 {
		return "", ""
	}
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return slug
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") {
		return ""
	}
	if strings.ContainsRune(slug, os.PathSeparator) {
		return ""
	}
	return slug
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "en"
	}
	return lang
}

func (s *Store) cached(key string) (Page, bool) {
	now := time.Now()
	s.mu.RLock()
	entry, ok := s.items[key]
	s.mu.RUnlock()
	if !ok || now.After(entry.expires) {
		return Page{}, false
	}
	return entry.page, true
}

func (s *Store) store(key string, page Page) {
	s.mu.Lock()
	s.items[key] = cacheEntry{page: page, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
