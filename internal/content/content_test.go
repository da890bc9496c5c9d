package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePage(t *testing.T, root, kind, lang, slug, body string) {
	t.Helper()
	dir := filepath.Join(root, kind, lang)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, slug+".md"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

const samplePage = `---
title: How to Measure a Room
summary: Get accurate square footage before you buy.
updated_at: 2026-02-10
seo:
  description: Step-by-step room measuring guide.
---
Measure the longest wall first.
`

func TestGetParsesFrontMatter(t *testing.T) {
	root := t.TempDir()
	writePage(t, root, "guides", "en", "how-to-measure-a-room", samplePage)
	s := NewStore(root)

	page, err := s.Get("guides", "how-to-measure-a-room", "en")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if page.Title != "How to Measure a Room" {
		t.Errorf("title = %q", page.Title)
	}
	if page.SEO.Description != "Step-by-step room measuring guide." {
		t.Errorf("seo description = %q", page.SEO.Description)
	}
	if page.Body != "Measure the longest wall first.\n" {
		t.Errorf("body = %q", page.Body)
	}
	want := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	if !page.UpdatedAt.Equal(want) {
		t.Errorf("updated_at = %v", page.UpdatedAt)
	}
}

func TestGetFallsBackToEnglish(t *testing.T) {
	root := t.TempDir()
	writePage(t, root, "guides", "en", "only-english", "---\ntitle: Only English\n---\nBody.\n")
	s := NewStore(root)

	page, err := s.Get("guides", "only-english", "es")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if page.Title != "Only English" {
		t.Errorf("title = %q", page.Title)
	}
}

func TestGetMissingPage(t *testing.T) {
	s := NewStore(t.TempDir())
	if _, err := s.Get("guides", "nope", "en"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetRejectsTraversalSlugs(t *testing.T) {
	s := NewStore(t.TempDir())
	for _, slug := range []string{"../etc/passwd", "", "a/b"} {
		if _, err := s.Get("guides", slug, "en"); !errors.Is(err, ErrNotFound) {
			t.Errorf("slug %q: expected ErrNotFound, got %v", slug, err)
		}
	}
}

func TestTitleFallsBackToPrettifiedSlug(t *testing.T) {
	root := t.TempDir()
	writePage(t, root, "guides", "en", "choosing-underlayment", "No front matter here.\n")
	s := NewStore(root)
	page, err := s.Get("guides", "choosing-underlayment", "en")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if page.Title != "Choosing Underlayment" {
		t.Errorf("title = %q", page.Title)
	}
}

func TestCacheServesUntilExpiry(t *testing.T) {
	root := t.TempDir()
	writePage(t, root, "guides", "en", "cached", "---\ntitle: First\n---\nv1\n")
	s := NewStore(root)
	s.SetCacheDuration(time.Hour)

	if p, _ := s.Get("guides", "cached", "en"); p.Title != "First" {
		t.Fatalf("first read title = %q", p.Title)
	}
	writePage(t, root, "guides", "en", "cached", "---\ntitle: Second\n---\nv2\n")
	if p, _ := s.Get("guides", "cached", "en"); p.Title != "First" {
		t.Fatalf("expected cached title, got %q", p.Title)
	}
	s.SetCacheDuration(time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if p, _ := s.Get("guides", "cached", "en"); p.Title != "Second" {
		t.Fatalf("expected fresh title after expiry, got %q", p.Title)
	}
}

func TestSlugs(t *testing.T) {
	root := t.TempDir()
	writePage(t, root, "guides", "en", "a", "x")
	writePage(t, root, "guides", "en", "b", "x")
	s := NewStore(root)
	slugs := s.Slugs("guides", "en")
	if len(slugs) != 2 {
		t.Fatalf("slugs = %v", slugs)
	}
	if s.Slugs("guides", "fr") != nil {
		t.Error("missing lang dir should yield nil")
	}
}
