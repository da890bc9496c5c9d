package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"floorcalchub.com/floorcalc-web/internal/faq"
)

func TestBreadcrumbListPositionsAndOptionalItem(t *testing.T) {
	doc := BreadcrumbList([]BreadcrumbItem{
		{Name: "Home", Item: "https://floorcalchub.com/"},
		{Name: "Calculators", Item: "https://floorcalchub.com/calculators"},
		{Name: "Flooring Cost"},
	})
	el, ok := doc["itemListElement"].([]map[string]any)
	if !ok {
		t.Fatalf("unexpected itemListElement type %T", doc["itemListElement"])
	}
	if len(el) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(el))
	}
	for i, entry := range el {
		if entry["position"] != i+1 {
			t.Errorf("entry %d: position = %v", i, entry["position"])
		}
	}
	if el[0]["item"] != "https://floorcalchub.com/" {
		t.Errorf("entry 1 item = %v", el[0]["item"])
	}
	if _, present := el[2]["item"]; present {
		t.Error("final crumb without href must omit item")
	}
	if el[2]["name"] != "Flooring Cost" {
		t.Errorf("final crumb name = %v", el[2]["name"])
	}
	if doc["@type"] != "BreadcrumbList" {
		t.Errorf("@type = %v", doc["@type"])
	}
}

func TestFAQPageCoversAllEntries(t *testing.T) {
	entries := []faq.Entry{
		{Question: "A?", Answer: "1"},
		{Question: "B?", Answer: "2"},
	}
	doc := FAQPage(entries)
	main, ok := doc["mainEntity"].([]map[string]any)
	if !ok {
		t.Fatalf("unexpected mainEntity type %T", doc["mainEntity"])
	}
	if len(main) != len(entries) {
		t.Fatalf("expected %d questions, got %d", len(entries), len(main))
	}
	for i, q := range main {
		if q["@type"] != "Question" || q["name"] != entries[i].Question {
			t.Errorf("question %d mismatch: %+v", i, q)
		}
		ans, ok := q["acceptedAnswer"].(map[string]any)
		if !ok || ans["text"] != entries[i].Answer {
			t.Errorf("answer %d mismatch: %+v", i, q["acceptedAnswer"])
		}
	}
	if doc["@context"] != "https://schema.org" || doc["@type"] != "FAQPage" {
		t.Errorf("bad envelope: %v %v", doc["@context"], doc["@type"])
	}
}

func TestJSONRoundTrips(t *testing.T) {
	s := JSON(WebSite("FloorCalc Hub", "https://floorcalchub.com"))
	if s == "" {
		t.Fatal("expected JSON output")
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["@type"] != "WebSite" {
		t.Errorf("@type = %v", decoded["@type"])
	}
}

func TestJSONUnmarshalableReturnsEmpty(t *testing.T) {
	if got := JSON(func() {}); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestSitemap(t *testing.T) {
	out, err := Sitemap("https://floorcalchub.com/", []string{"/", "/calculators/tile"})
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.Contains(s, "<loc>https://floorcalchub.com/</loc>") {
		t.Errorf("missing root loc: %s", s)
	}
	if !strings.Contains(s, "<loc>https://floorcalchub.com/calculators/tile</loc>") {
		t.Errorf("missing calculator loc: %s", s)
	}
	if !strings.Contains(s, "<priority>1.0</priority>") {
		t.Errorf("missing root priority: %s", s)
	}
}
