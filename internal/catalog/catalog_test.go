package catalog

import (
	"strings"
	"testing"
)

func TestRoutesAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, c := range All() {
		if prev, ok := seen[c.Route]; ok {
			t.Fatalf("route %s shared by %q and %q", c.Route, prev, c.Slug)
		}
		seen[c.Route] = c.Slug
	}
}

func TestValidateRejectsDuplicateRoute(t *testing.T) {
	entries := []Calculator{
		{Slug: "a", Route: "/calculators/a"},
		{Slug: "b", Route: "/calculators/a"},
	}
	err := Validate(entries)
	if err == nil {
		t.Fatal("expected error for duplicate route")
	}
	if !strings.Contains(err.Error(), "/calculators/a") {
		t.Fatalf("expected offending route in error, got %v", err)
	}
}

func TestValidateRejectsEmptyRoute(t *testing.T) {
	if err := Validate([]Calculator{{Slug: "a"}}); err == nil {
		t.Fatal("expected error for empty route")
	}
}

func TestLookups(t *testing.T) {
	c, ok := BySlug("tile")
	if !ok {
		t.Fatal("expected tile calculator")
	}
	if c.Route != "/calculators/tile" {
		t.Fatalf("unexpected route %q", c.Route)
	}
	byRoute, ok := ByRoute(c.Route)
	if !ok || byRoute.Slug != "tile" {
		t.Fatalf("ByRoute mismatch: %+v ok=%v", byRoute, ok)
	}
	if _, ok := BySlug("nope"); ok {
		t.Fatal("expected miss for unknown slug")
	}
	if _, ok := ByRoute("/calculators/nope"); ok {
		t.Fatal("expected miss for unknown route")
	}
}

func TestRoutesLiveUnderCalculators(t *testing.T) {
	for _, c := range All() {
		if !strings.HasPrefix(c.Route, "/calculators/") {
			t.Errorf("%s: route %q outside /calculators/", c.Slug, c.Route)
		}
		if c.Route != "/calculators/"+c.Slug {
			t.Errorf("%s: route %q does not match slug", c.Slug, c.Route)
		}
	}
}
