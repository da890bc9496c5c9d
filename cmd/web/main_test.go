package main

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"floorcalchub.com/floorcalc-web/internal/config"
	"floorcalchub.com/floorcalc-web/internal/content"
	"floorcalchub.com/floorcalc-web/internal/faq"
	"floorcalchub.com/floorcalc-web/internal/i18n"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg = config.Config{
		Env:          "test",
		BaseURL:      "https://floorcalchub.example",
		TemplatesDir: "../../templates",
		PublicDir:    "../../public",
		ContentDir:   "../../content",
		FAQDir:       "../../content/faq",
	}
	tc, err := parseTemplates()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	tmplCache = tc
	i18nBundle, err = i18n.Load(localeFS(), "en", []string{"en", "es"})
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}
	faqStore = faq.NewStore()
	if err := faqStore.LoadDir(cfg.FAQDir); err != nil {
		t.Fatalf("load faq: %v", err)
	}
	contentStore = content.NewStore(cfg.ContentDir)
	return newRouter()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func body(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return rec.Body.String()
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "ok" {
		t.Fatalf("body = %q, want ok", got)
	}
}

func TestHomePage(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	b := body(t, rec)
	for _, want := range []string{
		"Flooring Cost Calculator",
		"Tile Calculator",
		"quicknav-grid",
		`"@type":"FAQPage"`,
		`"@type":"WebSite"`,
	} {
		if !strings.Contains(b, want) {
			t.Errorf("home body missing %q", want)
		}
	}
}

func TestHomeSetsSessionCookie(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/")
	var session, csrf bool
	for _, c := range rec.Result().Cookies() {
		switch c.Name {
		case "FLOORCALC_WEB_SESSION":
			session = true
		case "csrf_token":
			csrf = true
		}
	}
	if !session || !csrf {
		t.Fatalf("session=%v csrf=%v, want both cookies set", session, csrf)
	}
}

func TestCalculatorPage(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/calculators/tile")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	b := body(t, rec)
	for _, want := range []string{
		"Tile Calculator",
		`"@type":"BreadcrumbList"`,
		`"@type":"FAQPage"`,
		"/fragments/estimate",
	} {
		if !strings.Contains(b, want) {
			t.Errorf("calculator body missing %q", want)
		}
	}
}

func TestCalculatorNotFound(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/calculators/no-such-calculator")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCalculatorBreadcrumbOmitsFinalItem(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/calculators/carpet")
	b := body(t, rec)
	if !strings.Contains(b, `"name":"Carpet Calculator"`) {
		t.Fatalf("breadcrumb JSON-LD missing calculator name")
	}
	if strings.Contains(b, `"item":"https://floorcalchub.example/calculators/carpet"`) {
		t.Fatalf("final breadcrumb crumb must not carry an item URL")
	}
}

func TestFAQFragmentToggle(t *testing.T) {
	h := newTestRouter(t)

	// opening entry 0: its own link must collapse, others must activate
	rec := get(t, h, "/fragments/faq?key=tile&open=0")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	b := body(t, rec)
	if !strings.Contains(b, "open=-1") {
		t.Errorf("open row should link back to collapsed state")
	}
	if !strings.Contains(b, `aria-expanded="true"`) {
		t.Errorf("open row should be expanded")
	}

	// out-of-range index collapses everything
	rec = get(t, h, "/fragments/faq?key=tile&open=99")
	if strings.Contains(body(t, rec), `aria-expanded="true"`) {
		t.Errorf("out-of-range index must render fully collapsed")
	}
}

func TestFAQFragmentUnknownKeyFallsBack(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/fragments/faq?key=nonsense")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(body(t, rec), "Are the calculators free to use?") {
		t.Errorf("unknown key should serve the site-wide set")
	}
}

func TestFAQOverrideFromDir(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/fragments/faq?key=epoxy")
	if !strings.Contains(body(t, rec), "etch the concrete") {
		t.Errorf("epoxy override set not loaded from content/faq")
	}
}

func TestMobileNavFragment(t *testing.T) {
	h := newTestRouter(t)

	rec := get(t, h, "/fragments/nav?path=/guides&open=1")
	b := body(t, rec)
	if !strings.Contains(b, "mobile-panel") {
		t.Errorf("open fragment should render the panel")
	}
	if !strings.Contains(b, `aria-current="page"`) {
		t.Errorf("current section should be marked active")
	}

	rec = get(t, h, "/fragments/nav?path=/guides&open=0")
	if strings.Contains(body(t, rec), "mobile-panel") {
		t.Errorf("closed fragment should not render the panel")
	}
}

func TestEstimateFragmentCSRF(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t))
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	client := &http.Client{Jar: jar}

	// prime session and CSRF cookies
	resp, err := client.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	var token string
	u, _ := url.Parse(srv.URL)
	for _, c := range jar.Cookies(u) {
		if c.Name == "csrf_token" {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("csrf_token cookie not set")
	}

	form := url.Values{"length": {"12"}, "width": {"10"}, "waste": {"10"}, "price": {"4.50"}}

	// without the header the request must be rejected
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/fragments/estimate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err = client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status without token = %d, want 403", resp.StatusCode)
	}

	// with the header the estimate renders
	req, _ = http.NewRequest(http.MethodPost, srv.URL+"/fragments/estimate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-CSRF-Token", token)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status with token = %d, want 200", resp.StatusCode)
	}
	got := string(raw)
	if !strings.Contains(got, "sq ft") {
		t.Errorf("estimate result missing area: %s", got)
	}
	if !strings.Contains(got, "$") {
		t.Errorf("estimate result missing cost: %s", got)
	}
}

func TestEstimateFragmentInvalidInput(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t))
	defer srv.Close()

	jar, _ := cookiejar.New(nil)
	client := &http.Client{Jar: jar}
	resp, err := client.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	var token string
	u, _ := url.Parse(srv.URL)
	for _, c := range jar.Cookies(u) {
		if c.Name == "csrf_token" {
			token = c.Value
		}
	}

	form := url.Values{"length": {"-3"}, "width": {"10"}}
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/fragments/estimate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-CSRF-Token", token)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(raw), "estimate-error") {
		t.Errorf("negative dimensions should render the error state")
	}
}

func TestGuidePage(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/guides/how-to-measure-a-room")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	b := body(t, rec)
	if !strings.Contains(b, "How to Measure a Room") {
		t.Errorf("guide title missing")
	}
	if !strings.Contains(b, `aria-label="On this page"`) {
		t.Errorf("guide should render a table of contents")
	}
}

func TestGuidePageConditionalGet(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/guides/choosing-underlayment")
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("guide response missing ETag")
	}

	req := httptest.NewRequest(http.MethodGet, "/guides/choosing-underlayment", nil)
	req.Header.Set("If-None-Match", etag)
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", rec2.Code)
	}
}

func TestGuideNotFound(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/guides/does-not-exist")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGuidesIndex(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/guides")
	b := body(t, rec)
	for _, want := range []string{"How to Measure a Room", "Choosing the Right Underlayment"} {
		if !strings.Contains(b, want) {
			t.Errorf("guides index missing %q", want)
		}
	}
}

func TestAboutPageSpanishFallback(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/about?hl=es")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	b := body(t, rec)
	if !strings.Contains(b, `lang="es"`) {
		t.Errorf("document language should be es")
	}
	if !strings.Contains(b, "Acerca de FloorCalc Hub") {
		t.Errorf("should serve the Spanish page body")
	}
}

func TestRobots(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/robots.txt")
	b := body(t, rec)
	if !strings.Contains(b, "Sitemap: https://floorcalchub.example/sitemap.xml") {
		t.Errorf("robots.txt missing sitemap line: %s", b)
	}
}

func TestSitemap(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/sitemap.xml")
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/xml") {
		t.Errorf("content type = %q", ct)
	}
	b := body(t, rec)
	for _, want := range []string{
		"<loc>https://floorcalchub.example/</loc>",
		"<loc>https://floorcalchub.example/calculators/tile</loc>",
		"<loc>https://floorcalchub.example/guides/how-to-measure-a-room</loc>",
		"<loc>https://floorcalchub.example/about</loc>",
	} {
		if !strings.Contains(b, want) {
			t.Errorf("sitemap missing %q", want)
		}
	}
}

func TestCalculatorsIndex(t *testing.T) {
	h := newTestRouter(t)
	rec := get(t, h, "/calculators")
	b := body(t, rec)
	// every catalog entry renders as a card
	for _, want := range []string{
		"Flooring Cost Calculator", "Hardwood Flooring Calculator",
		"Laminate Flooring Calculator", "Tile Calculator", "Carpet Calculator",
		"Vinyl Plank Calculator", "Stair Flooring Calculator",
		"Baseboard &amp; Trim Calculator", "Underlayment Calculator",
		"Epoxy Floor Coating Calculator",
	} {
		if !strings.Contains(b, want) {
			t.Errorf("calculators index missing %q", want)
		}
	}
}
