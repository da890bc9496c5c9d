package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"floorcalchub.com/floorcalc-web/internal/catalog"
	"floorcalchub.com/floorcalc-web/internal/faq"
	"floorcalchub.com/floorcalc-web/internal/handlers"
	"floorcalchub.com/floorcalc-web/internal/icons"
	mw "floorcalchub.com/floorcalc-web/internal/middleware"
	"floorcalchub.com/floorcalc-web/internal/seo"
	"floorcalchub.com/floorcalc-web/internal/theme"
)

// CalculatorView is the per-calculator page payload.
type CalculatorView struct {
	Calc  catalog.Calculator
	Card  handlers.Card
	FAQ   handlers.FAQView
	Guide GuideTeaser
}

// GuideTeaser links a related guide from the calculator page, when one exists.
type GuideTeaser struct {
	Title string
	Href  string
}

// HomeHandler renders the landing page: card grid, quick nav, site FAQ.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := basePage(r)
	vm.Title = brandName(lang)
	vm.SEO.Title = i18nOrDefault(lang, "home.seo.title", "Flooring Calculators") + " | " + brandName(lang)
	vm.SEO.Description = i18nOrDefault(lang, "home.seo.description", "Free flooring calculators for cost, tile, carpet, hardwood, and more.")
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description
	vm.SEO.JSONLD = append(vm.SEO.JSONLD,
		seo.JSON(seo.WebSite(brandName(lang), cfg.BaseURL)),
		seo.JSON(seo.Organization(brandName(lang), cfg.BaseURL, cfg.BaseURL+"/assets/img/logo.png")),
	)

	faqView := handlers.BuildFAQ(faq.SiteKey, faqStore.For(faq.SiteKey), openIndexFromQuery(r))
	vm.Home = handlers.BuildHomeData(faqView)
	renderPage(w, r, "home", vm)
}

// CalculatorsIndexHandler renders the full catalog as a card grid.
func CalculatorsIndexHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	vm := basePage(r)
	vm.Title = i18nOrDefault(lang, "calculators.title", "All calculators")
	vm.SEO.Title = vm.Title + " | " + brandName(lang)
	vm.SEO.Description = i18nOrDefault(lang, "calculators.seo.description", "Browse every flooring calculator on FloorCalc Hub.")
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description
	vm.Home = handlers.HomeData{Cards: handlers.BuildCards(catalog.All())}
	renderPage(w, r, "calculators", vm)
}

// CalculatorHandler renders one calculator page with breadcrumb and FAQ
// structured data.
func CalculatorHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	calc, ok := catalog.BySlug(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}
	lang := mw.Lang(r)
	vm := basePage(r)
	vm.Title = calc.Title
	vm.SEO.Title = calc.Title + " | " + brandName(lang)
	vm.SEO.Description = calc.Description
	vm.SEO.OG.Title = vm.SEO.Title
	vm.SEO.OG.Description = vm.SEO.Description

	view := CalculatorView{
		Calc: calc,
		Card: handlers.Card{
			Title:       calc.Title,
			Description: calc.Description,
			Route:       calc.Route,
			Icon:        icons.Resolve(calc.Icon),
			Theme:       theme.Resolve(calc.Color),
		},
		FAQ: handlers.BuildFAQ(calc.Slug, faqStore.For(calc.Slug), openIndexFromQuery(r)),
	}
	if teaser, ok := relatedGuide(calc.Slug, lang); ok {
		view.Guide = teaser
	}
	vm.Calculator = view
	renderPage(w, r, "calculator", vm)
}

// relatedGuide maps calculators to an existing guide page, if any.
func relatedGuide(slug, lang string) (GuideTeaser, bool) {
	related := map[string]string{
		"flooring-cost": "how-to-measure-a-room",
		"tile":          "how-to-measure-a-room",
		"carpet":        "how-to-measure-a-room",
		"underlayment":  "choosing-underlayment",
		"vinyl-plank":   "choosing-underlayment",
		"laminate":      "choosing-underlayment",
	}
	guideSlug, ok := related[slug]
	if !ok {
		return GuideTeaser{}, false
	}
	page, err := contentStore.Get("guides", guideSlug, lang)
	if err != nil {
		return GuideTeaser{}, false
	}
	return GuideTeaser{Title: page.Title, Href: "/guides/" + page.Slug}, true
}

// openIndexFromQuery reads the accordion state carried by the faq query
// parameter. Malformed values read as collapsed.
func openIndexFromQuery(r *http.Request) int {
	raw := r.URL.Query().Get("faq")
	if raw == "" {
		return faq.None
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return faq.None
	}
	return n
}
