package main

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"floorcalchub.com/floorcalc-web/internal/faq"
	"floorcalchub.com/floorcalc-web/internal/format"
	"floorcalchub.com/floorcalc-web/internal/handlers"
	mw "floorcalchub.com/floorcalc-web/internal/middleware"
	"floorcalchub.com/floorcalc-web/internal/nav"
)

// FAQFrag re-renders the accordion with the activated state. Each row's link
// already carries the next state, so this handler only validates and renders.
func FAQFrag(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(r.URL.Query().Get("key"))
	if key == "" {
		key = faq.SiteKey
	}
	open := faq.None
	if raw := r.URL.Query().Get("open"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			open = n
		}
	}
	view := handlers.BuildFAQ(key, faqStore.For(key), open)
	renderTemplate(w, r, "frag_faq", view)
}

// MobileNavView is the header fragment payload. Field names mirror the page
// view model so the nav region template serves both.
type MobileNavView struct {
	Lang     string
	Path     string
	MenuOpen bool
	Nav      []nav.RenderedItem
}

// MobileNavFrag swaps the header navigation region. The toggle button links
// to the opposite state; panel entries are plain anchors, so following one
// remounts the next page with the menu closed.
func MobileNavFrag(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}
	open := nav.MenuState(r.URL.Query().Get("open"))
	renderTemplate(w, r, "frag_mobile_nav", MobileNavView{
		Lang:     mw.Lang(r),
		Path:     path,
		MenuOpen: open,
		Nav:      nav.Build(path),
	})
}

// EstimateView is the computed result fragment payload.
type EstimateView struct {
	Lang  string
	Error string
	Area  string
	Waste string
	Total string
}

// EstimateFrag computes area and material cost from the submitted room
// dimensions. Nothing is persisted; the fragment is the whole result.
func EstimateFrag(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	view := EstimateView{Lang: lang}

	length, err1 := strconv.ParseFloat(r.PostFormValue("length"), 64)
	width, err2 := strconv.ParseFloat(r.PostFormValue("width"), 64)
	if err1 != nil || err2 != nil || length <= 0 || width <= 0 {
		view.Error = i18nOrDefault(lang, "calc.estimate.invalid", "Enter room length and width in feet.")
		renderTemplate(w, r, "frag_estimate", view)
		return
	}
	waste := 10.0
	if raw := r.PostFormValue("waste"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 && v <= 50 {
			waste = v
		}
	}
	price := 0.0
	if raw := r.PostFormValue("price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			price = v
		}
	}

	area := length * width
	withWaste := area * (1 + waste/100)
	view.Area = format.FmtArea(area)
	view.Waste = format.FmtArea(withWaste)
	if price > 0 {
		cents := int64(math.Round(withWaste * price * 100))
		view.Total = format.FmtCurrency(cents)
	}
	renderTemplate(w, r, "frag_estimate", view)
}
