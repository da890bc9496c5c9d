package handlers

import "floorcalchub.com/floorcalc-web/internal/catalog"

// HomeData is the view model for the landing page.
type HomeData struct {
	Cards    []Card
	QuickNav []QuickCell
	FAQ      FAQView
}

// BuildHomeData constructs the landing page payload: the full card grid, the
// curated quick-navigation grid, and the site-wide FAQ.
func BuildHomeData(faqView FAQView) HomeData {
	return HomeData{
		Cards:    BuildCards(catalog.All()),
		QuickNav: BuildQuickNav(),
		FAQ:      faqView,
	}
}
