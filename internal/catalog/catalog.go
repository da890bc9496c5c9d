// Package catalog holds the static registry of flooring calculators.
//
// Entries are defined once at init and never mutated, so the slice and its
// descriptors are safe to share across handlers without locking.
package catalog

import "fmt"

// Calculator describes one calculator: identity, route, and cosmetic keys.
// Icon and Color are resolved lazily by the icons and theme packages; unknown
// keys degrade to defaults there rather than failing here.
type Calculator struct {
	Slug        string
	Title       string
	Description string
	Route       string
	Icon        string
	Color       string
}

var calculators = []Calculator{
	{
		Slug:        "flooring-cost",
		Title:       "Flooring Cost Calculator",
		Description: "Estimate total material and installation cost for any flooring project.",
		Route:       "/calculators/flooring-cost",
		Icon:        "coins",
		Color:       "amber",
	},
	{
		Slug:        "hardwood",
		Title:       "Hardwood Flooring Calculator",
		Description: "Work out board footage, waste allowance, and cost for solid hardwood floors.",
		Route:       "/calculators/hardwood",
		Icon:        "plank",
		Color:       "oak",
	},
	{
		Slug:        "laminate",
		Title:       "Laminate Flooring Calculator",
		Description: "Plan laminate planks per room, including expansion gaps and box counts.",
		Route:       "/calculators/laminate",
		Icon:        "layers",
		Color:       "sky",
	},
	{
		Slug:        "tile",
		Title:       "Tile Calculator",
		Description: "Count tiles, grout, and thinset for floors and walls from room dimensions.",
		Route:       "/calculators/tile",
		Icon:        "grid",
		Color:       "teal",
	},
	{
		Slug:        "carpet",
		Title:       "Carpet Calculator",
		Description: "Size carpet rolls and padding with seam placement in mind.",
		Route:       "/calculators/carpet",
		Icon:        "roll",
		Color:       "rose",
	},
	{
		Slug:        "vinyl-plank",
		Title:       "Vinyl Plank Calculator",
		Description: "Estimate luxury vinyl plank coverage, boxes, and underlayment.",
		Route:       "/calculators/vinyl-plank",
		Icon:        "wave",
		Color:       "indigo",
	},
	{
		Slug:        "stairs",
		Title:       "Stair Flooring Calculator",
		Description: "Measure treads, risers, and nosing for carpeted or hardwood stairs.",
		Route:       "/calculators/stairs",
		Icon:        "stairs",
		Color:       "slate",
	},
	{
		Slug:        "baseboard-trim",
		Title:       "Baseboard & Trim Calculator",
		Description: "Total linear feet of baseboard, quarter round, and transition strips.",
		Route:       "/calculators/baseboard-trim",
		Icon:        "ruler",
		Color:       "emerald",
	},
	{
		Slug:        "underlayment",
		Title:       "Underlayment Calculator",
		Description: "Match underlayment rolls to your floor type and room size.",
		Route:       "/calculators/underlayment",
		Icon:        "cushion",
		Color:       "violet",
	},
	{
		Slug:        "epoxy",
		Title:       "Epoxy Floor Coating Calculator",
		Description: "Calculate epoxy coverage by coat count and garage floor area.",
		Route:       "/calculators/epoxy",
		Icon:        "droplet",
		Color:       "cyan",
	},
}

func init() {
	if err := Validate(calculators); err != nil {
		panic(err)
	}
}

// All returns the catalog in display order. Callers must not mutate it.
func All() []Calculator { return calculators }

// BySlug looks up a calculator by its slug.
func BySlug(slug string) (Calculator, bool) {
	for _, c := range calculators {
		if c.Slug == slug {
			return c, true
		}
	}
	return Calculator{}, false
}

// ByRoute looks up a calculator by its route path.
func ByRoute(route string) (Calculator, bool) {
	for _, c := range calculators {
		if c.Route == route {
			return c, true
		}
	}
	return Calculator{}, false
}

// Validate checks that routes and slugs are unique across the given entries.
func Validate(entries []Calculator) error {
	routes := make(map[string]string, len(entries))
	slugs := make(map[string]struct{}, len(entries))
	for _, c := range entries {
		if c.Route == "" {
			return fmt.Errorf("catalog: %q has an empty route", c.Slug)
		}
		if prev, ok := routes[c.Route]; ok {
			return fmt.Errorf("catalog: route %s shared by %q and %q", c.Route, prev, c.Slug)
		}
		routes[c.Route] = c.Slug
		if _, ok := slugs[c.Slug]; ok {
			return fmt.Errorf("catalog: duplicate slug %q", c.Slug)
		}
		slugs[c.Slug] = struct{}{}
	}
	return nil
}
