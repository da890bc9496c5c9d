package nav

// QuickLink is one cell of the compact "popular calculators" grid.
type QuickLink struct {
	Name        string
	Route       string
	Icon        string // icon key, resolved like card icons
	Description string
}

// Quick is the curated quick-navigation list. It is intentionally its own
// static list rather than a slice of the catalog: editors decide what counts
// as popular, and the two may drift.
var Quick = []QuickLink{
	{
		Name:        "Flooring Cost",
		Route:       "/calculators/flooring-cost",
		Icon:        "coins",
		Description: "Budget any floor in minutes",
	},
	{
		Name:        "Tile",
		Route:       "/calculators/tile",
		Icon:        "grid",
		Description: "Tiles, grout, and thinset",
	},
	{
		Name:        "Carpet",
		Route:       "/calculators/carpet",
		Icon:        "roll",
		Description: "Rolls, padding, and seams",
	},
	{
		Name:        "Hardwood",
		Route:       "/calculators/hardwood",
		Icon:        "plank",
		Description: "Boards and waste allowance",
	},
}
