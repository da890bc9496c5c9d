package seo

// OpenGraph holds the og: head properties shared by every page.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

// Twitter holds the twitter: card properties.
type Twitter struct {
	Card  string
	Site  string
	Image string
}
