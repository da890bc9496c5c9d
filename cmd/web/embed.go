package main

import (
	"embed"
	"io/fs"
)

//go:embed locales
var localesEmbed embed.FS

func localeFS() fs.FS {
	sub, err := fs.Sub(localesEmbed, "locales")
	if err != nil {
		// embed path is fixed at compile time
		panic(err)
	}
	return sub
}
