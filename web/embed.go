// Package web embeds the single-page chat UI served at the site root.
package web

import "embed"

//go:embed static
var StaticFS embed.FS
