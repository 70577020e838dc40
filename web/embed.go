// Package web embeds the calculator frontend served at the site root.
package web

import "embed"

// Content holds the embedded frontend files (index.html, app.js, styles.css).
//
//go:embed index.html app.js styles.css
var Content embed.FS
