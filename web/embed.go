// Package web holds the embedded storefront client. The cart lives
// entirely in the browser; the server recomputes every total.
package web

import "embed"

//go:embed index.html app.js styles.css
var Assets embed.FS
