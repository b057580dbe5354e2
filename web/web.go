// Package web holds the dashboard page template
package web

import (
	"embed"
)

//go:embed index.html
var FS embed.FS

// IndexTemplate is the name of the page template in FS
const IndexTemplate = "index.html"
