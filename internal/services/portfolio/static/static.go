package static

import "embed"

// FS exposes portfolio static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
