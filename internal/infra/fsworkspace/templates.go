package fsworkspace

import "embed"

//go:embed templates/*.yaml
var templatesFS embed.FS
