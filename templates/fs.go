package templates

import "embed"

//go:embed *.gohtml
var FS embed.FS
