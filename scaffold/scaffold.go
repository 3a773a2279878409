// Package scaffold provides embedded template files for the journal CLI
// site scaffolding command.
package scaffold

import "embed"

// Templates contains all scaffold template files. Files use Go
// text/template syntax and carry a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS
