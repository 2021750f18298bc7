// Package gamedata provides the embedded character templates and utilities
// for loading them.
package gamedata

import "embed"

// dataFS embeds the YAML data files from this directory at build time.
//
//go:embed *.yaml
var dataFS embed.FS
