// Package web embeds the static signup site served under /static/.
package web

import "embed"

//go:embed static
var Assets embed.FS
