package assets

import (
	"embed"
	"strings"
)

//go:embed themes/default
var embeddedThemes embed.FS

// readEmbedded resolves an "embedded:" source against the built-in themes.
func readEmbedded(source string) ([]byte, error) {
	path := strings.TrimPrefix(source, embeddedScheme)
	return embeddedThemes.ReadFile(path)
}
