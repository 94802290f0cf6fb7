package theme

import (
	"embed"
	"io/fs"
)

// DefaultThemeName is the name of the built-in theme.
const DefaultThemeName = "simple"

// embeddedThemes holds the built-in theme tree under simple/.
//
//go:embed all:simple
var embeddedThemes embed.FS

// BuiltinFS returns the built-in theme as a filesystem rooted at the theme
// directory, laid out the same way as a theme under _themes/.
func BuiltinFS() fs.FS {
	sub, err := fs.Sub(embeddedThemes, DefaultThemeName)
	if err != nil {
		// DefaultThemeName is always a valid path.
		panic(err)
	}
	return sub
}

// GetBuiltinAsset returns the built-in bytes for an asset.
// Returns false if the asset is unknown.
func GetBuiltinAsset(a Asset) ([]byte, bool) {
	if !a.Valid() {
		return nil, false
	}
	data, err := fs.ReadFile(BuiltinFS(), a.Path())
	if err != nil {
		return nil, false
	}
	return data, true
}

// IsBuiltinTheme reports whether name refers to the built-in theme.
func IsBuiltinTheme(name string) bool {
	return name == DefaultThemeName
}
