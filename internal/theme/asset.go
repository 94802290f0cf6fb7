package theme

// Asset identifies one of the fixed slots of a theme.
type Asset int

// Static assets come first, templates after them. IsStatic relies on this order.
const (
	AssetFavicon Asset = iota
	AssetLogo
	AssetMainCSS
	AssetHighlightCSS
	AssetMainJS
	AssetHighlightJS
	AssetBaseTemplate
	AssetIndexTemplate
	AssetPostTemplate
	AssetTagTemplate

	assetCount
)

// assetPaths are slash-separated and relative to a theme directory.
var assetPaths = [assetCount]string{
	AssetFavicon:       "static/img/favicon.png",
	AssetLogo:          "static/img/logo.png",
	AssetMainCSS:       "static/css/main.css",
	AssetHighlightCSS:  "static/css/highlight.css",
	AssetMainJS:        "static/js/main.js",
	AssetHighlightJS:   "static/js/highlight.js",
	AssetBaseTemplate:  "templates/base.tpl",
	AssetIndexTemplate: "templates/index.tpl",
	AssetPostTemplate:  "templates/post.tpl",
	AssetTagTemplate:   "templates/tag.tpl",
}

var assetNames = [assetCount]string{
	AssetFavicon:       "favicon",
	AssetLogo:          "logo",
	AssetMainCSS:       "main-css",
	AssetHighlightCSS:  "highlight-css",
	AssetMainJS:        "main-js",
	AssetHighlightJS:   "highlight-js",
	AssetBaseTemplate:  "base",
	AssetIndexTemplate: "index",
	AssetPostTemplate:  "post",
	AssetTagTemplate:   "tag",
}

// Valid reports whether a is one of the known asset slots.
func (a Asset) Valid() bool {
	return a >= 0 && a < assetCount
}

// Path returns the asset's slash-separated path relative to the theme root.
func (a Asset) Path() string {
	if !a.Valid() {
		return ""
	}
	return assetPaths[a]
}

// IsStatic reports whether the asset is copied into build output.
// Templates are consumed by the renderer and never exported.
func (a Asset) IsStatic() bool {
	return a.Valid() && a < AssetBaseTemplate
}

// Kind returns "static" or "template".
func (a Asset) Kind() string {
	if a.IsStatic() {
		return "static"
	}
	return "template"
}

func (a Asset) String() string {
	if !a.Valid() {
		return "unknown"
	}
	return assetNames[a]
}

// AllAssets returns every slot in layout order.
func AllAssets() []Asset {
	assets := make([]Asset, 0, assetCount)
	for a := Asset(0); a < assetCount; a++ {
		assets = append(assets, a)
	}
	return assets
}

// StaticAssets returns the slots written to build output.
func StaticAssets() []Asset {
	return []Asset{
		AssetFavicon,
		AssetLogo,
		AssetMainCSS,
		AssetHighlightCSS,
		AssetMainJS,
		AssetHighlightJS,
	}
}

// TemplateAssets returns the page template slots.
func TemplateAssets() []Asset {
	return []Asset{
		AssetBaseTemplate,
		AssetIndexTemplate,
		AssetPostTemplate,
		AssetTagTemplate,
	}
}
