package theme

import (
	"crypto/sha256"
	"encoding/hex"
)

// Manifest describes a resolved theme for display.
type Manifest struct {
	Name   string      `json:"name" yaml:"name"`
	Source Source      `json:"source" yaml:"source"`
	Root   string      `json:"root" yaml:"root"`
	Assets []AssetInfo `json:"assets" yaml:"assets"`
}

// AssetInfo describes one slot of a resolved theme.
type AssetInfo struct {
	Name   string `json:"name" yaml:"name"`
	Path   string `json:"path" yaml:"path"`
	Kind   string `json:"kind" yaml:"kind"`
	Size   int    `json:"size" yaml:"size"`
	SHA256 string `json:"sha256" yaml:"sha256"`
}

// Manifest summarizes the theme. An unresolved theme yields a manifest with
// no assets.
func (t *Theme) Manifest() Manifest {
	m := Manifest{
		Name:   t.name,
		Source: t.source,
		Root:   t.root,
	}
	if !t.Resolved() {
		return m
	}

	m.Assets = make([]AssetInfo, 0, assetCount)
	for _, a := range AllAssets() {
		sum := sha256.Sum256(t.slots[a])
		m.Assets = append(m.Assets, AssetInfo{
			Name:   a.String(),
			Path:   a.Path(),
			Kind:   a.Kind(),
			Size:   len(t.slots[a]),
			SHA256: hex.EncodeToString(sum[:]),
		})
	}
	return m
}

// TotalSize returns the summed size of all assets.
func (m Manifest) TotalSize() int {
	total := 0
	for _, a := range m.Assets {
		total += a.Size
	}
	return total
}
