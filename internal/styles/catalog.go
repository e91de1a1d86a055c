// Package styles holds the static style registry. The registry is loaded
// once at process start and is read-only afterwards; a missing or corrupt
// registry degrades to empty profiles so synthesis can still proceed on
// numeric defaults.
package styles

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Aditya200247/Ai-Video-editor/internal/domain/vibe"
	"github.com/Aditya200247/Ai-Video-editor/internal/types"
)

//go:embed styles.yaml
var embeddedRegistry []byte

type registry struct {
	Styles map[string]types.StyleProfile `yaml:"styles"`
}

// Catalog is a read-only lookup of style profiles by category.
type Catalog struct {
	profiles map[string]types.StyleProfile
}

// Load builds a catalog from the registry file at path. An empty path uses
// the embedded registry. Load never fails: unreadable or malformed input
// yields an empty catalog.
func Load(path string) *Catalog {
	data := embeddedRegistry
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return &Catalog{}
		}
		data = b
	}

	var reg registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return &Catalog{}
	}
	return &Catalog{profiles: reg.Styles}
}

// Get returns the profile for a category. Unknown categories return the zero
// profile, whose Pacing() falls back to the default.
func (c *Catalog) Get(category vibe.Category) types.StyleProfile {
	if c == nil || c.profiles == nil {
		return types.StyleProfile{}
	}
	return c.profiles[string(category)]
}

// Categories returns the registered category names, for diagnostics.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		out = append(out, name)
	}
	return out
}
