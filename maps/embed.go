package maps

import (
	"embed"
	"fmt"
	"os"
	"strings"
)

//go:embed *.yaml
var mapsFS embed.FS

// Load reads and validates an embedded map by name (".yaml" optional).
func Load(name string) (*Def, error) {
	base := strings.TrimSuffix(name, ".yaml")
	b, err := mapsFS.ReadFile(base + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("maps: read %q: %w", name, err)
	}
	return parse(base, b)
}

// LoadFile reads a map definition from disk. Used by the dev reload path to
// override embedded data.
func LoadFile(path string) (*Def, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maps: read %q: %w", path, err)
	}
	return parse(path, b)
}
