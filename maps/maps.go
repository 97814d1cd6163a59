// Package maps loads tile map definitions: layered tile grids plus the
// connection metadata that links adjacent maps at their edges.
package maps

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Side is the compass direction of a map-edge connection.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideUp    Side = "up"
	SideDown  Side = "down"
)

func (s Side) Valid() bool {
	switch s {
	case SideLeft, SideRight, SideUp, SideDown:
		return true
	}
	return false
}

// Opposite returns the side a traveler arrives on.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	case SideUp:
		return SideDown
	case SideDown:
		return SideUp
	}
	return s
}

// Connection is a named point on a map edge linking to an adjacent map.
// X/Y are in map pixels.
type Connection struct {
	ID           string  `yaml:"id"`
	Side         Side    `yaml:"side"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	To           string  `yaml:"to"`
	ToConnection string  `yaml:"to_connection"`
}

// Spawn places an entity when the map becomes active. X/Y are in map pixels.
type Spawn struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Def is a parsed map definition. Layers index as [layer][row][col]; tile id
// 0 is empty, ids 1..len(Palette) pick a palette tile.
type Def struct {
	Name        string       `yaml:"name"`
	TileSize    int          `yaml:"tile_size"`
	Palette     []string     `yaml:"palette"`
	Layers      [][][]int    `yaml:"layers"`
	Solid       []int        `yaml:"solid"`
	Connections []Connection `yaml:"connections"`
	Spawns      []Spawn      `yaml:"spawns"`
}

func parse(name string, b []byte) (*Def, error) {
	var d Def
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("maps: unmarshal %q: %w", name, err)
	}
	if d.Name == "" {
		d.Name = name
	}
	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("maps: %q: %w", name, err)
	}
	return &d, nil
}

func (d *Def) validate() error {
	if d.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %d", d.TileSize)
	}
	if len(d.Layers) == 0 || len(d.Layers[0]) == 0 || len(d.Layers[0][0]) == 0 {
		return fmt.Errorf("at least one non-empty layer required")
	}
	rows := len(d.Layers[0])
	cols := len(d.Layers[0][0])
	for li, layer := range d.Layers {
		if len(layer) != rows {
			return fmt.Errorf("layer %d: %d rows, want %d", li, len(layer), rows)
		}
		for ri, row := range layer {
			if len(row) != cols {
				return fmt.Errorf("layer %d row %d: %d cols, want %d", li, ri, len(row), cols)
			}
			for _, id := range row {
				if id < 0 || id > len(d.Palette) {
					return fmt.Errorf("layer %d row %d: tile id %d outside palette", li, ri, id)
				}
			}
		}
	}
	seen := map[string]bool{}
	for _, c := range d.Connections {
		if c.ID == "" {
			return fmt.Errorf("connection without id")
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate connection id %q", c.ID)
		}
		seen[c.ID] = true
		if !c.Side.Valid() {
			return fmt.Errorf("connection %q: bad side %q", c.ID, c.Side)
		}
		if c.To == "" || c.ToConnection == "" {
			return fmt.Errorf("connection %q: missing target", c.ID)
		}
	}
	return nil
}

// Size returns the grid dimensions in tiles.
func (d *Def) Size() (cols, rows int) {
	return len(d.Layers[0][0]), len(d.Layers[0])
}

// PixelSize returns the map dimensions in pixels.
func (d *Def) PixelSize() (w, h int) {
	cols, rows := d.Size()
	return cols * d.TileSize, rows * d.TileSize
}

// Connection looks up a connection by id.
func (d *Def) Connection(id string) (Connection, bool) {
	for _, c := range d.Connections {
		if c.ID == id {
			return c, true
		}
	}
	return Connection{}, false
}

// IsSolid reports whether any layer places a solid tile at the grid cell.
func (d *Def) IsSolid(tx, ty int) bool {
	cols, rows := d.Size()
	if tx < 0 || ty < 0 || tx >= cols || ty >= rows {
		return false
	}
	for _, layer := range d.Layers {
		id := layer[ty][tx]
		for _, s := range d.Solid {
			if id == s {
				return true
			}
		}
	}
	return false
}
