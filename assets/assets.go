// Package assets builds the game's placeholder art in code: a tileset from a
// map's palette and small sprite sheets for the player and wisps. Nothing
// here touches the GPU until first use, so tests never need a display.
package assets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tileset renders one tile per palette color into a single-row sheet. Tile id
// N (1-based in map layers) is the region [(N-1)*size, 0, N*size, size].
func Tileset(palette []string, tileSize int) (*ebiten.Image, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("assets: tile size %d", tileSize)
	}
	rgba := image.NewNRGBA(image.Rect(0, 0, tileSize*len(palette), tileSize))
	for i, hex := range palette {
		base, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("assets: palette[%d]: %w", i, err)
		}
		dark := shade(base, 0.85)
		for y := 0; y < tileSize; y++ {
			for x := 0; x < tileSize; x++ {
				c := base
				// Checker the corners slightly so tile boundaries read.
				if (x < 2 || x >= tileSize-2) || (y < 2 || y >= tileSize-2) {
					c = dark
				}
				rgba.SetNRGBA(i*tileSize+x, y, c)
			}
		}
	}
	return ebiten.NewImageFromImage(rgba), nil
}

// PlayerSheet builds a 2-row sheet (idle, walk), 4 frames per row.
func PlayerSheet(size int) *ebiten.Image {
	rgba := image.NewNRGBA(image.Rect(0, 0, size*4, size*2))
	cloak := color.NRGBA{R: 0x8a, G: 0x4f, B: 0xc9, A: 0xff}
	skin := color.NRGBA{R: 0xe8, G: 0xc9, B: 0xa0, A: 0xff}
	for row := 0; row < 2; row++ {
		for frame := 0; frame < 4; frame++ {
			ox := frame * size
			oy := row * size
			bob := 0
			if row == 1 && frame%2 == 1 {
				bob = 1
			}
			// body
			fillRect(rgba, ox+size/4, oy+size/3+bob, size/2, size/2, cloak)
			// head
			fillRect(rgba, ox+size/3, oy+size/8+bob, size/3, size/4, skin)
			// feet alternate on walk frames
			if row == 1 {
				step := frame % 2 * (size / 8)
				fillRect(rgba, ox+size/4+step, oy+size-size/8, size/6, size/8, cloak)
				fillRect(rgba, ox+size/2+size/12-step, oy+size-size/8, size/6, size/8, cloak)
			}
		}
	}
	return ebiten.NewImageFromImage(rgba)
}

// WispSheet builds a 1-row, 4-frame sheet of a pulsing orb.
func WispSheet(size int) *ebiten.Image {
	rgba := image.NewNRGBA(image.Rect(0, 0, size*4, size))
	glow := color.NRGBA{R: 0x9f, G: 0xe8, B: 0xff, A: 0xff}
	halo := color.NRGBA{R: 0x5f, G: 0xb8, B: 0xdf, A: 0x90}
	for frame := 0; frame < 4; frame++ {
		// radius pulses 3/8..1/2 of the tile
		r := size*3/8 + (frame%2)*size/8
		cx := frame*size + size/2
		cy := size / 2
		fillCircle(rgba, cx, cy, r, halo)
		fillCircle(rgba, cx, cy, r*2/3, glow)
	}
	return ebiten.NewImageFromImage(rgba)
}

// ParseHexColor parses "#rgb" or "#rrggbb".
func ParseHexColor(s string) (color.NRGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	hexVal := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	switch len(s) {
	case 4:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			v, ok := hexVal(s[i+1])
			if !ok {
				return color.NRGBA{}, fmt.Errorf("bad color %q", s)
			}
			c[i] = v*16 + v
		}
		return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xff}, nil
	case 7:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexVal(s[i*2+1])
			lo, ok2 := hexVal(s[i*2+2])
			if !ok1 || !ok2 {
				return color.NRGBA{}, fmt.Errorf("bad color %q", s)
			}
			c[i] = hi*16 + lo
		}
		return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xff}, nil
	}
	return color.NRGBA{}, fmt.Errorf("bad color %q", s)
}

func shade(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

func fillRect(dst *image.NRGBA, x, y, w, h int, c color.NRGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if image.Pt(xx, yy).In(dst.Rect) {
				dst.SetNRGBA(xx, yy, c)
			}
		}
	}
}

func fillCircle(dst *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	for yy := cy - r; yy <= cy+r; yy++ {
		for xx := cx - r; xx <= cx+r; xx++ {
			dx := xx - cx
			dy := yy - cy
			if dx*dx+dy*dy <= r*r && image.Pt(xx, yy).In(dst.Rect) {
				dst.SetNRGBA(xx, yy, c)
			}
		}
	}
}
