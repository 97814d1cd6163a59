package assets

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"#000", color.NRGBA{A: 0xff}, false},
		{"#4f9d4f", color.NRGBA{R: 0x4f, G: 0x9d, B: 0x4f, A: 0xff}, false},
		{"#ABCDEF", color.NRGBA{R: 0xab, G: 0xcd, B: 0xef, A: 0xff}, false},
		{"", color.NRGBA{}, true},
		{"fff", color.NRGBA{}, true},
		{"#ff", color.NRGBA{}, true},
		{"#ggg", color.NRGBA{}, true},
		{"#12345", color.NRGBA{}, true},
	}

	for _, c := range cases {
		got, err := ParseHexColor(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("ParseHexColor(%q) should fail", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseHexColor(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseHexColor(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}
