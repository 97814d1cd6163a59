package obj

import "testing"

func TestCameraCenterOn(t *testing.T) {
	c := NewCamera(320, 240)
	c.CenterOn(400, 300)
	if c.X != 240 || c.Y != 180 {
		t.Fatalf("camera at (%g, %g), want (240, 180)", c.X, c.Y)
	}
}

func TestCameraClampTo(t *testing.T) {
	cases := []struct {
		name           string
		x, y           float64
		worldW, worldH float64
		wantX, wantY   float64
	}{
		{"inside", 100, 50, 1000, 800, 100, 50},
		{"past_left_top", -10, -20, 1000, 800, 0, 0},
		{"past_right_bottom", 900, 700, 1000, 800, 680, 560},
		{"world_smaller_centers", 0, 0, 200, 100, -60, -70},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewCamera(320, 240)
			cam.X, cam.Y = c.x, c.y
			cam.ClampTo(c.worldW, c.worldH)
			if cam.X != c.wantX || cam.Y != c.wantY {
				t.Fatalf("clamped to (%g, %g), want (%g, %g)", cam.X, cam.Y, c.wantX, c.wantY)
			}
		})
	}
}

func TestCameraPositionRoundTrip(t *testing.T) {
	cam := NewCamera(100, 100)
	cam.CenterOn(50, 50)
	p := cam.Position()
	cam.SetPosition(p)
	if cam.Position() != p {
		t.Fatalf("position drifted to %+v", cam.Position())
	}
}
