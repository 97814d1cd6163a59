package component

// AnimationDef describes one row of a sprite sheet.
type AnimationDef struct {
	Name       string
	Row        int
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()
