package component

// Transform is an entity's spatial attributes: world position, world-unit
// size, and rotation about the center of the WxH box. W and H must be
// non-negative.
type Transform struct {
	X        float64
	Y        float64
	W        float64
	H        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
