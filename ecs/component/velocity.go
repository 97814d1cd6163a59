package component

// Velocity is the intended movement for the current tick, in world units per
// second. The movement system feeds it into the physics body.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
