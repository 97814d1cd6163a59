package component

import "github.com/jakecoffman/cp"

// PhysicsBody links an entity to its Chipmunk body. The body's position is
// authoritative after each space step; the movement system copies it back to
// the transform.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
