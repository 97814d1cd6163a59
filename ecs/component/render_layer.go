package component

// RenderLayer is the draw-order key. Entities are drawn in ascending Index;
// entities sharing an Index may draw in any relative order.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
