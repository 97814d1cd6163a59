package component

// Wisp marks ambient entities that shimmer through the dissolve effect.
type Wisp struct{}

var WispComponent = NewComponent[Wisp]()
