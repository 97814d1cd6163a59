package component

// Player marks the player entity and carries its tuning.
type Player struct {
	MoveSpeed float64
}

var PlayerComponent = NewComponent[Player]()
