package mountaincar

// SetHeaven places heaven at position and hell opposite it for the
// current episode
func (g *Goal) SetHeaven(position float64) {
	g.setHeaven(position)
}

// SetPosition moves the car to position without taking a step
func (m *base) SetPosition(position float64) {
	m.position = position
}
