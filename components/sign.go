package components

// Sign holds per-glyph duplication state.
type Sign struct {
	ID            uint32
	LastCollision float64 // ms timestamp of the last duplicating collision
	Collided      bool    // false until the first duplicating collision (or spawn)
}

// Cooling reports whether the sign is still inside its cooldown window at now.
// A sign that never collided is never cooling.
func (s *Sign) Cooling(now, cooldownMS float64) bool {
	if !s.Collided {
		return false
	}
	return now-s.LastCollision <= cooldownMS
}

// MarkCollision stamps the cooldown clock.
func (s *Sign) MarkCollision(now float64) {
	s.LastCollision = now
	s.Collided = true
}
