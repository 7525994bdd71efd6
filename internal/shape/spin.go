package shape

// Spinner advances the wrapped shape's rotation by a fixed step every Update.
type Spinner struct {
	Rotatable
	DX, DY, DZ float32 // radians per frame
}

// Spin wraps r so every Update, after r's own, rotates it by (dx, dy, dz) radians.
func Spin(r Rotatable, dx, dy, dz float32) *Spinner {
	return &Spinner{Rotatable: r, DX: dx, DY: dy, DZ: dz}
}

func (s *Spinner) Update() error {
	if err := s.Rotatable.Update(); err != nil {
		return err
	}
	s.Rotate(s.DX, s.DY, s.DZ)
	return nil
}
