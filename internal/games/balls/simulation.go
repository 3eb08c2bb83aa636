package balls

// Simulation owns a population of balls inside a width x height container.
type Simulation struct {
	Balls   []Ball
	Width   float64
	Height  float64
	Collide bool
}

// NewSimulation places balls in a width x height container.
func NewSimulation(balls []Ball, width, height float64, collide bool) *Simulation {
	return &Simulation{
		Balls:   balls,
		Width:   width,
		Height:  height,
		Collide: collide,
	}
}

// Resize changes the container without touching the balls. Balls left
// outside are pulled back in by the next wall check.
func (s *Simulation) Resize(width, height float64) {
	s.Width = width
	s.Height = height
}

// Step advances every ball by dt seconds in index order and returns the
// number of ball contacts resolved.
//
// With collisions on, each ball checks against the shared slice while it is
// being updated, so ball i sees the post-tick state of balls before it and
// the pre-tick state of balls after it. Pairs are therefore not resolved
// symmetrically. The scan is O(n²).
func (s *Simulation) Step(dt float64) int {
	args := UpdateArgs{DT: dt, Width: s.Width, Height: s.Height}
	if s.Collide {
		args.Others = s.Balls
	}

	contacts := 0
	for i := range s.Balls {
		contacts += s.Balls[i].Update(args)
	}
	return contacts
}
