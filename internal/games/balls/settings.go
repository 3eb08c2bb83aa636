package balls

import (
	"math/rand"

	"github.com/vovakirdan/tui-motion/internal/core"
)

// Settings describes the ranges new balls are sampled from.
type Settings struct {
	MinSpeed, MaxSpeed   float64
	MaxX, MaxY           float64
	MinRadius, MaxRadius float64
	Color                *core.Color // nil picks a random color per ball
}

// NewSettings returns the default sampling ranges.
func NewSettings() Settings {
	return Settings{
		MinSpeed:  500,
		MaxSpeed:  1000,
		MaxX:      100,
		MaxY:      100,
		MinRadius: 10,
		MaxRadius: 20,
	}
}

// WithVelocity sets the speed range [min, max).
func (s Settings) WithVelocity(min, max float64) Settings {
	s.MinSpeed, s.MaxSpeed = min, max
	return s
}

// WithMaxPos sets the spawn area [0, x) x [0, y).
func (s Settings) WithMaxPos(x, y float64) Settings {
	s.MaxX, s.MaxY = x, y
	return s
}

// WithRadius sets the radius range [min, max).
func (s Settings) WithRadius(min, max float64) Settings {
	s.MinRadius, s.MaxRadius = min, max
	return s
}

// WithColor gives every built ball the same color.
func (s Settings) WithColor(c core.Color) Settings {
	s.Color = &c
	return s
}

// Build samples a ball with the given ID.
func (s Settings) Build(id int, rng *rand.Rand) Ball {
	var dir core.Vec2
	for dir.Length() == 0 {
		dir = core.V(rng.Float64()*2-1, rng.Float64()*2-1).Normalize()
	}

	speed := s.MinSpeed + rng.Float64()*(s.MaxSpeed-s.MinSpeed)
	pos := core.V(rng.Float64()*s.MaxX, rng.Float64()*s.MaxY)
	radius := s.MinRadius + rng.Float64()*(s.MaxRadius-s.MinRadius)

	var color core.Color
	if s.Color != nil {
		color = *s.Color
	} else {
		color = core.RGB(rng.Float64(), rng.Float64(), rng.Float64())
	}

	return Ball{
		ID:       id,
		Pos:      pos,
		Velocity: Velocity{Dir: dir, Speed: speed},
		Radius:   radius,
		Color:    color,
	}
}
