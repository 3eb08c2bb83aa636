// Package balls implements the ball physics demos: circular bodies moving
// at constant speed inside a resizable container, reflecting off its walls
// and optionally off each other.
package balls

import (
	"github.com/vovakirdan/tui-motion/internal/core"
)

// Velocity is a unit direction plus a scalar speed. Reflection only ever
// touches the direction, so speed is constant for a ball's lifetime.
type Velocity struct {
	Dir   core.Vec2
	Speed float64
}

// X returns the horizontal velocity component.
func (v Velocity) X() float64 {
	return v.Speed * v.Dir.X
}

// Y returns the vertical velocity component.
func (v Velocity) Y() float64 {
	return v.Speed * v.Dir.Y
}

// NegateX flips the horizontal direction.
func (v *Velocity) NegateX() {
	v.Dir.X = -v.Dir.X
}

// NegateY flips the vertical direction.
func (v *Velocity) NegateY() {
	v.Dir.Y = -v.Dir.Y
}

// Reflect mirrors the direction about the unit normal n.
func (v *Velocity) Reflect(n core.Vec2) {
	v.Dir = v.Dir.Reflect(n)
}

// Ball is a circular body. ID is unique within a simulation and is what
// excludes a ball from colliding with itself.
type Ball struct {
	ID       int
	Pos      core.Vec2
	Velocity Velocity
	Radius   float64
	Color    core.Color
}

// UpdateArgs carries everything a ball needs for one tick. Others is nil
// when ball-to-ball collisions are disabled.
type UpdateArgs struct {
	DT     float64 // Seconds
	Width  float64
	Height float64
	Others []Ball
}

// Move advances the ball along its velocity for dt seconds.
func (b *Ball) Move(dt float64) {
	b.Pos.X += dt * b.Velocity.X()
	b.Pos.Y += dt * b.Velocity.Y()
}

// ReflectWalls keeps the ball inside a width x height container. The four
// edges are checked independently, so a corner hit flips both axes.
func (b *Ball) ReflectWalls(width, height float64) {
	if b.Pos.X >= width-b.Radius {
		b.Pos.X = width - b.Radius
		b.Velocity.NegateX()
	}
	if b.Pos.X < b.Radius {
		b.Pos.X = b.Radius
		b.Velocity.NegateX()
	}
	if b.Pos.Y >= height-b.Radius {
		b.Pos.Y = height - b.Radius
		b.Velocity.NegateY()
	}
	if b.Pos.Y < b.Radius {
		b.Pos.Y = b.Radius
		b.Velocity.NegateY()
	}
}

// CollidesWith reports whether other is a different ball touching or
// overlapping b.
func (b *Ball) CollidesWith(other Ball) bool {
	return other.ID != b.ID && other.Pos.Sub(b.Pos).Length() <= b.Radius+other.Radius
}

// Update runs one tick: move, reflect off walls, then resolve contacts with
// args.Others. Returns the number of contacts resolved.
//
// Contact response is not physical separation: the ball is pushed back
// along its own direction by the penetration depth, then its direction is
// reflected about the normal towards the other ball.
func (b *Ball) Update(args UpdateArgs) int {
	b.Move(args.DT)
	b.ReflectWalls(args.Width, args.Height)

	contacts := 0
	for _, other := range args.Others {
		if !b.CollidesWith(other) {
			continue
		}
		depth := b.Pos.Sub(other.Pos).Length() - (b.Radius + other.Radius)
		b.Pos = b.Pos.Add(b.Velocity.Dir.Scale(depth))
		n := other.Pos.Sub(b.Pos).Normalize()
		b.Velocity.Reflect(n)
		contacts++
	}
	return contacts
}

// Bounds returns the ball's bounding box in world pixels.
func (b *Ball) Bounds() core.RectF {
	return core.RectF{
		X: b.Pos.X - b.Radius,
		Y: b.Pos.Y - b.Radius,
		W: b.Radius * 2,
		H: b.Radius * 2,
	}
}
