package platformer

import (
	"github.com/vovakirdan/tui-motion/internal/config"
	"github.com/vovakirdan/tui-motion/internal/core"
)

// Motion holds the jump arc and run timing. Times are seconds, distances
// pixels.
type Motion struct {
	AscendTime   float64
	DescendTime  float64
	FloatTime    float64
	MaxAscend    float64 // Height gained over a full ascent
	JumpCoolDown float64
	SpeedUpTime  float64 // Time to reach MaxSpeed from rest
	MaxSpeed     float64 // Pixels per second
	FPS          int     // Animation frames per second
}

// NewMotion converts config values (distances in tiles) for a tile size.
func NewMotion(cfg config.PlatformerConfig, tileSize float64) Motion {
	return Motion{
		AscendTime:   cfg.Motion.AscendTime,
		DescendTime:  cfg.Motion.DescendTime,
		FloatTime:    cfg.Motion.FloatTime,
		MaxAscend:    cfg.Motion.MaxAscendTiles * tileSize,
		JumpCoolDown: cfg.Motion.JumpCoolDown,
		SpeedUpTime:  cfg.Motion.SpeedUpTime,
		MaxSpeed:     cfg.Motion.MaxSpeedTiles * tileSize,
		FPS:          cfg.Player.FPS,
	}
}

// DescendSpeed returns the fall speed in pixels per second.
func (m Motion) DescendSpeed() float64 {
	return m.MaxAscend / m.DescendTime
}

// UpdateArgs carries one tick of input and world context.
type UpdateArgs struct {
	DT      float64 // Seconds
	Input   core.InputFrame
	ScreenW float64
	ScreenH float64
	Map     *Map
}

// Player is the platformer body. Pos is the bottom-center of its bounding
// box in y-up world pixels.
type Player struct {
	Pos  core.Vec2
	Size core.Vec2

	motion      Motion
	state       State
	actionTimer float64
	speed       float64
	canJump     bool
	anim        Animator
}

// NewPlayer creates a standing player.
func NewPlayer(pos, size core.Vec2, m Motion) *Player {
	return &Player{
		Pos:     pos,
		Size:    size,
		motion:  m,
		state:   StateStand,
		canJump: true,
		anim:    NewAnimator(m.FPS, StateStand.Frames()),
	}
}

func (p *Player) setState(s State) {
	p.state = s
	p.anim.Play(s.Frames())
}

// Update advances the motion state machine by one tick.
func (p *Player) Update(args UpdateArgs) {
	dt := args.DT
	m := p.motion
	jump := args.Input.IsHeld(core.ActionJump)
	right := args.Input.IsHeld(core.ActionRight)
	left := args.Input.IsHeld(core.ActionLeft)
	floor := args.Map.FloorUnder(p.Pos)
	landed := false

	switch p.state {
	case StateStand:
		switch {
		case jump && p.canJump:
			p.setState(StateAscendStart)
			p.actionTimer = m.AscendTime
		case right:
			p.setState(StateMove)
			p.speed = dt / m.SpeedUpTime * m.MaxSpeed
		case left:
			p.setState(StateMove)
			p.speed = -dt / m.SpeedUpTime * m.MaxSpeed
		}
		if p.Pos.Y > floor {
			p.setState(StateDescend)
		}

	case StateMove:
		if jump && p.canJump {
			p.setState(StateAscendStart)
			p.actionTimer = m.AscendTime
		}
		if p.Pos.Y > floor {
			p.setState(StateDescend)
		}

	case StateAscendStart, StateAscend:
		if p.actionTimer > 0 {
			step := min(dt, p.actionTimer)
			ceiling := args.Map.CeilingOver(p.Pos, args.ScreenH)
			p.Pos.Y += step / m.AscendTime * m.MaxAscend
			p.actionTimer = max(p.actionTimer-dt, 0)
			if p.Pos.Y > ceiling-p.Size.Y {
				p.Pos.Y = ceiling - p.Size.Y
				p.setState(StateFloat)
				p.actionTimer = 0
			}
		} else {
			p.setState(StateFloat)
			p.actionTimer = m.FloatTime
		}

	case StateFloat:
		if p.actionTimer > 0 {
			p.actionTimer = max(p.actionTimer-dt, 0)
		} else {
			p.setState(StateDescend)
		}

	case StateDescend:
		if p.Pos.Y > floor {
			p.Pos.Y -= min(dt*m.DescendSpeed(), p.Pos.Y-floor)
		} else {
			p.Pos.Y = floor
			if p.speed == 0 {
				p.setState(StateStand)
			} else {
				p.setState(StateMove)
			}
			p.actionTimer = m.JumpCoolDown
			p.canJump = false
			landed = true
		}
	}

	p.updateSpeed(dt, left, right)

	// The cooldown starts counting on the tick after landing.
	if !p.canJump && !landed {
		p.actionTimer -= dt
		if p.actionTimer <= 0 {
			p.actionTimer = 0
			p.canJump = true
		}
	}

	if p.speed != 0 {
		p.Pos.X += dt * p.speed
	}
	p.clampWalls(args)

	if p.anim.Advance(dt) && p.state == StateAscendStart {
		p.setState(StateAscend)
	}
}

// updateSpeed ramps speed towards the held direction or decays it to zero.
func (p *Player) updateSpeed(dt float64, left, right bool) {
	m := p.motion
	change := dt / m.SpeedUpTime * m.MaxSpeed

	switch {
	case right:
		p.speed = min(p.speed+change, m.MaxSpeed)
	case left:
		p.speed = max(p.speed-change, -m.MaxSpeed)
	case p.speed < 0:
		p.speed += change
		if p.speed >= 0 {
			p.stop()
		}
	case p.speed > 0:
		p.speed -= change
		if p.speed <= 0 {
			p.stop()
		}
	}
}

// stop zeroes speed and drops out of Move.
func (p *Player) stop() {
	p.speed = 0
	if p.state == StateMove {
		p.setState(StateStand)
	}
}

// clampWalls keeps the player's half width clear of the nearest walls.
func (p *Player) clampWalls(args UpdateArgs) {
	left := args.Map.WallLeft(p.Pos)
	right := args.Map.WallRight(p.Pos, args.ScreenW)
	half := p.Size.X / 2

	if p.Pos.X > right-half {
		p.Pos.X = right - half
		p.stop()
	}
	if p.Pos.X < left+half {
		p.Pos.X = left + half
		p.stop()
	}
}

// State returns the current motion state.
func (p *Player) State() State {
	return p.state
}

// ActionTimer returns the time left in the current timed phase or cooldown.
func (p *Player) ActionTimer() float64 {
	return p.actionTimer
}

// Speed returns the signed horizontal speed.
func (p *Player) Speed() float64 {
	return p.speed
}

// CanJump reports whether the jump cooldown has elapsed.
func (p *Player) CanJump() bool {
	return p.canJump
}

// Sprite returns the current animation frame.
func (p *Player) Sprite() string {
	return p.anim.Frame()
}
