package platformer

import (
	"testing"

	"github.com/vovakirdan/tui-motion/internal/config"
	"github.com/vovakirdan/tui-motion/internal/core"
)

const tick = 1.0 / 60

func testMotion() Motion {
	return NewMotion(config.DefaultPlatformerConfig(), 64)
}

// flatMap returns a 10-tile ground row plus extra tiles.
func flatMap(extra ...Tile) *Map {
	m := &Map{TileSize: 64}
	for x := 0; x < 10; x++ {
		m.Tiles = append(m.Tiles, NewTile("tileYellow_06.png", x, 0))
	}
	m.Tiles = append(m.Tiles, extra...)
	return m
}

func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

func step(p *Player, m *Map, in core.InputFrame) {
	p.Update(UpdateArgs{DT: tick, Input: in, ScreenW: 640, ScreenH: 448, Map: m})
}

func TestMotionDefaults(t *testing.T) {
	m := testMotion()
	if m.MaxAscend != 160 || m.MaxSpeed != 640 || m.FPS != 24 {
		t.Errorf("unexpected motion %+v", m)
	}
	if got := m.DescendSpeed(); got != 160/(8.0/60) {
		t.Errorf("DescendSpeed() = %v, expected %v", got, 160/(8.0/60))
	}
}

func TestPlayerJumpFromStand(t *testing.T) {
	m := testMotion()
	p := NewPlayer(core.V(100, 64), core.V(39, 48), m)

	step(p, flatMap(), held(core.ActionJump))

	if p.State() != StateAscendStart {
		t.Fatalf("state = %v, expected AscendStart", p.State())
	}
	if p.ActionTimer() != m.AscendTime {
		t.Errorf("action timer = %v, expected %v", p.ActionTimer(), m.AscendTime)
	}
}

func TestPlayerAscendRespectsCeiling(t *testing.T) {
	m := flatMap(NewTile("tileYellow_06.png", 1, 3))
	p := NewPlayer(core.V(100, 64), core.V(39, 48), testMotion())
	limit := 192 - p.Size.Y

	step(p, m, held(core.ActionJump))
	floated := false
	for i := 0; i < 30; i++ {
		step(p, m, core.NewInputFrame())
		if p.Pos.Y > limit {
			t.Fatalf("tick %d: y = %v exceeds ceiling limit %v", i, p.Pos.Y, limit)
		}
		if p.State() == StateFloat {
			floated = true
			break
		}
	}
	if !floated {
		t.Fatal("player should float after hitting the ceiling")
	}
	if p.Pos.Y != limit {
		t.Errorf("y = %v, expected clamp to %v", p.Pos.Y, limit)
	}
}

func TestPlayerFullJumpArc(t *testing.T) {
	m := flatMap()
	p := NewPlayer(core.V(100, 64), core.V(39, 48), testMotion())

	step(p, m, held(core.ActionJump))
	seen := map[State]bool{}
	peak := 0.0
	for i := 0; i < 120; i++ {
		step(p, m, core.NewInputFrame())
		seen[p.State()] = true
		peak = max(peak, p.Pos.Y)
		if p.ActionTimer() < 0 {
			t.Fatalf("tick %d: action timer went negative: %v", i, p.ActionTimer())
		}
		if p.State() == StateStand {
			break
		}
	}

	for _, s := range []State{StateAscend, StateFloat, StateDescend, StateStand} {
		if !seen[s] {
			t.Errorf("jump never reached %v", s)
		}
	}
	if peak < 64+160-1e-6 || peak > 64+160+1e-6 {
		t.Errorf("peak = %v, expected %v", peak, 64+160)
	}
	if p.Pos.Y != 64 {
		t.Errorf("landed at y = %v, expected 64", p.Pos.Y)
	}
}

func TestPlayerLandingStartsCooldown(t *testing.T) {
	mo := testMotion()
	p := NewPlayer(core.V(100, 64), core.V(39, 48), mo)
	p.setState(StateDescend)

	step(p, flatMap(), core.NewInputFrame())

	if p.State() != StateStand {
		t.Errorf("state = %v, expected Stand", p.State())
	}
	if p.CanJump() {
		t.Error("can jump should be false right after landing")
	}
	if p.ActionTimer() != mo.JumpCoolDown {
		t.Errorf("action timer = %v, expected %v", p.ActionTimer(), mo.JumpCoolDown)
	}

	// Cooldown lasts about 3 ticks and re-arms at zero.
	for i := 0; i < 4; i++ {
		step(p, flatMap(), core.NewInputFrame())
	}
	if !p.CanJump() || p.ActionTimer() != 0 {
		t.Errorf("cooldown should re-arm: canJump=%v timer=%v", p.CanJump(), p.ActionTimer())
	}
}

func TestPlayerCooldownBlocksJump(t *testing.T) {
	m := flatMap()
	p := NewPlayer(core.V(100, 64), core.V(39, 48), testMotion())
	p.setState(StateDescend)
	step(p, m, core.NewInputFrame())

	jump := held(core.ActionJump)
	ticks := 0
	for !p.CanJump() {
		if ticks++; ticks > 10 {
			t.Fatal("cooldown never re-armed")
		}
		step(p, m, jump)
		if p.State() != StateStand {
			t.Fatalf("tick %d: state = %v, jump should be blocked during cooldown", ticks, p.State())
		}
	}

	step(p, m, jump)
	if p.State() != StateAscendStart {
		t.Errorf("state = %v, expected AscendStart once the cooldown re-armed", p.State())
	}
}

func TestPlayerLandingWhileMoving(t *testing.T) {
	p := NewPlayer(core.V(100, 64), core.V(39, 48), testMotion())
	p.setState(StateDescend)
	p.speed = 300

	step(p, flatMap(), held(core.ActionRight))

	if p.State() != StateMove {
		t.Errorf("state = %v, expected Move", p.State())
	}
}

func TestPlayerRunRampAndDecay(t *testing.T) {
	mo := testMotion()
	m := flatMap()
	p := NewPlayer(core.V(100, 64), core.V(39, 48), mo)

	step(p, m, held(core.ActionRight))
	if p.State() != StateMove || p.Speed() <= 0 {
		t.Fatalf("state = %v speed = %v, expected moving right", p.State(), p.Speed())
	}
	for i := 0; i < 5; i++ {
		step(p, m, held(core.ActionRight))
	}
	if p.Speed() != mo.MaxSpeed {
		t.Errorf("speed = %v, expected clamp to %v", p.Speed(), mo.MaxSpeed)
	}
	if p.Pos.X <= 100 {
		t.Error("player should have moved right")
	}

	for i := 0; i < 10 && p.State() == StateMove; i++ {
		step(p, m, core.NewInputFrame())
	}
	if p.State() != StateStand || p.Speed() != 0 {
		t.Errorf("state = %v speed = %v, expected to stop", p.State(), p.Speed())
	}
}

func TestPlayerRunLeft(t *testing.T) {
	mo := testMotion()
	p := NewPlayer(core.V(300, 64), core.V(39, 48), mo)

	for i := 0; i < 8; i++ {
		step(p, flatMap(), held(core.ActionLeft))
	}
	if p.Speed() != -mo.MaxSpeed {
		t.Errorf("speed = %v, expected %v", p.Speed(), -mo.MaxSpeed)
	}
}

func TestPlayerWallClamp(t *testing.T) {
	m := flatMap(NewTile("tileYellow_05.png", 3, 1))
	p := NewPlayer(core.V(150, 64), core.V(39, 48), testMotion())
	limit := 192 - p.Size.X/2

	for i := 0; i < 30; i++ {
		step(p, m, held(core.ActionRight))
		if p.Pos.X > limit {
			t.Fatalf("tick %d: x = %v passed wall limit %v", i, p.Pos.X, limit)
		}
	}
	if p.Pos.X != limit || p.Speed() != 0 || p.State() != StateStand {
		t.Errorf("x = %v speed = %v state = %v, expected pinned at wall", p.Pos.X, p.Speed(), p.State())
	}
}

func TestPlayerFallsOffLedge(t *testing.T) {
	p := NewPlayer(core.V(100, 200), core.V(39, 48), testMotion())
	step(p, flatMap(), core.NewInputFrame())

	if p.State() != StateDescend {
		t.Errorf("state = %v, expected Descend", p.State())
	}
}

func TestAnimatorAscendStartBecomesAscend(t *testing.T) {
	p := NewPlayer(core.V(100, 64), core.V(39, 48), testMotion())
	step(p, flatMap(), held(core.ActionJump))

	for i := 0; i < 10 && p.State() == StateAscendStart; i++ {
		step(p, flatMap(), core.NewInputFrame())
	}
	if p.State() != StateAscend {
		t.Errorf("state = %v, expected Ascend once the start frames played", p.State())
	}
	if p.Sprite() != "playerRed_up3.png" {
		t.Errorf("sprite = %q, expected up3", p.Sprite())
	}
}

func TestAnimatorCycle(t *testing.T) {
	a := NewAnimator(10, StateMove.Frames())

	if a.Advance(0.05) {
		t.Error("should not advance before the interval")
	}
	var frames []string
	for i := 0; i < 4; i++ {
		a.Advance(0.1)
		frames = append(frames, a.Frame())
	}
	want := []string{"playerRed_walk2.png", "playerRed_walk3.png", "playerRed_walk2.png", "playerRed_walk1.png"}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %q, expected %q", i, frames[i], want[i])
		}
	}
	if a.Index() != 0 {
		t.Errorf("index = %d, expected wrap to 0", a.Index())
	}
}

func TestStateStrings(t *testing.T) {
	if StateAscendStart.String() != "AscendStart" || State(42).String() != "Unknown" {
		t.Error("unexpected state names")
	}
	if len(StateFloat.Frames()) != 1 || StateFloat.Frames()[0] != StateAscend.Frames()[0] {
		t.Error("Float should reuse the Ascend frame")
	}
}
