package platformer

// State is the player's motion state.
type State int

const (
	StateStand State = iota
	StateMove
	StateAscendStart
	StateAscend
	StateFloat
	StateDescend
)

var stateNames = [...]string{"Stand", "Move", "AscendStart", "Ascend", "Float", "Descend"}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Frames returns the looping animation frames for the state.
func (s State) Frames() []string {
	switch s {
	case StateMove:
		return []string{
			"playerRed_walk1.png",
			"playerRed_walk2.png",
			"playerRed_walk3.png",
			"playerRed_walk2.png",
		}
	case StateAscendStart:
		return []string{"playerRed_up1.png", "playerRed_up2.png"}
	case StateAscend, StateFloat:
		return []string{"playerRed_up3.png"}
	case StateDescend:
		return []string{"playerRed_fall.png"}
	default:
		return []string{"playerRed_stand.png"}
	}
}

// Animator steps through a frame list at a fixed rate, independent of the
// physics tick. At most one frame advances per Advance call.
type Animator struct {
	frames   []string
	index    int
	elapsed  float64
	interval float64
}

// NewAnimator creates an animator running at fps frames per second.
func NewAnimator(fps int, frames []string) Animator {
	if fps <= 0 {
		fps = 1
	}
	return Animator{frames: frames, interval: 1 / float64(fps)}
}

// Play switches to a new frame list from its first frame. The frame timer
// keeps running.
func (a *Animator) Play(frames []string) {
	a.frames = frames
	a.index = 0
}

// Advance adds dt seconds and moves to the next frame once the interval has
// passed. Reports whether the list wrapped back to its first frame.
func (a *Animator) Advance(dt float64) bool {
	a.elapsed += dt
	if a.elapsed < a.interval || len(a.frames) == 0 {
		return false
	}
	a.elapsed = 0
	a.index = (a.index + 1) % len(a.frames)
	return a.index == 0
}

// Frame returns the current frame name.
func (a *Animator) Frame() string {
	if len(a.frames) == 0 {
		return ""
	}
	return a.frames[a.index]
}

// Index returns the current frame index.
func (a *Animator) Index() int {
	return a.index
}
