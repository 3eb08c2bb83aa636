// Package config provides YAML-based demo configuration loading.
package config

// Range is an inclusive-exclusive [Min, Max) sampling interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Size is a width/height pair in world pixels.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallsConfig contains all configuration for the ball physics demos.
type BallsConfig struct {
	Count      int       `yaml:"count"`
	Cell       Size      `yaml:"cell"` // World pixels covered by one terminal cell
	Velocity   Range     `yaml:"velocity"`
	Radius     Range     `yaml:"radius"`
	Collisions bool      `yaml:"collisions"`
	Color      []float64 `yaml:"color,omitempty"` // Optional [r, g, b] override, unit range
}

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	World  Size             `yaml:"world"`
	Player PlatformerPlayer `yaml:"player"`
	Motion MotionConfig     `yaml:"motion"`
	Goal   GoalConfig       `yaml:"goal"`
}

// PlatformerPlayer defines the player sprite and animation rate.
type PlatformerPlayer struct {
	Sprite string `yaml:"sprite"` // Sprite whose size becomes the player's bounding box
	FPS    int    `yaml:"fps"`
}

// MotionConfig defines the jump arc and horizontal movement timing.
// Times are in seconds, distances in tiles.
type MotionConfig struct {
	AscendTime     float64 `yaml:"ascend_time"`
	DescendTime    float64 `yaml:"descend_time"`
	FloatTime      float64 `yaml:"float_time"`
	MaxAscendTiles float64 `yaml:"max_ascend_tiles"`
	JumpCoolDown   float64 `yaml:"jump_cool_down"`
	SpeedUpTime    float64 `yaml:"speed_up_time"`
	MaxSpeedTiles  float64 `yaml:"max_speed_tiles"` // Tiles per second
}

// GoalConfig defines level-clear scoring.
type GoalConfig struct {
	ParSeconds float64 `yaml:"par_seconds"`
}

// WalkConfig contains all configuration for the walk cycle demo.
type WalkConfig struct {
	World       Size    `yaml:"world"`
	FPS         int     `yaml:"fps"`
	ScrollSpeed float64 `yaml:"scroll_speed"` // Pixels per second
	PlantStart  float64 `yaml:"plant_start"`
	PlantWrap   float64 `yaml:"plant_wrap"` // Plant re-enters on the right once x <= PlantWrap
}
