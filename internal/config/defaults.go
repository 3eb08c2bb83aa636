package config

import (
	_ "embed"
)

//go:embed defaults/balls.yaml
var defaultBallsYAML []byte

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

//go:embed defaults/walk.yaml
var defaultWalkYAML []byte

// DefaultBallsConfig returns the default ball demo configuration.
func DefaultBallsConfig() BallsConfig {
	return BallsConfig{
		Count:    100,
		Cell:     Size{Width: 8, Height: 16},
		Velocity: Range{Min: 500, Max: 1000},
		Radius:   Range{Min: 10, Max: 20},
	}
}

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: Size{Width: 640, Height: 448},
		Player: PlatformerPlayer{
			Sprite: "playerRed_stand.png",
			FPS:    24,
		},
		Motion: MotionConfig{
			AscendTime:     12.0 / 60,
			DescendTime:    8.0 / 60,
			FloatTime:      1.5 / 60,
			MaxAscendTiles: 2.5,
			JumpCoolDown:   3.0 / 60,
			SpeedUpTime:    6.0 / 60,
			MaxSpeedTiles:  10,
		},
		Goal: GoalConfig{ParSeconds: 30},
	}
}

// DefaultWalkConfig returns the default walk cycle configuration.
func DefaultWalkConfig() WalkConfig {
	return WalkConfig{
		World:       Size{Width: 192, Height: 192},
		FPS:         24,
		ScrollSpeed: 192,
		PlantStart:  106,
		PlantWrap:   -44,
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "balls":
		return defaultBallsYAML
	case "platformer":
		return defaultPlatformerYAML
	case "walk":
		return defaultWalkYAML
	default:
		return nil
	}
}
