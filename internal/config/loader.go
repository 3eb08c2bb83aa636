package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HomeDir is the per-user directory under $HOME holding configs, levels,
// assets and the score database.
const HomeDir = ".motion"

// LoadBalls loads the ball demo configuration.
// Search order: customPath -> ~/.motion/configs/balls.yaml -> ./configs/balls.yaml -> embedded default
func LoadBalls(customPath string) (BallsConfig, error) {
	return load("balls", customPath, DefaultBallsConfig)
}

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.motion/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	return load("platformer", customPath, DefaultPlatformerConfig)
}

// LoadWalk loads the walk cycle configuration.
// Search order: customPath -> ~/.motion/configs/walk.yaml -> ./configs/walk.yaml -> embedded default
func LoadWalk(customPath string) (WalkConfig, error) {
	return load("walk", customPath, DefaultWalkConfig)
}

// load resolves a config by name. Only an explicit customPath can fail; the
// user and local directories are skipped when missing or malformed.
func load[T any](name, customPath string, fallback func() T) (T, error) {
	filename := name + ".yaml"

	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		UserPath("configs", filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(GetDefaultYAML(name), &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// UserPath joins elem under ~/.motion, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, HomeDir}, elem...)...)
}
