// Package levels provides level loading for the platformer.
// Levels are YAML files describing a tile grid, decorations and a goal flag.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// TileDef places a sprite on the tile grid. Grid y grows upwards from the
// bottom row. Center aligns a decoration horizontally on its cell and sits
// it on the cell's bottom edge; otherwise OffsetX/OffsetY shift the sprite
// by fractions of a tile.
type TileDef struct {
	Sprite  string  `yaml:"sprite"`
	X       int     `yaml:"x"`
	Y       int     `yaml:"y"`
	Center  bool    `yaml:"center,omitempty"`
	OffsetX float64 `yaml:"offset_x,omitempty"`
	OffsetY float64 `yaml:"offset_y,omitempty"`
}

// Point is a world position in pixels, y up.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Size is a world size in pixels.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Level represents a complete level definition.
type Level struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	TileSize    float64   `yaml:"tile_size"`
	Size        Size      `yaml:"size"`
	Start       Point     `yaml:"start"`
	Tiles       []TileDef `yaml:"tiles"`
	Decorations []TileDef `yaml:"decorations,omitempty"`
	Flag        TileDef   `yaml:"flag"`
	FlagUp      string    `yaml:"flag_up"` // Flag sprite once reached
	FilePath    string    `yaml:"-"`
	Source      string    `yaml:"-"` // Loader the level came from
}

// Validate checks that the level can be played.
func (l *Level) Validate() error {
	switch {
	case l.ID == "":
		return errors.New("missing id")
	case l.TileSize <= 0:
		return fmt.Errorf("tile_size must be positive, got %v", l.TileSize)
	case l.Size.W <= 0 || l.Size.H <= 0:
		return fmt.Errorf("size must be positive, got %vx%v", l.Size.W, l.Size.H)
	case l.Flag.Sprite == "":
		return errors.New("missing flag sprite")
	}
	if l.FlagUp == "" {
		l.FlagUp = l.Flag.Sprite
	}
	return nil
}

// Parse decodes and validates a YAML level.
func Parse(data []byte) (Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, fmt.Errorf("invalid level: %w", err)
	}
	return lvl, nil
}

// Loader handles loading levels from a file tree.
type Loader struct {
	Root fs.FS
	Name string // Recorded as Level.Source
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: os.DirFS(root), Name: root}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	return &Loader{Root: sub, Name: "builtin"}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.Root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		lvl, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking levels: %w", err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file relative to Root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.Root, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	lvl.FilePath = p
	lvl.Source = l.Name
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Merge combines level sets. Later sets replace earlier levels with the
// same ID. The result is sorted by ID.
func Merge(sets ...[]Level) []Level {
	byID := make(map[string]Level)
	for _, set := range sets {
		for _, lvl := range set {
			byID[lvl.ID] = lvl
		}
	}

	out := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		out = append(out, lvl)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
