package atlas

import (
	"fmt"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-motion/internal/core"
)

// GlyphRule maps sprite names matching a path.Match pattern to a glyph.
type GlyphRule struct {
	Match string `yaml:"match"`
	Rune  string `yaml:"rune"`
	Color int    `yaml:"color"`
}

// Skin is an ordered list of glyph rules. The first matching rule wins.
type Skin struct {
	Fallback GlyphRule   `yaml:"fallback"`
	Glyphs   []GlyphRule `yaml:"glyphs"`
}

// ParseSkin decodes and validates a YAML skin.
func ParseSkin(data []byte) (Skin, error) {
	var skin Skin
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return skin, fmt.Errorf("atlas: invalid skin: %w", err)
	}
	for _, g := range skin.Glyphs {
		if _, err := path.Match(g.Match, ""); err != nil {
			return skin, fmt.Errorf("atlas: bad skin pattern %q: %w", g.Match, err)
		}
	}
	return skin, nil
}

// Glyph returns the cell a sprite with the given name renders as.
func (s Skin) Glyph(name string) core.Cell {
	for _, g := range s.Glyphs {
		if ok, _ := path.Match(g.Match, name); ok {
			return g.cell()
		}
	}
	return s.Fallback.cell()
}

func (g GlyphRule) cell() core.Cell {
	r := '#'
	for _, c := range g.Rune {
		r = c
		break
	}
	return core.Cell{Rune: r, Color: core.Color(core.Clamp(g.Color, 0, 255))}
}
