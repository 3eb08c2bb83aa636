// Package atlas loads sprite sheets described by TextureAtlas XML
// descriptors and draws named sprites onto the terminal screen as glyph
// blocks.
package atlas

import (
	"encoding/xml"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-motion/internal/core"
)

// TextureAtlas is the XML descriptor root.
type TextureAtlas struct {
	XMLName     xml.Name     `xml:"TextureAtlas"`
	ImagePath   string       `xml:"imagePath,attr"`
	SubTextures []SubTexture `xml:"SubTexture"`
}

// SubTexture is one named region of the sheet image. Frame fields are
// parsed but unused.
type SubTexture struct {
	Name        string  `xml:"name,attr"`
	X           float64 `xml:"x,attr"`
	Y           float64 `xml:"y,attr"`
	Width       float64 `xml:"width,attr"`
	Height      float64 `xml:"height,attr"`
	FrameX      float64 `xml:"frameX,attr"`
	FrameY      float64 `xml:"frameY,attr"`
	FrameWidth  float64 `xml:"frameWidth,attr"`
	FrameHeight float64 `xml:"frameHeight,attr"`
}

// Sprite is a resolved sub-texture with the glyph it renders as.
type Sprite struct {
	Name  string
	X, Y  float64
	W, H  float64
	Glyph core.Cell
}

// Sheet is a loaded sprite atlas.
type Sheet struct {
	ImagePath string
	sprites   map[string]Sprite
	names     []string
}

// ParseDescriptor decodes a TextureAtlas XML document.
func ParseDescriptor(data []byte) (TextureAtlas, error) {
	var ta TextureAtlas
	if err := xml.Unmarshal(data, &ta); err != nil {
		return ta, fmt.Errorf("atlas: invalid descriptor: %w", err)
	}
	if len(ta.SubTextures) == 0 {
		return ta, fmt.Errorf("atlas: descriptor has no sub-textures")
	}
	return ta, nil
}

// NewSheet resolves every sub-texture against the skin.
func NewSheet(ta TextureAtlas, skin Skin) (*Sheet, error) {
	s := &Sheet{
		ImagePath: ta.ImagePath,
		sprites:   make(map[string]Sprite, len(ta.SubTextures)),
		names:     make([]string, 0, len(ta.SubTextures)),
	}

	for _, st := range ta.SubTextures {
		if st.Name == "" {
			return nil, fmt.Errorf("atlas: sub-texture without name")
		}
		if st.Width <= 0 || st.Height <= 0 {
			return nil, fmt.Errorf("atlas: sprite %s has empty size", st.Name)
		}
		if _, dup := s.sprites[st.Name]; dup {
			return nil, fmt.Errorf("atlas: duplicate sprite %s", st.Name)
		}
		s.sprites[st.Name] = Sprite{
			Name:  st.Name,
			X:     st.X,
			Y:     st.Y,
			W:     st.Width,
			H:     st.Height,
			Glyph: skin.Glyph(st.Name),
		}
		s.names = append(s.names, st.Name)
	}

	sort.Strings(s.names)
	return s, nil
}

// Sprite returns the named sprite.
func (s *Sheet) Sprite(name string) (Sprite, bool) {
	sp, ok := s.sprites[name]
	return sp, ok
}

// Size returns the pixel size of the named sprite.
func (s *Sheet) Size(name string) (w, h float64, ok bool) {
	sp, ok := s.sprites[name]
	return sp.W, sp.H, ok
}

// Names returns all sprite names in sorted order.
func (s *Sheet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Extent returns the smallest image size that holds every sprite.
func (s *Sheet) Extent() (w, h float64) {
	for _, sp := range s.sprites {
		w = max(w, sp.X+sp.W)
		h = max(h, sp.Y+sp.H)
	}
	return w, h
}

// Draw blits the named sprite with its top-left corner at world position
// (x, y). Unknown names draw nothing and report false.
func (s *Sheet) Draw(dst *core.Screen, vp core.Viewport, name string, x, y float64) bool {
	sp, ok := s.sprites[name]
	if !ok {
		return false
	}
	dst.FillRect(vp.RectToCells(x, y, sp.W, sp.H), sp.Glyph)
	return true
}
