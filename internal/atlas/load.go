package atlas

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder for DecodeConfig
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Descriptor and skin file names inside an assets directory.
const (
	DescriptorFile = "sprites.xml"
	SkinFile       = "skin.yaml"
)

//go:embed assets/sprites.xml
var defaultDescriptor []byte

//go:embed assets/skin.yaml
var defaultSkin []byte

var (
	defaultOnce  sync.Once
	defaultSheet *Sheet

	activeMu sync.RWMutex
	active   *Sheet
)

// Default returns the embedded sprite sheet.
func Default() *Sheet {
	defaultOnce.Do(func() {
		s, err := Parse(defaultDescriptor, defaultSkin)
		if err != nil {
			panic(fmt.Sprintf("atlas: embedded sheet: %v", err))
		}
		defaultSheet = s
	})
	return defaultSheet
}

// Use sets the sheet returned by Active.
func Use(s *Sheet) {
	activeMu.Lock()
	defer activeMu.Unlock()
	active = s
}

// Active returns the sheet set by Use, or the embedded sheet.
func Active() *Sheet {
	activeMu.RLock()
	s := active
	activeMu.RUnlock()
	if s == nil {
		return Default()
	}
	return s
}

// Parse builds a sheet from descriptor and skin bytes.
func Parse(descriptor, skin []byte) (*Sheet, error) {
	ta, err := ParseDescriptor(descriptor)
	if err != nil {
		return nil, err
	}
	sk, err := ParseSkin(skin)
	if err != nil {
		return nil, err
	}
	return NewSheet(ta, sk)
}

// Load reads sprites.xml (and skin.yaml, if present) from dir. When the
// descriptor's image exists next to it, its PNG header is decoded and every
// sprite must lie inside the image bounds.
func Load(dir string) (*Sheet, error) {
	descriptor, err := os.ReadFile(filepath.Join(dir, DescriptorFile))
	if err != nil {
		return nil, fmt.Errorf("atlas: reading descriptor: %w", err)
	}

	skin, err := os.ReadFile(filepath.Join(dir, SkinFile))
	if errors.Is(err, fs.ErrNotExist) {
		skin = defaultSkin
	} else if err != nil {
		return nil, fmt.Errorf("atlas: reading skin: %w", err)
	}

	sheet, err := Parse(descriptor, skin)
	if err != nil {
		return nil, err
	}

	if sheet.ImagePath != "" {
		if err := checkImage(filepath.Join(dir, sheet.ImagePath), sheet); err != nil {
			return nil, err
		}
	}
	return sheet, nil
}

// checkImage verifies the sheet fits in the image at path. A missing image
// is not an error: sprites render as glyphs in the terminal.
func checkImage(path string, sheet *Sheet) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("atlas: opening image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("atlas: decoding image %s: %w", path, err)
	}

	w, h := sheet.Extent()
	if w > float64(cfg.Width) || h > float64(cfg.Height) {
		return fmt.Errorf("atlas: sprites need %.0fx%.0f but %s is %dx%d",
			w, h, path, cfg.Width, cfg.Height)
	}
	return nil
}

// Find locates a sheet. Search order: custom dir -> ./assets ->
// userDir -> embedded default. Directories without a descriptor are
// skipped; a descriptor that fails to load is an error.
func Find(custom, userDir string) (*Sheet, error) {
	if custom != "" {
		return Load(custom)
	}
	for _, dir := range []string{"assets", userDir} {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, DescriptorFile)); err != nil {
			continue
		}
		return Load(dir)
	}
	return Default(), nil
}
