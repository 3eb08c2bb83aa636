package atlas

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-motion/internal/core"
)

func TestDefaultSheetSizes(t *testing.T) {
	sheet := Default()

	tests := []struct {
		name string
		w, h float64
	}{
		{"tileYellow_06.png", 64, 64},
		{"playerRed_stand.png", 39, 48},
		{"playerRed_walk2.png", 39, 48},
		{"plantGreen_3.png", 44, 31},
		{"flagGreen_up.png", 51, 61},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h, ok := sheet.Size(tc.name)
			if !ok {
				t.Fatalf("sprite %s missing", tc.name)
			}
			if w != tc.w || h != tc.h {
				t.Errorf("Size() = %vx%v, expected %vx%v", w, h, tc.w, tc.h)
			}
		})
	}

	if _, _, ok := sheet.Size("nope.png"); ok {
		t.Error("unknown sprite should not be found")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Default().Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}

func TestParseDescriptorErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"malformed", "<TextureAtlas"},
		{"empty", `<TextureAtlas imagePath="x.png"></TextureAtlas>`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseDescriptor([]byte(tc.xml)); err == nil {
				t.Error("expected error")
			}
		})
	}

	dup := `<TextureAtlas imagePath="x.png">
	<SubTexture name="a.png" x="0" y="0" width="1" height="1"/>
	<SubTexture name="a.png" x="1" y="0" width="1" height="1"/>
</TextureAtlas>`
	if _, err := Parse([]byte(dup), defaultSkin); err == nil {
		t.Error("duplicate sprite names should be rejected")
	}
}

func TestSkinGlyphs(t *testing.T) {
	skin, err := ParseSkin([]byte(`
fallback: {rune: "?", color: 7}
glyphs:
  - {match: "tile*", rune: "#", color: 3}
  - {match: "tileRed.png", rune: "R", color: 1}
`))
	if err != nil {
		t.Fatalf("ParseSkin: %v", err)
	}

	if g := skin.Glyph("tileRed.png"); g.Rune != '#' || g.Color != 3 {
		t.Errorf("first matching rule should win, got %+v", g)
	}
	if g := skin.Glyph("player.png"); g.Rune != '?' || g.Color != 7 {
		t.Errorf("fallback not applied, got %+v", g)
	}

	if _, err := ParseSkin([]byte(`glyphs: [{match: "[", rune: "x"}]`)); err == nil {
		t.Error("invalid pattern should be rejected")
	}
}

func TestDrawSkipsUnknownSprites(t *testing.T) {
	sheet := Default()
	screen := core.NewScreen(20, 10)
	vp := core.NewViewport(160, 160, 20, 10, 0)

	if sheet.Draw(screen, vp, "missing.png", 0, 0) {
		t.Error("Draw should report false for unknown sprites")
	}
	if strings.TrimSpace(screen.String()) != "" {
		t.Error("unknown sprite should draw nothing")
	}

	if !sheet.Draw(screen, vp, "tileYellow_06.png", 16, 32) {
		t.Fatal("Draw should succeed for known sprite")
	}
	// 64x64 px at 8x16 px per cell covers 8x4 cells from (2, 2).
	want, _ := sheet.Sprite("tileYellow_06.png")
	if c := screen.GetCell(2, 2); c != want.Glyph {
		t.Errorf("top-left cell = %+v, expected %+v", c, want.Glyph)
	}
	if c := screen.GetCell(9, 5); c != want.Glyph {
		t.Errorf("bottom-right cell = %+v, expected %+v", c, want.Glyph)
	}
	if screen.Get(10, 5) != ' ' || screen.Get(2, 6) != ' ' {
		t.Error("sprite drawn outside its bounds")
	}
}

func writeAssets(t *testing.T, imgW, imgH int) string {
	t.Helper()
	dir := t.TempDir()

	descriptor := `<TextureAtlas imagePath="sheet.png">
	<SubTexture name="tile.png" x="0" y="0" width="64" height="64" frameX="0" frameY="0" frameWidth="64" frameHeight="64"/>
</TextureAtlas>`
	if err := os.WriteFile(filepath.Join(dir, DescriptorFile), []byte(descriptor), 0o644); err != nil {
		t.Fatal(err)
	}

	if imgW > 0 {
		f, err := os.Create(filepath.Join(dir, "sheet.png"))
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, imgW, imgH))); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadDirectory(t *testing.T) {
	t.Run("image fits", func(t *testing.T) {
		sheet, err := Load(writeAssets(t, 128, 128))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if _, ok := sheet.Sprite("tile.png"); !ok {
			t.Error("sprite missing after load")
		}
	})

	t.Run("image too small", func(t *testing.T) {
		if _, err := Load(writeAssets(t, 32, 32)); err == nil {
			t.Error("expected error when sprites exceed the image")
		}
	})

	t.Run("image absent", func(t *testing.T) {
		if _, err := Load(writeAssets(t, 0, 0)); err != nil {
			t.Errorf("missing image should be tolerated: %v", err)
		}
	})

	t.Run("image corrupt", func(t *testing.T) {
		dir := writeAssets(t, 0, 0)
		if err := os.WriteFile(filepath.Join(dir, "sheet.png"), []byte("not a png"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(dir); err == nil {
			t.Error("expected error for unreadable image")
		}
	})

	t.Run("descriptor missing", func(t *testing.T) {
		if _, err := Load(t.TempDir()); err == nil {
			t.Error("expected error for missing descriptor")
		}
	})
}

func TestFindAndActive(t *testing.T) {
	if _, err := Find(filepath.Join(t.TempDir(), "nowhere"), ""); err == nil {
		t.Error("explicit dir without descriptor should fail")
	}

	sheet, err := Find(writeAssets(t, 0, 0), "")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	Use(sheet)
	defer Use(nil)
	if Active() != sheet {
		t.Error("Active should return the sheet passed to Use")
	}
	Use(nil)
	if Active() != Default() {
		t.Error("Active should fall back to the embedded sheet")
	}
}

func TestFindUserDir(t *testing.T) {
	if sheet, err := Find("", t.TempDir()); err != nil || sheet != Default() {
		t.Errorf("dir without descriptor should fall through to the embedded sheet: %v", err)
	}
	if _, err := Find("", writeAssets(t, 32, 32)); err == nil {
		t.Error("a broken user sheet should be an error")
	}
}
