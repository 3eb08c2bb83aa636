package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillCell(Cell{Rune: '#', Color: ColorBlue})
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("after Clear expected blank cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Hello", ColorGreen)

	for i, ch := range "Hello" {
		if c := s.GetCell(2+i, 1); c.Rune != ch || c.Color != ColorGreen {
			t.Errorf("expected green %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), Cell{Rune: '#', Color: ColorYellow})

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("expected '#' at (%d, %d)", x, y)
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenFillEllipse(t *testing.T) {
	s := NewScreen(20, 10)
	dot := Cell{Rune: '●', Color: ColorCyan}
	s.FillEllipse(2, 2, 6, 6, dot)

	// Center is covered, bounding-box corners are not.
	if s.Get(5, 5) != '●' {
		t.Error("ellipse center should be filled")
	}
	if s.Get(2, 2) != ' ' || s.Get(7, 7) != ' ' {
		t.Error("bounding-box corners should stay empty")
	}
	// Nothing outside the bounding box.
	if s.Get(1, 5) != ' ' || s.Get(8, 5) != ' ' {
		t.Error("ellipse leaked outside its bounding box")
	}
}

func TestScreenFillEllipseTiny(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillEllipse(3.1, 4.1, 0.3, 0.3, Cell{Rune: '.'})

	if s.Get(3, 4) != '.' {
		t.Error("tiny ellipse should still paint the cell under its center")
	}
}

func TestScreenFillEllipseClipped(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillEllipse(-3, -3, 6, 6, Cell{Rune: 'o'}) // Should not panic

	if s.Get(0, 0) != 'o' {
		t.Error("visible part of clipped ellipse should be drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("out of bounds row should be spaces")
	}
}

func TestScreenDrawMessageBox(t *testing.T) {
	s := NewScreen(30, 11)
	s.Fill('x')
	s.DrawMessageBox("PAUSED", "Press P")

	// Box is 11x5 centered at (9, 3).
	if s.Get(9, 3) != '┌' || s.Get(19, 7) != '┘' {
		t.Errorf("box corners misplaced:\n%s", s.String())
	}
	if !strings.Contains(s.Row(4), "PAUSED") || !strings.Contains(s.Row(6), "Press P") {
		t.Errorf("box text missing:\n%s", s.String())
	}
	if s.Get(10, 5) != ' ' {
		t.Error("box interior should be blanked")
	}
}
