package core

import "math"

// Color represents a foreground color for a screen cell.
// Values are ANSI 256-color codes; 0 is reserved for the terminal default.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault       Color = 0
	ColorRed           Color = 1
	ColorGreen         Color = 2
	ColorYellow        Color = 3
	ColorBlue          Color = 4
	ColorMagenta       Color = 5
	ColorCyan          Color = 6
	ColorWhite         Color = 7
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
	ColorOrange        Color = 208
	ColorGray          Color = 245
)

// RGB maps a color with unit-range components onto the 6x6x6 ANSI color cube.
// Components outside [0, 1] are clamped.
func RGB(r, g, b float64) Color {
	level := func(v float64) int {
		return int(math.Round(ClampF(v, 0, 1) * 5))
	}
	return Color(16 + 36*level(r) + 6*level(g) + level(b))
}
