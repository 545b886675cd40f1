package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// numberColors follows the classic palette: 1 blue, 2 green, 3 red and so on.
var numberColors = [9]Color{
	ColorDefault,
	ColorBlue,
	ColorGreen,
	ColorRed,
	ColorOrange,
	ColorCyan,
	ColorYellow,
	ColorDarkGray,
	ColorMagenta,
}

// NumberColor returns the color used to draw an adjacent-mine count.
// Counts outside 0..8 get the default color.
func NumberColor(n int) Color {
	if n < 0 || n >= len(numberColors) {
		return ColorDefault
	}
	return numberColors[n]
}
