package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI color.
type Color uint8

// Colors used by the island game.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBrightYellow
	ColorBrightCyan
	ColorGreen
	ColorBrightRed
	ColorGray
)
