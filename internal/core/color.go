package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI colors at render time.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorGray
)
