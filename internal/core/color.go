package core

// Color is a foreground color for a screen cell, mapped to ANSI 256-color
// codes by the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorPurple
	ColorOrange
	ColorGray
	ColorDim

	// ColorBrightRed highlights the danger band and invalid previews.
	ColorBrightRed
	ColorBrightGreen
)
