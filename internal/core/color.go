package core

// Color is the foreground color of a screen cell. The platform layer maps it
// to terminal styles.
type Color uint8

// Colors used by the board and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlue
	ColorBrightYellow
	ColorPink
	ColorOrange
	ColorGray
)
