package core

// Color is the foreground colour of a screen cell. The platform layer maps it
// to an ANSI 256-colour style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorGray
	ColorBrightRed
	ColorBrightBlue
	ColorBrightWhite
)
