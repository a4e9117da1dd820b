package core

// Color is a foreground color for a screen cell. The platform layer maps it
// to a terminal style.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// RowPalette is the cycle of brick colors, one per brick row.
var RowPalette = []Color{
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorCyan,
	ColorBlue,
	ColorMagenta,
}
