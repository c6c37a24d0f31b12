package core

// Color is a cell's foreground. Games pick colors by role; each front end
// turns them into terminal styles through ANSI.
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
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange // Explosions, hard bricks
	ColorGray   // HUD hints, solid bricks
	ColorSky    // Player ships

	numColors
)

// The 16 basic colors map to their own index; the rest are picked from
// the 256-color cube.
var ansi = [numColors]int{
	ColorDefault: -1,
	ColorOrange:  208,
	ColorGray:    245,
	ColorSky:     117,
}

func init() {
	for c := ColorRed; c <= ColorBrightWhite; c++ {
		code := int(c)
		if c >= ColorBrightRed {
			code++ // Index 8 is bright black, which has no Color
		}
		ansi[c] = code
	}
}

// ANSI returns the 256-color palette index for c, or -1 for the terminal
// default.
func (c Color) ANSI() int {
	if c >= numColors {
		return -1
	}
	return ansi[c]
}

// Colors lists every color, ColorDefault first.
func Colors() []Color {
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
