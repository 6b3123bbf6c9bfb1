package core

import "strconv"

// Color is a named foreground colour for a screen cell. Cells that carry a
// sprite colour use Cell.Hex instead.
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
	ColorOrange // Paddle
	ColorGray
)

// ansi256 holds the xterm-256 code for every named colour except the default.
var ansi256 = [...]int{
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
}

// Code returns the xterm-256 code as a string, or "" for the terminal default.
func (c Color) Code() string {
	if c == ColorDefault || int(c) >= len(ansi256) {
		return ""
	}
	return strconv.Itoa(ansi256[c])
}
