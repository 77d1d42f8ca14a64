package core

import "image/color"

// Color represents a foreground color for a drawn shape or text run.
// Uses ANSI 256-color codes for terminal compatibility; RGBA gives the
// equivalent for pixel surfaces.
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
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorSky
)

var palette = map[Color]color.RGBA{
	ColorDefault:       {R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
	ColorRed:           {R: 0xcd, G: 0x00, B: 0x00, A: 0xff},
	ColorGreen:         {R: 0x00, G: 0xcd, B: 0x00, A: 0xff},
	ColorYellow:        {R: 0xcd, G: 0xcd, B: 0x00, A: 0xff},
	ColorBlue:          {R: 0x00, G: 0x00, B: 0xee, A: 0xff},
	ColorMagenta:       {R: 0xcd, G: 0x00, B: 0xcd, A: 0xff},
	ColorCyan:          {R: 0x00, G: 0xcd, B: 0xcd, A: 0xff},
	ColorWhite:         {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	ColorBrightRed:     {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	ColorBrightGreen:   {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	ColorBrightYellow:  {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	ColorBrightBlue:    {R: 0x5c, G: 0x5c, B: 0xff, A: 0xff},
	ColorBrightMagenta: {R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	ColorBrightCyan:    {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	ColorOrange:        {R: 0xff, G: 0x80, B: 0x00, A: 0xff},
	ColorGray:          {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	ColorSky:           {R: 0x00, G: 0x80, B: 0xff, A: 0xff},
}

// Background is the arena clear color for pixel surfaces.
var Background = color.RGBA{R: 0x00, G: 0x1a, B: 0x33, A: 0xff}

// RGBA returns the pixel color for c.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[ColorDefault]
}
