package board

import (
	"image/color"
	"math"
)

// Tune is one of the eight ordinal note categories. It picks a bubble's
// colour and gates tune-filtered pops.
type Tune int

const TuneCount = 8

// Hues of the palette, lowest tune first: violet, blue, cyan, green, yellow,
// orange, red, magenta.
var tuneHues = [TuneCount]float64{270, 240, 180, 120, 60, 30, 0, 300}

// Color returns the tune's palette colour. Out of range tunes clamp to the
// nearest end of the palette.
func (t Tune) Color() color.RGBA {
	i := int(t)
	if i < 0 {
		i = 0
	}
	if i >= TuneCount {
		i = TuneCount - 1
	}
	r, g, b := hsvToRgb(tuneHues[i], 1, 1)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return to8(r + m), to8(g + m), to8(b + m)
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// shade scales the colour channels by f, leaving alpha alone.
func shade(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
