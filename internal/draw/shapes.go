package draw

import (
	"math"

	"github.com/tomz197/tiro/internal/object"
)

var kindColors = [...]Color{
	object.KindPlayer:      ColorBrightCyan,
	object.KindMissile:     ColorYellow,
	object.KindNuclear:     ColorBrightYellow,
	object.KindLaser:       ColorBrightCyan,
	object.KindEnemy:       ColorRed,
	object.KindMeteor:      ColorGray,
	object.KindGuided:      ColorMagenta,
	object.KindStar:        ColorBrightYellow,
	object.KindRain:        ColorBlue,
	object.KindMetralha:    ColorGreen,
	object.KindTransport:   ColorWhite,
	object.KindEncrenca:    ColorMagenta,
	object.KindDebris:      ColorYellow,
	object.KindEngineFlame: ColorBrightYellow,
}

// spriteColor picks the palette entry for a sprite in its current state.
func spriteColor(sp *sprite) Color {
	if sp.flash > 0 {
		if sp.kind == object.KindPlayer {
			return ColorBrightRed
		}
		return ColorWhite
	}
	switch sp.kind {
	case object.KindMissile:
		if !sp.friendly {
			return ColorBrightRed
		}
	case object.KindEngineFlame:
		if sp.alpha < 0.4 {
			return ColorRed
		}
	}
	if int(sp.kind) < len(kindColors) {
		return kindColors[sp.kind]
	}
	return ColorWhite
}

// drawShape draws the outline of a sprite centred on (x, y).
func drawShape(c *Canvas, sp *sprite, x, y float64, col Color) {
	hw, hh := sp.w/2, sp.h/2

	switch sp.kind {
	case object.KindPlayer:
		pts := c.BorrowPoints(3)
		pts[0] = Point{x, y - hh}
		pts[1] = Point{x + hw, y + hh}
		pts[2] = Point{x - hw, y + hh}
		c.DrawPolygon(pts, true, col)

	case object.KindEnemy:
		pts := c.BorrowPoints(3)
		pts[0] = Point{x - hw, y - hh}
		pts[1] = Point{x + hw, y - hh}
		pts[2] = Point{x, y + hh}
		c.DrawPolygon(pts, true, col)

	case object.KindMeteor:
		regular(c, x, y, hw, hh, 8, 0, false, col)

	case object.KindGuided, object.KindNuclear:
		regular(c, x, y, hw, hh, 4, 0, true, col)

	case object.KindMetralha:
		regular(c, x, y, hw, hh, 6, math.Pi/6, false, col)
		regular(c, x, y, hw/3, hh/3, 6, math.Pi/6, true, col)

	case object.KindStar:
		star(c, x, y, hw, hh, col)

	case object.KindRain:
		pts := c.BorrowPoints(4)
		pts[0] = Point{x - hw, y - hh}
		pts[1] = Point{x + hw, y - hh}
		pts[2] = Point{x + hw/2, y + hh}
		pts[3] = Point{x - hw/2, y + hh}
		c.DrawPolygon(pts, true, col)

	case object.KindTransport:
		hull(c, x, y, hw, hh, false, col)

	case object.KindEncrenca:
		hull(c, x, y, hw, hh, true, col)

	case object.KindEngineFlame:
		c.FillRect(x-1, y-1, 2, 2, col)

	default:
		c.FillRect(x-hw, y-hh, sp.w, sp.h, col)
	}
}

// regular draws an n-gon inscribed in the ellipse with radii (rx, ry).
func regular(c *Canvas, x, y, rx, ry float64, n int, phase float64, filled bool, col Color) {
	pts := c.BorrowPoints(n)
	for i := range pts {
		a := phase + float64(i)*2*math.Pi/float64(n)
		pts[i] = Point{X: x + math.Cos(a)*rx, Y: y + math.Sin(a)*ry}
	}
	c.DrawPolygon(pts, filled, col)
}

func star(c *Canvas, x, y, rx, ry float64, col Color) {
	const points = 5
	pts := c.BorrowPoints(points * 2)
	for i := range pts {
		a := -math.Pi/2 + float64(i)*math.Pi/points
		scale := 1.0
		if i%2 == 1 {
			scale = 0.45
		}
		pts[i] = Point{X: x + math.Cos(a)*rx*scale, Y: y + math.Sin(a)*ry*scale}
	}
	c.DrawPolygon(pts, true, col)
}

// hull is a carrier: a long body with a bay notch underneath.
func hull(c *Canvas, x, y, hw, hh float64, filled bool, col Color) {
	pts := c.BorrowPoints(8)
	pts[0] = Point{x - hw, y - hh}
	pts[1] = Point{x + hw, y - hh}
	pts[2] = Point{x + hw, y + hh}
	pts[3] = Point{x + hw/4, y + hh}
	pts[4] = Point{x + hw/4, y}
	pts[5] = Point{x - hw/4, y}
	pts[6] = Point{x - hw/4, y + hh}
	pts[7] = Point{x - hw, y + hh}
	c.DrawPolygon(pts, filled, col)
}
