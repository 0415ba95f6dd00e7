package render

import (
	"image"
	"math"

	"github.com/cristianadrielbraun/qrforge/internal/style"
)

const (
	// quietZone is the margin in modules when IncludeMargin is set.
	quietZone = 4
	// finderSize is the side of a finder pattern in modules.
	finderSize = 7

	bandRatio    = 0.18
	padRatio     = 0.04
	strokeRatio  = 1.0 / 64
	bubbleRatio  = 0.75
	fontRatio    = 0.45
	minFramePad  = 4.0
	minStrokePx  = 2.0
	frameRadiusK = 0.04
)

type rect struct {
	X, Y, W, H float64
}

func (r rect) image() image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)), int(math.Round(r.Y+r.H)),
	)
}

func (r rect) overlaps(o rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// layout places the symbol, its quiet zone, the logo and the frame label
// inside a size x size document.
type layout struct {
	size   float64
	qr     rect // symbol including quiet zone
	margin int
	cell   float64

	frame  style.FrameStyle
	pad    float64
	stroke float64
	band   rect // label band, zero without a frame
	bubble rect // tooltip body inside the band
	logo   rect // zero without a logo
}

func newLayout(cfg style.RenderConfig, modules int) layout {
	s := float64(cfg.Size)
	l := layout{size: s, frame: cfg.FrameStyle}
	if cfg.IncludeMargin {
		l.margin = quietZone
	}

	if cfg.FrameStyle == style.FrameNone || cfg.FrameStyle == "" {
		l.frame = style.FrameNone
		l.qr = rect{0, 0, s, s}
	} else {
		l.pad = math.Max(minFramePad, math.Round(s*padRatio))
		l.stroke = math.Max(minStrokePx, math.Round(s*strokeRatio))
		band := math.Round(s * bandRatio)
		side := s - band - 2*l.pad
		x := (s - side) / 2
		if cfg.FrameStyle == style.FrameTooltip {
			l.band = rect{l.pad, l.pad, s - 2*l.pad, band}
			l.bubble = rect{l.band.X, l.band.Y, l.band.W, band * bubbleRatio}
			l.qr = rect{x, l.pad + band, side, side}
		} else {
			l.band = rect{l.pad, s - l.pad - band, s - 2*l.pad, band}
			l.qr = rect{x, l.pad, side, side}
		}
	}

	l.cell = l.qr.W / float64(modules+2*l.margin)

	if cfg.HasLogo() {
		side := float64(cfg.LogoSize) * l.qr.W / s
		l.logo = rect{
			X: l.qr.X + (l.qr.W-side)/2,
			Y: l.qr.Y + (l.qr.H-side)/2,
			W: side,
			H: side,
		}
	}
	return l
}

// module returns the pixel box of module (x, y).
func (l layout) module(x, y int) rect {
	return rect{
		X: l.qr.X + float64(l.margin+x)*l.cell,
		Y: l.qr.Y + float64(l.margin+y)*l.cell,
		W: l.cell,
		H: l.cell,
	}
}

// excavated reports whether the module sits under the logo.
func (l layout) excavated(x, y int) bool {
	if l.logo.W <= 0 {
		return false
	}
	return l.module(x, y).overlaps(l.logo)
}

// labelBox is where the frame text is centred.
func (l layout) labelBox() rect {
	if l.frame == style.FrameTooltip {
		return l.bubble
	}
	return l.band
}

func (l layout) fontSize() float64 {
	return math.Round(l.labelBox().H * fontRatio)
}

func isFinder(x, y, n int) bool {
	near := func(v int) bool { return v < finderSize }
	far := func(v int) bool { return v >= n-finderSize }
	return (near(x) && near(y)) || (far(x) && near(y)) || (near(x) && far(y))
}

func finderOrigins(n int) [3]image.Point {
	return [3]image.Point{{0, 0}, {n - finderSize, 0}, {0, n - finderSize}}
}
