// Package render composes a styled SVG document from a payload and a
// style.RenderConfig. Symbol encoding is done by github.com/yeqown/go-qrcode;
// this package only lays out and draws the module matrix.
package render

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/cristianadrielbraun/qrforge/internal/style"
)

// Placeholder is rendered when the payload is empty so the preview is never blank.
const Placeholder = "https://example.com"

// ErrInvalidSize is returned for a non-positive document size.
var ErrInvalidSize = errors.New("document size must be positive")

const gradientID = "qr-gradient"

// Document is a rendered QR code. XML is a standalone SVG; Logo and Label
// repeat the parts of it that plain SVG rasterizers do not draw.
type Document struct {
	Size    int
	Modules int
	XML     string
	Logo    *Logo
	Label   *Label
}

// Logo is a centred raster image drawn over the excavated modules.
type Logo struct {
	DataURL string
	Bounds  image.Rectangle
	// Opacity in [0, 1].
	Opacity float64
}

// Label is the frame caption, centred in Box.
type Label struct {
	Text     string
	Box      image.Rectangle
	Color    color.RGBA
	FontSize float64
}

// Render encodes payload and draws it with cfg.
func Render(payload string, cfg style.RenderConfig) (*Document, error) {
	if cfg.Size <= 0 {
		return nil, ErrInvalidSize
	}
	if payload == "" {
		payload = Placeholder
	}

	mat, err := Encode(payload, cfg.ErrorLevel)
	if err != nil {
		return nil, err
	}
	return Draw(mat, cfg), nil
}

// Draw lays out an already encoded matrix.
func Draw(mat Matrix, cfg style.RenderConfig) *Document {
	n := mat.Len()
	l := newLayout(cfg, n)
	fg := cfg.ForegroundRGBA()
	bg := cfg.BackgroundRGBA()

	fill := style.Hex(fg)
	if cfg.UseGradient {
		fill = "url(#" + gradientID + ")"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d">`,
		cfg.Size, cfg.Size, cfg.Size, cfg.Size)

	if cfg.UseGradient {
		fmt.Fprintf(&b, `<defs><linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
			gradientID, num(l.qr.X), num(l.qr.Y), num(l.qr.X+l.qr.W), num(l.qr.Y+l.qr.H))
		fmt.Fprintf(&b, `<stop offset="0" stop-color="%s"/>`, style.Hex(opaque(fg)))
		fmt.Fprintf(&b, `<stop offset="1" stop-color="%s"/>`, style.Hex(cfg.GradientRGBA()))
		b.WriteString(`</linearGradient></defs>`)
	}

	if bg.A > 0 {
		fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`, cfg.Size, cfg.Size, style.Hex(bg))
	}

	doc := &Document{Size: cfg.Size, Modules: n}
	doc.Label = drawFrame(&b, l, cfg, fill, fg, bg)
	drawModules(&b, l, mat, cfg.DotStyle, fill)
	drawFinders(&b, l, n, cfg.CornerStyle, fill)

	if cfg.HasLogo() {
		opacity := float64(cfg.LogoOpacity) / 100
		fmt.Fprintf(&b, `<image x="%s" y="%s" width="%s" height="%s" opacity="%s" preserveAspectRatio="none" href="%s" xlink:href="%s"/>`,
			num(l.logo.X), num(l.logo.Y), num(l.logo.W), num(l.logo.H), num(opacity),
			escape(cfg.LogoImage), escape(cfg.LogoImage))
		doc.Logo = &Logo{DataURL: cfg.LogoImage, Bounds: l.logo.image(), Opacity: opacity}
	}

	b.WriteString(`</svg>`)
	doc.XML = b.String()
	return doc
}

func drawModules(b *strings.Builder, l layout, mat Matrix, dots style.DotStyle, fill string) {
	n := mat.Len()
	var path strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !mat.Dark(x, y) || isFinder(x, y, n) || l.excavated(x, y) {
				continue
			}
			m := l.module(x, y)
			switch dots {
			case style.DotDots:
				r := m.W / 2
				fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`, num(m.X+r), num(m.Y+r), num(r), fill)
			case style.DotRounded:
				fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/>`,
					num(m.X), num(m.Y), num(m.W), num(m.H), num(m.W*0.35), fill)
			default:
				fmt.Fprintf(&path, "M%s %sh%sv%sh-%sz", num(m.X), num(m.Y), num(m.W), num(m.H), num(m.W))
			}
		}
	}
	if path.Len() > 0 {
		fmt.Fprintf(b, `<path d="%s" fill="%s"/>`, path.String(), fill)
	}
}

// drawFinders draws each finder as a stroked ring plus a filled centre so the
// hole stays transparent on a transparent background.
func drawFinders(b *strings.Builder, l layout, n int, corners style.CornerStyle, fill string) {
	ring, eye := 0.0, 0.0
	switch corners {
	case style.CornerRounded:
		ring, eye = 1.5, 0.75
	case style.CornerExtraRounded:
		ring, eye = 3, 1.5
	}
	c := l.cell
	for _, o := range finderOrigins(n) {
		m := l.module(o.X, o.Y)
		fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
			num(m.X+c/2), num(m.Y+c/2), num(6*c), num(6*c), num(ring*c), fill, num(c))
		fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/>`,
			num(m.X+2*c), num(m.Y+2*c), num(3*c), num(3*c), num(eye*c), fill)
	}
}

func drawFrame(b *strings.Builder, l layout, cfg style.RenderConfig, fill string, fg, bg color.RGBA) *Label {
	if l.frame == style.FrameNone {
		return nil
	}

	// Text on a filled shape uses the background color, white when that is transparent.
	onFill := opaque(bg)
	if bg.A == 0 {
		onFill = color.RGBA{255, 255, 255, 255}
	}
	textColor := onFill
	r := l.size * frameRadiusK

	switch l.frame {
	case style.FrameBasic:
		half := l.stroke / 2
		fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
			num(half), num(half), num(l.size-l.stroke), num(l.size-l.stroke), num(r), fill, num(l.stroke))
		textColor = opaque(fg)
	case style.FrameBanner:
		fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/>`,
			num(l.band.X), num(l.band.Y), num(l.band.W), num(l.band.H), num(r/2), fill)
	case style.FrameTooltip:
		bub := l.bubble
		fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/>`,
			num(bub.X), num(bub.Y), num(bub.W), num(bub.H), num(r), fill)
		mid := bub.X + bub.W/2
		tip := l.band.Y + l.band.H
		w := l.band.H - bub.H
		fmt.Fprintf(b, `<path d="M%s %sL%s %sL%s %sz" fill="%s"/>`,
			num(mid-w), num(bub.Y+bub.H), num(mid+w), num(bub.Y+bub.H), num(mid), num(tip), fill)
	}

	box := l.labelBox()
	size := l.fontSize()
	fmt.Fprintf(b, `<text x="%s" y="%s" font-family="sans-serif" font-size="%s" font-weight="bold" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>`,
		num(box.X+box.W/2), num(box.Y+box.H/2), num(size), style.Hex(textColor), escape(cfg.FrameText))

	return &Label{Text: cfg.FrameText, Box: box.image(), Color: textColor, FontSize: size}
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
