// Package style holds the visual configuration of a QR code. The record is
// flat and is forwarded to the renderer as is; setters only clamp numeric
// values to the ranges the controls allow.
package style

import (
	"fmt"
	"image/color"
	"net/url"
	"strconv"
	"strings"
)

const (
	MinSize     = 128
	MaxSize     = 512
	SizeStep    = 32
	DefaultSize = 256

	MinLogoSize     = 20
	MaxLogoSize     = 100
	LogoSizeStep    = 5
	DefaultLogoSize = 50

	MaxLogoOpacity  = 100
	LogoOpacityStep = 5

	DefaultForeground    = "#000000"
	DefaultBackground    = "#FFFFFF"
	DefaultGradientColor = "#A855F7"
	DefaultFrameText     = "Scan Me"
)

var (
	defaultFG       = color.RGBA{0, 0, 0, 255}
	defaultBG       = color.RGBA{255, 255, 255, 255}
	defaultGradient = color.RGBA{0xA8, 0x55, 0xF7, 255}
)

// RenderConfig is everything the renderer needs besides the payload.
// Sizes are pixels and LogoOpacity is a percentage.
type RenderConfig struct {
	Size          int         `json:"size"`
	Foreground    string      `json:"fgColor"`
	Background    string      `json:"bgColor"`
	ErrorLevel    ErrorLevel  `json:"level"`
	IncludeMargin bool        `json:"includeMargin"`
	DotStyle      DotStyle    `json:"dotStyle"`
	CornerStyle   CornerStyle `json:"cornerStyle"`
	FrameStyle    FrameStyle  `json:"frameStyle"`
	FrameText     string      `json:"frameText"`
	LogoImage     string      `json:"logoImage,omitempty"`
	LogoSize      int         `json:"logoSize"`
	LogoOpacity   int         `json:"logoOpacity"`
	UseGradient   bool        `json:"useGradient"`
	GradientColor string      `json:"gradientColor"`
}

// Default returns the configuration shown on first page load.
func Default() RenderConfig {
	return RenderConfig{
		Size:          DefaultSize,
		Foreground:    DefaultForeground,
		Background:    DefaultBackground,
		ErrorLevel:    LevelMedium,
		IncludeMargin: true,
		DotStyle:      DotSquare,
		CornerStyle:   CornerSquare,
		FrameStyle:    FrameNone,
		FrameText:     DefaultFrameText,
		LogoSize:      DefaultLogoSize,
		LogoOpacity:   MaxLogoOpacity,
		GradientColor: DefaultGradientColor,
	}
}

func (c *RenderConfig) SetSize(px int) {
	c.Size = snap(px, MinSize, MaxSize, SizeStep)
}

func (c *RenderConfig) SetLogoSize(px int) {
	c.LogoSize = snap(px, MinLogoSize, MaxLogoSize, LogoSizeStep)
}

// SetLogoOpacity takes a percentage.
func (c *RenderConfig) SetLogoOpacity(pct int) {
	c.LogoOpacity = snap(pct, 0, MaxLogoOpacity, LogoOpacityStep)
}

func (c *RenderConfig) SetForeground(hex string)     { c.Foreground = hex }
func (c *RenderConfig) SetBackground(hex string)     { c.Background = hex }
func (c *RenderConfig) SetGradientColor(hex string)  { c.GradientColor = hex }
func (c *RenderConfig) SetErrorLevel(l ErrorLevel)   { c.ErrorLevel = l }
func (c *RenderConfig) SetIncludeMargin(on bool)     { c.IncludeMargin = on }
func (c *RenderConfig) SetUseGradient(on bool)       { c.UseGradient = on }
func (c *RenderConfig) SetDotStyle(d DotStyle)       { c.DotStyle = d }
func (c *RenderConfig) SetCornerStyle(s CornerStyle) { c.CornerStyle = s }
func (c *RenderConfig) SetFrameStyle(f FrameStyle)   { c.FrameStyle = f }
func (c *RenderConfig) SetFrameText(text string)     { c.FrameText = text }
func (c *RenderConfig) SetLogoImage(dataURL string)  { c.LogoImage = dataURL }

// ClearLogo removes the uploaded logo.
func (c *RenderConfig) ClearLogo() { c.LogoImage = "" }

// HasLogo reports whether a logo is set.
func (c RenderConfig) HasLogo() bool { return c.LogoImage != "" }

// ForegroundRGBA is the parsed foreground, black on malformed input.
func (c RenderConfig) ForegroundRGBA() color.RGBA { return ParseHex(c.Foreground, defaultFG) }

// BackgroundRGBA is the parsed background, white on malformed input.
func (c RenderConfig) BackgroundRGBA() color.RGBA { return ParseHex(c.Background, defaultBG) }

// GradientRGBA is the parsed gradient end color.
func (c RenderConfig) GradientRGBA() color.RGBA { return ParseHex(c.GradientColor, defaultGradient) }

// Form keys understood by Apply. They match the control names of the page.
const (
	KeySize          = "size"
	KeyForeground    = "fgColor"
	KeyBackground    = "bgColor"
	KeyErrorLevel    = "level"
	KeyIncludeMargin = "includeMargin"
	KeyDotStyle      = "dotStyle"
	KeyCornerStyle   = "cornerStyle"
	KeyFrameStyle    = "frameStyle"
	KeyFrameText     = "frameText"
	KeyLogoSize      = "logoSize"
	KeyLogoOpacity   = "logoOpacity"
	KeyUseGradient   = "useGradient"
	KeyGradientColor = "gradientColor"
)

// Apply updates every field present in vals and leaves the rest untouched.
// Nothing is changed when a value fails to parse.
func (c *RenderConfig) Apply(vals url.Values) error {
	next := *c
	for key, vs := range vals {
		if len(vs) == 0 {
			continue
		}
		if err := next.set(key, vs[len(vs)-1]); err != nil {
			return err
		}
	}
	*c = next
	return nil
}

func (c *RenderConfig) set(key, v string) error {
	switch key {
	case KeySize:
		n, err := atoi(key, v)
		if err != nil {
			return err
		}
		c.SetSize(n)
	case KeyForeground:
		c.SetForeground(v)
	case KeyBackground:
		c.SetBackground(v)
	case KeyErrorLevel:
		l, err := ParseErrorLevel(v)
		if err != nil {
			return err
		}
		c.SetErrorLevel(l)
	case KeyIncludeMargin:
		b, err := parseBool(key, v)
		if err != nil {
			return err
		}
		c.SetIncludeMargin(b)
	case KeyDotStyle:
		d, err := ParseDotStyle(v)
		if err != nil {
			return err
		}
		c.SetDotStyle(d)
	case KeyCornerStyle:
		s, err := ParseCornerStyle(v)
		if err != nil {
			return err
		}
		c.SetCornerStyle(s)
	case KeyFrameStyle:
		f, err := ParseFrameStyle(v)
		if err != nil {
			return err
		}
		c.SetFrameStyle(f)
	case KeyFrameText:
		c.SetFrameText(v)
	case KeyLogoSize:
		n, err := atoi(key, v)
		if err != nil {
			return err
		}
		c.SetLogoSize(n)
	case KeyLogoOpacity:
		n, err := atoi(key, v)
		if err != nil {
			return err
		}
		c.SetLogoOpacity(n)
	case KeyUseGradient:
		b, err := parseBool(key, v)
		if err != nil {
			return err
		}
		c.SetUseGradient(b)
	case KeyGradientColor:
		c.SetGradientColor(v)
	}
	return nil
}

func atoi(key, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidOption, key, v)
	}
	return n, nil
}

// parseBool also accepts the "on"/"off" an HTML checkbox submits.
func parseBool(key, v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", ErrInvalidOption, key, v)
	}
	return b, nil
}

// snap clamps v to [lo, hi] and rounds it to the nearest step above lo.
func snap(v, lo, hi, step int) int {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	n := (v - lo + step/2) / step
	v = lo + n*step
	if v > hi {
		v = hi
	}
	return v
}
