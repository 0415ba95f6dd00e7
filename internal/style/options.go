package style

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOption is returned when a style tag or value is outside its allowed set.
var ErrInvalidOption = errors.New("invalid style option")

// ErrorLevel is the QR error-correction level.
type ErrorLevel string

const (
	LevelLow      ErrorLevel = "L"
	LevelMedium   ErrorLevel = "M"
	LevelQuartile ErrorLevel = "Q"
	LevelHigh     ErrorLevel = "H"
)

// ErrorLevels in selector order.
var ErrorLevels = []ErrorLevel{LevelLow, LevelMedium, LevelQuartile, LevelHigh}

func ParseErrorLevel(s string) (ErrorLevel, error) {
	l := ErrorLevel(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range ErrorLevels {
		if v == l {
			return l, nil
		}
	}
	return "", invalid("error level", s)
}

// Label describes how much damage the level recovers from.
func (l ErrorLevel) Label() string {
	switch l {
	case LevelLow:
		return "Low (7%)"
	case LevelMedium:
		return "Medium (15%)"
	case LevelQuartile:
		return "Quartile (25%)"
	case LevelHigh:
		return "High (30%)"
	}
	return string(l)
}

// DotStyle is the shape of a data module.
type DotStyle string

const (
	DotSquare  DotStyle = "square"
	DotDots    DotStyle = "dots"
	DotRounded DotStyle = "rounded"
)

var DotStyles = []DotStyle{DotSquare, DotDots, DotRounded}

func ParseDotStyle(s string) (DotStyle, error) {
	d := DotStyle(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range DotStyles {
		if v == d {
			return d, nil
		}
	}
	return "", invalid("dot style", s)
}

func (d DotStyle) Label() string {
	switch d {
	case DotSquare:
		return "Square (Default)"
	case DotDots:
		return "Rounded Dots"
	case DotRounded:
		return "Rounded"
	}
	return string(d)
}

// CornerStyle is the shape of the three finder patterns.
type CornerStyle string

const (
	CornerSquare       CornerStyle = "square"
	CornerRounded      CornerStyle = "rounded"
	CornerExtraRounded CornerStyle = "extra-rounded"
)

var CornerStyles = []CornerStyle{CornerSquare, CornerRounded, CornerExtraRounded}

func ParseCornerStyle(s string) (CornerStyle, error) {
	c := CornerStyle(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range CornerStyles {
		if v == c {
			return c, nil
		}
	}
	return "", invalid("corner style", s)
}

func (c CornerStyle) Label() string {
	switch c {
	case CornerSquare:
		return "Square (Default)"
	case CornerRounded:
		return "Rounded"
	case CornerExtraRounded:
		return "Extra Rounded"
	}
	return string(c)
}

// FrameStyle is the decoration drawn around the symbol.
type FrameStyle string

const (
	FrameNone    FrameStyle = "none"
	FrameBasic   FrameStyle = "basic"
	FrameBanner  FrameStyle = "banner"
	FrameTooltip FrameStyle = "tooltip"
)

var FrameStyles = []FrameStyle{FrameNone, FrameBasic, FrameBanner, FrameTooltip}

func ParseFrameStyle(s string) (FrameStyle, error) {
	f := FrameStyle(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range FrameStyles {
		if v == f {
			return f, nil
		}
	}
	return "", invalid("frame style", s)
}

func (f FrameStyle) Label() string {
	switch f {
	case FrameNone:
		return "No Frame"
	case FrameBasic:
		return "Basic Border"
	case FrameBanner:
		return "Banner"
	case FrameTooltip:
		return "Tooltip Bubble"
	}
	return string(f)
}

func invalid(what, value string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidOption, what, value)
}
