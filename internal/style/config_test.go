package style_test

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrforge/internal/style"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := style.Default()
	assert.Equal(t, 256, cfg.Size)
	assert.Equal(t, "#000000", cfg.Foreground)
	assert.Equal(t, "#FFFFFF", cfg.Background)
	assert.Equal(t, style.LevelMedium, cfg.ErrorLevel)
	assert.True(t, cfg.IncludeMargin)
	assert.Equal(t, style.DotSquare, cfg.DotStyle)
	assert.Equal(t, style.CornerSquare, cfg.CornerStyle)
	assert.Equal(t, style.FrameNone, cfg.FrameStyle)
	assert.Equal(t, "Scan Me", cfg.FrameText)
	assert.False(t, cfg.HasLogo())
	assert.Equal(t, 50, cfg.LogoSize)
	assert.Equal(t, 100, cfg.LogoOpacity)
	assert.False(t, cfg.UseGradient)
	assert.Equal(t, "#A855F7", cfg.GradientColor)
}

func TestSetters_ClampAndSnap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  func(*style.RenderConfig, int)
		get  func(style.RenderConfig) int
		in   int
		want int
	}{
		{"size below range", (*style.RenderConfig).SetSize, sizeOf, 10, 128},
		{"size above range", (*style.RenderConfig).SetSize, sizeOf, 2000, 512},
		{"size on step", (*style.RenderConfig).SetSize, sizeOf, 320, 320},
		{"size rounds down", (*style.RenderConfig).SetSize, sizeOf, 270, 256},
		{"size rounds up", (*style.RenderConfig).SetSize, sizeOf, 280, 288},
		{"logo size below range", (*style.RenderConfig).SetLogoSize, logoSizeOf, 1, 20},
		{"logo size above range", (*style.RenderConfig).SetLogoSize, logoSizeOf, 101, 100},
		{"logo size snaps", (*style.RenderConfig).SetLogoSize, logoSizeOf, 33, 35},
		{"opacity negative", (*style.RenderConfig).SetLogoOpacity, opacityOf, -5, 0},
		{"opacity above range", (*style.RenderConfig).SetLogoOpacity, opacityOf, 150, 100},
		{"opacity snaps", (*style.RenderConfig).SetLogoOpacity, opacityOf, 42, 40},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := style.Default()
			tt.set(&cfg, tt.in)
			assert.Equal(t, tt.want, tt.get(cfg))
		})
	}
}

func sizeOf(c style.RenderConfig) int     { return c.Size }
func logoSizeOf(c style.RenderConfig) int { return c.LogoSize }
func opacityOf(c style.RenderConfig) int  { return c.LogoOpacity }

func TestSetters_Idempotent(t *testing.T) {
	t.Parallel()

	apply := func(c *style.RenderConfig) {
		c.SetSize(384)
		c.SetForeground("#112233")
		c.SetBackground("transparent")
		c.SetErrorLevel(style.LevelHigh)
		c.SetIncludeMargin(false)
		c.SetDotStyle(style.DotDots)
		c.SetCornerStyle(style.CornerExtraRounded)
		c.SetFrameStyle(style.FrameTooltip)
		c.SetFrameText("Hello")
		c.SetLogoImage("data:image/png;base64,AA==")
		c.SetLogoSize(65)
		c.SetLogoOpacity(35)
		c.SetUseGradient(true)
		c.SetGradientColor("#00FF00")
	}

	once := style.Default()
	apply(&once)
	twice := once
	apply(&twice)
	assert.Equal(t, once, twice)
}

func TestSetters_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := style.Default()
	a.SetSize(448)
	a.SetDotStyle(style.DotRounded)
	a.SetFrameText("Menu")

	b := style.Default()
	b.SetFrameText("Menu")
	b.SetDotStyle(style.DotRounded)
	b.SetSize(448)

	assert.Equal(t, a, b)
}

func TestApply(t *testing.T) {
	t.Parallel()

	cfg := style.Default()
	err := cfg.Apply(url.Values{
		"size":          {"300"},
		"fgColor":       {"#FF0000"},
		"level":         {"h"},
		"includeMargin": {"off", "on"},
		"dotStyle":      {"dots"},
		"frameStyle":    {"banner"},
		"logoOpacity":   {"55"},
		"useGradient":   {"true"},
		"ignored":       {"x"},
	})
	require.NoError(t, err)

	assert.Equal(t, 288, cfg.Size)
	assert.Equal(t, "#FF0000", cfg.Foreground)
	assert.Equal(t, style.LevelHigh, cfg.ErrorLevel)
	assert.True(t, cfg.IncludeMargin, "last value wins")
	assert.Equal(t, style.DotDots, cfg.DotStyle)
	assert.Equal(t, style.FrameBanner, cfg.FrameStyle)
	assert.Equal(t, 55, cfg.LogoOpacity)
	assert.True(t, cfg.UseGradient)
	assert.Equal(t, "#FFFFFF", cfg.Background, "untouched")
}

func TestApply_InvalidLeavesConfigUnchanged(t *testing.T) {
	t.Parallel()

	tests := []url.Values{
		{"size": {"big"}},
		{"level": {"X"}},
		{"dotStyle": {"stars"}},
		{"cornerStyle": {"pointy"}},
		{"frameStyle": {"fancy"}},
		{"useGradient": {"maybe"}},
		{"logoSize": {"1.5"}},
	}

	for _, vals := range tests {
		cfg := style.Default()
		err := cfg.Apply(vals)
		assert.ErrorIs(t, err, style.ErrInvalidOption, vals)
		assert.Equal(t, style.Default(), cfg, vals)
	}
}

func TestParsers(t *testing.T) {
	t.Parallel()

	l, err := style.ParseErrorLevel("q")
	require.NoError(t, err)
	assert.Equal(t, style.LevelQuartile, l)
	assert.Equal(t, "Quartile (25%)", l.Label())

	c, err := style.ParseCornerStyle("Extra-Rounded")
	require.NoError(t, err)
	assert.Equal(t, style.CornerExtraRounded, c)

	f, err := style.ParseFrameStyle("tooltip")
	require.NoError(t, err)
	assert.Equal(t, style.FrameTooltip, f)

	_, err = style.ParseDotStyle("")
	assert.True(t, errors.Is(err, style.ErrInvalidOption))
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	def := color.RGBA{1, 2, 3, 255}
	assert.Equal(t, color.RGBA{0xA8, 0x55, 0xF7, 255}, style.ParseHex("#A855F7", def))
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 255}, style.ParseHex("102030", def))
	assert.Equal(t, color.RGBA{}, style.ParseHex("Transparent", def))
	assert.Equal(t, def, style.ParseHex("", def))
	assert.Equal(t, def, style.ParseHex("#FFF", def))
	assert.Equal(t, def, style.ParseHex("#GGGGGG", def))

	assert.Equal(t, "#A855F7", style.Hex(color.RGBA{0xA8, 0x55, 0xF7, 255}))
	assert.Equal(t, "transparent", style.Hex(color.RGBA{}))
}

func TestColorAccessorsFallBack(t *testing.T) {
	t.Parallel()

	cfg := style.Default()
	cfg.SetForeground("not a color")
	cfg.SetBackground("#12")
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, cfg.ForegroundRGBA())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, cfg.BackgroundRGBA())
	assert.Equal(t, "not a color", cfg.Foreground, "stored as given")
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestReadLogo(t *testing.T) {
	t.Parallel()

	dataURL, err := style.ReadLogo(bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"), dataURL)
}

func TestLoadLogo(t *testing.T) {
	t.Parallel()

	type result struct {
		url string
		err error
	}
	got := make(chan result, 1)
	style.LoadLogo(context.Background(), bytes.NewReader(pngHeader), func(u string, err error) {
		got <- result{u, err}
	})

	select {
	case r := <-got:
		require.NoError(t, r.err)
		assert.True(t, strings.HasPrefix(r.url, "data:image/png;base64,"))
	case <-time.After(5 * time.Second):
		t.Fatal("done was never called")
	}
}

func TestLoadLogo_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := make(chan error, 1)
	style.LoadLogo(ctx, bytes.NewReader(pngHeader), func(u string, err error) {
		assert.Empty(t, u)
		got <- err
	})

	select {
	case err := <-got:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("done was never called")
	}
}
