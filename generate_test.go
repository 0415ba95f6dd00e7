package main

import (
	"bytes"
	"context"
	"image/png"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	termqr "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrforge/internal/payload"
	"github.com/cristianadrielbraun/qrforge/internal/style"
)

func TestParseFields(t *testing.T) {
	fields, err := parseFields([]string{"ssid=Home", "password=a=b", "encryption="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ssid": "Home", "password": "a=b", "encryption": ""}, fields)

	_, err = parseFields([]string{"ssid"})
	assert.Error(t, err)
	_, err = parseFields([]string{"=x"})
	assert.Error(t, err)
}

func TestRunGenerate_PNG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXPORT_TEMP_DIR", t.TempDir())

	var out bytes.Buffer
	err := runGenerate(context.Background(), generateOptions{
		contentType: "wifi",
		fields:      []string{"ssid=Home", "password=secret"},
		format:      "png",
		outDir:      dir,
		style:       url.Values{style.KeySize: {"160"}, style.KeyFrameStyle: {"banner"}},
	}, &out)
	require.NoError(t, err)

	path := filepath.Join(dir, "qrcode.png")
	assert.Contains(t, out.String(), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 160, cfg.Width)
	assert.Equal(t, 160, cfg.Height)
}

func TestRunGenerate_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		opts generateOptions
		err  error
	}{
		{name: "type", opts: generateOptions{contentType: "fax", format: "png", outDir: dir}, err: payload.ErrUnknownContentType},
		{name: "field", opts: generateOptions{contentType: "url", fields: []string{"ssid=x"}, format: "png", outDir: dir}, err: payload.ErrUnknownField},
		{name: "style", opts: generateOptions{contentType: "url", format: "png", outDir: dir, style: url.Values{style.KeyDotStyle: {"hex"}}}, err: style.ErrInvalidOption},
		{name: "empty text", opts: generateOptions{contentType: "text", format: "png", outDir: dir}, err: errEmptyPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runGenerate(context.Background(), tt.opts, &bytes.Buffer{})
			assert.ErrorIs(t, err, tt.err)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunGenerate_Terminal(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	err := runGenerate(context.Background(), generateOptions{
		contentType: "url",
		fields:      []string{"url=https://go.dev"},
		format:      "png",
		outDir:      dir,
		terminal:    true,
	}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "█")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "terminal preview writes no file")
}

func TestRunGenerate_TerminalEmptyPayloadShowsPlaceholder(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(context.Background(), generateOptions{contentType: "text", terminal: true}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "█")
}

func TestTerminalLevel(t *testing.T) {
	assert.Equal(t, termqr.Low, terminalLevel(style.LevelLow))
	assert.Equal(t, termqr.Medium, terminalLevel(style.LevelMedium))
	assert.Equal(t, termqr.High, terminalLevel(style.LevelQuartile))
	assert.Equal(t, termqr.Highest, terminalLevel(style.LevelHigh))
}

func TestGenerateCmd_StyleFlags(t *testing.T) {
	dir := t.TempDir()

	cmd := newGenerateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--field", "url=https://go.dev", "--format", "svg", "--out", dir, "--dot-style", "dots", "--margin=false"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	b, err := os.ReadFile(filepath.Join(dir, "qrcode.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "<circle")
}
