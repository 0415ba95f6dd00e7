package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	termqr "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cristianadrielbraun/qrforge/internal/config"
	"github.com/cristianadrielbraun/qrforge/internal/export"
	"github.com/cristianadrielbraun/qrforge/internal/logger"
	"github.com/cristianadrielbraun/qrforge/internal/payload"
	"github.com/cristianadrielbraun/qrforge/internal/render"
	"github.com/cristianadrielbraun/qrforge/internal/style"
)

// errEmptyPayload stops a file export when no field produced content. The
// terminal preview falls back to the placeholder instead.
var errEmptyPayload = errors.New("nothing to generate: payload is empty, set content with --field")

type generateOptions struct {
	contentType string
	fields      []string
	format      string
	outDir      string
	logo        string
	terminal    bool
	escape      bool
	// style holds only the style flags set on the command line, keyed like
	// the web form.
	style url.Values
}

// styleFlags maps CLI flag names to style keys.
var styleFlags = map[string]string{
	"size":           style.KeySize,
	"fg":             style.KeyForeground,
	"bg":             style.KeyBackground,
	"level":          style.KeyErrorLevel,
	"margin":         style.KeyIncludeMargin,
	"dot-style":      style.KeyDotStyle,
	"corner-style":   style.KeyCornerStyle,
	"frame-style":    style.KeyFrameStyle,
	"frame-text":     style.KeyFrameText,
	"logo-size":      style.KeyLogoSize,
	"logo-opacity":   style.KeyLogoOpacity,
	"gradient":       style.KeyUseGradient,
	"gradient-color": style.KeyGradientColor,
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions
	def := style.Default()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a QR code to a file",
		Example: "  qrcreator generate --type wifi --field ssid=Home --field password=secret --format png --out .\n" +
			"  qrcreator generate --field url=https://go.dev --terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.style = url.Values{}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if key, ok := styleFlags[f.Name]; ok {
					opts.style.Set(key, f.Value.String())
				}
			})
			return runGenerate(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.contentType, "type", "t", string(payload.TypeURL), "content type: url, text, email, phone, sms, wifi, vcard")
	f.StringArrayVarP(&opts.fields, "field", "f", nil, "content field as name=value, repeatable")
	f.StringVar(&opts.format, "format", string(export.FormatPNG), "output format: png, svg, jpg")
	f.StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	f.StringVar(&opts.logo, "logo", "", "image file placed in the centre")
	f.BoolVar(&opts.terminal, "terminal", false, "print a preview to the terminal instead of writing a file")
	f.BoolVar(&opts.escape, "escape", false, "escape special characters in WiFi and vCard values")

	f.Int("size", def.Size, "size in pixels")
	f.String("fg", def.Foreground, "foreground color")
	f.String("bg", def.Background, "background color, or transparent")
	f.String("level", string(def.ErrorLevel), "error correction level: L, M, Q, H")
	f.Bool("margin", def.IncludeMargin, "include the quiet zone")
	f.String("dot-style", string(def.DotStyle), "dot style: square, dots, rounded")
	f.String("corner-style", string(def.CornerStyle), "corner style: square, rounded, extra-rounded")
	f.String("frame-style", string(def.FrameStyle), "frame style: none, basic, banner, tooltip")
	f.String("frame-text", def.FrameText, "frame label")
	f.Int("logo-size", def.LogoSize, "logo size in pixels")
	f.Int("logo-opacity", def.LogoOpacity, "logo opacity in percent")
	f.Bool("gradient", def.UseGradient, "fill modules with a gradient")
	f.String("gradient-color", def.GradientColor, "gradient end color")
	return cmd
}

func parseFields(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("field %q: expected name=value", p)
		}
		fields[name] = value
	}
	return fields, nil
}

func runGenerate(ctx context.Context, opts generateOptions, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(false, "warn")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	t, err := payload.ParseContentType(opts.contentType)
	if err != nil {
		return err
	}
	fields, err := parseFields(opts.fields)
	if err != nil {
		return err
	}
	content, err := payload.New(t)
	if err != nil {
		return err
	}
	for name := range fields {
		if err := content.Set(name, fields[name]); err != nil {
			return err
		}
	}
	text := payload.Encode(content, payload.Options{EscapeSpecial: opts.escape || cfg.EscapeSpecialChars})

	rc := style.Default()
	if err := rc.Apply(opts.style); err != nil {
		return err
	}

	if opts.terminal {
		return printTerminal(out, text, rc.ErrorLevel)
	}
	if text == "" {
		return errEmptyPayload
	}

	if opts.logo != "" {
		f, err := os.Open(opts.logo)
		if err != nil {
			return fmt.Errorf("open logo: %w", err)
		}
		dataURL, err := style.ReadLogo(f)
		f.Close()
		if err != nil {
			return err
		}
		rc.SetLogoImage(dataURL)
	}

	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	doc, err := render.Render(text, rc)
	if err != nil {
		return err
	}

	d := &export.DirDownloader{Dir: opts.outDir}
	a, err := export.NewPipeline(cfg.ExportTempDir, log).Export(ctx, doc, format, d)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s (%dx%d, %d bytes)\n", d.Written, a.Width, a.Height, len(a.Data))
	return nil
}

// printTerminal writes a half-block rendering of text.
func printTerminal(out io.Writer, text string, level style.ErrorLevel) error {
	if text == "" {
		text = render.Placeholder
	}
	q, err := termqr.New(text, terminalLevel(level))
	if err != nil {
		return fmt.Errorf("%w: %w", render.ErrEncode, err)
	}
	_, err = io.WriteString(out, q.ToSmallString(false))
	return err
}

func terminalLevel(l style.ErrorLevel) termqr.RecoveryLevel {
	switch l {
	case style.LevelLow:
		return termqr.Low
	case style.LevelQuartile:
		return termqr.High
	case style.LevelHigh:
		return termqr.Highest
	}
	return termqr.Medium
}
