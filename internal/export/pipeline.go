// Package export turns a rendered document into a downloadable file.
//
// SVG is the document itself. PNG and JPEG go through a temporary SVG file
// that is decoded with oksvg and rasterized with rasterx onto a surface of
// exactly Size x Size, then the logo and frame label are drawn over it.
// Temporary files are removed after the downloader has run, whatever the
// outcome.
package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrforge/internal/render"
)

const jpegQuality = 92

// Pipeline exports documents. It is safe for concurrent use; each export owns
// its own temporary files.
type Pipeline struct {
	tempDir string
	log     *zap.Logger
}

// NewPipeline returns a Pipeline that keeps temporaries in tempDir, or in the
// system temp dir when tempDir is empty.
func NewPipeline(tempDir string, log *zap.Logger) *Pipeline {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{tempDir: tempDir, log: log}
}

// Export produces doc in format f and hands it to d.
func (p *Pipeline) Export(ctx context.Context, doc *render.Document, f Format, d Downloader) (Artifact, error) {
	if doc == nil || doc.XML == "" {
		return Artifact{}, ErrNoSource
	}

	// Temporaries live until the download has finished.
	var temps []string
	defer func() {
		for _, path := range temps {
			p.release(path)
		}
	}()

	var (
		a   Artifact
		err error
	)
	switch f {
	case FormatSVG:
		a = p.svg(doc)
	case FormatPNG, FormatJPEG:
		a, err = p.raster(doc, f, &temps)
	default:
		return Artifact{}, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return Artifact{}, err
	}

	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	if err := d.Download(ctx, a); err != nil {
		return Artifact{}, fmt.Errorf("download %s: %w", a.Filename, err)
	}

	p.log.Debug("qr exported",
		zap.String("format", string(f)),
		zap.Int("width", a.Width),
		zap.Int("height", a.Height),
		zap.Int("bytes", len(a.Data)),
	)
	return a, nil
}

func (p *Pipeline) svg(doc *render.Document) Artifact {
	return Artifact{
		Filename: FormatSVG.Filename(),
		MIMEType: FormatSVG.MIMEType(),
		Data:     []byte(doc.XML),
		Width:    doc.Size,
		Height:   doc.Size,
	}
}

// raster serializes the document to a temporary file, decodes and draws it,
// then encodes the surface to a second temporary file. Created files are
// appended to temps for the caller to release.
func (p *Pipeline) raster(doc *render.Document, f Format, temps *[]string) (Artifact, error) {
	if doc.Size <= 0 {
		return Artifact{}, fmt.Errorf("%w: size %d", ErrNoRasterSurface, doc.Size)
	}

	src, err := p.writeTemp("qr_src", ".svg", func(w io.Writer) error {
		_, err := io.WriteString(w, doc.XML)
		return err
	})
	if err != nil {
		return Artifact{}, err
	}
	*temps = append(*temps, src)

	file, err := os.Open(src)
	if err != nil {
		return Artifact{}, fmt.Errorf("open serialized svg: %w", err)
	}
	canvas, err := rasterize(file, doc.Size, doc.Size)
	file.Close()
	if err != nil {
		return Artifact{}, err
	}

	if doc.Logo != nil {
		if err := drawLogo(canvas, doc.Logo); err != nil {
			// A logo the browser cannot decode is simply not drawn.
			p.log.Warn("logo skipped", zap.Error(err))
		}
	}
	if doc.Label != nil {
		drawLabel(canvas, doc.Label)
	}

	bounds := canvas.Bounds()
	out, err := p.writeTemp("qr", "."+string(f), func(w io.Writer) error {
		if f == FormatJPEG {
			return jpeg.Encode(w, flatten(canvas), &jpeg.Options{Quality: jpegQuality})
		}
		return png.Encode(w, canvas)
	})
	if err != nil {
		return Artifact{}, err
	}
	*temps = append(*temps, out)

	data, err := os.ReadFile(out)
	if err != nil {
		return Artifact{}, fmt.Errorf("read encoded %s: %w", f, err)
	}

	return Artifact{
		Filename: f.Filename(),
		MIMEType: f.MIMEType(),
		Data:     data,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}, nil
}

// rasterize decodes an SVG stream and draws it onto a new w x h surface at (0, 0).
func rasterize(r io.Reader, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNoRasterSurface, w, h)
	}

	icon, err := oksvg.ReadIconStream(r, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("decode svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, canvas, canvas.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
	return canvas, nil
}

// flatten composites img onto white, JPEG having no alpha channel.
func flatten(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, &image.Uniform{C: color.RGBA{255, 255, 255, 255}}, image.Point{}, draw.Src)
	draw.Draw(out, b, img, b.Min, draw.Over)
	return out
}

// writeTemp creates a uniquely named file in the temp dir and fills it with write.
// The file is removed again if write fails.
func (p *Pipeline) writeTemp(prefix, ext string, write func(io.Writer) error) (string, error) {
	path := filepath.Join(p.tempDir, tempName(prefix, ext))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	var buf bytes.Buffer
	werr := write(&buf)
	if werr == nil {
		_, werr = buf.WriteTo(f)
	}
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		p.release(path)
		return "", fmt.Errorf("write temp file: %w", werr)
	}
	return path, nil
}

func (p *Pipeline) release(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.log.Warn("failed to remove temp file", zap.String("path", path), zap.Error(err))
	}
}

func tempName(prefix, ext string) string {
	return fmt.Sprintf("%s_%s%s", prefix, uuid.NewString(), ext)
}
