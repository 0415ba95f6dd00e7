package export

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	_ "golang.org/x/image/webp"

	"github.com/cristianadrielbraun/qrforge/internal/render"
)

var errBadDataURL = errors.New("malformed data URL")

var labelFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(gobold.TTF)
})

// drawLogo scales the logo into its bounds and blends it with its opacity.
func drawLogo(canvas *image.RGBA, logo *render.Logo) error {
	b := logo.Bounds
	if b.Empty() || logo.Opacity <= 0 {
		return nil
	}

	mime, data, err := decodeDataURL(logo.DataURL)
	if err != nil {
		return err
	}

	var src image.Image
	if strings.HasPrefix(mime, "image/svg") {
		src, err = rasterize(bytes.NewReader(data), b.Dx(), b.Dy())
	} else {
		src, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return fmt.Errorf("decode logo: %w", err)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	alpha := uint8(logo.Opacity*255 + 0.5)
	if logo.Opacity >= 1 {
		alpha = 255
	}
	mask := image.NewUniform(color.Alpha{A: alpha})
	draw.DrawMask(canvas, b, scaled, image.Point{}, mask, image.Point{}, draw.Over)
	return nil
}

// drawLabel writes the frame caption centred in its box.
func drawLabel(canvas *image.RGBA, label *render.Label) {
	if label.Text == "" {
		return
	}
	dc := gg.NewContextForRGBA(canvas)
	dc.SetFontFace(labelFace(label.FontSize))
	dc.SetColor(label.Color)

	box := label.Box
	cx := float64(box.Min.X+box.Max.X) / 2
	cy := float64(box.Min.Y+box.Max.Y) / 2
	dc.DrawStringAnchored(label.Text, cx, cy, 0.5, 0.5)
}

func labelFace(size float64) font.Face {
	f, err := labelFont()
	if err != nil || size <= 0 {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull})
}

// decodeDataURL splits a data: URL into its media type and payload.
func decodeDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, errBadDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errBadDataURL
	}

	isBase64 := strings.HasSuffix(meta, ";base64")
	mime := strings.TrimSuffix(meta, ";base64")
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}

	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", errBadDataURL, err)
		}
		return mime, data, nil
	}
	data, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", errBadDataURL, err)
	}
	return mime, []byte(data), nil
}
