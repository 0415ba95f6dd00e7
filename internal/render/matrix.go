package render

import (
	"errors"
	"fmt"

	"github.com/yeqown/go-qrcode/v2"

	"github.com/cristianadrielbraun/qrforge/internal/style"
)

// ErrEncode is returned when the payload cannot be encoded, usually because it
// exceeds the capacity of the largest symbol at the chosen level.
var ErrEncode = errors.New("qr encode failed")

// Matrix is the square module grid of an encoded symbol, without quiet zone.
// Matrix[y][x] is true for a dark module.
type Matrix [][]bool

// Len is the number of modules per side.
func (m Matrix) Len() int { return len(m) }

// Dark reports whether the module at (x, y) is dark. Out of range is light.
func (m Matrix) Dark(x, y int) bool {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return false
	}
	return m[y][x]
}

// matrixWriter implements qrcode.Writer and keeps the matrix instead of
// drawing it, so the document can be composed from the raw modules.
type matrixWriter struct {
	mat Matrix
}

func (w *matrixWriter) Write(mat qrcode.Matrix) error {
	width, height := mat.Width(), mat.Height()
	if width <= 0 || width != height {
		return fmt.Errorf("unexpected matrix %dx%d", width, height)
	}
	grid := make(Matrix, height)
	for y := range grid {
		grid[y] = make([]bool, width)
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		if y < height && x < width {
			grid[y][x] = v.IsSet()
		}
	})
	w.mat = grid
	return nil
}

func (w *matrixWriter) Close() error { return nil }

// Encode encodes text at the given error-correction level and returns its
// module matrix.
func Encode(text string, level style.ErrorLevel) (Matrix, error) {
	qrc, err := qrcode.NewWith(text, ecLevel(level))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	w := &matrixWriter{}
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return w.mat, nil
}

func ecLevel(l style.ErrorLevel) qrcode.EncodeOption {
	switch l {
	case style.LevelLow:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case style.LevelQuartile:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	case style.LevelHigh:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	}
	return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
}
