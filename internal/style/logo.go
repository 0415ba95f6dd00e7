package style

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// ReadLogo reads an uploaded image and returns it as a base64 data URL with
// the sniffed MIME type. The content is not validated: callers bound the
// size and whatever the renderer cannot decode is simply not drawn.
func ReadLogo(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read logo: %w", err)
	}
	mime := mimetype.Detect(b)
	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}

// LoadLogo reads r on its own goroutine and calls done with the data URL once
// the read finishes. If ctx ends first, done receives the context error.
func LoadLogo(ctx context.Context, r io.Reader, done func(dataURL string, err error)) {
	go func() {
		dataURL, err := ReadLogo(r)
		if ctxErr := ctx.Err(); ctxErr != nil {
			done("", ctxErr)
			return
		}
		done(dataURL, err)
	}()
}
