package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNoSource is returned when there is no rendered document to export.
	ErrNoSource = errors.New("no rendered QR code to export")
	// ErrNoRasterSurface is returned when a raster surface cannot be created for the document.
	ErrNoRasterSurface = errors.New("cannot create raster surface")
	// ErrUnknownFormat is returned for formats other than png, svg and jpg.
	ErrUnknownFormat = errors.New("unknown export format")
)

// Format is an export file type.
type Format string

const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatJPEG Format = "jpg"
)

// Formats in the order the download buttons show them.
var Formats = []Format{FormatPNG, FormatSVG, FormatJPEG}

// ParseFormat accepts png, svg, jpg and jpeg in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Filename is the name suggested to the browser.
func (f Format) Filename() string { return "qrcode." + string(f) }

func (f Format) MIMEType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJPEG:
		return "image/jpeg"
	}
	return "image/png"
}

// Label is the upper-case name used in notifications.
func (f Format) Label() string { return strings.ToUpper(string(f)) }

// DownloadMessage is the notification shown after a download.
func DownloadMessage(f Format) string {
	return "QR Code downloaded as " + f.Label() + "!"
}

// Artifact is an exported file ready to be handed to a Downloader.
type Artifact struct {
	Filename string
	MIMEType string
	Data     []byte
	Width    int
	Height   int
}

// Downloader delivers an artifact to the user, for example as an HTTP
// attachment or a file on disk.
type Downloader interface {
	Download(ctx context.Context, a Artifact) error
}

// DownloaderFunc adapts a function to Downloader.
type DownloaderFunc func(ctx context.Context, a Artifact) error

func (f DownloaderFunc) Download(ctx context.Context, a Artifact) error { return f(ctx, a) }

// DirDownloader writes artifacts into Dir under their suggested filename.
type DirDownloader struct {
	Dir string
	// Written is set to the path of the last file written.
	Written string
}

func (d *DirDownloader) Download(_ context.Context, a Artifact) error {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, a.Filename)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	d.Written = path
	return nil
}
