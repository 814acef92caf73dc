package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/ShayCichocki/taskplot/internal/palette"
	"github.com/ShayCichocki/taskplot/pkg/models"
)

// Format is an output image format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// jpegQuality is used when re-encoding the raster as JPEG.
const jpegQuality = 90

// FormatFromPath infers the image format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".gif":
		return FormatGIF, nil
	case "":
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Render draws p in the given format to w.
func Render(w io.Writer, format Format, p *models.Profile, colors *palette.Assigner, opts Options) error {
	ch := NewChart(p, colors, opts)

	switch format {
	case FormatPNG:
		return ch.Render(chart.PNG, w)
	case FormatSVG:
		return ch.Render(chart.SVG, w)
	case FormatJPEG, FormatGIF:
		// go-chart only rasterises to PNG; other raster formats are re-encoded.
		var buf bytes.Buffer
		if err := ch.Render(chart.PNG, &buf); err != nil {
			return err
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return fmt.Errorf("decode raster: %w", err)
		}
		if format == FormatJPEG {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
		}
		return gif.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}

// SaveFile renders p to path, picking the format from the extension.
// The file is only created once rendering has succeeded.
func SaveFile(path string, p *models.Profile, colors *palette.Assigner, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Render(&buf, format, p, colors, opts); err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}
