package imaging

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// ErrUnsupportedFormat indicates an output path whose extension has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// JPEGQuality is the quality used when a solution is written as JPEG.
const JPEGQuality = 95

// EncoderFor picks an encoder from the extension of path.
//
// Supported extensions (case-insensitive):
//   - ".png" -> PNG
//   - ".jpg", ".jpeg" -> JPEG at JPEGQuality
//   - ".bmp" -> BMP
func EncoderFor(path string) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(JPEGQuality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("%w %q (use .png, .jpg or .bmp)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Save encodes img to path, choosing the format from the extension.
func Save(path string, img image.Image) error {
	enc, err := EncoderFor(path)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// Encode writes img to w in the format implied by name's extension.
func Encode(w io.Writer, name string, img image.Image) error {
	enc, err := EncoderFor(name)
	if err != nil {
		return err
	}
	if err := enc(w, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}
