package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format names an output encoding
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatPPM  Format = "ppm"
)

// DefaultQuality is the JPEG quality used when Options leaves it unset
const DefaultQuality = 95

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrBufferSize        = errors.New("pixel buffer does not match image size")
)

// Options controls encoding
type Options struct {
	Quality int // JPEG quality 1-100; 0 means DefaultQuality
}

// DefaultOptions returns the options used for the reference render
func DefaultOptions() Options {
	return Options{Quality: DefaultQuality}
}

func (o Options) jpegQuality() int {
	if o.Quality <= 0 {
		return DefaultQuality
	}
	return min(o.Quality, 100)
}

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".png":
		return FormatPNG, nil
	case ".ppm":
		return FormatPPM, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Encode writes a row-major RGB buffer of width x height pixels to w
func Encode(w io.Writer, format Format, pix []uint8, width, height int, opts Options) error {
	if width <= 0 || height <= 0 || len(pix) != width*height*3 {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrBufferSize, len(pix), width, height)
	}

	switch format {
	case FormatJPEG:
		return jpeg.Encode(w, toRGBA(pix, width, height), &jpeg.Options{Quality: opts.jpegQuality()})
	case FormatPNG:
		return png.Encode(w, toRGBA(pix, width, height))
	case FormatPPM:
		return writePPM(w, pix, width, height)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save encodes the buffer into path, choosing the format from its extension.
// The image is written to a temporary file next to path and renamed into
// place, so a failed save never leaves a partial file at path.
func Save(path string, pix []uint8, width, height int, opts Options) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	buffered := bufio.NewWriter(tmp)
	if err = Encode(buffered, format, pix, width, height, opts); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	if err = buffered.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output file into place: %w", err)
	}
	return nil
}

// toRGBA copies an RGB buffer into an opaque image
func toRGBA(pix []uint8, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < len(pix); i, j = i+3, j+4 {
		img.Pix[j] = pix[i]
		img.Pix[j+1] = pix[i+1]
		img.Pix[j+2] = pix[i+2]
		img.Pix[j+3] = 255
	}
	return img
}

// writePPM writes a binary (P6) portable pixmap
func writePPM(w io.Writer, pix []uint8, width, height int) error {
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	_, err := w.Write(pix)
	return err
}
