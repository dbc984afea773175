package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	// ErrUnknownFormat is returned when a path has no supported image extension.
	ErrUnknownFormat = errors.New("render: unknown image format")
	// ErrBufferSize is returned when a pixel buffer does not match its dimensions.
	ErrBufferSize = errors.New("render: pixel buffer size mismatch")
)

type encodeFunc func(io.Writer, image.Image) error

func encoderFor(path string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Formats lists the file extensions Save understands.
func Formats() []string { return []string{".png", ".bmp", ".tif", ".tiff"} }

// Save encodes img to path, choosing the encoder from the file extension.
func Save(path string, img image.Image) (err error) {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", path, cerr)
		}
	}()
	if err := encode(f, img); err != nil {
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return nil
}

// EncodeRGBA saves a w x h buffer of interleaved RGBA8 pixels to path.
func EncodeRGBA(path string, w, h int, pix []byte) error {
	if w <= 0 || h <= 0 || len(pix) != 4*w*h {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrBufferSize, len(pix), w, h)
	}
	img := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	return Save(path, img)
}

// Load decodes an image previously written by Save.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", path, err)
	}
	return img, nil
}
