package raster

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
)

// ErrSnapshotFormat is returned for a snapshot path whose extension has no
// encoder.
var ErrSnapshotFormat = errors.New("raster: unsupported snapshot format")

// Encoder writes an image in one file format.
type Encoder func(w io.Writer, img image.Image) error

var encoders = map[string]Encoder{
	".png": png.Encode,
	".bmp": bmp.Encode,
}

// EncoderFor returns the encoder for the extension of path.
func EncoderFor(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSnapshotFormat, ext)
	}
	return enc, nil
}

// WriteSnapshot encodes img to path, choosing the format by extension.
func WriteSnapshot(path string, img image.Image) (err error) {
	enc, err := EncoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("raster: close snapshot: %w", cerr)
		}
	}()

	if err := enc(f, img); err != nil {
		return fmt.Errorf("raster: encode snapshot: %w", err)
	}
	return nil
}
