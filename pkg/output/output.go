// Package output writes rendered frames to disk and publishes them to
// S3-compatible object storage. The renderer itself never touches the
// filesystem or the network; everything that leaves the process goes
// through this package.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by Save when the file extension does
// not name a known encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Save writes the image to path, picking the encoder from the file
// extension (.png or .ppm). Parent directories are created as needed.
func Save(path string, img image.Image) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	if err := encode(buf, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return buf.Flush()
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return png.Encode, nil
	case ".ppm":
		return WritePPM, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
