package output

import (
	"fmt"
	"image"
	"io"
)

// WritePPM encodes the image as plain-text PPM (magic number P3,
// 8-bit channels). Rows are written top first, one "R G B" line per
// pixel. Callers writing to a file should wrap w in a bufio.Writer.
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if _, err := fmt.Fprintf(w, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return err
			}
		}
	}
	return nil
}
