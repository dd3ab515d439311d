package output

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail scales the image down to the given width, preserving the
// aspect ratio. Images already at or below the target width are
// returned unchanged.
func Thumbnail(img image.Image, width uint) image.Image {
	if uint(img.Bounds().Dx()) <= width {
		return img
	}
	return resize.Resize(width, 0, img, resize.Lanczos3)
}
