package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Rotate90 rotates img 90 degrees counter-clockwise. The output canvas swaps
// width and height so the whole image is kept; no pixel is resampled.
func Rotate90(img image.Image) image.Image {
	return matchMode(img, imaging.Rotate90(img))
}

// FlipHorizontal mirrors img across its vertical axis.
func FlipHorizontal(img image.Image) image.Image {
	return matchMode(img, imaging.FlipH(img))
}

// FlipVertical mirrors img across its horizontal axis.
func FlipVertical(img image.Image) image.Image {
	return matchMode(img, imaging.FlipV(img))
}

// Grayscale converts img to single-channel luminance. The result is always an
// *image.Gray, regardless of the input's color mode.
func Grayscale(img image.Image) image.Image {
	return toGray(effect.Grayscale(img))
}

// Crop extracts the rectangle [left,right) x [top,bottom) from img.
//
// Coordinates are 0-based and relative to the top-left corner of the image.
// The rectangle must be non-empty and lie entirely inside the image; anything
// else is rejected with a *ValidationError rather than clamped.
func Crop(img image.Image, left, top, right, bottom int) (image.Image, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if left >= right {
		return nil, invalidParam("crop", "left/right", "left (%d) must be less than right (%d)", left, right)
	}
	if top >= bottom {
		return nil, invalidParam("crop", "top/bottom", "top (%d) must be less than bottom (%d)", top, bottom)
	}
	if left < 0 || top < 0 || right > w || bottom > h {
		return nil, invalidParam("crop", "bounds",
			"region (%d,%d)-(%d,%d) outside image extent %dx%d", left, top, right, bottom, w, h)
	}

	rect := image.Rect(left, top, right, bottom).Add(bounds.Min)
	return matchMode(img, imaging.Crop(img, rect)), nil
}

// Resize scales img to exactly width x height using Lanczos resampling. The
// aspect ratio is not preserved; both dimensions must be positive.
func Resize(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 {
		return nil, invalidParam("resize", "width", "must be greater than 0, got %d", width)
	}
	if height <= 0 {
		return nil, invalidParam("resize", "height", "must be greater than 0, got %d", height)
	}
	return matchMode(img, imaging.Resize(img, width, height, imaging.Lanczos)), nil
}
