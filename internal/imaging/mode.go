package imaging

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Color modes reported for an image.
const (
	ModeGray  = "gray"
	ModeColor = "color"
)

// Mode returns the color mode of img: ModeGray for single-channel luminance
// images and ModeColor for everything else.
func Mode(img image.Image) string {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return ModeGray
	}
	return ModeColor
}

// HasAlpha reports whether any pixel of img is not fully opaque. It depends
// on pixel values only, so a copy in another pixel type answers the same.
func HasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return true
}

// Snapshot returns an independent copy of img that keeps its color mode.
// Gray and Gray16 images keep their pixel type; everything else becomes
// *image.NRGBA.
func Snapshot(img image.Image) image.Image {
	switch g := img.(type) {
	case *image.Gray:
		dup := image.NewGray(g.Rect)
		draw.Draw(dup, dup.Rect, g, g.Rect.Min, draw.Src)
		return dup
	case *image.Gray16:
		dup := image.NewGray16(g.Rect)
		draw.Draw(dup, dup.Rect, g, g.Rect.Min, draw.Src)
		return dup
	}
	return imaging.Clone(img)
}

// matchMode converts dst back to the color mode of src. Library transforms
// return NRGBA or RGBA, which would silently promote a grayscale document.
func matchMode(src, dst image.Image) image.Image {
	if Mode(src) == ModeGray {
		return toGray(dst)
	}
	return dst
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}
