package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Enhancement factor limits. A factor of 1.0 leaves the image unchanged.
const (
	MinFactor = 0.0
	MaxFactor = 2.0
)

// Brightness scales every color channel of img by factor. 0.0 yields black,
// 1.0 returns identical pixels and 2.0 doubles each channel (saturating).
func Brightness(img image.Image, factor float64) (image.Image, error) {
	if err := checkFactor("brightness", factor); err != nil {
		return nil, err
	}
	var lut [256]uint8
	for i := range lut {
		lut[i] = clampUint8(math.Round(float64(i) * factor))
	}
	return matchMode(img, applyLUT(img, &lut)), nil
}

// Contrast moves every color channel of img away from (factor > 1) or towards
// (factor < 1) the mean luminance of the image. 0.0 yields a flat gray image
// at that mean, 1.0 returns identical pixels.
func Contrast(img image.Image, factor float64) (image.Image, error) {
	if err := checkFactor("contrast", factor); err != nil {
		return nil, err
	}

	mean := meanLuminance(img)
	var lut [256]uint8
	for i := range lut {
		lut[i] = clampUint8(math.Round(mean + factor*(float64(i)-mean)))
	}

	return matchMode(img, applyLUT(img, &lut)), nil
}

// applyLUT maps the color channels of img through lut on straight
// (non-premultiplied) values, leaving alpha alone.
func applyLUT(img image.Image, lut *[256]uint8) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{R: lut[c.R], G: lut[c.G], B: lut[c.B], A: c.A}
	})
}

func checkFactor(op string, factor float64) error {
	// NaN fails both comparisons.
	if !(factor >= MinFactor && factor <= MaxFactor) {
		return invalidParam(op, "factor", "must be between %.1f and %.1f, got %v", MinFactor, MaxFactor, factor)
	}
	return nil
}

// meanLuminance returns the average luminance of img rounded to the nearest
// integer level. Luma uses ITU-R 601 weights on straight (non-premultiplied)
// channel values, so alpha does not pull the mean towards black.
func meanLuminance(img image.Image) float64 {
	src := imaging.Clone(img)
	n := len(src.Pix) / 4
	if n == 0 {
		return 0
	}
	var sum uint64
	for i := 0; i < len(src.Pix); i += 4 {
		r, g, b := uint32(src.Pix[i]), uint32(src.Pix[i+1]), uint32(src.Pix[i+2])
		sum += uint64((19595*r + 38470*g + 7471*b + 1<<15) >> 16)
	}
	return math.Floor(float64(sum)/float64(n) + 0.5)
}

func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
