package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Fixed kernels for the built-in filters. Sums double as the scale divisor,
// except for contour, which is zero-sum and lifted by a constant offset.
var (
	blurKernel = [25]float64{
		1, 1, 1, 1, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 1, 1, 1, 1,
	}
	contourKernel = [9]float64{
		-1, -1, -1,
		-1, 8, -1,
		-1, -1, -1,
	}
	detailKernel = [9]float64{
		0, -1, 0,
		-1, 10, -1,
		0, -1, 0,
	}
	sharpenKernel = [9]float64{
		-2, -2, -2,
		-2, 32, -2,
		-2, -2, -2,
	}
)

const contourOffset = 255

// Blur softens img with a 5x5 ring kernel.
func Blur(img image.Image) image.Image {
	return matchMode(img, imaging.Convolve5x5(img, blurKernel, &imaging.ConvolveOptions{Normalize: true}))
}

// Contour traces edges in img: flat areas become white and edges dark.
func Contour(img image.Image) image.Image {
	return matchMode(img, imaging.Convolve3x3(img, contourKernel, &imaging.ConvolveOptions{Bias: contourOffset}))
}

// Detail mildly enhances fine structure in img.
func Detail(img image.Image) image.Image {
	return matchMode(img, imaging.Convolve3x3(img, detailKernel, &imaging.ConvolveOptions{Normalize: true}))
}

// Sharpen accentuates edges in img.
func Sharpen(img image.Image) image.Image {
	return matchMode(img, imaging.Convolve3x3(img, sharpenKernel, &imaging.ConvolveOptions{Normalize: true}))
}
