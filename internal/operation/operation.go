package operation

import (
	"image"

	"github.com/ironsheep/fotoflex-mcp/internal/imaging"
)

// Operation is a fully parameterised edit. Apply never modifies its input; it
// either returns a new image or an *imaging.ValidationError.
type Operation interface {
	Kind() Kind
	Apply(img image.Image) (image.Image, error)
}

// Rotate90 rotates counter-clockwise by 90 degrees.
type Rotate90 struct{}

func (Rotate90) Kind() Kind { return KindRotate90 }

func (Rotate90) Apply(img image.Image) (image.Image, error) {
	return imaging.Rotate90(img), nil
}

// FlipHorizontal mirrors across the vertical axis.
type FlipHorizontal struct{}

func (FlipHorizontal) Kind() Kind { return KindFlipHorizontal }

func (FlipHorizontal) Apply(img image.Image) (image.Image, error) {
	return imaging.FlipHorizontal(img), nil
}

// FlipVertical mirrors across the horizontal axis.
type FlipVertical struct{}

func (FlipVertical) Kind() Kind { return KindFlipVertical }

func (FlipVertical) Apply(img image.Image) (image.Image, error) {
	return imaging.FlipVertical(img), nil
}

// Grayscale converts to single-channel luminance.
type Grayscale struct{}

func (Grayscale) Kind() Kind { return KindGrayscale }

func (Grayscale) Apply(img image.Image) (image.Image, error) {
	return imaging.Grayscale(img), nil
}

// Crop keeps the rectangle [Left,Right) x [Top,Bottom).
type Crop struct {
	Left, Top, Right, Bottom int
}

func (Crop) Kind() Kind { return KindCrop }

func (c Crop) Apply(img image.Image) (image.Image, error) {
	return imaging.Crop(img, c.Left, c.Top, c.Right, c.Bottom)
}

// Resize scales to exactly Width x Height.
type Resize struct {
	Width, Height int
}

func (Resize) Kind() Kind { return KindResize }

func (r Resize) Apply(img image.Image) (image.Image, error) {
	return imaging.Resize(img, r.Width, r.Height)
}

// Brightness scales channel values by Factor.
type Brightness struct {
	Factor float64
}

func (Brightness) Kind() Kind { return KindBrightness }

func (b Brightness) Apply(img image.Image) (image.Image, error) {
	return imaging.Brightness(img, b.Factor)
}

// Contrast scales the distance of channel values from the mean gray by Factor.
type Contrast struct {
	Factor float64
}

func (Contrast) Kind() Kind { return KindContrast }

func (c Contrast) Apply(img image.Image) (image.Image, error) {
	return imaging.Contrast(img, c.Factor)
}

// Blur applies the fixed blur filter.
type Blur struct{}

func (Blur) Kind() Kind { return KindBlur }

func (Blur) Apply(img image.Image) (image.Image, error) {
	return imaging.Blur(img), nil
}

// Contour applies the fixed contour filter.
type Contour struct{}

func (Contour) Kind() Kind { return KindContour }

func (Contour) Apply(img image.Image) (image.Image, error) {
	return imaging.Contour(img), nil
}

// Detail applies the fixed detail filter.
type Detail struct{}

func (Detail) Kind() Kind { return KindDetail }

func (Detail) Apply(img image.Image) (image.Image, error) {
	return imaging.Detail(img), nil
}

// Sharpen applies the fixed sharpen filter.
type Sharpen struct{}

func (Sharpen) Kind() Kind { return KindSharpen }

func (Sharpen) Apply(img image.Image) (image.Image, error) {
	return imaging.Sharpen(img), nil
}
