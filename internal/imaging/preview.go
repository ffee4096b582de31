package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// Default preview viewport, in pixels.
const (
	DefaultPreviewWidth  = 800
	DefaultPreviewHeight = 600
)

// PreviewOptions controls how an image is rendered for display.
type PreviewOptions struct {
	// MaxWidth and MaxHeight bound the rendered preview. Images that already
	// fit are rendered at their natural size; larger ones are scaled down
	// keeping their aspect ratio. A non-positive bound disables scaling.
	MaxWidth  int
	MaxHeight int

	// Grid, when non-nil, draws a coordinate grid over the preview.
	Grid *GridOptions
}

// PreviewResult is a rendered preview encoded as base64 PNG.
type PreviewResult struct {
	// Width and Height are the dimensions of the source image.
	Width  int `json:"width"`
	Height int `json:"height"`

	// PreviewWidth and PreviewHeight are the dimensions of the encoded preview.
	PreviewWidth  int `json:"preview_width"`
	PreviewHeight int `json:"preview_height"`

	// Scale is preview pixels per source pixel (1.0 when not scaled down).
	Scale float64 `json:"scale"`

	// Mode is the color mode of the source image.
	Mode string `json:"mode"`

	// GridSpacing is the grid spacing in source pixels, 0 without a grid.
	GridSpacing int `json:"grid_spacing,omitempty"`

	ImageBase64 string `json:"-"`
	MimeType    string `json:"mime_type"`
}

// RenderPreview renders img for display inside the configured viewport.
//
// The preview never upscales. A grid spacing below 1 is rejected with a
// *ValidationError.
func RenderPreview(img image.Image, opts PreviewOptions) (*PreviewResult, error) {
	if opts.Grid != nil && opts.Grid.Spacing <= 0 {
		return nil, invalidParam("preview", "grid_spacing", "must be greater than 0, got %d", opts.Grid.Spacing)
	}

	bounds := img.Bounds()
	var view *image.NRGBA
	if opts.MaxWidth > 0 && opts.MaxHeight > 0 {
		view = imaging.Fit(img, opts.MaxWidth, opts.MaxHeight, imaging.Lanczos)
	} else {
		view = imaging.Clone(img)
	}

	scale := 1.0
	if bounds.Dx() > 0 {
		scale = float64(view.Bounds().Dx()) / float64(bounds.Dx())
	}

	result := &PreviewResult{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		PreviewWidth:  view.Bounds().Dx(),
		PreviewHeight: view.Bounds().Dy(),
		Scale:         scale,
		Mode:          Mode(img),
		MimeType:      "image/png",
	}

	if opts.Grid != nil {
		drawGrid(view, *opts.Grid, scale)
		result.GridSpacing = opts.Grid.Spacing
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}
	result.ImageBase64 = base64.StdEncoding.EncodeToString(buf.Bytes())

	return result, nil
}
