package server

import (
	"image"

	"github.com/ironsheep/fotoflex-mcp/internal/imaging"
)

// Display renders the document's current image. The server calls it after
// every successful open, edit and undo.
type Display interface {
	Render(img image.Image) (*imaging.PreviewResult, error)
}

// PreviewDisplay renders the current image as a PNG preview fitted to a fixed
// viewport, the way the editor canvas shows it.
type PreviewDisplay struct {
	opts imaging.PreviewOptions
}

// NewPreviewDisplay returns a display that renders with opts.
func NewPreviewDisplay(opts imaging.PreviewOptions) *PreviewDisplay {
	return &PreviewDisplay{opts: opts}
}

// Render implements Display.
func (d *PreviewDisplay) Render(img image.Image) (*imaging.PreviewResult, error) {
	return imaging.RenderPreview(img, d.opts)
}
