package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultGridColor is semi-transparent red.
const DefaultGridColor = "#FF000080"

// GridOptions controls the coordinate grid drawn over a preview.
type GridOptions struct {
	// Spacing is the distance between grid lines in source-image pixels.
	Spacing int

	// ShowCoordinates labels each grid intersection with its source-image
	// coordinates.
	ShowCoordinates bool

	// Color is the grid line color as "#RRGGBB" or "#RRGGBBAA". An empty or
	// malformed value falls back to DefaultGridColor.
	Color string
}

// drawGrid overlays a coordinate grid on dst, which shows the source image
// at the given scale (preview pixels per source pixel). Lines and labels are
// placed on source-pixel multiples of opts.Spacing so they can be read back
// as crop bounds.
func drawGrid(dst *image.NRGBA, opts GridOptions, scale float64) {
	bounds := dst.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	gridColor, err := parseHexColor(opts.Color)
	if err != nil {
		gridColor, _ = parseHexColor(DefaultGridColor)
	}
	src := image.NewUniform(gridColor)

	for sx := opts.Spacing; ; sx += opts.Spacing {
		x := int(math.Round(float64(sx) * scale))
		if x >= width {
			break
		}
		draw.Draw(dst, image.Rect(x, 0, x+1, height), src, image.Point{}, draw.Over)
	}
	for sy := opts.Spacing; ; sy += opts.Spacing {
		y := int(math.Round(float64(sy) * scale))
		if y >= height {
			break
		}
		draw.Draw(dst, image.Rect(0, y, width, y+1), src, image.Point{}, draw.Over)
	}

	if !opts.ShowCoordinates {
		return
	}
	fg := color.RGBA{255, 255, 255, 255}
	bg := color.RGBA{0, 0, 0, 180}
	for sy := opts.Spacing; ; sy += opts.Spacing {
		y := int(math.Round(float64(sy) * scale))
		if y >= height {
			break
		}
		for sx := opts.Spacing; ; sx += opts.Spacing {
			x := int(math.Round(float64(sx) * scale))
			if x >= width {
				break
			}
			drawLabel(dst, x+2, y+2, fmt.Sprintf("%d,%d", sx, sy), fg, bg)
		}
	}
}

// drawLabel draws text with its top-left corner at (x, y) on an opaque-ish
// background box. Parts falling outside img are clipped.
func drawLabel(img draw.Image, x, y int, text string, fg, bg color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
	}
	textWidth := d.MeasureString(text).Ceil()
	box := image.Rect(x-1, y-1, x+textWidth+1, y+face.Height)
	draw.Draw(img, box.Intersect(img.Bounds()), image.NewUniform(bg), image.Point{}, draw.Over)

	d.Dot = fixed.P(x, y+face.Ascent)
	d.DrawString(text)
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080".
// The leading '#' is optional.
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	hex = strings.TrimPrefix(hex, "#")

	var alpha uint8 = 255
	switch len(hex) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	cf, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
}
