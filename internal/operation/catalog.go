package operation

import (
	"fmt"

	"github.com/ironsheep/fotoflex-mcp/internal/imaging"
)

// Kind identifies one entry of the operation catalog.
type Kind int

// The catalog. The order is the toolbar order of the editor.
const (
	KindRotate90 Kind = iota
	KindFlipHorizontal
	KindFlipVertical
	KindGrayscale
	KindCrop
	KindResize
	KindBrightness
	KindContrast
	KindBlur
	KindContour
	KindDetail
	KindSharpen

	numKinds
)

// ParamType is the value type of an operation parameter.
type ParamType string

const (
	ParamInt   ParamType = "integer"
	ParamFloat ParamType = "number"
)

// Param describes one value an operation needs from the user.
type Param struct {
	Name        string
	Type        ParamType
	Description string

	// Bounded marks Min and Max as the inclusive range of valid values.
	Bounded bool
	Min     float64
	Max     float64
}

// Spec describes a catalog entry: how it is named and which parameters it
// needs, in prompt order.
type Spec struct {
	Kind        Kind
	Name        string
	Label       string
	Description string
	Params      []Param
}

func factorParam(what string) Param {
	return Param{
		Name:        "factor",
		Type:        ParamFloat,
		Description: fmt.Sprintf("%s factor (%.1f - %.1f, 1.0 leaves the image unchanged)", what, imaging.MinFactor, imaging.MaxFactor),
		Bounded:     true,
		Min:         imaging.MinFactor,
		Max:         imaging.MaxFactor,
	}
}

var specs = [numKinds]Spec{
	KindRotate90: {
		Name:        "rotate",
		Label:       "Rotate 90°",
		Description: "Rotate the image 90 degrees counter-clockwise. Width and height are swapped.",
	},
	KindFlipHorizontal: {
		Name:        "flip_horizontal",
		Label:       "Flip Horizontal",
		Description: "Mirror the image left to right.",
	},
	KindFlipVertical: {
		Name:        "flip_vertical",
		Label:       "Flip Vertical",
		Description: "Mirror the image top to bottom.",
	},
	KindGrayscale: {
		Name:        "grayscale",
		Label:       "Grayscale",
		Description: "Convert the image to single-channel grayscale.",
	},
	KindCrop: {
		Name:        "crop",
		Label:       "Crop",
		Description: "Keep only the rectangle [left,right) x [top,bottom). The rectangle must be non-empty and inside the image.",
		Params: []Param{
			{Name: "left", Type: ParamInt, Description: "Left edge X coordinate (0-based, inclusive)"},
			{Name: "top", Type: ParamInt, Description: "Top edge Y coordinate (0-based, inclusive)"},
			{Name: "right", Type: ParamInt, Description: "Right edge X coordinate (exclusive)"},
			{Name: "bottom", Type: ParamInt, Description: "Bottom edge Y coordinate (exclusive)"},
		},
	},
	KindResize: {
		Name:        "resize",
		Label:       "Resize",
		Description: "Resize the image to exactly width x height pixels with Lanczos resampling. Aspect ratio is not preserved.",
		Params: []Param{
			{Name: "width", Type: ParamInt, Description: "Target width in pixels (> 0)"},
			{Name: "height", Type: ParamInt, Description: "Target height in pixels (> 0)"},
		},
	},
	KindBrightness: {
		Name:        "brightness",
		Label:       "Brightness",
		Description: "Adjust brightness. 0.0 is black, 1.0 is unchanged, 2.0 doubles every channel.",
		Params:      []Param{factorParam("Brightness")},
	},
	KindContrast: {
		Name:        "contrast",
		Label:       "Contrast",
		Description: "Adjust contrast around the mean gray level. 0.0 is flat gray, 1.0 is unchanged.",
		Params:      []Param{factorParam("Contrast")},
	},
	KindBlur: {
		Name:        "blur",
		Label:       "Blur",
		Description: "Apply a fixed blur filter.",
	},
	KindContour: {
		Name:        "contour",
		Label:       "Contour",
		Description: "Apply a fixed contour filter: flat areas turn white, edges dark.",
	},
	KindDetail: {
		Name:        "detail",
		Label:       "Detail",
		Description: "Apply a fixed detail-enhancing filter.",
	},
	KindSharpen: {
		Name:        "sharpen",
		Label:       "Sharpen",
		Description: "Apply a fixed sharpening filter.",
	},
}

func init() {
	for k := range specs {
		specs[k].Kind = Kind(k)
	}
}

// Valid reports whether k is part of the catalog.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// Spec returns the catalog entry for k. It panics if k is not Valid.
func (k Kind) Spec() Spec {
	return specs[k]
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return specs[k].Name
}

// Specs returns every catalog entry in toolbar order.
func Specs() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs[:])
	return out
}

// Lookup finds a catalog entry by name (e.g. "crop").
func Lookup(name string) (Kind, bool) {
	for k := range specs {
		if specs[k].Name == name {
			return Kind(k), true
		}
	}
	return 0, false
}
