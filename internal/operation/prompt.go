package operation

import "fmt"

// Prompter supplies parameter values for an operation, typically by asking
// the user.
//
// Each method returns ok == false when the user cancelled or supplied no
// value. A non-nil error means a value was supplied but could not be used as
// the requested type (for example 3.5 for an integer); such errors should be
// *imaging.ValidationError so callers can report them uniformly.
type Prompter interface {
	Int(p Param) (v int, ok bool, err error)
	Float(p Param) (v float64, ok bool, err error)
}

// Collect asks p for every parameter of kind, in order, and builds the
// corresponding Operation.
//
// It stops at the first cancelled parameter and returns ok == false with a
// nil error; the caller must then treat the action as a no-op. Range checks
// are left to the operation itself.
func Collect(kind Kind, p Prompter) (op Operation, ok bool, err error) {
	if !kind.Valid() {
		return nil, false, fmt.Errorf("unknown operation kind %d", int(kind))
	}

	spec := kind.Spec()
	ints := make([]int, 0, len(spec.Params))
	floats := make([]float64, 0, len(spec.Params))

	for _, param := range spec.Params {
		switch param.Type {
		case ParamInt:
			v, ok, err := p.Int(param)
			if err != nil || !ok {
				return nil, false, err
			}
			ints = append(ints, v)
		case ParamFloat:
			v, ok, err := p.Float(param)
			if err != nil || !ok {
				return nil, false, err
			}
			floats = append(floats, v)
		}
	}

	return build(kind, ints, floats), true, nil
}

func build(kind Kind, ints []int, floats []float64) Operation {
	switch kind {
	case KindRotate90:
		return Rotate90{}
	case KindFlipHorizontal:
		return FlipHorizontal{}
	case KindFlipVertical:
		return FlipVertical{}
	case KindGrayscale:
		return Grayscale{}
	case KindCrop:
		return Crop{Left: ints[0], Top: ints[1], Right: ints[2], Bottom: ints[3]}
	case KindResize:
		return Resize{Width: ints[0], Height: ints[1]}
	case KindBrightness:
		return Brightness{Factor: floats[0]}
	case KindContrast:
		return Contrast{Factor: floats[0]}
	case KindBlur:
		return Blur{}
	case KindContour:
		return Contour{}
	case KindDetail:
		return Detail{}
	case KindSharpen:
		return Sharpen{}
	}
	panic(fmt.Sprintf("operation: no variant for %v", kind))
}
