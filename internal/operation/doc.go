// Package operation defines the closed catalog of edits the editor offers and
// the step that collects their parameters.
//
// Each Kind has exactly one Operation variant carrying its own parameters:
//
//	Rotate90, FlipHorizontal, FlipVertical, Grayscale,
//	Blur, Contour, Detail, Sharpen     no parameters
//	Crop{Left, Top, Right, Bottom}     four integers
//	Resize{Width, Height}              two integers
//	Brightness{Factor}, Contrast{Factor} one float in [0.0, 2.0]
//
// Parameters are gathered through a Prompter before the operation exists, so
// an edit is either fully specified or cancelled. Collect reports cancellation
// with ok == false and never touches an image.
//
// Operations are pure values. Apply needs no user interface.
package operation
