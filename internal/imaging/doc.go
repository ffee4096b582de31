// Package imaging provides the image-processing primitives behind the editor.
//
// Every function here is stateless and pure: it reads an image.Image and
// returns a new one, never modifying its input. The heavy lifting is delegated
// to github.com/disintegration/imaging and github.com/anthonynsimon/bild.
//
// # Coordinate System
//
// All pixel coordinates are 0-based and relative to the top-left corner of
// the image, whatever its Bounds().Min:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (left,top) is inclusive and (right,bottom) is exclusive
//
// # Color Mode
//
// An image is in gray mode when it is an *image.Gray (or *image.Gray16), and
// in color mode otherwise. Grayscale always produces gray mode; every other
// operation returns an image in the same mode as its input.
//
// # Operations
//
//   - Geometric: Rotate90 (counter-clockwise), FlipHorizontal, FlipVertical,
//     Crop, Resize
//   - Mode: Grayscale
//   - Enhancers: Brightness, Contrast (factor 0.0-2.0, 1.0 is identity)
//   - Filters: Blur, Contour, Detail, Sharpen (fixed kernels)
//
// # Error Handling
//
// Operations validate their parameters before touching any pixel and report
// violations as *ValidationError. Valid parameters never fail.
//
// # Display and Inspection
//
// RenderPreview produces a base64 PNG fitted to a viewport, optionally with
// a coordinate grid. SampleColor and SampleColorsMulti read pixel values.
// Decode, ResolveSavePath and Encode cover file formats.
package imaging
