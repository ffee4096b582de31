package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DefaultExtension is appended to save paths that carry no extension.
const DefaultExtension = ".png"

// DefaultJPEGQuality matches the quality most editors use when none is given.
const DefaultJPEGQuality = 75

// Decode reads a complete image from r.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP. The returned
// format name is the one reported by the registered decoder ("png", "jpeg",
// ...). For animated GIFs only the first frame is decoded.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return img, format, nil
}

// ResolveSavePath returns the path an image should be written to and the
// encoding implied by its extension.
//
// A path without an extension gets DefaultExtension appended. A path whose
// extension names no known encoder keeps its name and is encoded as PNG.
//
// Recognised extensions (case-insensitive): .png, .jpg, .jpeg, .gif, .bmp,
// .tif, .tiff.
func ResolveSavePath(path string) (string, imaging.Format) {
	if filepath.Ext(path) == "" {
		path += DefaultExtension
	}
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return path, imaging.PNG
	}
	return path, format
}

// Encode writes img to w in the given format. quality only applies to JPEG
// output and is clamped by the encoder to 1-100.
func Encode(w io.Writer, img image.Image, format imaging.Format, quality int) error {
	if err := imaging.Encode(w, img, format, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to encode %s image: %w", format, err)
	}
	return nil
}
