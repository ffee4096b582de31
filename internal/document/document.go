// Package document holds the editor's single document: the current image and
// the linear undo history behind it.
//
// Every method is all-or-nothing: when an error is returned neither the
// current image nor the history has changed. A Document is not safe for
// concurrent use; the editor drives it from one request at a time.
package document

import (
	"bytes"
	"image"
	"os"
	"path/filepath"

	"github.com/ironsheep/fotoflex-mcp/internal/imaging"
	"github.com/ironsheep/fotoflex-mcp/internal/operation"
)

// Document is the current image plus its edit history. The zero value is an
// empty document with no image loaded.
type Document struct {
	current    image.Image
	history    History
	sourcePath string

	// JPEGQuality is used when saving to .jpg/.jpeg. Zero means
	// imaging.DefaultJPEGQuality.
	JPEGQuality int
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Open reads and decodes the image at path and makes it the current image
// with a fresh history holding only that image.
//
// It returns an *IOError when the file cannot be read and a *DecodeError when
// its content is not a supported image. On failure the previous image and
// history are kept.
func (d *Document) Open(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}

	img, _, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	// The opened image and the history's original are the same value, so
	// undoing every edit yields exactly what Open returned.
	img = imaging.Snapshot(img)
	d.current = img
	d.history.reset(img)
	d.sourcePath = path
	return img, nil
}

// Apply runs op on the current image. On success the pre-edit image is pushed
// onto the history and the result becomes current.
//
// It returns ErrNoImageLoaded when there is no current image, and the
// operation's error (an *imaging.ValidationError for bad parameters)
// unchanged otherwise.
func (d *Document) Apply(op operation.Operation) (image.Image, error) {
	if d.current == nil {
		return nil, ErrNoImageLoaded
	}

	result, err := op.Apply(d.current)
	if err != nil {
		return nil, err
	}

	d.history.push(imaging.Snapshot(d.current))
	d.current = result
	return result, nil
}

// Undo restores the most recently pushed image and removes it from the
// history. It returns ErrNothingToUndo when only the original remains.
func (d *Document) Undo() (image.Image, error) {
	if d.current == nil {
		return nil, ErrNoImageLoaded
	}
	prev, ok := d.history.pop()
	if !ok {
		return nil, ErrNothingToUndo
	}
	d.current = prev
	return prev, nil
}

// Save encodes the current image to path, choosing the format from the
// extension (see imaging.ResolveSavePath), and returns the path actually
// written.
//
// The image is written to a temporary file next to the destination and
// renamed into place, so a failed save leaves any existing file untouched.
// A new file gets mode 0644; an overwritten file keeps its permissions.
func (d *Document) Save(path string) (string, error) {
	if d.current == nil {
		return "", ErrNoImageLoaded
	}

	path, format := imaging.ResolveSavePath(path)
	quality := d.JPEGQuality
	if quality == 0 {
		quality = imaging.DefaultJPEGQuality
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".fotoflex-save-*")
	if err != nil {
		return "", &IOError{Op: "save", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	mode := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", &IOError{Op: "save", Path: path, Err: err}
	}

	if err := imaging.Encode(tmp, d.current, format, quality); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", &IOError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", &IOError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", &IOError{Op: "save", Path: path, Err: err}
	}
	return path, nil
}

// Current returns the current image, or nil when nothing is loaded. Callers
// must not modify it.
func (d *Document) Current() image.Image {
	return d.current
}

// HasImage reports whether an image is loaded.
func (d *Document) HasImage() bool {
	return d.current != nil
}

// SourcePath returns the path the current image was opened from.
func (d *Document) SourcePath() string {
	return d.sourcePath
}

// Depth returns the number of images in the history.
func (d *Document) Depth() int {
	return d.history.Len()
}

// CanUndo reports whether Undo would succeed.
func (d *Document) CanUndo() bool {
	return d.history.Len() > 1
}

// Info summarises the document state.
type Info struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Mode         string `json:"mode"`
	HasAlpha     bool   `json:"has_alpha"`
	HistoryDepth int    `json:"history_depth"`
	CanUndo      bool   `json:"can_undo"`
	SourcePath   string `json:"source_path"`
}

// Info returns a summary of the current image and history. It returns
// ErrNoImageLoaded when nothing is loaded.
func (d *Document) Info() (*Info, error) {
	if d.current == nil {
		return nil, ErrNoImageLoaded
	}
	b := d.current.Bounds()
	return &Info{
		Width:        b.Dx(),
		Height:       b.Dy(),
		Mode:         imaging.Mode(d.current),
		HasAlpha:     imaging.HasAlpha(d.current),
		HistoryDepth: d.history.Len(),
		CanUndo:      d.CanUndo(),
		SourcePath:   d.sourcePath,
	}, nil
}
