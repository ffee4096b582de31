package document

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/fotoflex-mcp/internal/imaging"
	"github.com/ironsheep/fotoflex-mcp/internal/operation"
)

// createTestPNG writes a width x height gradient PNG into dir and returns its
// path.
func createTestPNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 255 / width), uint8(y * 255 / height), 100, 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func openTestDocument(t *testing.T, width, height int) (*Document, string) {
	t.Helper()
	path := createTestPNG(t, t.TempDir(), "test.png", width, height)
	doc := New()
	if _, err := doc.Open(path); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return doc, path
}

func samePixels(a, b image.Image) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return false
	}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ca := color.NRGBAModel.Convert(a.At(ab.Min.X+x, ab.Min.Y+y))
			cb := color.NRGBAModel.Convert(b.At(bb.Min.X+x, bb.Min.Y+y))
			if ca != cb {
				return false
			}
		}
	}
	return true
}

func TestNew_Empty(t *testing.T) {
	doc := New()

	if doc.HasImage() || doc.Current() != nil {
		t.Error("new document should have no image")
	}
	if doc.Depth() != 0 || doc.CanUndo() {
		t.Errorf("new document: Depth=%d CanUndo=%v, want 0 false", doc.Depth(), doc.CanUndo())
	}
}

func TestOpen(t *testing.T) {
	doc, path := openTestDocument(t, 60, 40)

	if !doc.HasImage() {
		t.Fatal("HasImage false after Open")
	}
	if doc.Depth() != 1 || doc.CanUndo() {
		t.Errorf("after Open: Depth=%d CanUndo=%v, want 1 false", doc.Depth(), doc.CanUndo())
	}
	if doc.SourcePath() != path {
		t.Errorf("SourcePath: got %q, want %q", doc.SourcePath(), path)
	}

	info, err := doc.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.Width != 60 || info.Height != 40 || info.Mode != imaging.ModeColor {
		t.Errorf("Info: got %+v", info)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	doc := New()

	_, err := doc.Open(filepath.Join(t.TempDir(), "missing.png"))

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error: got %T %v, want *IOError", err, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("IOError should wrap os.ErrNotExist, got %v", ioErr.Err)
	}
	if doc.HasImage() {
		t.Error("failed Open loaded an image")
	}
}

func TestOpen_Directory(t *testing.T) {
	doc := New()

	_, err := doc.Open(t.TempDir())

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("error: got %T %v, want *IOError", err, err)
	}
}

func TestOpen_NotAnImageKeepsState(t *testing.T) {
	doc, path := openTestDocument(t, 20, 20)
	if _, err := doc.Apply(operation.Rotate90{}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	before := doc.Current()

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(garbage, []byte("this is not a png"), 0644); err != nil {
		t.Fatalf("failed to write garbage file: %v", err)
	}

	_, err := doc.Open(garbage)

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error: got %T %v, want *DecodeError", err, err)
	}
	if doc.Current() != before || doc.Depth() != 2 || doc.SourcePath() != path {
		t.Error("failed Open changed the document")
	}
}

func TestOpen_ResetsHistory(t *testing.T) {
	doc, _ := openTestDocument(t, 20, 20)
	for i := 0; i < 3; i++ {
		if _, err := doc.Apply(operation.FlipHorizontal{}); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
	}

	other := createTestPNG(t, t.TempDir(), "other.png", 10, 5)
	if _, err := doc.Open(other); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if doc.Depth() != 1 || doc.CanUndo() {
		t.Errorf("after reopen: Depth=%d CanUndo=%v, want 1 false", doc.Depth(), doc.CanUndo())
	}
	if _, err := doc.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo after reopen: got %v, want ErrNothingToUndo", err)
	}
}

func TestApply_PushesHistory(t *testing.T) {
	doc, _ := openTestDocument(t, 30, 20)
	before := doc.Current()

	result, err := doc.Apply(operation.Rotate90{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if doc.Current() != result {
		t.Error("Apply result is not the current image")
	}
	if result.Bounds().Dx() != 20 || result.Bounds().Dy() != 30 {
		t.Errorf("rotated size: got %v", result.Bounds())
	}
	if doc.Depth() != 2 || !doc.CanUndo() {
		t.Errorf("after Apply: Depth=%d CanUndo=%v, want 2 true", doc.Depth(), doc.CanUndo())
	}
	if !samePixels(before, doc.history.states[1]) {
		t.Error("history top is not the pre-edit image")
	}
}

func TestApply_InvalidParamsLeaveDocumentUnchanged(t *testing.T) {
	doc, _ := openTestDocument(t, 100, 100)
	before := doc.Current()

	_, err := doc.Apply(operation.Crop{Left: 10, Top: 10, Right: 5, Bottom: 5})

	var verr *imaging.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error: got %v, want *imaging.ValidationError", err)
	}
	if doc.Current() != before {
		t.Error("failed Apply replaced the current image")
	}
	if doc.Depth() != 1 {
		t.Errorf("failed Apply changed history depth to %d", doc.Depth())
	}
}

func TestApplyThenUndo_RestoresOriginal(t *testing.T) {
	doc, _ := openTestDocument(t, 40, 30)
	original := imaging.Snapshot(doc.Current())

	ops := []operation.Operation{
		operation.Rotate90{},
		operation.Crop{Left: 2, Top: 3, Right: 20, Bottom: 25},
		operation.Brightness{Factor: 1.7},
		operation.Grayscale{},
		operation.Resize{Width: 200, Height: 100},
		operation.Sharpen{},
	}
	var states []image.Image
	for _, op := range ops {
		states = append(states, imaging.Snapshot(doc.Current()))
		if _, err := doc.Apply(op); err != nil {
			t.Fatalf("Apply(%v) failed: %v", op.Kind(), err)
		}
	}
	if doc.Depth() != len(ops)+1 {
		t.Fatalf("Depth after %d applies: got %d", len(ops), doc.Depth())
	}

	for i := len(ops) - 1; i >= 0; i-- {
		img, err := doc.Undo()
		if err != nil {
			t.Fatalf("Undo %d failed: %v", i, err)
		}
		if !samePixels(states[i], img) {
			t.Errorf("Undo did not restore the image before %v", ops[i].Kind())
		}
	}

	if !samePixels(original, doc.Current()) {
		t.Error("undoing every edit did not restore the original")
	}
	if _, err := doc.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("extra Undo: got %v, want ErrNothingToUndo", err)
	}
	if !samePixels(original, doc.Current()) || doc.Depth() != 1 {
		t.Error("failed Undo changed the document")
	}
}

func TestNoImageLoaded(t *testing.T) {
	doc := New()

	if _, err := doc.Apply(operation.Blur{}); !errors.Is(err, ErrNoImageLoaded) {
		t.Errorf("Apply: got %v, want ErrNoImageLoaded", err)
	}
	if _, err := doc.Undo(); !errors.Is(err, ErrNoImageLoaded) {
		t.Errorf("Undo: got %v, want ErrNoImageLoaded", err)
	}
	if _, err := doc.Save(filepath.Join(t.TempDir(), "out.png")); !errors.Is(err, ErrNoImageLoaded) {
		t.Errorf("Save: got %v, want ErrNoImageLoaded", err)
	}
	if _, err := doc.Info(); !errors.Is(err, ErrNoImageLoaded) {
		t.Errorf("Info: got %v, want ErrNoImageLoaded", err)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	doc, _ := openTestDocument(t, 50, 30)
	if _, err := doc.Apply(operation.FlipVertical{}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "saved.png")
	written, err := doc.Save(out)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if written != out {
		t.Errorf("written path: got %q, want %q", written, out)
	}

	reopened := New()
	img, err := reopened.Open(written)
	if err != nil {
		t.Fatalf("reopening saved file failed: %v", err)
	}
	if !samePixels(doc.Current(), img) {
		t.Error("saved PNG pixels differ from the current image")
	}
	// Saving does not touch the history.
	if doc.Depth() != 2 {
		t.Errorf("Depth after Save: got %d, want 2", doc.Depth())
	}
}

func TestSave_Formats(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		wantFile   string
		wantFormat string
	}{
		{"no extension", "out", "out.png", "png"},
		{"jpeg", "out.jpg", "out.jpg", "jpeg"},
		{"bmp", "out.bmp", "out.bmp", "bmp"},
		{"unknown extension", "out.xyz", "out.xyz", "png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := openTestDocument(t, 16, 16)
			dir := t.TempDir()

			written, err := doc.Save(filepath.Join(dir, tt.file))
			if err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if written != filepath.Join(dir, tt.wantFile) {
				t.Errorf("written path: got %q, want %q", written, filepath.Join(dir, tt.wantFile))
			}

			f, err := os.Open(written)
			if err != nil {
				t.Fatalf("saved file missing: %v", err)
			}
			defer f.Close()
			_, format, err := image.DecodeConfig(f)
			if err != nil {
				t.Fatalf("saved file not decodable: %v", err)
			}
			if format != tt.wantFormat {
				t.Errorf("format: got %q, want %q", format, tt.wantFormat)
			}
		})
	}
}

func TestSave_BadDirectory(t *testing.T) {
	doc, _ := openTestDocument(t, 10, 10)

	_, err := doc.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "out.png"))

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("error: got %T %v, want *IOError", err, err)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	doc, _ := openTestDocument(t, 10, 10)
	dir := t.TempDir()

	if _, err := doc.Save(filepath.Join(dir, "out.png")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.png" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents: got %v, want [out.png]", names)
	}
}

func TestInfo_GrayAfterGrayscale(t *testing.T) {
	doc, _ := openTestDocument(t, 10, 10)
	if _, err := doc.Apply(operation.Grayscale{}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	info, err := doc.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.Mode != imaging.ModeGray || info.HasAlpha {
		t.Errorf("Info after grayscale: Mode=%s HasAlpha=%v, want gray false", info.Mode, info.HasAlpha)
	}
	if info.HistoryDepth != 2 || !info.CanUndo {
		t.Errorf("Info history: depth=%d canUndo=%v, want 2 true", info.HistoryDepth, info.CanUndo)
	}
}

func TestSave_FileMode(t *testing.T) {
	doc, _ := openTestDocument(t, 8, 8)
	dir := t.TempDir()

	fresh := filepath.Join(dir, "fresh.png")
	if _, err := doc.Save(fresh); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	fi, err := os.Stat(fresh)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if fi.Mode().Perm() != 0644 {
		t.Errorf("new file mode: got %v, want 0644", fi.Mode().Perm())
	}

	existing := filepath.Join(dir, "existing.png")
	if err := os.WriteFile(existing, []byte("old"), 0600); err != nil {
		t.Fatalf("failed to create existing file: %v", err)
	}
	if err := os.Chmod(existing, 0640); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	if _, err := doc.Save(existing); err != nil {
		t.Fatalf("Save over existing file failed: %v", err)
	}
	fi, err = os.Stat(existing)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if fi.Mode().Perm() != 0640 {
		t.Errorf("overwritten file mode: got %v, want 0640", fi.Mode().Perm())
	}
}

func TestOpen_Gray16SurvivesUndo(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 12, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 12; x++ {
			src.SetGray16(x, y, color.Gray16{Y: uint16(x * 5000)})
		}
	}
	path := filepath.Join(t.TempDir(), "deep.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		f.Close()
		t.Fatalf("failed to encode test image: %v", err)
	}
	f.Close()

	doc := New()
	opened, err := doc.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, ok := opened.(*image.Gray16); !ok {
		t.Fatalf("opened image: got %T, want *image.Gray16", opened)
	}
	if imaging.Mode(opened) != imaging.ModeGray {
		t.Errorf("Mode after open: got %s, want gray", imaging.Mode(opened))
	}

	if _, err := doc.Apply(operation.FlipHorizontal{}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	restored, err := doc.Undo()
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}

	if _, ok := restored.(*image.Gray16); !ok {
		t.Errorf("image after undo: got %T, want *image.Gray16", restored)
	}
	if imaging.Mode(restored) != imaging.ModeGray {
		t.Errorf("Mode after undo: got %s, want gray", imaging.Mode(restored))
	}
	if !samePixels(opened, restored) {
		t.Error("undo did not restore the opened pixels")
	}
}
