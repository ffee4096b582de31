package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestRenderPreview_Sizing(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		maxW, maxH   int
		wantW, wantH int
		wantScale    float64
	}{
		{"fits already", 400, 300, 800, 600, 400, 300, 1.0},
		{"never upscales", 10, 10, 800, 600, 10, 10, 1.0},
		{"halved", 1600, 1200, 800, 600, 800, 600, 0.5},
		{"width bound", 1600, 400, 800, 600, 800, 200, 0.5},
		{"unbounded", 1000, 900, 0, 0, 1000, 900, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(tt.srcW, tt.srcH, color.RGBA{10, 20, 30, 255})
			result, err := RenderPreview(img, PreviewOptions{MaxWidth: tt.maxW, MaxHeight: tt.maxH})
			if err != nil {
				t.Fatalf("RenderPreview failed: %v", err)
			}
			if result.Width != tt.srcW || result.Height != tt.srcH {
				t.Errorf("source size: got %dx%d, want %dx%d", result.Width, result.Height, tt.srcW, tt.srcH)
			}
			if result.PreviewWidth != tt.wantW || result.PreviewHeight != tt.wantH {
				t.Errorf("preview size: got %dx%d, want %dx%d",
					result.PreviewWidth, result.PreviewHeight, tt.wantW, tt.wantH)
			}
			if result.Scale != tt.wantScale {
				t.Errorf("Scale: got %v, want %v", result.Scale, tt.wantScale)
			}

			decoded := decodePreview(t, result)
			if decoded.Bounds().Dx() != tt.wantW || decoded.Bounds().Dy() != tt.wantH {
				t.Errorf("encoded PNG size: got %dx%d, want %dx%d",
					decoded.Bounds().Dx(), decoded.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderPreview_Metadata(t *testing.T) {
	result, err := RenderPreview(image.NewGray(image.Rect(0, 0, 8, 8)), PreviewOptions{})
	if err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}
	if result.Mode != ModeGray {
		t.Errorf("Mode: got %s, want %s", result.Mode, ModeGray)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if result.GridSpacing != 0 {
		t.Errorf("GridSpacing without grid: got %d, want 0", result.GridSpacing)
	}
}

func TestRenderPreview_InvalidGridSpacing(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{0, 0, 0, 255})

	for _, spacing := range []int{0, -10} {
		_, err := RenderPreview(img, PreviewOptions{Grid: &GridOptions{Spacing: spacing}})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("spacing %d: got %v, want *ValidationError", spacing, err)
			continue
		}
		if verr.Param != "grid_spacing" {
			t.Errorf("spacing %d: Param got %q, want grid_spacing", spacing, verr.Param)
		}
	}
}

func TestRenderPreview_DoesNotModifySource(t *testing.T) {
	img := createInMemoryImage(50, 50, color.RGBA{0, 0, 0, 255})
	orig := Snapshot(img)

	if _, err := RenderPreview(img, PreviewOptions{Grid: &GridOptions{Spacing: 10, ShowCoordinates: true}}); err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}
	if !samePixels(orig, img) {
		t.Error("rendering a grid preview modified the source image")
	}
}
