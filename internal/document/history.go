package document

import "image"

// History is the ordered record of prior image states, oldest first.
//
// The first entry is the originally opened image. It is never popped, so a
// non-empty History always keeps at least one entry. History is unbounded.
type History struct {
	states []image.Image
}

// reset discards every entry and starts over from original.
func (h *History) reset(original image.Image) {
	h.states = []image.Image{original}
}

func (h *History) push(img image.Image) {
	h.states = append(h.states, img)
}

// pop removes and returns the newest entry. ok is false when only the
// original remains.
func (h *History) pop() (img image.Image, ok bool) {
	n := len(h.states)
	if n <= 1 {
		return nil, false
	}
	img = h.states[n-1]
	h.states[n-1] = nil
	h.states = h.states[:n-1]
	return img, true
}

// Len returns the number of recorded states.
func (h *History) Len() int {
	return len(h.states)
}
