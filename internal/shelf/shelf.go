// Package shelf implements the shelf-packing rectangle allocator used by the
// glyph atlas.
//
// The allocator divides a square area into horizontal "shelves". A shelf's
// height is fixed when it is created; rectangles are bump-allocated left to
// right along it. Space inside a shelf is never reused until Reset.
package shelf

import "math"

// shelf represents a horizontal strip in the atlas.
type shelf struct {
	y       int // Y position of shelf top
	height  int // Height including padding, immutable after creation
	cursorX int // Next free X position
}

// Allocator implements best-fit shelf packing over a size x size area.
//
// Every allocation reserves padding pixels to the right of the rectangle and
// every shelf reserves padding pixels below its tallest possible rectangle,
// so neighbouring glyphs never bleed into each other under bilinear filtering.
//
// Allocator is not safe for concurrent use.
type Allocator struct {
	size    int
	padding int
	shelves []shelf
	nextY   int
}

// New creates an allocator for a square area of the given size.
func New(size, padding int) *Allocator {
	if padding < 0 {
		padding = 0
	}
	return &Allocator{
		size:    size,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// TryAllocate finds space for a width x height rectangle. The returned
// position is the top-left corner of the unpadded rectangle.
//
// The algorithm:
//  1. Reject sizes that cannot fit in the area even when it is empty.
//  2. Among shelves tall enough and with enough remaining width, pick the
//     one wasting the least vertical space.
//  3. Otherwise open a new shelf of exactly the padded height below the
//     last one.
//  4. Otherwise fail.
func (a *Allocator) TryAllocate(width, height int) (x, y int, ok bool) {
	if width < 0 || height < 0 {
		return 0, 0, false
	}
	paddedW := width + a.padding
	paddedH := height + a.padding

	if paddedW > a.size || paddedH > a.size {
		return 0, 0, false
	}

	best := -1
	bestWaste := math.MaxInt
	for i := range a.shelves {
		s := &a.shelves[i]
		if s.height < paddedH || a.size-s.cursorX < paddedW {
			continue
		}
		if waste := s.height - paddedH; waste < bestWaste {
			best, bestWaste = i, waste
		}
	}

	if best >= 0 {
		s := &a.shelves[best]
		x, y = s.cursorX, s.y
		s.cursorX += paddedW
		return x, y, true
	}

	if a.nextY+paddedH > a.size {
		return 0, 0, false
	}

	y = a.nextY
	a.shelves = append(a.shelves, shelf{
		y:       y,
		height:  paddedH,
		cursorX: paddedW,
	})
	a.nextY += paddedH
	return 0, y, true
}

// CanFit reports whether a rectangle of the given size could ever fit in an
// empty allocator of this size.
func (a *Allocator) CanFit(width, height int) bool {
	return width >= 0 && height >= 0 &&
		width+a.padding <= a.size && height+a.padding <= a.size
}

// Reset drops every shelf, making the entire area available again.
func (a *Allocator) Reset() {
	a.shelves = a.shelves[:0] // Keep capacity
	a.nextY = 0
}

// Usage returns the fraction of the area covered by shelf space handed out
// so far, counting padding.
func (a *Allocator) Usage() float32 {
	if len(a.shelves) == 0 || a.size <= 0 {
		return 0
	}
	used := 0
	for _, s := range a.shelves {
		used += s.cursorX * s.height
	}
	return float32(used) / float32(a.size*a.size)
}

// ShelfCount returns the number of shelves currently open.
func (a *Allocator) ShelfCount() int {
	return len(a.shelves)
}

// NextY returns the y position at which the next shelf would be opened.
func (a *Allocator) NextY() int {
	return a.nextY
}

// Size returns the edge length of the allocated area.
func (a *Allocator) Size() int {
	return a.size
}

// Padding returns the padding reserved after each rectangle and shelf.
func (a *Allocator) Padding() int {
	return a.padding
}
