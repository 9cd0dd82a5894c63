// Package geometry contains the rectangle demo types.
// Rectangles are immutable values: every operation uses a value receiver
// and dimensions are unsigned so negatives are excluded by type.
package geometry

import "fmt"

type Rectangle struct {
	Width  uint
	Height uint
}

// Square builds a rectangle whose sides are equal.
func Square(size uint) Rectangle {
	return Rectangle{Width: size, Height: size}
}

func (r Rectangle) Area() uint {
	return r.Width * r.Height
}

// CanHold reports whether other fits strictly inside r.
// Strict on both dimensions, so no rectangle can hold itself.
func (r Rectangle) CanHold(other Rectangle) bool {
	return r.Width > other.Width && r.Height > other.Height
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle { width: %d, height: %d }", r.Width, r.Height)
}

// Area is the free-function form of the same computation, kept for
// call sites that pass the rectangle explicitly.
func Area(r Rectangle) uint {
	return r.Area()
}
