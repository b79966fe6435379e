package geometry

import "math"

// BoundingBox is an axis-aligned box. The zero value is not empty; start
// from NewBoundingBox.
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box that any point will extend
func NewBoundingBox(points ...Vector3) BoundingBox {
	b := BoundingBox{
		Min: Vector3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: Vector3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	b.Extend(points...)
	return b
}

// Extend grows the box to include the points
func (b *BoundingBox) Extend(points ...Vector3) {
	for _, p := range points {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
}

// IsEmpty reports whether no point has been added yet
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Size returns the extent along each axis, zero when empty
func (b BoundingBox) Size() Vector3 {
	if b.IsEmpty() {
		return Vector3{}
	}
	return b.Max.Sub(b.Min)
}

// Height is the vertical extent
func (b BoundingBox) Height() float64 {
	return b.Size().Z
}

func (b BoundingBox) Center() Vector3 {
	if b.IsEmpty() {
		return Vector3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// Volume of the box, not of the mesh inside it
func (b BoundingBox) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}
