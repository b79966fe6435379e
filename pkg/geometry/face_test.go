package geometry

import (
	"math"
	"testing"
)

type points map[int]Vector3

func (p points) Point(id int) Vector3 {
	return p[id]
}

func unitTriangle() points {
	return points{
		0: NewVector3(0, 0, 0),
		1: NewVector3(1, 0, 0),
		2: NewVector3(0, 1, 0),
	}
}

func TestFaceNormal(t *testing.T) {
	src := unitTriangle()

	normal := NewFace(0, 1, 2).Normal(src)
	expected := NewVector3(0, 0, 1)
	if normal != expected {
		t.Errorf("Normal failed: expected %v, got %v", expected, normal)
	}

	// Reversed winding flips the sign
	normal = NewFace(0, 2, 1).Normal(src)
	expected = NewVector3(0, 0, -1)
	if normal != expected {
		t.Errorf("Normal (reversed) failed: expected %v, got %v", expected, normal)
	}
}

func TestFaceNormalDegenerate(t *testing.T) {
	src := points{
		0: NewVector3(0, 0, 0),
		1: NewVector3(1, 0, 0),
		2: NewVector3(2, 0, 0),
	}

	if normal := NewFace(0, 1, 2).Normal(src); normal != Up {
		t.Errorf("Degenerate normal failed: expected %v, got %v", Up, normal)
	}
}

func TestFaceAngleToVertical(t *testing.T) {
	src := points{
		0: NewVector3(0, 0, 0),
		1: NewVector3(1, 0, 0),
		2: NewVector3(0, 1, 0),
		3: NewVector3(0, 0, 1),
		4: NewVector3(0, 1, 1),
	}

	tests := []struct {
		name     string
		face     Face
		expected float64
	}{
		{"horizontal", NewFace(0, 1, 2), 0},
		{"horizontal reversed", NewFace(0, 2, 1), 0},
		{"vertical", NewFace(0, 1, 3), 90},
		{"sloped 45", NewFace(0, 1, 4), 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.face.AngleToVertical(src)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("AngleToVertical = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFaceZRangeAndHeight(t *testing.T) {
	src := points{
		0: NewVector3(0, 0, 2),
		1: NewVector3(1, 0, 5),
		2: NewVector3(0, 1, 3),
	}
	face := NewFace(0, 1, 2)

	minZ, maxZ := face.ZRange(src)
	if minZ != 2 || maxZ != 5 {
		t.Errorf("ZRange failed: expected (2, 5), got (%v, %v)", minZ, maxZ)
	}
	if h := face.Height(src); h != 3 {
		t.Errorf("Height failed: expected 3, got %v", h)
	}
}

func TestFaceProjectedArea(t *testing.T) {
	src := unitTriangle()

	area := NewFace(0, 1, 2).ProjectedArea(src)
	if math.Abs(area-0.5) > 1e-10 {
		t.Errorf("ProjectedArea failed: expected 0.5, got %v", area)
	}

	// Winding does not change the magnitude
	area = NewFace(0, 2, 1).ProjectedArea(src)
	if math.Abs(area-0.5) > 1e-10 {
		t.Errorf("ProjectedArea (reversed) failed: expected 0.5, got %v", area)
	}
}

func TestFaceProjectedAreaSloped(t *testing.T) {
	// 3x4 rectangle tilted up to z=4 along y; its footprint is 3x4 = 12
	src := points{
		0: NewVector3(0, 0, 0),
		1: NewVector3(3, 0, 0),
		2: NewVector3(3, 4, 4),
		3: NewVector3(0, 4, 4),
	}
	face := NewFace(0, 1, 2, 3)

	if area := face.ProjectedArea(src); math.Abs(area-12) > 1e-10 {
		t.Errorf("ProjectedArea failed: expected 12, got %v", area)
	}
	expected3D := 3 * math.Sqrt(32)
	if area := face.Area(src); math.Abs(area-expected3D) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected3D, area)
	}
}

func TestFaceProjectedAreaVertical(t *testing.T) {
	src := points{
		0: NewVector3(0, 0, 0),
		1: NewVector3(1, 0, 0),
		2: NewVector3(1, 0, 1),
	}
	if area := NewFace(0, 1, 2).ProjectedArea(src); area != 0 {
		t.Errorf("ProjectedArea of vertical face: expected 0, got %v", area)
	}
}

func TestFaceIsAdjacentTo(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Face
		adjacent bool
	}{
		{"shared edge", NewFace(0, 1, 2), NewFace(0, 2, 3), true},
		{"shared vertex only", NewFace(0, 1, 2), NewFace(2, 3, 4), false},
		{"disjoint", NewFace(0, 1, 2), NewFace(4, 5, 6), false},
		{"identical", NewFace(0, 1, 2), NewFace(2, 1, 0), true},
		{"repeated id shares one vertex", NewFace(0, 0, 1), NewFace(0, 2, 3), false},
		{"repeated id shares an edge", NewFace(0, 0, 1), NewFace(1, 0, 3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsAdjacentTo(tt.b); got != tt.adjacent {
				t.Errorf("a.IsAdjacentTo(b) = %v, want %v", got, tt.adjacent)
			}
			if got := tt.b.IsAdjacentTo(tt.a); got != tt.adjacent {
				t.Errorf("b.IsAdjacentTo(a) = %v, want %v", got, tt.adjacent)
			}
		})
	}
}

func TestFaceEdges(t *testing.T) {
	edges := NewFace(4, 5, 6).Edges()
	expected := [][2]int{{4, 5}, {5, 6}, {6, 4}}

	if len(edges) != len(expected) {
		t.Fatalf("Edges failed: expected %d edges, got %d", len(expected), len(edges))
	}
	for i := range expected {
		if edges[i] != expected[i] {
			t.Errorf("Edge %d failed: expected %v, got %v", i, expected[i], edges[i])
		}
	}
}

func TestSurfaceTypeText(t *testing.T) {
	for _, s := range []SurfaceType{Unknown, Ground, Wall, Roof} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", s, err)
		}

		var parsed SurfaceType
		if err := parsed.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s) failed: %v", text, err)
		}
		if parsed != s {
			t.Errorf("round trip failed: expected %v, got %v", s, parsed)
		}
	}

	if _, err := ParseSurfaceType("chimney"); err == nil {
		t.Error("expected error for unknown surface type")
	}
	if s, _ := ParseSurfaceType("roof"); s != Roof {
		t.Errorf("ParseSurfaceType is case sensitive: got %v", s)
	}
}

func TestBoundingBox(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Error("new bounding box should be empty")
	}

	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 6, 3))

	if size := bbox.Size(); size != NewVector3(10, 6, 3) {
		t.Errorf("Size failed: got %v", size)
	}
	if center := bbox.Center(); center != NewVector3(5, 3, 1.5) {
		t.Errorf("Center failed: got %v", center)
	}
	if vol := bbox.Volume(); vol != 180 {
		t.Errorf("Volume failed: expected 180, got %v", vol)
	}
	if h := bbox.Height(); h != 3 {
		t.Errorf("Height failed: expected 3, got %v", h)
	}

	empty := NewBoundingBox()
	if empty.Size() != (Vector3{}) || empty.Center() != (Vector3{}) || !empty.IsEmpty() {
		t.Error("empty bounding box should have no size or center")
	}

	if b := NewBoundingBox(NewVector3(1, 1, 1), NewVector3(-1, 2, 0)); b.Size() != NewVector3(2, 1, 1) {
		t.Errorf("NewBoundingBox with points failed: got %v", b.Size())
	}
}
