package geometry

import "testing"

func TestBoundingBoxExtend(t *testing.T) {
	bbox := BoundsOf([]Vector3{
		NewVector3(1, 2, 3),
		NewVector3(4, 5, 6),
		NewVector3(-1, 0, 2),
	})

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxSize(t *testing.T) {
	bbox := BoundsOf([]Vector3{NewVector3(0, 0, 0), NewVector3(10, 20, 30)})

	size := bbox.Size()
	expected := NewVector3(10, 20, 30)
	if size != expected {
		t.Errorf("Size failed: expected %v, got %v", expected, size)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Fatal("new bounding box should be empty")
	}
	if size := bbox.Size(); size != (Vector3{}) {
		t.Errorf("empty box size: expected zero, got %v", size)
	}
}

func TestBoundingBoxCenter(t *testing.T) {
	bbox := BoundsOf([]Vector3{NewVector3(0, 0, 0), NewVector3(10, 20, 30)})

	center := bbox.Center()
	expected := NewVector3(5, 10, 15)
	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}
