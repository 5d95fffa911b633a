package core

import (
	"errors"
	"math"
	"testing"
)

func TestNewOutlineRejectsDegenerate(t *testing.T) {
	if _, err := NewOutline(Vec(1, 1)); !errors.Is(err, ErrDegenerateOutline) {
		t.Errorf("one point: err = %v, want ErrDegenerateOutline", err)
	}
	if _, err := NewOutline(); !errors.Is(err, ErrDegenerateOutline) {
		t.Errorf("no points: err = %v, want ErrDegenerateOutline", err)
	}
}

func TestOutlineClose(t *testing.T) {
	open := []Vector{Vec(0, 0), Vec(1, 0), Vec(1, 1)}

	t.Run("extend", func(t *testing.T) {
		o := MustOutline(open...)
		o.Close(true)
		if o.Len() != 4 {
			t.Fatalf("Len = %d, want 4", o.Len())
		}
		if !o.At(3).Equals(o.At(0), tol) || !o.At(2).Equals(Vec(1, 1), tol) {
			t.Errorf("points = %v", o.Points())
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		o := MustOutline(open...)
		o.Close(false)
		if o.Len() != 3 {
			t.Fatalf("Len = %d, want 3", o.Len())
		}
		if !o.At(2).Equals(Vec(0, 0), tol) {
			t.Errorf("last point = %v, want (0, 0)", o.At(2))
		}
	})

	t.Run("already closed", func(t *testing.T) {
		o := MustOutline(Vec(0, 0), Vec(1, 0), Vec(0, 0))
		o.Close(true)
		if o.Len() != 3 {
			t.Errorf("Len = %d, want 3", o.Len())
		}
		if !o.Closed() {
			t.Error("Closed() = false")
		}
	})
}

func TestRegularPolygon(t *testing.T) {
	o, err := RegularPolygon(4, 10)
	if err != nil {
		t.Fatalf("RegularPolygon: %v", err)
	}
	if o.Len() != 5 {
		t.Fatalf("Len = %d, want 5", o.Len())
	}
	if !o.Closed() {
		t.Fatal("polygon is not closed")
	}

	pts := o.Points()
	for i, p := range pts[:4] {
		if math.Abs(p.Len()-10) > tol {
			t.Errorf("point %d at distance %v, want 10", i, p.Len())
		}
	}

	// Adjacent edges of a square are perpendicular and equally long.
	var edges []Vector
	for a, b := range o.Edges() {
		edges = append(edges, b.Sub(a))
	}
	if len(edges) != 4 {
		t.Fatalf("got %d edges, want 4", len(edges))
	}
	for i := range edges {
		next := edges[(i+1)%len(edges)]
		if math.Abs(edges[i].Dot(next)) > 1e-6 {
			t.Errorf("edges %d and %d are not perpendicular", i, i+1)
		}
		if math.Abs(edges[i].Len()-10*math.Sqrt2) > 1e-6 {
			t.Errorf("edge %d has length %v", i, edges[i].Len())
		}
	}
}

func TestRegularPolygonInvalid(t *testing.T) {
	tests := []struct {
		sides  int
		radius float64
	}{
		{2, 10},
		{0, 10},
		{5, 0},
		{5, -1},
		{5, math.NaN()},
	}
	for _, tt := range tests {
		if _, err := RegularPolygon(tt.sides, tt.radius); !errors.Is(err, ErrInvalidPolygon) {
			t.Errorf("RegularPolygon(%d, %v) err = %v, want ErrInvalidPolygon", tt.sides, tt.radius, err)
		}
	}
}

func TestOutlineScaleAndExtent(t *testing.T) {
	o := MustOutline(Vec(0, -2), Vec(1, 1.5), Vec(-1, 1.5))
	o.Close(true)
	o.Scale(10)

	if !o.At(0).Equals(Vec(0, -20), tol) {
		t.Errorf("scaled nose = %v, want (0, -20)", o.At(0))
	}
	if got := o.Extent(); math.Abs(got-20) > tol {
		t.Errorf("Extent = %v, want 20", got)
	}
}

func TestOutlineTransform(t *testing.T) {
	o := MustOutline(Vec(0, -1), Vec(1, 0))
	got := o.Transform(nil, Vec(10, 10), math.Pi/2)

	want := []Vector{Vec(11, 10), Vec(10, 11)}
	for i := range want {
		if !got[i].Equals(want[i], 1e-9) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}
