package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if c := s.GetCell(5, 5); c.Color != ColorRed {
		t.Errorf("GetCell(5, 5).Color = %v, expected red", c.Color)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			s.Set(x, y, 'X', ColorWhite)
		}
	}

	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("screen not blank after Clear: %q", s.String())
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []string
	}{
		{
			name: "horizontal",
			x0:   0, y0: 1, x1: 3, y1: 1,
			want: []string{"    ", "####", "    ", "    "},
		},
		{
			name: "vertical reversed",
			x0:   2, y0: 3, x1: 2, y1: 0,
			want: []string{"  # ", "  # ", "  # ", "  # "},
		},
		{
			name: "diagonal",
			x0:   0, y0: 0, x1: 3, y1: 3,
			want: []string{"#   ", " #  ", "  # ", "   #"},
		},
		{
			name: "clipped",
			x0:   -2, y0: 0, x1: 1, y1: 0,
			want: []string{"##  ", "    ", "    ", "    "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(4, 4)
			s.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, '#', ColorWhite)
			for y, row := range tt.want {
				if got := s.Row(y); got != row {
					t.Errorf("row %d = %q, want %q", y, got, row)
				}
			}
		})
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A', ColorDefault)
	s.Set(2, 1, 'B', ColorDefault)

	if got, want := s.String(), "A  \n  B"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X', ColorDefault)
	s.Set(9, 9, 'Y', ColorDefault)

	s.Resize(6, 6)
	if s.Width() != 6 || s.Height() != 6 {
		t.Fatalf("size after Resize = %dx%d, want 6x6", s.Width(), s.Height())
	}
	if s.Get(5, 5) != 'X' {
		t.Error("content inside the new bounds should be preserved")
	}

	s.Resize(12, 12)
	if s.Get(9, 9) != ' ' {
		t.Error("content dropped by a shrink should not come back")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(1, 0, 'Z', ColorDefault)

	if got := s.Row(0); got != " Z " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(5); got != "   " {
		t.Errorf("out of range Row = %q, want blanks", got)
	}
}

func TestRasterProject(t *testing.T) {
	r := NewRaster(NewScreen(10, 10), NewBounds(100, 100))

	tests := []struct {
		p    Vector
		x, y int
	}{
		{Vec(0, 0), 5, 5},
		{Vec(-50, 50), 0, 0},
		{Vec(49, -49), 9, 9},
		{Vec(-50, -49), 0, 9},
	}
	for _, tt := range tests {
		x, y := r.Project(tt.p)
		if x != tt.x || y != tt.y {
			t.Errorf("Project(%v) = (%d, %d), want (%d, %d)", tt.p, x, y, tt.x, tt.y)
		}
	}
}

func TestRasterPolyline(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRaster(s, NewBounds(100, 100))

	r.Polyline([]Vector{Vec(-50, 45), Vec(45, 45)}, Stroke{Color: ColorGreen})
	if got, want := s.Row(0), strings.Repeat(string(LineGlyph), 10); got != want {
		t.Errorf("Row(0) = %q, want %q", got, want)
	}
	if s.GetCell(3, 0).Color != ColorGreen {
		t.Error("stroke colour not applied")
	}

	s.Clear()
	r.Polyline([]Vector{Vec(0, 0)}, Stroke{})
	if s.Get(5, 5) != LineGlyph {
		t.Error("a single point should plot one cell")
	}

	s.Clear()
	r.Polyline(nil, Stroke{})
	if strings.TrimSpace(s.String()) != "" {
		t.Error("empty polyline drew something")
	}
}
