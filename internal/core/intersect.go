package core

import "math"

// IntersectionKind classifies the outcome of a segment test.
type IntersectionKind int

const (
	NoIntersection IntersectionKind = iota
	PointIntersection
	Overlap // collinear segments sharing a stretch
)

// String returns a human-readable name for the kind.
func (k IntersectionKind) String() string {
	switch k {
	case NoIntersection:
		return "None"
	case PointIntersection:
		return "Point"
	case Overlap:
		return "Overlap"
	default:
		return "Unknown"
	}
}

// Intersection is the result of Intersect. At is only meaningful when Kind is
// not NoIntersection.
type Intersection struct {
	Kind IntersectionKind
	At   Vector
}

// Hit reports whether the segments touch.
func (i Intersection) Hit() bool {
	return i.Kind != NoIntersection
}

// IntersectOptions tunes the segment test.
type IntersectOptions struct {
	// Epsilon is the tolerance for treating a cross product as zero.
	// Zero means DefaultEpsilon.
	Epsilon float64

	// OverlapAsIntersect reports collinear overlapping segments as Overlap
	// instead of NoIntersection.
	OverlapAsIntersect bool
}

func (o IntersectOptions) eps() float64 {
	if o.Epsilon <= 0 {
		return DefaultEpsilon
	}
	return o.Epsilon
}

// Intersect tests segment (v1, v2) against segment (v3, v4) with default options.
func Intersect(v1, v2, v3, v4 Vector) Intersection {
	return IntersectWith(v1, v2, v3, v4, IntersectOptions{})
}

// IntersectWith tests segment (v1, v2) against segment (v3, v4).
//
// With p = v1, r = v2-v1, q = v3, s = v4-v3 the segments meet where
// p + t*r = q + u*s for t, u in [0, 1].
func IntersectWith(v1, v2, v3, v4 Vector, opts IntersectOptions) Intersection {
	eps := opts.eps()

	p, q := v1, v3
	r := v2.Sub(v1)
	s := v4.Sub(v3)
	qp := q.Sub(p)

	rxs := r.Cross(s)
	qpxr := qp.Cross(r)

	if math.Abs(rxs) < eps {
		if math.Abs(qpxr) < eps && opts.OverlapAsIntersect {
			return collinearOverlap(p, r, q, s)
		}
		// Parallel, or collinear with overlap reporting disabled.
		return Intersection{}
	}

	t := qp.Cross(s) / rxs
	u := qpxr / rxs
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Intersection{}
	}
	return Intersection{Kind: PointIntersection, At: p.Add(r.Scale(t))}
}

// collinearOverlap checks whether q lies on p+t*r or p lies on q+u*s.
func collinearOverlap(p, r, q, s Vector) Intersection {
	rr := r.Dot(r)
	if d := q.Sub(p).Dot(r); d >= 0 && d <= rr {
		return Intersection{Kind: Overlap, At: q}
	}
	ss := s.Dot(s)
	if d := p.Sub(q).Dot(s); d >= 0 && d <= ss {
		return Intersection{Kind: Overlap, At: p}
	}
	return Intersection{}
}

// OutlinesIntersect reports whether any edge of polyline a crosses any edge of
// polyline b. Both are expected in the same (world) space.
func OutlinesIntersect(a, b []Vector, opts IntersectOptions) bool {
	for i := 0; i+1 < len(a); i++ {
		for j := 0; j+1 < len(b); j++ {
			if IntersectWith(a[i], a[i+1], b[j], b[j+1], opts).Hit() {
				return true
			}
		}
	}
	return false
}
