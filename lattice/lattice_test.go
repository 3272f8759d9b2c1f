// File: lattice/lattice_test.go
package lattice

import (
	"reflect"
	"testing"
)

// TestPointArithmetic checks Add/Sub/Dot/Equal round-trips on small vectors.
func TestPointArithmetic(t *testing.T) {
	p := Point{1, 2, 3}
	q := Point{4, 0, -1}

	v := q.Sub(p)
	if !reflect.DeepEqual(v, Vector{3, -2, -4}) {
		t.Fatalf("Sub = %v; want [3 -2 -4]", v)
	}
	if !p.Add(v).Equal(q) {
		t.Errorf("p + (q-p) != q")
	}
	if got := p.Dot(q); got != 1 {
		t.Errorf("Dot = %d; want 1", got)
	}
	if p.Equal(Point{1, 2}) {
		t.Errorf("points of different dimensions compared equal")
	}
}

// TestClone_Independent verifies Clone yields an independent copy.
func TestClone_Independent(t *testing.T) {
	p := Point{5, 6}
	q := p.Clone()
	q[0] = 99
	if p[0] != 5 {
		t.Errorf("Clone aliases the original")
	}
}

// TestDedup preserves first-occurrence order and removes repeats.
func TestDedup(t *testing.T) {
	in := []Point{{0, 0}, {1, 1}, {0, 0}, {2, 0}, {1, 1}}
	out := Dedup(in)
	want := []Point{{0, 0}, {1, 1}, {2, 0}}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("Dedup = %v; want %v", out, want)
	}
}

// TestBounds computes the tight bounding box and rejects bad ranges.
func TestBounds(t *testing.T) {
	d, err := Bounds([]Point{{1, 5}, {-2, 3}, {4, 4}})
	if err != nil {
		t.Fatalf("Bounds failed: %v", err)
	}
	if !d.Lo.Equal(Point{-2, 3}) || !d.Hi.Equal(Point{4, 5}) {
		t.Errorf("Bounds = [%v, %v]; want [-2 3], [4 5]", d.Lo, d.Hi)
	}

	if _, err = Bounds(nil); err != ErrEmptyRange {
		t.Errorf("empty range: got %v; want ErrEmptyRange", err)
	}
	if _, err = Bounds([]Point{{0, 0}, {0, 0, 0}}); err != ErrDimensionMismatch {
		t.Errorf("mixed dims: got %v; want ErrDimensionMismatch", err)
	}
}

// TestNewDomain_Validation covers every constructor error path.
func TestNewDomain_Validation(t *testing.T) {
	if _, err := NewDomain(Point{0}, Point{1}); err != ErrDimensionTooSmall {
		t.Errorf("1D: got %v; want ErrDimensionTooSmall", err)
	}
	if _, err := NewDomain(Point{0, 0}, Point{1, 1, 1}); err != ErrDimensionMismatch {
		t.Errorf("mixed corners: got %v; want ErrDimensionMismatch", err)
	}
	if _, err := NewDomain(Point{0, 2}, Point{1, 1}); err != ErrBadDomain {
		t.Errorf("inverted: got %v; want ErrBadDomain", err)
	}
}

// TestDomain_ContainsAndForEach iterates a 2×3 box and checks membership.
func TestDomain_ContainsAndForEach(t *testing.T) {
	d, err := NewDomain(Point{0, 0}, Point{1, 2})
	if err != nil {
		t.Fatalf("NewDomain failed: %v", err)
	}

	var visited []Point
	d.ForEach(func(p Point) { visited = append(visited, p.Clone()) })
	if len(visited) != 6 {
		t.Fatalf("visited %d points; want 6", len(visited))
	}
	// Row-major: last coordinate varies fastest.
	if !visited[0].Equal(Point{0, 0}) || !visited[1].Equal(Point{0, 1}) {
		t.Errorf("iteration order wrong: %v", visited[:2])
	}
	for _, p := range visited {
		if !d.Contains(p) {
			t.Errorf("visited point %v outside domain", p)
		}
	}
	if d.Contains(Point{2, 0}) || d.Contains(Point{0, 0, 0}) {
		t.Errorf("Contains accepted a point outside the domain")
	}
}

// TestDomain_ExtendClip checks window clipping against a bounding domain.
func TestDomain_ExtendClip(t *testing.T) {
	d, _ := NewDomain(Point{0, 0}, Point{4, 4})
	w := Domain{Lo: Point{3, 3}, Hi: Point{6, 6}}.Clip(d)
	if !w.Lo.Equal(Point{3, 3}) || !w.Hi.Equal(Point{4, 4}) {
		t.Errorf("Clip = [%v, %v]; want [3 3], [4 4]", w.Lo, w.Hi)
	}

	e := d.Extend(1)
	if !e.Lo.Equal(Point{-1, -1}) || !e.Hi.Equal(Point{5, 5}) {
		t.Errorf("Extend = [%v, %v]; want [-1 -1], [5 5]", e.Lo, e.Hi)
	}

	// Empty intersection iterates zero points.
	empty := Domain{Lo: Point{5, 5}, Hi: Point{6, 6}}.Clip(d)
	n := 0
	empty.ForEach(func(Point) { n++ })
	if n != 0 {
		t.Errorf("empty clip visited %d points; want 0", n)
	}
}
