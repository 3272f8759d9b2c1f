package lattice

// Dedup returns pts with duplicate points removed, preserving the order of
// first occurrence. The input slice is not modified.
// Complexity: O(n·d) time, O(n·d) memory.
func Dedup(pts []Point) []Point {
	seen := make(map[string]struct{}, len(pts))
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		k := key(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}

// key encodes a point as a map key. Coordinates are written little-endian
// so distinct points never collide.
func key(p Point) string {
	b := make([]byte, 0, 8*len(p))
	for _, c := range p {
		u := uint64(c)
		b = append(b,
			byte(u), byte(u>>8), byte(u>>16), byte(u>>24),
			byte(u>>32), byte(u>>40), byte(u>>48), byte(u>>56))
	}
	return string(b)
}

// Bounds returns the tight inclusive bounding box of pts.
// Returns ErrEmptyRange when pts is empty and ErrDimensionMismatch when the
// points do not share one dimension.
// Complexity: O(n·d).
func Bounds(pts []Point) (Domain, error) {
	if len(pts) == 0 {
		return Domain{}, ErrEmptyRange
	}
	d := pts[0].Dim()
	lo := pts[0].Clone()
	hi := pts[0].Clone()
	for _, p := range pts[1:] {
		if p.Dim() != d {
			return Domain{}, ErrDimensionMismatch
		}
		for i, c := range p {
			if c < lo[i] {
				lo[i] = c
			}
			if c > hi[i] {
				hi[i] = c
			}
		}
	}
	return Domain{Lo: lo, Hi: hi}, nil
}
