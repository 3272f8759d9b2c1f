package lattice

// Domain is an inclusive axis-aligned hyper-rectangle [Lo, Hi] of lattice
// points. It is the bounding box inside which digital computations run.
type Domain struct {
	Lo, Hi Point
}

// NewDomain validates and returns the domain [lo, hi].
// Returns ErrDimensionTooSmall for dimensions < 2, ErrDimensionMismatch when
// the corners differ in dimension, and ErrBadDomain when lo[i] > hi[i].
func NewDomain(lo, hi Point) (Domain, error) {
	if lo.Dim() < 2 {
		return Domain{}, ErrDimensionTooSmall
	}
	if lo.Dim() != hi.Dim() {
		return Domain{}, ErrDimensionMismatch
	}
	for i := range lo {
		if lo[i] > hi[i] {
			return Domain{}, ErrBadDomain
		}
	}
	return Domain{Lo: lo.Clone(), Hi: hi.Clone()}, nil
}

// Dim returns the dimension of the domain.
func (d Domain) Dim() int { return d.Lo.Dim() }

// Contains reports whether p lies inside the domain.
// Complexity: O(d).
func (d Domain) Contains(p Point) bool {
	if p.Dim() != d.Dim() {
		return false
	}
	for i, c := range p {
		if c < d.Lo[i] || c > d.Hi[i] {
			return false
		}
	}
	return true
}

// Extend grows the domain by r in every direction along every axis.
func (d Domain) Extend(r int64) Domain {
	lo := d.Lo.Clone()
	hi := d.Hi.Clone()
	for i := range lo {
		lo[i] -= r
		hi[i] += r
	}
	return Domain{Lo: lo, Hi: hi}
}

// Clip intersects the domain with other. Both must share one dimension;
// the result may be empty (Lo[i] > Hi[i]), which Contains handles naturally.
func (d Domain) Clip(other Domain) Domain {
	lo := d.Lo.Clone()
	hi := d.Hi.Clone()
	for i := range lo {
		if other.Lo[i] > lo[i] {
			lo[i] = other.Lo[i]
		}
		if other.Hi[i] < hi[i] {
			hi[i] = other.Hi[i]
		}
	}
	return Domain{Lo: lo, Hi: hi}
}

// ForEach visits every lattice point of the domain in row-major order
// (last coordinate varies fastest). The visited point is reused between
// calls; clone it if it must be retained.
// Complexity: O(volume·d).
func (d Domain) ForEach(visit func(p Point)) {
	dim := d.Dim()
	for i := 0; i < dim; i++ {
		if d.Lo[i] > d.Hi[i] {
			return
		}
	}
	p := d.Lo.Clone()
	for {
		visit(p)
		i := dim - 1
		for ; i >= 0; i-- {
			p[i]++
			if p[i] <= d.Hi[i] {
				break
			}
			p[i] = d.Lo[i]
		}
		if i < 0 {
			return
		}
	}
}
