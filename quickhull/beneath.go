package quickhull

import (
	"math/big"

	"go.uber.org/zap"
)

// Initial simplex search and the beneath–beyond insertion loop.
//
// Visibility rule: a facet is strictly visible from p when normal·p exceeds
// its offset. The visible region is the strictly visible facets plus every
// facet reachable from them through neighbors whose hyperplane contains p.
// Including those coplanar facets guarantees that no horizon ridge ever
// contains p in its affine hull, so every cone facet built over the horizon
// is well formed; it also keeps coplanar extensions on one geometric facet,
// to be merged in the final pass.

// initialSimplex greedily selects dim+1 affinely independent processing
// points. Returns ErrNotFullDimensional when the input does not span the
// processing dimension.
func (h *Hull) initialSimplex() ([]int, error) {
	d := h.dim
	sel := []int{0}
	var edges [][]*big.Int
	for i := 1; i < len(h.pts) && len(sel) < d+1; i++ {
		cand := bigSub(h.pts[i], h.pts[sel[0]])
		rows := make([][]*big.Int, 0, len(edges)+1)
		for _, e := range edges {
			row := make([]*big.Int, d)
			for j, x := range e {
				row[j] = new(big.Int).Set(x)
			}
			rows = append(rows, row)
		}
		probe := make([]*big.Int, d)
		for j, x := range cand {
			probe[j] = new(big.Int).Set(x)
		}
		rows = append(rows, probe)
		if bigRank(rows) == len(edges)+1 {
			sel = append(sel, i)
			edges = append(edges, cand)
		}
	}
	if len(sel) < d+1 {
		return nil, ErrNotFullDimensional
	}
	return sel, nil
}

// buildSimplexFacets installs the interior reference and the d+1 facets of
// the initial simplex. Facet i omits simplex corner i; neighbor slots are
// aligned so that nbrs[k] lies across the ridge opposite verts[k].
func (h *Hull) buildSimplexFacets(simplex []int) {
	d := h.dim
	h.icSum = make([]*big.Int, d)
	for j := 0; j < d; j++ {
		h.icSum[j] = new(big.Int)
		for _, si := range simplex {
			h.icSum[j].Add(h.icSum[j], big.NewInt(h.pts[si][j]))
		}
	}
	h.icScale = big.NewInt(int64(len(simplex)))

	cornerFacet := make(map[int]int, len(simplex)) // simplex corner -> facet id
	for i := range simplex {
		cornerFacet[simplex[i]] = i
	}
	h.sfacets = make([]*simplexFacet, 0, len(simplex))
	for i := range simplex {
		verts := make([]int, 0, d)
		for j, sj := range simplex {
			if j != i {
				verts = append(verts, sj)
			}
		}
		f := h.makeFacet(verts)
		f.nbrs = make([]int, d)
		for k, v := range verts {
			f.nbrs[k] = cornerFacet[v]
		}
		h.sfacets = append(h.sfacets, f)
	}
}

// makeFacet builds a simplicial facet over d affinely independent
// processing points, orienting its normal away from the interior
// reference. Panics on a degenerate vertex set: the insertion invariants
// make that impossible.
func (h *Hull) makeFacet(verts []int) *simplexFacet {
	normal := hyperplaneNormal(h.pts, verts)
	zero := true
	for _, x := range normal {
		if x.Sign() != 0 {
			zero = false
			break
		}
	}
	if zero {
		panic("quickhull: degenerate facet: vertices are affinely dependent")
	}
	offset := bigDot(normal, h.pts[verts[0]])

	// normal·interior < offset must hold for an outward normal; the
	// interior reference is icSum/icScale, compared without division.
	t := new(big.Int)
	for j, x := range normal {
		t.Add(t, new(big.Int).Mul(x, h.icSum[j]))
	}
	t.Sub(t, new(big.Int).Mul(h.icScale, offset))
	switch t.Sign() {
	case 1:
		for _, x := range normal {
			x.Neg(x)
		}
		offset.Neg(offset)
	case 0:
		panic("quickhull: interior reference lies on a facet hyperplane")
	}
	return &simplexFacet{verts: append([]int(nil), verts...), normal: normal, offset: offset}
}

// insertPoint extends the working hull with processing point pIdx.
// Points inside or on the current hull are absorbed without change.
func (h *Hull) insertPoint(pIdx int) {
	p := h.pts[pIdx]
	visible := make(map[int]bool)
	var queue []int
	for fi, f := range h.sfacets {
		if !f.dead && f.side(p) > 0 {
			visible[fi] = true
			queue = append(queue, fi)
		}
	}
	if len(queue) == 0 {
		return // beneath every facet: inside the hull or on its boundary
	}
	// Grow across coplanar neighbors.
	for len(queue) > 0 {
		fi := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, gi := range h.sfacets[fi].nbrs {
			if !visible[gi] && h.sfacets[gi].side(p) >= 0 {
				visible[gi] = true
				queue = append(queue, gi)
			}
		}
	}

	type horizonRidge struct {
		verts   []int // d-1 ridge vertices, in facet order
		outside int   // invisible facet across the ridge
		outSlot int   // slot of the visible facet in outside.nbrs
	}
	var horizon []horizonRidge
	for fi := range visible {
		f := h.sfacets[fi]
		for k, gi := range f.nbrs {
			if visible[gi] {
				continue
			}
			ridge := make([]int, 0, len(f.verts)-1)
			for j, v := range f.verts {
				if j != k {
					ridge = append(ridge, v)
				}
			}
			g := h.sfacets[gi]
			outSlot := -1
			for s, ni := range g.nbrs {
				if ni == fi {
					outSlot = s
					break
				}
			}
			horizon = append(horizon, horizonRidge{verts: ridge, outside: gi, outSlot: outSlot})
		}
	}

	// Cone from p over the horizon: one new facet per horizon ridge.
	d := h.dim
	type slotRef struct {
		facet int
		slot  int
	}
	pending := make(map[string]slotRef)
	for _, hr := range horizon {
		verts := append(append([]int(nil), hr.verts...), pIdx)
		nf := h.makeFacet(verts)
		nf.nbrs = make([]int, d)
		nfID := len(h.sfacets)
		h.sfacets = append(h.sfacets, nf)

		nf.nbrs[d-1] = hr.outside
		h.sfacets[hr.outside].nbrs[hr.outSlot] = nfID

		// Match new facets pairwise across sub-ridges (ridge minus one
		// vertex, plus p): each key occurs exactly twice in the cone.
		for k := 0; k < d-1; k++ {
			sub := make([]int, 0, d-2)
			for j := 0; j < d-1; j++ {
				if j != k {
					sub = append(sub, hr.verts[j])
				}
			}
			key := intsKey(sub)
			if other, ok := pending[key]; ok {
				nf.nbrs[k] = other.facet
				h.sfacets[other.facet].nbrs[other.slot] = nfID
				delete(pending, key)
			} else {
				pending[key] = slotRef{facet: nfID, slot: k}
			}
		}
	}
	if len(pending) != 0 {
		panic("quickhull: unmatched cone facets around inserted point")
	}
	for fi := range visible {
		h.sfacets[fi].dead = true
	}
	h.log.Debug("point inserted",
		zap.Int("point", pIdx),
		zap.Int("replaced_facets", len(visible)),
		zap.Int("new_facets", len(horizon)))
}
