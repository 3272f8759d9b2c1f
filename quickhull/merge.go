package quickhull

import (
	"math/big"
	"sort"
	"strings"
)

// Final pass: merge coplanar simplicial facets into polygonal hull facets,
// order their boundaries, renumber hull vertices and build the adjacency
// and ridge tables. Merging is what turns cospherical Delaunay inputs into
// valid non-simplicial cells instead of arbitrarily split simplices.

// intsKey encodes a sorted copy of ids as a map key.
func intsKey(ids []int) string {
	s := append([]int(nil), ids...)
	sort.Ints(s)
	b := make([]byte, 0, 8*len(s))
	for _, v := range s {
		u := uint64(v)
		b = append(b,
			byte(u), byte(u>>8), byte(u>>16), byte(u>>24),
			byte(u>>32), byte(u>>40), byte(u>>48), byte(u>>56))
	}
	return string(b)
}

// planeKey canonically encodes the gcd-reduced supporting hyperplane of a
// simplicial facet as '|'-separated decimal coefficients; the separator
// cannot occur inside a coefficient, so distinct planes never collide.
// Coplanar facets of one hull share the outward side, so no sign
// normalization is needed.
func planeKey(f *simplexFacet) (string, []*big.Int, *big.Int) {
	n := make([]*big.Int, len(f.normal))
	for i, x := range f.normal {
		n[i] = new(big.Int).Set(x)
	}
	c := new(big.Int).Set(f.offset)
	reduceCoefficients(n, c)
	var b strings.Builder
	for _, x := range n {
		b.WriteString(x.String())
		b.WriteByte('|')
	}
	b.WriteString(c.String())
	return b.String(), n, c
}

// finalize performs the merge pass and raises the status to
// StatusAllCompleted.
func (h *Hull) finalize() {
	var alive []int
	for fi, f := range h.sfacets {
		if !f.dead {
			alive = append(alive, fi)
		}
	}

	keys := make(map[int]string, len(alive))
	normals := make(map[int][]*big.Int, len(alive))
	offsets := make(map[int]*big.Int, len(alive))
	for _, fi := range alive {
		k, n, c := planeKey(h.sfacets[fi])
		keys[fi], normals[fi], offsets[fi] = k, n, c
	}

	// Union coplanar neighbors.
	parent := make(map[int]int, len(alive))
	for _, fi := range alive {
		parent[fi] = fi
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for _, fi := range alive {
		for _, gi := range h.sfacets[fi].nbrs {
			if keys[fi] == keys[gi] {
				ra, rb := find(fi), find(gi)
				if ra != rb {
					parent[ra] = rb
				}
			}
		}
	}

	groups := make(map[int][]int)
	for _, fi := range alive {
		r := find(fi)
		groups[r] = append(groups[r], fi)
	}

	type protoFacet struct {
		root     int
		verts    []int // processing point indices, ordered
		normal   []*big.Int
		offset   *big.Int
		infinite bool
	}
	protos := make([]*protoFacet, 0, len(groups))
	for root, members := range groups {
		boundary := h.boundaryRidges(members, find)
		pf := &protoFacet{
			root:   root,
			verts:  h.orderFacetBoundary(boundary, normals[root]),
			normal: normals[root],
			offset: offsets[root],
		}
		if h.kernel.delaunay() {
			pf.infinite = pf.normal[h.dim-1].Sign() >= 0
		}
		protos = append(protos, pf)
	}

	// Deterministic facet order: lexicographic over sorted vertex lists.
	sorted := make([][]int, len(protos))
	for i, pf := range protos {
		s := append([]int(nil), pf.verts...)
		sort.Ints(s)
		sorted[i] = s
	}
	order := make([]int, len(protos))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return lessInts(sorted[order[a]], sorted[order[b]]) })

	rootFacet := make(map[int]int, len(protos))
	for newID, oi := range order {
		rootFacet[protos[oi].root] = newID
	}

	// Renumber hull vertices ascending by processing point index.
	used := make(map[int]bool)
	for _, pf := range protos {
		for _, v := range pf.verts {
			used[v] = true
		}
	}
	h.vertexPt = make([]int, 0, len(used))
	for v := range used {
		h.vertexPt = append(h.vertexPt, v)
	}
	sort.Ints(h.vertexPt)
	vertexID := make(map[int]int, len(h.vertexPt))
	for i, v := range h.vertexPt {
		vertexID[v] = i
	}
	h.status = StatusVerticesCompleted

	// Install facets and adjacency.
	h.facets = make([]*hullFacet, len(protos))
	for newID, oi := range order {
		pf := protos[oi]
		verts := make([]int, len(pf.verts))
		for i, v := range pf.verts {
			verts[i] = vertexID[v]
		}
		h.facets[newID] = &hullFacet{
			verts:    verts,
			normal:   pf.normal,
			offset:   pf.offset,
			infinite: pf.infinite,
		}
	}
	nbrSets := make([]map[int]bool, len(h.facets))
	for i := range nbrSets {
		nbrSets[i] = make(map[int]bool)
	}
	for _, fi := range alive {
		a := rootFacet[find(fi)]
		for _, gi := range h.sfacets[fi].nbrs {
			b := rootFacet[find(gi)]
			if a != b {
				nbrSets[a][b] = true
			}
		}
	}
	for i, set := range nbrSets {
		nbrs := make([]int, 0, len(set))
		for g := range set {
			nbrs = append(nbrs, g)
		}
		sort.Ints(nbrs)
		h.facets[i].nbrs = nbrs
	}

	h.ridges = nil
	for a, f := range h.facets {
		for _, b := range f.nbrs {
			if a < b {
				h.ridges = append(h.ridges, Ridge{A: a, B: b})
			}
		}
	}
	h.sfacets = nil // working structures are consumed by extraction
	h.status = StatusAllCompleted
}

// boundaryRidges collects, over the member simplicial facets of one merge
// group, every ridge that borders a facet outside the group. Each ridge is
// the member's vertex list minus one slot, given in processing indices.
func (h *Hull) boundaryRidges(members []int, find func(int) int) [][]int {
	root := find(members[0])
	var out [][]int
	for _, fi := range members {
		f := h.sfacets[fi]
		for k, gi := range f.nbrs {
			if find(gi) == root {
				continue
			}
			ridge := make([]int, 0, len(f.verts)-1)
			for j, v := range f.verts {
				if j != k {
					ridge = append(ridge, v)
				}
			}
			out = append(out, ridge)
		}
	}
	return out
}

// orderFacetBoundary turns the boundary ridges of a merged facet into its
// vertex list: tangent-oriented endpoints in 2D, an outward-oriented cycle
// with collinear vertices dropped in 3D, sorted unique vertices otherwise.
func (h *Hull) orderFacetBoundary(boundary [][]int, normal []*big.Int) []int {
	switch h.dim {
	case 2:
		// Boundary ridges are the two endpoint vertices of a hull edge.
		a, b := boundary[0][0], boundary[1][0]
		// Orient along the tangent (-ny, nx) so every edge runs
		// counterclockwise around the polygon.
		tx := new(big.Int).Neg(normal[1])
		ty := new(big.Int).Set(normal[0])
		dx := big.NewInt(h.pts[b][0] - h.pts[a][0])
		dy := big.NewInt(h.pts[b][1] - h.pts[a][1])
		s := new(big.Int).Mul(tx, dx)
		s.Add(s, dy.Mul(ty, dy))
		if s.Sign() < 0 {
			a, b = b, a
		}
		return []int{a, b}
	case 3:
		return h.orderPolygon3(boundary, normal)
	default:
		set := make(map[int]bool)
		for _, r := range boundary {
			for _, v := range r {
				set[v] = true
			}
		}
		verts := make([]int, 0, len(set))
		for v := range set {
			verts = append(verts, v)
		}
		sort.Ints(verts)
		return verts
	}
}

// orderPolygon3 walks the boundary edges of a merged 3D facet into one
// cycle, drops collinear vertices (they are not hull vertices), and orients
// the cycle against the outward normal.
func (h *Hull) orderPolygon3(edges [][]int, normal []*big.Int) []int {
	adj := make(map[int][]int)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	start := -1
	for v := range adj {
		if start < 0 || v < start {
			start = v
		}
	}
	for _, ns := range adj {
		sort.Ints(ns)
	}

	cycle := []int{start}
	prev, cur := -1, start
	for {
		next := -1
		for _, n := range adj[cur] {
			if n != prev {
				next = n
				break
			}
		}
		if next == start {
			break
		}
		cycle = append(cycle, next)
		prev, cur = cur, next
	}

	// Drop collinear vertices, circularly.
	keep := make([]int, 0, len(cycle))
	for _, v := range cycle {
		keep = append(keep, v)
		for len(keep) >= 3 && h.collinear(keep[len(keep)-3], keep[len(keep)-2], keep[len(keep)-1]) {
			keep = append(keep[:len(keep)-2], keep[len(keep)-1])
		}
	}
	for len(keep) >= 3 && h.collinear(keep[len(keep)-2], keep[len(keep)-1], keep[0]) {
		keep = keep[:len(keep)-1]
	}
	for len(keep) >= 3 && h.collinear(keep[len(keep)-1], keep[0], keep[1]) {
		keep = keep[1:]
	}

	// Orient the cycle so its area vector matches the outward normal.
	u := bigSub(h.pts[keep[1]], h.pts[keep[0]])
	v := bigSub(h.pts[keep[2]], h.pts[keep[1]])
	cp := cross3(u, v)
	s := new(big.Int)
	for i := range cp {
		s.Add(s, cp[i].Mul(cp[i], normal[i]))
	}
	if s.Sign() < 0 {
		for l, r := 0, len(keep)-1; l < r; l, r = l+1, r-1 {
			keep[l], keep[r] = keep[r], keep[l]
		}
	}
	return keep
}

// collinear reports whether the processing points a, b, c lie on one line.
func (h *Hull) collinear(a, b, c int) bool {
	rows := [][]*big.Int{bigSub(h.pts[b], h.pts[a]), bigSub(h.pts[c], h.pts[b])}
	return bigRank(rows) < 2
}

// cross3 returns the 3D cross product u × v.
func cross3(u, v []*big.Int) []*big.Int {
	w := make([]*big.Int, 3)
	w[0] = new(big.Int).Sub(new(big.Int).Mul(u[1], v[2]), new(big.Int).Mul(u[2], v[1]))
	w[1] = new(big.Int).Sub(new(big.Int).Mul(u[2], v[0]), new(big.Int).Mul(u[0], v[2]))
	w[2] = new(big.Int).Sub(new(big.Int).Mul(u[0], v[1]), new(big.Int).Mul(u[1], v[0]))
	return w
}

// lessInts compares two int slices lexicographically.
func lessInts(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
