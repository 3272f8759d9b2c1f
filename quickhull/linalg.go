package quickhull

import (
	"math/big"

	"github.com/katalvlaran/latvex/lattice"
)

// Exact integer linear algebra used by the hull predicates. Everything here
// runs on big.Int so determinants and scalar products never overflow.

// bigVec converts a lattice point to a big.Int row.
func bigVec(p lattice.Point) []*big.Int {
	v := make([]*big.Int, len(p))
	for i, c := range p {
		v[i] = big.NewInt(c)
	}
	return v
}

// bigSub returns p - q as a big.Int row.
func bigSub(p, q lattice.Point) []*big.Int {
	v := make([]*big.Int, len(p))
	for i := range p {
		v[i] = big.NewInt(p[i] - q[i])
	}
	return v
}

// bigDot returns n·p for an integer normal and a lattice point.
func bigDot(n []*big.Int, p lattice.Point) *big.Int {
	s := new(big.Int)
	t := new(big.Int)
	for i, c := range n {
		s.Add(s, t.Mul(c, big.NewInt(p[i])))
	}
	return s
}

// bigDet computes the determinant of the square matrix m with the Bareiss
// fraction-free algorithm. m is destroyed.
// Complexity: O(k³) big-integer operations for a k×k matrix.
func bigDet(m [][]*big.Int) *big.Int {
	n := len(m)
	if n == 0 {
		return big.NewInt(1)
	}
	sign := 1
	prev := big.NewInt(1)
	tmp := new(big.Int)
	for k := 0; k < n-1; k++ {
		if m[k][k].Sign() == 0 {
			swap := -1
			for i := k + 1; i < n; i++ {
				if m[i][k].Sign() != 0 {
					swap = i
					break
				}
			}
			if swap < 0 {
				return big.NewInt(0)
			}
			m[k], m[swap] = m[swap], m[k]
			sign = -sign
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				t := new(big.Int).Mul(m[i][j], m[k][k])
				t.Sub(t, tmp.Mul(m[i][k], m[k][j]))
				t.Quo(t, prev) // exact by the Bareiss identity
				m[i][j] = t
			}
			m[i][k] = big.NewInt(0)
		}
		prev = m[k][k]
	}
	r := new(big.Int).Set(m[n-1][n-1])
	if sign < 0 {
		r.Neg(r)
	}
	return r
}

// bigRank computes the rank of the integer matrix rows via fraction-free
// Gaussian elimination. rows is destroyed.
func bigRank(rows [][]*big.Int) int {
	if len(rows) == 0 {
		return 0
	}
	cols := len(rows[0])
	rank := 0
	tmp := new(big.Int)
	for col := 0; col < cols && rank < len(rows); col++ {
		pivot := -1
		for i := rank; i < len(rows); i++ {
			if rows[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for i := rank + 1; i < len(rows); i++ {
			if rows[i][col].Sign() == 0 {
				continue
			}
			for j := col + 1; j < cols; j++ {
				t := new(big.Int).Mul(rows[i][j], rows[rank][col])
				t.Sub(t, tmp.Mul(rows[i][col], rows[rank][j]))
				rows[i][j] = t
			}
			rows[i][col] = big.NewInt(0)
		}
		rank++
	}
	return rank
}

// hyperplaneNormal returns the normal of the hyperplane spanned by the d
// points verts (indices into pts): the generalized cross product of the
// edge vectors from verts[0]. The result is zero iff the points are
// affinely dependent.
func hyperplaneNormal(pts []lattice.Point, verts []int) []*big.Int {
	d := len(pts[verts[0]])
	edges := make([][]*big.Int, d-1)
	for i := 1; i < d; i++ {
		edges[i-1] = bigSub(pts[verts[i]], pts[verts[0]])
	}
	n := make([]*big.Int, d)
	for j := 0; j < d; j++ {
		minor := make([][]*big.Int, d-1)
		for r := range edges {
			row := make([]*big.Int, 0, d-1)
			for c := 0; c < d; c++ {
				if c == j {
					continue
				}
				row = append(row, new(big.Int).Set(edges[r][c]))
			}
			minor[r] = row
		}
		n[j] = bigDet(minor)
		if j%2 == 1 {
			n[j].Neg(n[j])
		}
	}
	return n
}

// reduceCoefficients divides the integer row (n, c) by the positive gcd of
// all its entries. A zero row is returned unchanged.
func reduceCoefficients(n []*big.Int, c *big.Int) {
	g := new(big.Int).Abs(c)
	for _, x := range n {
		g.GCD(nil, nil, g, new(big.Int).Abs(x))
	}
	if g.Sign() == 0 || g.Cmp(bigOne) == 0 {
		return
	}
	c.Quo(c, g)
	for _, x := range n {
		x.Quo(x, g)
	}
}

var bigOne = big.NewInt(1)
