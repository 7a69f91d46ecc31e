package operator

import (
	"fmt"

	"github.com/dec-go/dec/decerr"
	"github.com/dec-go/dec/primal"
	"github.com/james-bowman/sparse"
)

// Boundary assembles the primal boundary matrix partial(k): Chain_k ->
// Chain_{k-1}. partial(1)[v,e] is +1 if e's target is
// v, -1 if e's source is v, scaled by e's orientation; partial(2)[e,t] is
// +-1 for each of t's three boundary edges, scaled by both the edge's and
// the triangle's orientation and by the relative sign of the simplicial
// identity that edge plays in the triangle (e0 and e2 run with the
// triangle's induced boundary orientation, e1 runs against it).
func Boundary(c *primal.Complex, k int) (*sparse.CSR, error) {
	switch k {
	case 1:
		return boundary1(c)
	case 2:
		return boundary2(c)
	default:
		return nil, fmt.Errorf("operator: Boundary: unsupported k=%d: %w", k, decerr.ErrDimensionMismatch)
	}
}

func boundary1(c *primal.Complex) (*sparse.CSR, error) {
	nv, ne := c.NumVertices(), c.NumEdges()
	b := newTripletBuilder(nv, ne)
	for e := 1; e <= ne; e++ {
		src, tgt, err := c.EdgeVertices(e)
		if err != nil {
			return nil, err
		}
		sigma, err := c.EdgeOrientation(e)
		if err != nil {
			return nil, err
		}
		s := sigma.ToFloat()
		b.add(tgt-1, e-1, s)
		b.add(src-1, e-1, -s)
	}
	return b.build(), nil
}

func boundary2(c *primal.Complex) (*sparse.CSR, error) {
	ne, ntri := c.NumEdges(), c.NumTriangles()
	b := newTripletBuilder(ne, ntri)
	for t := 1; t <= ntri; t++ {
		e0, e1, e2, err := c.TriangleEdges(t)
		if err != nil {
			return nil, err
		}
		tau, err := c.TriangleOrientation(t)
		if err != nil {
			return nil, err
		}
		tf := tau.ToFloat()

		// e0 and e2 run with the induced boundary orientation; e1 runs
		// against it: partial(tri) = tau*(e0 - e1 + e2).
		for _, ei := range []struct {
			id   int
			sign float64
		}{{e0, 1}, {e1, -1}, {e2, 1}} {
			s, err := edgeSign(c, ei.id)
			if err != nil {
				return nil, err
			}
			b.add(ei.id-1, t-1, tf*ei.sign*s)
		}
	}
	return b.build(), nil
}

func edgeSign(c *primal.Complex, e int) (float64, error) {
	sigma, err := c.EdgeOrientation(e)
	if err != nil {
		return 0, err
	}
	return sigma.ToFloat(), nil
}

// Derivative assembles the exterior derivative d(k): Form_k -> Form_{k+1}
// as the transpose of the boundary matrix, the discrete Stokes pairing
// <d(omega), c> = <omega, partial(c)>.
func Derivative(c *primal.Complex, k int) (*sparse.CSR, error) {
	b, err := Boundary(c, k+1)
	if err != nil {
		return nil, err
	}
	r, cl := b.Dims()
	t := newTripletBuilder(cl, r)
	b.DoNonZero(func(i, j int, v float64) {
		t.add(j, i, v)
	})
	return t.build(), nil
}
