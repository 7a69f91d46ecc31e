package operator

import (
	"testing"

	"github.com/dec-go/dec/geometry"
	"github.com/dec-go/dec/primal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUnitRightTriangle(t *testing.T) *primal.Complex {
	t.Helper()
	c := primal.NewEmbedded2D()
	vs, err := c.AddVertices(3)
	require.NoError(t, err)
	require.NoError(t, c.SetPoint(vs[0], geometry.Point{0, 0}))
	require.NoError(t, c.SetPoint(vs[1], geometry.Point{1, 0}))
	require.NoError(t, c.SetPoint(vs[2], geometry.Point{0, 1}))
	_, err = c.GlueTriangle(vs[0], vs[1], vs[2])
	require.NoError(t, err)
	return c
}

func buildPathGraph(t *testing.T, n int) *primal.Complex {
	t.Helper()
	c := primal.New1D()
	vs, err := c.AddVertices(n)
	require.NoError(t, err)
	for i := 0; i < n-1; i++ {
		_, err := c.AddEdge(vs[i], vs[i+1])
		require.NoError(t, err)
	}
	return c
}

func TestBoundarySquaredIsZero(t *testing.T) {
	c := buildUnitRightTriangle(t)
	b1, err := Boundary(c, 1)
	require.NoError(t, err)
	b2, err := Boundary(c, 2)
	require.NoError(t, err)

	nv, ne := b1.Dims()
	_, ntri := b2.Dims()
	for v := 0; v < nv; v++ {
		for tri := 0; tri < ntri; tri++ {
			sum := 0.0
			for e := 0; e < ne; e++ {
				sum += b1.At(v, e) * b2.At(e, tri)
			}
			assert.InDelta(t, 0, sum, 1e-9)
		}
	}
}

func TestDerivativeSquaredIsZero(t *testing.T) {
	c := buildUnitRightTriangle(t)
	d0, err := Derivative(c, 0)
	require.NoError(t, err)
	d1, err := Derivative(c, 1)
	require.NoError(t, err)

	r, mid := d1.Dims()
	_, cl := d0.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < cl; j++ {
			sum := 0.0
			for k := 0; k < mid; k++ {
				sum += d1.At(i, k) * d0.At(k, j)
			}
			assert.InDelta(t, 0, sum, 1e-9)
		}
	}
}

// TestPairingMatchesStokes checks <d(omega), c> = <omega, partial(c)>
// on a path graph: pairing the derivative of a 0-form against a
// 1-chain equals pairing the 0-form against the chain's boundary.
func TestPairingMatchesStokes(t *testing.T) {
	c := buildPathGraph(t, 3)
	omega := Form0{1, 3, 6}
	chain := Chain1{2, -1}

	d0, err := Derivative(c, 0)
	require.NoError(t, err)
	dOmega := make(Form1, 2)
	d0.DoNonZero(func(i, j int, v float64) {
		dOmega[i] += v * omega[j]
	})
	lhs, err := Pairing(dOmega, chain)
	require.NoError(t, err)

	b1, err := Boundary(c, 1)
	require.NoError(t, err)
	boundaryChain := make(Chain0, 3)
	b1.DoNonZero(func(i, j int, v float64) {
		boundaryChain[i] += v * chain[j]
	})
	rhs, err := Pairing(omega, boundaryChain)
	require.NoError(t, err)

	assert.InDelta(t, lhs, rhs, 1e-12)
}

func TestBoundary1SignsPathGraph(t *testing.T) {
	c := buildPathGraph(t, 3)
	b1, err := Boundary(c, 1)
	require.NoError(t, err)
	assert.InDelta(t, -1, b1.At(0, 0), 1e-12)
	assert.InDelta(t, 1, b1.At(1, 0), 1e-12)
	assert.InDelta(t, -1, b1.At(1, 1), 1e-12)
	assert.InDelta(t, 1, b1.At(2, 1), 1e-12)
}
