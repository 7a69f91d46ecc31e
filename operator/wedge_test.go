package operator

import (
	"testing"

	"github.com/dec-go/dec/primal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWedge11Commutes checks alpha ^ beta = -(beta ^ alpha) for two
// 1-forms on the unit right triangle, the defining antisymmetry of the
// top-dimensional wedge product.
func TestWedge11Commutes(t *testing.T) {
	c := buildUnitRightTriangle(t)
	alpha := []float64{2, 3, 5}
	beta := []float64{7, 11, 13}

	ab, err := Wedge(c, 1, 1, alpha, beta)
	require.NoError(t, err)
	ba, err := Wedge(c, 1, 1, beta, alpha)
	require.NoError(t, err)

	require.Len(t, ab, 1)
	require.Len(t, ba, 1)
	assert.InDelta(t, -ba[0], ab[0], 1e-12)
}

// TestWedgeZeroKLeftRightAgree checks that wedging a 0-form against a
// 1-form gives the same result regardless of argument order, since
// (-1)^{p*0} = 1 for any p.
func TestWedgeZeroKLeftRightAgree(t *testing.T) {
	c := buildUnitRightTriangle(t)
	f := []float64{1, 2, 3}
	omega := []float64{4, 5, 6}

	left, err := Wedge(c, 0, 1, f, omega)
	require.NoError(t, err)
	right, err := Wedge(c, 1, 0, omega, f)
	require.NoError(t, err)
	assert.InDeltaSlice(t, left, right, 1e-12)
}

// TestWedge00IsPointwiseProduct checks the 0-form wedge on an unembedded
// 1D complex of three vertices, where it reduces to pointwise
// multiplication.
func TestWedge00IsPointwiseProduct(t *testing.T) {
	c := primal.New1D()
	_, err := c.AddVertices(3)
	require.NoError(t, err)
	f := []float64{2, 3, 5}
	g := []float64{7, 11, 13}
	out, err := Wedge(c, 0, 0, f, g)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{14, 33, 65}, out, 1e-12)
}
