package operator

import (
	"fmt"

	"github.com/dec-go/dec/decerr"
	"github.com/dec-go/dec/primal"
)

// InteriorProduct contracts a k-form alpha against a flat vector field
// X (a primal 1-form) via the natural incidence pairing, producing a
// (k-1)-form. For k=1 this contracts at vertices using
// partial(1); for k=2 it contracts at edges using partial(2), averaging
// X over each triangle's three edges. The overall sign is
// (-1)^{k(D-k)}.
func InteriorProduct(pc *primal.Complex, X Form1, alpha []float64, k int) ([]float64, error) {
	switch k {
	case 1:
		return interiorK1(pc, X, alpha)
	case 2:
		return interiorK2(pc, X, alpha)
	default:
		return nil, fmt.Errorf("operator: InteriorProduct: unsupported k=%d: %w", k, decerr.ErrDimensionMismatch)
	}
}

func interiorSign(k, d int) float64 {
	if (k*(d-k))%2 == 0 {
		return 1
	}
	return -1
}

func interiorK1(pc *primal.Complex, X, alpha []float64) ([]float64, error) {
	b1, err := Boundary(pc, 1)
	if err != nil {
		return nil, err
	}
	nv, _ := b1.Dims()
	out := make([]float64, nv)
	b1.DoNonZero(func(v, e int, coeff float64) {
		out[v] += coeff * X[e] * alpha[e]
	})
	sign := interiorSign(1, pc.Dim)
	for i := range out {
		out[i] *= sign
	}
	return out, nil
}

func interiorK2(pc *primal.Complex, X, alpha []float64) ([]float64, error) {
	b2, err := Boundary(pc, 2)
	if err != nil {
		return nil, err
	}
	ne, _ := b2.Dims()
	out := make([]float64, ne)
	ntri := pc.NumTriangles()
	meanX := make([]float64, ntri+1)
	for t := 1; t <= ntri; t++ {
		e0, e1, e2, err := pc.TriangleEdges(t)
		if err != nil {
			return nil, err
		}
		meanX[t] = (X[e0-1] + X[e1-1] + X[e2-1]) / 3
	}
	b2.DoNonZero(func(e, t int, coeff float64) {
		out[e] += coeff * alpha[t] * meanX[t+1]
	})
	sign := interiorSign(2, pc.Dim)
	for i := range out {
		out[i] *= sign
	}
	return out, nil
}

// LieDerivative applies Cartan's magic formula
// LieDerivative_X = d . interior_X + interior_X . d for a k-form alpha
// on a complex of dimension D, dropping terms that would require a
// negative or (D+1)-degree form.
func LieDerivative(pc *primal.Complex, X Form1, alpha []float64, k int) ([]float64, error) {
	var term1, term2 []float64

	if k+1 <= pc.Dim {
		dAlpha, err := applyDerivative(pc, alpha, k)
		if err != nil {
			return nil, err
		}
		t1, err := InteriorProduct(pc, X, dAlpha, k+1)
		if err != nil {
			return nil, err
		}
		term1 = t1
	}

	if k >= 1 {
		iAlpha, err := InteriorProduct(pc, X, alpha, k)
		if err != nil {
			return nil, err
		}
		t2, err := applyDerivative(pc, iAlpha, k-1)
		if err != nil {
			return nil, err
		}
		term2 = t2
	}

	switch {
	case term1 != nil && term2 != nil:
		out := make([]float64, len(term1))
		for i := range out {
			out[i] = term1[i] + term2[i]
		}
		return out, nil
	case term1 != nil:
		return term1, nil
	case term2 != nil:
		return term2, nil
	default:
		return nil, fmt.Errorf("operator: LieDerivative: degree k=%d admits no nonzero term: %w", k, decerr.ErrDimensionMismatch)
	}
}

func applyDerivative(pc *primal.Complex, form []float64, k int) ([]float64, error) {
	d, err := Derivative(pc, k)
	if err != nil {
		return nil, err
	}
	r, _ := d.Dims()
	out := make([]float64, r)
	d.DoNonZero(func(i, j int, v float64) {
		out[i] += v * form[j]
	})
	return out, nil
}
