// Package operator assembles the sparse matrices that implement discrete
// exterior calculus over a primal.Complex and its dual.Complex: the
// boundary operator, exterior derivative, Hodge star (diagonal and
// geometric), codifferential, Laplace-de Rham operator, wedge product,
// and the musical isomorphisms.
package operator

import "github.com/dec-go/dec/decerr"

// Chain0, Chain1, Chain2 wrap a vector of coefficients over primal
// vertices, edges, and triangles respectively. They exist so a caller
// can't accidentally feed a 0-chain where a 1-form is expected; the
// underlying representation is a plain []float64 indexed from 0 (part id
// i lives at index i-1).
type Chain0 []float64
type Chain1 []float64
type Chain2 []float64

// Form0, Form1, Form2 wrap a vector of discrete differential form values,
// one per primal vertex, edge, or triangle.
type Form0 []float64
type Form1 []float64
type Form2 []float64

// DualForm0, DualForm1, DualForm2 wrap values attached to dual 0-, 1-,
// and 2-cells (which are duals of primal 2-, 1-, and 0-simplices,
// respectively).
type DualForm0 []float64
type DualForm1 []float64
type DualForm2 []float64

// Chain is satisfied only by Chain0, Chain1, Chain2; the unexported
// marker method keeps a Form or DualForm of the same underlying
// []float64 representation from being mistaken for a Chain at a type
// boundary like Pairing.
type Chain interface {
	Dim() int
	Primal() bool
	isChain()
}

// Form is satisfied only by Form0, Form1, Form2.
type Form interface {
	Dim() int
	Primal() bool
	isForm()
}

// DualForm is satisfied only by DualForm0, DualForm1, DualForm2.
type DualForm interface {
	Dim() int
	Primal() bool
	isDualForm()
}

func (Chain0) Dim() int     { return 0 }
func (Chain1) Dim() int     { return 1 }
func (Chain2) Dim() int     { return 2 }
func (Chain0) Primal() bool { return true }
func (Chain1) Primal() bool { return true }
func (Chain2) Primal() bool { return true }
func (Chain0) isChain()     {}
func (Chain1) isChain()     {}
func (Chain2) isChain()     {}

func (Form0) Dim() int     { return 0 }
func (Form1) Dim() int     { return 1 }
func (Form2) Dim() int     { return 2 }
func (Form0) Primal() bool { return true }
func (Form1) Primal() bool { return true }
func (Form2) Primal() bool { return true }
func (Form0) isForm()      {}
func (Form1) isForm()      {}
func (Form2) isForm()      {}

// DualForm_k's Dim reports k, its own dimension within the dual
// complex, not the primal dimension it is dual to. Primal always
// reports false, distinguishing it from the primal-complex wrappers
// above at runtime.
func (DualForm0) Dim() int     { return 0 }
func (DualForm1) Dim() int     { return 1 }
func (DualForm2) Dim() int     { return 2 }
func (DualForm0) Primal() bool { return false }
func (DualForm1) Primal() bool { return false }
func (DualForm2) Primal() bool { return false }
func (DualForm0) isDualForm()  {}
func (DualForm1) isDualForm()  {}
func (DualForm2) isDualForm()  {}

// wrapForm packages a raw coefficient vector as the Form of the given
// primal dimension.
func wrapForm(k int, vals []float64) (Form, error) {
	switch k {
	case 0:
		return Form0(vals), nil
	case 1:
		return Form1(vals), nil
	case 2:
		return Form2(vals), nil
	default:
		return nil, decerr.ErrDimensionMismatch
	}
}

// formValues unwraps a Form back to its raw coefficient vector.
func formValues(f Form) []float64 {
	switch v := f.(type) {
	case Form0:
		return v
	case Form1:
		return v
	case Form2:
		return v
	default:
		return nil
	}
}

// chainValues unwraps a Chain back to its raw coefficient vector.
func chainValues(c Chain) []float64 {
	switch v := c.(type) {
	case Chain0:
		return v
	case Chain1:
		return v
	case Chain2:
		return v
	default:
		return nil
	}
}

// wrapDualForm packages a raw coefficient vector as the DualForm of the
// given dual dimension.
func wrapDualForm(k int, vals []float64) (DualForm, error) {
	switch k {
	case 0:
		return DualForm0(vals), nil
	case 1:
		return DualForm1(vals), nil
	case 2:
		return DualForm2(vals), nil
	default:
		return nil, decerr.ErrDimensionMismatch
	}
}
