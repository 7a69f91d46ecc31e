package operator

import (
	"fmt"

	"github.com/dec-go/dec/decerr"
)

// Pairing evaluates the discrete Stokes pairing <form, chain> = sum_i
// form[i]*chain[i], the natural duality between a k-form and a k-chain
// that the boundary/derivative adjunction in Boundary and Derivative is
// built on. form and chain must have the same dimension and length.
func Pairing(form Form, chain Chain) (float64, error) {
	if form.Dim() != chain.Dim() {
		return 0, fmt.Errorf("operator: Pairing: form dimension %d does not match chain dimension %d: %w", form.Dim(), chain.Dim(), decerr.ErrDimensionMismatch)
	}
	fv, cv := formValues(form), chainValues(chain)
	if len(fv) != len(cv) {
		return 0, fmt.Errorf("operator: Pairing: form has %d entries, chain has %d: %w", len(fv), len(cv), decerr.ErrDimensionMismatch)
	}
	sum := 0.0
	for i := range fv {
		sum += fv[i] * cv[i]
	}
	return sum, nil
}
