package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CayleyMenger builds the (k+2)x(k+2) Cayley-Menger matrix of a k-simplex
// given its k+1 defining points: a zero diagonal, a border of ones in the
// first row/column (except the [0,0] corner), and squared distances in the
// interior.
func CayleyMenger(points []Point) (*mat.Dense, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("geometry: CayleyMenger: no points")
	}
	n := len(points) + 1
	m := mat.NewDense(n, n, nil)
	for i := 1; i < n; i++ {
		m.Set(0, i, 1)
		m.Set(i, 0, 1)
	}
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			if i == j {
				m.Set(i, j, 0)
				continue
			}
			d, err := SqDistance(points[i-1], points[j-1])
			if err != nil {
				return nil, fmt.Errorf("geometry: CayleyMenger: %w", err)
			}
			m.Set(i, j, d)
		}
	}
	return m, nil
}

func factorial(k int) float64 {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}
	return f
}

// Volume returns the k-volume of the simplex spanned by points, where
// k = len(points)-1, computed from the Cayley-Menger determinant:
//
//	V_k = sqrt(|det M| / 2^k) / k!
func Volume(points []Point) (float64, error) {
	k := len(points) - 1
	if k < 0 {
		return 0, fmt.Errorf("geometry: Volume: no points")
	}
	cm, err := CayleyMenger(points)
	if err != nil {
		return 0, err
	}
	det := mat.Det(cm)
	ratio := math.Abs(det) / math.Pow(2, float64(k))
	return math.Sqrt(ratio) / factorial(k), nil
}

func subN(a, b Point) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func cross3(u, v []float64) []float64 {
	return []float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

func dotN(u, v []float64) float64 {
	var s float64
	for i := range u {
		s += u[i] * v[i]
	}
	return s
}

// Circumcenter solves the linear system for the point equidistant from the
// three vertices of a triangle (p0, p1, p2) and lying in the triangle's
// plane. In R^2 the plane constraint is automatic (any point is "in the
// plane"); in R^3 a third equation pins the solution to the triangle's
// plane via its normal.
func Circumcenter(points []Point) (Point, error) {
	if len(points) != 3 {
		return nil, fmt.Errorf("geometry: Circumcenter: need exactly 3 points, got %d", len(points))
	}
	p0, p1, p2 := points[0], points[1], points[2]
	n := len(p0)
	if len(p1) != n || len(p2) != n {
		return nil, fmt.Errorf("geometry: Circumcenter: mismatched dimensions")
	}
	if n != 2 && n != 3 {
		return nil, fmt.Errorf("geometry: Circumcenter: unsupported dimension %d", n)
	}

	rows := make([]float64, 0, n*n)
	rhs := make([]float64, 0, n)

	appendEq := func(a, b Point) {
		diff := subN(b, a)
		var rhsVal float64
		row := make([]float64, n)
		for i := 0; i < n; i++ {
			row[i] = 2 * diff[i]
			rhsVal += b[i]*b[i] - a[i]*a[i]
		}
		rows = append(rows, row...)
		rhs = append(rhs, rhsVal)
	}
	appendEq(p0, p1)
	appendEq(p0, p2)

	if n == 3 {
		u := subN(p1, p0)
		v := subN(p2, p0)
		normal := cross3(u, v)
		rows = append(rows, normal...)
		rhs = append(rhs, dotN(normal, p0))
	}

	a := mat.NewDense(n, n, rows)
	b := mat.NewVecDense(n, rhs)
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("geometry: Circumcenter: %w", err)
	}
	out := make(Point, n)
	for i := 0; i < n; i++ {
		out[i] = x.AtVec(i)
	}
	return out, nil
}

// Incenter returns (a*p0 + b*p1 + c*p2)/(a+b+c), where a, b, c are the
// lengths of the edges opposite p0, p1, p2 respectively.
func Incenter(points []Point) (Point, error) {
	if len(points) != 3 {
		return nil, fmt.Errorf("geometry: Incenter: need exactly 3 points, got %d", len(points))
	}
	p0, p1, p2 := points[0], points[1], points[2]
	a, err := edgeLength(p1, p2)
	if err != nil {
		return nil, fmt.Errorf("geometry: Incenter: %w", err)
	}
	b, err := edgeLength(p0, p2)
	if err != nil {
		return nil, fmt.Errorf("geometry: Incenter: %w", err)
	}
	c, err := edgeLength(p0, p1)
	if err != nil {
		return nil, fmt.Errorf("geometry: Incenter: %w", err)
	}
	sum := a + b + c
	if sum == 0 {
		return nil, fmt.Errorf("geometry: Incenter: degenerate triangle")
	}
	n := len(p0)
	out := make(Point, n)
	for i := 0; i < n; i++ {
		out[i] = (a*p0[i] + b*p1[i] + c*p2[i]) / sum
	}
	return out, nil
}
