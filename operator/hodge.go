package operator

import (
	"fmt"
	"math"

	"github.com/dec-go/dec/decerr"
	"github.com/dec-go/dec/dual"
	"github.com/dec-go/dec/geometry"
	"github.com/dec-go/dec/primal"
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DiagonalHodge assembles the diagonal Hodge star star(k): Form_k ->
// DualForm_{D-k}, whose i-th diagonal entry is the ratio of the volume
// of the elementary dual cell of primal k-simplex i to the volume of the
// primal k-simplex itself.
func DiagonalHodge(pc *primal.Complex, dc *dual.Complex, k int) (*sparse.CSR, error) {
	n, err := simplexCount(pc, k)
	if err != nil {
		return nil, err
	}
	b := newTripletBuilder(n, n)
	for i := 1; i <= n; i++ {
		primalVol, err := primalVolume(pc, k, i)
		if err != nil {
			return nil, err
		}
		dualVol, err := dc.CellVolume(k, i)
		if err != nil {
			return nil, err
		}
		if primalVol == 0 {
			return nil, fmt.Errorf("operator: DiagonalHodge: zero-volume %d-simplex %d: %w", k, i, decerr.ErrDegenerateGeometry)
		}
		b.add(i-1, i-1, dualVol/primalVol)
	}
	return b.build(), nil
}

// DualVolumes collects the elementary dual cell volume of every primal
// k-simplex, the numerator DiagonalHodge divides by the corresponding
// primal volume, wrapped as a DualForm of dual dimension D-k.
func DualVolumes(pc *primal.Complex, dc *dual.Complex, k int) (DualForm, error) {
	n, err := simplexCount(pc, k)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, n)
	for i := 1; i <= n; i++ {
		v, err := dc.CellVolume(k, i)
		if err != nil {
			return nil, err
		}
		vals[i-1] = v
	}
	return wrapDualForm(pc.Dim-k, vals)
}

func simplexCount(pc *primal.Complex, k int) (int, error) {
	switch k {
	case 0:
		return pc.NumVertices(), nil
	case 1:
		return pc.NumEdges(), nil
	case 2:
		return pc.NumTriangles(), nil
	default:
		return 0, fmt.Errorf("operator: unsupported dimension k=%d: %w", k, decerr.ErrDimensionMismatch)
	}
}

func primalVolume(pc *primal.Complex, k, id int) (float64, error) {
	switch k {
	case 0:
		p, err := pc.Point(id)
		if err != nil {
			return 0, err
		}
		return geometry.Volume([]geometry.Point{p})
	case 1:
		src, tgt, err := pc.EdgeVertices(id)
		if err != nil {
			return 0, err
		}
		ps, err := pc.Point(src)
		if err != nil {
			return 0, err
		}
		pt, err := pc.Point(tgt)
		if err != nil {
			return 0, err
		}
		return geometry.Volume([]geometry.Point{ps, pt})
	case 2:
		v0, v1, v2, err := pc.TriangleVertices(id)
		if err != nil {
			return 0, err
		}
		pts := make([]geometry.Point, 3)
		for i, v := range []int{v0, v1, v2} {
			pts[i], err = pc.Point(v)
			if err != nil {
				return 0, err
			}
		}
		return geometry.Volume(pts)
	default:
		return 0, fmt.Errorf("operator: unsupported dimension k=%d: %w", k, decerr.ErrDimensionMismatch)
	}
}

// GeometricHodge assembles the Galerkin (Whitney-form) Hodge star at
// k=1, the one case where the diagonal approximation is replaced by the
// full mass matrix of linear Whitney edge elements.
// Unlike DiagonalHodge it is not diagonal: two edges of the same triangle
// couple whenever they share a vertex.
//
// Per triangle, with local vertices 0,1,2 (edge i opposite vertex i) and
// interior angle theta_m at local vertex m, the contribution is
//
//	M[i][i]         = (cot(theta_p) + cot(theta_q) + 3*cot(theta_i)) / 12
//	M[i][j] (i != j) = (cot(theta_i) + cot(theta_j) - cot(theta_k)) / 12
//
// where {p,q} = {0,1,2}\{i} and k is the triangle's vertex shared by
// edges i and j. This is the standard mass matrix of lowest-order Whitney
// 1-forms (derivable directly from the barycentric-gradient cotangent
// identities); it is symmetric and depends only on vertex ids and
// embedded geometry, never on declared edge orientation.
func GeometricHodge(pc *primal.Complex, k int) (*sparse.CSR, error) {
	if k != 1 {
		return nil, fmt.Errorf("operator: GeometricHodge: only k=1 is supported: %w", decerr.ErrDimensionMismatch)
	}
	ne, ntri := pc.NumEdges(), pc.NumTriangles()
	b := newTripletBuilder(ne, ne)

	for t := 1; t <= ntri; t++ {
		edges, _, pts, err := triangleGeometry(pc, t)
		if err != nil {
			return nil, err
		}
		cot, err := triangleCotangents(pts)
		if err != nil {
			return nil, err
		}

		for i := 0; i < 3; i++ {
			p, q := (i+1)%3, (i+2)%3
			mii := (cot[p] + cot[q] + 3*cot[i]) / 12
			b.add(edges[i]-1, edges[i]-1, mii)
			for _, j := range []int{p, q} {
				if edges[i] == edges[j] {
					continue
				}
				kIdx := 3 - i - j // the remaining local index, since i+j+kIdx=0+1+2=3
				mij := (cot[i] + cot[j] - cot[kIdx]) / 12
				b.add(edges[i]-1, edges[j]-1, mij)
			}
		}
	}
	return b.build(), nil
}

// triangleGeometry returns triangle t's three edges and vertices in the
// canonical local order (edge i opposite local vertex i) along with their
// embedded points.
func triangleGeometry(pc *primal.Complex, t int) (edges, verts [3]int, pts [3]geometry.Point, err error) {
	e0, e1, e2, err := pc.TriangleEdges(t)
	if err != nil {
		return edges, verts, pts, err
	}
	v0, v1, v2, err := pc.TriangleVertices(t)
	if err != nil {
		return edges, verts, pts, err
	}
	edges = [3]int{e0, e1, e2}
	verts = [3]int{v0, v1, v2}
	for i, v := range verts {
		pts[i], err = pc.Point(v)
		if err != nil {
			return edges, verts, pts, err
		}
	}
	return edges, verts, pts, nil
}

// triangleCotangents returns cot(theta_m) for each local vertex m of the
// triangle with the given three embedded points, using the vectors from
// vertex m to the other two vertices.
func triangleCotangents(pts [3]geometry.Point) ([3]float64, error) {
	var cot [3]float64
	for m := 0; m < 3; m++ {
		a, b := (m+1)%3, (m+2)%3
		u, err := subVec(pts[a], pts[m])
		if err != nil {
			return cot, err
		}
		w, err := subVec(pts[b], pts[m])
		if err != nil {
			return cot, err
		}
		dot := dotVec(u, w)
		cross := crossMag(u, w)
		if cross == 0 {
			return cot, fmt.Errorf("operator: triangleCotangents: degenerate triangle: %w", decerr.ErrDegenerateGeometry)
		}
		cot[m] = dot / cross
	}
	return cot, nil
}

func subVec(a, b geometry.Point) (geometry.Point, error) {
	if len(a) != len(b) {
		return nil, decerr.ErrDimensionMismatch
	}
	out := make(geometry.Point, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

func dotVec(a, b geometry.Point) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// crossMag returns the magnitude of the cross product of two vectors
// embedded in R^2 or R^3.
func crossMag(a, b geometry.Point) float64 {
	if len(a) == 2 {
		return math.Abs(a[0]*b[1] - a[1]*b[0])
	}
	cx := a[1]*b[2] - a[2]*b[1]
	cy := a[2]*b[0] - a[0]*b[2]
	cz := a[0]*b[1] - a[1]*b[0]
	return math.Sqrt(cx*cx + cy*cy + cz*cz)
}

// InverseHodge inverts a Hodge star matrix. Diagonal stars invert
// entrywise; the geometric star is inverted via a dense LU solve, since
// it has off-diagonal coupling.
func InverseHodge(h *sparse.CSR, diagonal bool) (mat.Matrix, error) {
	r, c := h.Dims()
	if diagonal {
		b := newTripletBuilder(r, c)
		for i := 0; i < r; i++ {
			v := h.At(i, i)
			if v == 0 {
				return nil, fmt.Errorf("operator: InverseHodge: zero diagonal entry at %d: %w", i, decerr.ErrDegenerateGeometry)
			}
			b.add(i, i, 1/v)
		}
		return b.build(), nil
	}
	dense := mat.DenseCopyOf(h)
	var inv mat.Dense
	if err := inv.Inverse(dense); err != nil {
		return nil, fmt.Errorf("operator: InverseHodge: %w: %v", decerr.ErrDegenerateGeometry, err)
	}
	return &inv, nil
}
