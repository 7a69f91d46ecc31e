// Package geometry implements the Euclidean kernel used to place and
// measure simplices embedded in R^2 or R^3: Cayley-Menger volumes,
// barycenter/circumcenter/incenter of a simplex, and squared distance.
//
// Points are plain []float64 of length 2 or 3, matching the raw
// VX, VY, VZ coordinate slices convention rather than a fixed-arity
// struct, so the same kernel serves both the 2D and embedded-3D cases
// without duplication.
package geometry

import (
	"fmt"
	"math"
)

// Point is a coordinate in R^2 or R^3.
type Point []float64

// SqDistance returns the squared Euclidean distance between p and q.
func SqDistance(p, q Point) (float64, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("geometry: SqDistance: mismatched dimensions %d != %d", len(p), len(q))
	}
	var sum float64
	for i := range p {
		d := p[i] - q[i]
		sum += d * d
	}
	return sum, nil
}

// Barycenter returns the componentwise mean of points.
func Barycenter(points []Point) (Point, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("geometry: Barycenter: no points")
	}
	n := len(points[0])
	out := make(Point, n)
	for _, p := range points {
		if len(p) != n {
			return nil, fmt.Errorf("geometry: Barycenter: mismatched dimensions")
		}
		for i, c := range p {
			out[i] += c
		}
	}
	for i := range out {
		out[i] /= float64(len(points))
	}
	return out, nil
}

func clonePoint(p Point) Point {
	out := make(Point, len(p))
	copy(out, p)
	return out
}

// edgeLength returns the Euclidean length between two points.
func edgeLength(p, q Point) (float64, error) {
	sq, err := SqDistance(p, q)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sq), nil
}
