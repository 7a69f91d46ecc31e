// Package orient propagates a consistent orientation across the
// top-dimensional simplices of a primal.Complex. For a 2D complex that
// means assigning each triangle's Sign (via SetTriangleOrientation) so
// that every pair of triangles sharing an edge induces opposite
// traversal directions on it, the classical "neighboring faces agree"
// rule for an oriented mesh. For a 1D complex there is nothing to
// propagate: every edge already carries a full source/target
// orientation, so Orient is a no-op success.
//
// The connected-component split uses a disjoint-set (union-find) walk
// over shared (D-1)-faces, grounded on the parent/rank DSU idiom in
// katalvlaran-lvlath/prim_kruskal's Kruskal implementation. Each
// component is then assigned by a DFS walker carrying a visited set and
// a same/flipped propagation rule, grounded on the dfsWalker shape in
// katalvlaran-lvlath/dfs (a struct holding the graph, options, and a
// result accumulator, with numbered steps in the entry function).
package orient

import (
	"github.com/dec-go/dec/decerr"
	"github.com/dec-go/dec/primal"
)

// Orient assigns a consistent Sign to every triangle of pc (for a 2D
// complex) so that adjacent triangles induce opposite directions on
// their shared edge. It returns (true, nil) on success, after writing
// every triangle's orientation, or (false, decerr.ErrNonOrientable)
// if some connected component admits no consistent assignment, in
// which case no orientation is written at all. For a 1D complex it
// returns (true, nil) without touching anything.
func Orient(pc *primal.Complex) (bool, error) {
	if pc.Dim == 1 {
		return true, nil
	}

	ntri := pc.NumTriangles()
	if ntri == 0 {
		return true, nil
	}

	adj, err := buildTriangleAdjacency(pc)
	if err != nil {
		return false, err
	}

	components := componentsOf(ntri, adj)

	assigned := make([]primal.Sign, ntri+1)
	has := make([]bool, ntri+1)

	for _, comp := range components {
		root := comp[0]
		if err := dfsAssign(root, adj, assigned, has); err != nil {
			return false, err
		}
	}

	for t := 1; t <= ntri; t++ {
		if !has[t] {
			continue
		}
		if err := pc.SetTriangleOrientation(t, assigned[t]); err != nil {
			return false, err
		}
	}
	return true, nil
}

// triAdjacency records, for triangle t, every (neighbor, relSign) pair
// reachable across a shared edge: relSign is +1 if the neighbor's
// orientation must equal t's to keep the shared edge's induced
// direction opposite, -1 if it must be flipped.
type triAdjacency map[int][]neighborEdge

type neighborEdge struct {
	tri     int
	relSign primal.Sign
}

// buildTriangleAdjacency walks every edge and, for the (at most two)
// triangles incident to it, records the relative-sign relation derived
// from each triangle's local slot sign for that edge: edges e0 and e2
// induce their triangle's own direction (local sign +1), e1 induces the
// opposite (local sign -1). Two triangles sharing an edge must traverse
// it in opposite directions, so relSign = -(local sign of t1) *
// (local sign of t2).
func buildTriangleAdjacency(pc *primal.Complex) (triAdjacency, error) {
	type incidence struct {
		tri       int
		localSign primal.Sign
	}
	byEdge := make(map[int][]incidence)

	ntri := pc.NumTriangles()
	for t := 1; t <= ntri; t++ {
		e0, e1, e2, err := pc.TriangleEdges(t)
		if err != nil {
			return nil, err
		}
		byEdge[e0] = append(byEdge[e0], incidence{t, primal.Positive})
		byEdge[e1] = append(byEdge[e1], incidence{t, primal.Negative})
		byEdge[e2] = append(byEdge[e2], incidence{t, primal.Positive})
	}

	adj := make(triAdjacency)
	for _, incs := range byEdge {
		if len(incs) != 2 {
			continue
		}
		a, b := incs[0], incs[1]
		// Matching local signs mean both triangles induce the same
		// traversal direction on the shared edge when both have the
		// same orientation, which is the conflicting case: one of
		// them must flip. Differing local signs already induce
		// opposite directions, so "same" keeps them opposite.
		rel := primal.Sign(a.localSign != b.localSign)
		adj[a.tri] = append(adj[a.tri], neighborEdge{b.tri, rel})
		adj[b.tri] = append(adj[b.tri], neighborEdge{a.tri, rel})
	}
	return adj, nil
}

// componentsOf partitions {1,...,n} into connected components of adj
// via union-find, returning one representative-led slice per component
// in discovery order.
func componentsOf(n int, adj triAdjacency) [][]int {
	parent := make([]int, n+1)
	for i := 1; i <= n; i++ {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for t, edges := range adj {
		for _, ne := range edges {
			union(t, ne.tri)
		}
	}

	byRoot := make(map[int][]int)
	var order []int
	for t := 1; t <= n; t++ {
		r := find(t)
		if _, ok := byRoot[r]; !ok {
			order = append(order, r)
		}
		byRoot[r] = append(byRoot[r], t)
	}
	out := make([][]int, 0, len(order))
	for _, r := range order {
		out = append(out, byRoot[r])
	}
	return out
}

// dfsAssign walks the component reachable from root, assigning root
// Positive and propagating every other triangle's sign via relSign. It
// returns decerr.ErrNonOrientable the first time a triangle already
// visited would need to be assigned a different sign than it already
// has.
func dfsAssign(root int, adj triAdjacency, assigned []primal.Sign, has []bool) error {
	assigned[root] = primal.Positive
	has[root] = true
	stack := []int{root}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, ne := range adj[t] {
			want := assigned[t]
			if ne.relSign == primal.Negative {
				want = want.Negate()
			}
			if has[ne.tri] {
				if assigned[ne.tri] != want {
					return decerr.ErrNonOrientable
				}
				continue
			}
			assigned[ne.tri] = want
			has[ne.tri] = true
			stack = append(stack, ne.tri)
		}
	}
	return nil
}
