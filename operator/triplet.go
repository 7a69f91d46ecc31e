package operator

import (
	"sort"

	"github.com/james-bowman/sparse"
)

// tripletBuilder accumulates (row, col) -> value contributions in
// coordinate format and emits a CSR matrix with a single, deterministic
// pass: entries are summed per coordinate as they arrive (so coefficient
// matrices like the geometric Hodge star, which receive one contribution
// per incident triangle, accumulate correctly) and then emitted in
// row-major, column-ascending order so two assemblies of the same
// operator always produce bit-identical matrices.
type tripletBuilder struct {
	rows, cols int
	entries    map[[2]int]float64
}

func newTripletBuilder(rows, cols int) *tripletBuilder {
	return &tripletBuilder{rows: rows, cols: cols, entries: make(map[[2]int]float64)}
}

func (b *tripletBuilder) add(r, c int, v float64) {
	if v == 0 {
		return
	}
	b.entries[[2]int{r, c}] += v
}

func (b *tripletBuilder) build() *sparse.CSR {
	keys := make([][2]int, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	rows := make([]int, 0, len(keys))
	cols := make([]int, 0, len(keys))
	data := make([]float64, 0, len(keys))
	for _, k := range keys {
		v := b.entries[k]
		if v == 0 {
			continue
		}
		rows = append(rows, k[0])
		cols = append(cols, k[1])
		data = append(data, v)
	}

	coo := sparse.NewCOO(b.rows, b.cols, rows, cols, data)
	return coo.ToCSR()
}
