package relstore

import "fmt"

import "github.com/dec-go/dec/decerr"

// column holds the actual row data for one declared morphism.
type column struct {
	decl   columnDecl
	values []any // values[i] holds the value for row id i+1 (ids are 1-based)

	// index is the inverse map target value -> source ids, maintained only
	// when decl.indexed is true. Hom values are stored as int ids so the
	// map key is int; Attr values use the raw value as key, which requires
	// the declared attribute type to be comparable.
	index map[any][]int
}

// Store is a minimal in-memory relational store over named object tables
// and named morphisms.
type Store struct {
	schema *Schema
	counts map[string]int
	cols   map[string]*column
	// colsByOb groups columns by their domain object table, so AddPart can
	// extend every column of that table in one pass.
	colsByOb map[string][]*column
}

// NewStore allocates an empty store for the given schema. The schema is not
// copied; declare all tables and morphisms before calling NewStore.
func NewStore(schema *Schema) *Store {
	st := &Store{
		schema:   schema,
		counts:   make(map[string]int, len(schema.obs)),
		cols:     make(map[string]*column, len(schema.columns)),
		colsByOb: make(map[string][]*column),
	}
	for _, ob := range schema.obs {
		st.counts[ob] = 0
	}
	for _, decl := range schema.columns {
		col := &column{decl: decl}
		if decl.indexed {
			col.index = make(map[any][]int)
		}
		st.cols[decl.name] = col
		st.colsByOb[decl.from] = append(st.colsByOb[decl.from], col)
	}
	return st
}

// AddPart appends a new row to object table ob and returns its 1-based id.
func (s *Store) AddPart(ob string) int {
	s.counts[ob]++
	id := s.counts[ob]
	for _, col := range s.colsByOb[ob] {
		col.values = append(col.values, nil)
	}
	return id
}

// Count returns the number of rows currently in object table ob.
func (s *Store) Count(ob string) int {
	return s.counts[ob]
}

// SetSubpart assigns the value of morphism attr at row id, updating the
// inverse index if the morphism is indexed.
func (s *Store) SetSubpart(id int, attr string, value any) error {
	col, ok := s.cols[attr]
	if !ok {
		return fmt.Errorf("relstore: SetSubpart %q: %w", attr, decerr.ErrUnknownPart)
	}
	if id < 1 || id > len(col.values) {
		return fmt.Errorf("relstore: SetSubpart %q id=%d: %w", attr, id, decerr.ErrUnknownPart)
	}
	if col.index != nil {
		if old := col.values[id-1]; old != nil {
			s.removeFromIndex(col, old, id)
		}
	}
	col.values[id-1] = value
	if col.index != nil && value != nil {
		col.index[value] = append(col.index[value], id)
	}
	return nil
}

func (s *Store) removeFromIndex(col *column, value any, id int) {
	ids := col.index[value]
	for i, existing := range ids {
		if existing == id {
			col.index[value] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
}

// Subpart returns the value of morphism attr at row id. It returns nil if
// the value was never set.
func (s *Store) Subpart(id int, attr string) (any, error) {
	col, ok := s.cols[attr]
	if !ok {
		return nil, fmt.Errorf("relstore: Subpart %q: %w", attr, decerr.ErrUnknownPart)
	}
	if id < 1 || id > len(col.values) {
		return nil, fmt.Errorf("relstore: Subpart %q id=%d: %w", attr, id, decerr.ErrUnknownPart)
	}
	return col.values[id-1], nil
}

// SubpartVec is the vectorized form of Subpart.
func (s *Store) SubpartVec(ids []int, attr string) ([]any, error) {
	out := make([]any, len(ids))
	for i, id := range ids {
		v, err := s.Subpart(id, attr)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Incident returns the (possibly empty) list of source ids mapping to
// target under morphism attr. attr must have been declared indexed.
func (s *Store) Incident(target int, attr string) ([]int, error) {
	col, ok := s.cols[attr]
	if !ok {
		return nil, fmt.Errorf("relstore: Incident %q: %w", attr, decerr.ErrUnknownPart)
	}
	if col.index == nil {
		return nil, fmt.Errorf("relstore: Incident %q: morphism is not indexed: %w", attr, decerr.ErrUnknownPart)
	}
	ids := col.index[target]
	out := make([]int, len(ids))
	copy(out, ids)
	return out, nil
}

// SubpartInt is a convenience wrapper around Subpart for Hom columns,
// returning 0 (an invalid id) if the value was never set.
func (s *Store) SubpartInt(id int, attr string) (int, error) {
	v, err := s.Subpart(id, attr)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, nil
	}
	return v.(int), nil
}

// SubpartBool is a convenience wrapper around Subpart for boolean Attr
// columns (orientations), defaulting to true (positive) if unset.
func (s *Store) SubpartBool(id int, attr string) (bool, error) {
	v, err := s.Subpart(id, attr)
	if err != nil {
		return false, err
	}
	if v == nil {
		return true, nil
	}
	return v.(bool), nil
}
