// Package relstore implements a minimal in-memory relational store: a set
// of named object tables and, for each named morphism between two tables
// (or from a table into an arbitrary attribute alphabet), an
// injective-as-a-relation mapping plus an optional inverse index.
//
// It is the indexed backing store for both primal.Complex and dual.Complex;
// everything those packages expose as face maps, coface maps, orientations,
// and embeddings is stored here as a Hom or an Attr column.
package relstore

// columnKind distinguishes a morphism whose codomain is another object
// table (Hom) from one whose codomain is an arbitrary comparable value
// (Attr), e.g. a bool orientation or a geometry.Point embedding.
type columnKind uint8

const (
	homKind columnKind = iota
	attrKind
)

type columnDecl struct {
	name    string
	kind    columnKind
	from    string
	to      string // only meaningful for homKind
	indexed bool
}

// Schema declares the object tables and morphisms of a relational store
// before any rows are added. It is analogous to declaring a table's column
// types up front rather than discovering them row by row.
type Schema struct {
	obs     []string
	columns []columnDecl
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{}
}

// DeclareOb declares an object (part) table. It is a no-op if the table is
// already declared.
func (s *Schema) DeclareOb(name string) {
	for _, ob := range s.obs {
		if ob == name {
			return
		}
	}
	s.obs = append(s.obs, name)
}

// DeclareHom declares a morphism name -> codomain "to", with domain "from",
// whose values are row ids of "to". If indexed, the store maintains an
// inverse index supporting Incident lookups.
func (s *Schema) DeclareHom(name, from, to string, indexed bool) {
	s.columns = append(s.columns, columnDecl{name: name, kind: homKind, from: from, to: to, indexed: indexed})
}

// DeclareAttr declares a morphism name with domain "from" whose codomain is
// an arbitrary comparable Go value rather than another object table.
func (s *Schema) DeclareAttr(name, from string, indexed bool) {
	s.columns = append(s.columns, columnDecl{name: name, kind: attrKind, from: from, indexed: indexed})
}
