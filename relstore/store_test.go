package relstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPathSchema() *Schema {
	sch := NewSchema()
	sch.DeclareOb("V")
	sch.DeclareOb("E")
	sch.DeclareHom("tgt", "E", "V", true)
	sch.DeclareHom("src", "E", "V", true)
	sch.DeclareAttr("orientation", "E", false)
	return sch
}

func TestAddPartAndSubpart(t *testing.T) {
	st := NewStore(buildPathSchema())

	v1 := st.AddPart("V")
	v2 := st.AddPart("V")
	require.Equal(t, 1, v1)
	require.Equal(t, 2, v2)
	require.Equal(t, 2, st.Count("V"))

	e1 := st.AddPart("E")
	require.NoError(t, st.SetSubpart(e1, "tgt", v2))
	require.NoError(t, st.SetSubpart(e1, "src", v1))
	require.NoError(t, st.SetSubpart(e1, "orientation", true))

	tgt, err := st.SubpartInt(e1, "tgt")
	require.NoError(t, err)
	assert.Equal(t, v2, tgt)

	src, err := st.SubpartInt(e1, "src")
	require.NoError(t, err)
	assert.Equal(t, v1, src)

	orient, err := st.SubpartBool(e1, "orientation")
	require.NoError(t, err)
	assert.True(t, orient)
}

func TestIncidentIndex(t *testing.T) {
	st := NewStore(buildPathSchema())
	v1 := st.AddPart("V")
	v2 := st.AddPart("V")
	v3 := st.AddPart("V")

	e1 := st.AddPart("E")
	require.NoError(t, st.SetSubpart(e1, "src", v1))
	require.NoError(t, st.SetSubpart(e1, "tgt", v2))

	e2 := st.AddPart("E")
	require.NoError(t, st.SetSubpart(e2, "src", v2))
	require.NoError(t, st.SetSubpart(e2, "tgt", v3))

	incidentAtV2, err := st.Incident(v2, "src")
	require.NoError(t, err)
	assert.Equal(t, []int{e2}, incidentAtV2)

	incidentAtV2Tgt, err := st.Incident(v2, "tgt")
	require.NoError(t, err)
	assert.Equal(t, []int{e1}, incidentAtV2Tgt)
}

func TestSetSubpartUnknownAttr(t *testing.T) {
	st := NewStore(buildPathSchema())
	v1 := st.AddPart("V")
	err := st.SetSubpart(v1, "nope", 1)
	assert.Error(t, err)
}

func TestReassignUpdatesIndex(t *testing.T) {
	st := NewStore(buildPathSchema())
	v1 := st.AddPart("V")
	v2 := st.AddPart("V")
	e1 := st.AddPart("E")

	require.NoError(t, st.SetSubpart(e1, "src", v1))
	incident, _ := st.Incident(v1, "src")
	assert.Equal(t, []int{e1}, incident)

	require.NoError(t, st.SetSubpart(e1, "src", v2))
	incidentOld, _ := st.Incident(v1, "src")
	assert.Empty(t, incidentOld)
	incidentNew, _ := st.Incident(v2, "src")
	assert.Equal(t, []int{e1}, incidentNew)
}
