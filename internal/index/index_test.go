package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polarbytes/floe/internal/varpath"
)

var sampleCatalog = []string{
	"ancillary_data/atlas_sdp_gps_epoch",
	"ancillary_data/start_delta_time",
	"gt1l/land_ice_segments/delta_time",
	"gt1l/land_ice_segments/latitude",
	"gt1l/land_ice_segments/longitude",
	"gt1l/land_ice_segments/ground_track/x_atc",
	"gt1r/land_ice_segments/latitude",
	"gt1r/land_ice_segments/longitude",
	"gt2l/land_ice_segments/latitude",
	"gt3r/land_ice_segments/longitude",
	"orbit_info/sc_orient",
}

func buildSample(t *testing.T) *Index {
	t.Helper()
	parser := varpath.NewParser([]string{"gt1l", "gt1r", "gt2l", "gt2r", "gt3l", "gt3r"})
	ix, err := Build(varpath.NewCatalog(sampleCatalog), parser)
	require.NoError(t, err)
	return ix
}

func TestBuild_MalformedPathAborts(t *testing.T) {
	parser := varpath.NewParser(nil)
	_, err := Build(varpath.NewCatalog([]string{"ok/path", "broken//path"}), parser)
	require.Error(t, err)
	var malformed *varpath.MalformedPathError
	assert.ErrorAs(t, err, &malformed)
}

func TestLookup_UnsetSpecMatchesEverything(t *testing.T) {
	ix := buildSample(t)
	paths, err := ix.Lookup(FilterSpec{})
	require.NoError(t, err)
	assert.Equal(t, sampleCatalog, paths, "catalog order preserved")
}

func TestLookup_SingleVariable(t *testing.T) {
	ix := buildSample(t)
	paths, err := ix.Lookup(FilterSpec{Variables: []string{"latitude"}})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"gt1l/land_ice_segments/latitude",
		"gt1r/land_ice_segments/latitude",
		"gt2l/land_ice_segments/latitude",
	}, paths)
}

func TestLookup_ORWithinDimension(t *testing.T) {
	ix := buildSample(t)
	paths, err := ix.Lookup(FilterSpec{Branches: []string{"gt2l", "gt3r"}})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"gt2l/land_ice_segments/latitude",
		"gt3r/land_ice_segments/longitude",
	}, paths)
}

func TestLookup_ANDAcrossDimensions(t *testing.T) {
	ix := buildSample(t)
	paths, err := ix.Lookup(FilterSpec{
		Variables: []string{"latitude"},
		Branches:  []string{"gt1l"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"gt1l/land_ice_segments/latitude"}, paths)
}

func TestLookup_KeywordMatchesAnySegment(t *testing.T) {
	ix := buildSample(t)
	paths, err := ix.Lookup(FilterSpec{Keywords: []string{"ground_track"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"gt1l/land_ice_segments/ground_track/x_atc"}, paths)

	paths, err = ix.Lookup(FilterSpec{Keywords: []string{"ancillary_data"}})
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestLookup_UnknownValueMatchesNothing(t *testing.T) {
	ix := buildSample(t)
	paths, err := ix.Lookup(FilterSpec{Variables: []string{"no_such_variable"}})
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestLookup_EmptyDimensionIsIntrospection(t *testing.T) {
	ix := buildSample(t)
	_, err := ix.Lookup(FilterSpec{Keywords: []string{}})
	require.Error(t, err)

	var empty *EmptyDimensionError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, DimKeywords, empty.Dimension)
	assert.Equal(t, ix.Keywords(), empty.Valid, "carries the full sorted token set")

	_, err = ix.Lookup(FilterSpec{Variables: []string{}})
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, DimVariables, empty.Dimension)
	assert.Contains(t, empty.Valid, "latitude")
}

func TestValidValues(t *testing.T) {
	ix := buildSample(t)

	vars, err := ix.ValidValues(DimVariables)
	require.NoError(t, err)
	assert.Contains(t, vars, "latitude")
	assert.Contains(t, vars, "sc_orient")

	branches, err := ix.ValidValues(DimBranches)
	require.NoError(t, err)
	assert.Equal(t, []string{"gt1l", "gt1r", "gt2l", "gt3r"}, branches)

	keywords, err := ix.ValidValues(DimKeywords)
	require.NoError(t, err)
	assert.Equal(t, []string{"ancillary_data", "ground_track", "land_ice_segments", "orbit_info"}, keywords)

	_, err = ix.ValidValues(Dimension("bogus"))
	assert.Error(t, err)
}

func TestMatches_Standalone(t *testing.T) {
	p := varpath.Path{
		Variable: "latitude",
		Branch:   "gt1l",
		Keywords: []string{"land_ice_segments"},
	}

	assert.True(t, FilterSpec{}.Matches(p), "unset spec matches everything")
	assert.True(t, FilterSpec{Variables: []string{"latitude"}}.Matches(p))
	assert.True(t, FilterSpec{
		Variables: []string{"latitude"},
		Branches:  []string{"gt1l", "gt1r"},
		Keywords:  []string{"land_ice_segments"},
	}.Matches(p))
	assert.False(t, FilterSpec{Branches: []string{"gt1r"}}.Matches(p))
	assert.False(t, FilterSpec{Keywords: []string{"sea_ice"}}.Matches(p))
	assert.False(t, FilterSpec{Keywords: []string{}}.Matches(p),
		"explicit empty matches nothing without an index")
}

func TestOrdinalsOf_SkipsUnknownPaths(t *testing.T) {
	ix := buildSample(t)
	bm := ix.OrdinalsOf([]string{"orbit_info/sc_orient", "not/in/catalog"})
	assert.Equal(t, []string{"orbit_info/sc_orient"}, ix.PathsOf(bm))
}
