package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCapabilities_StringEntries(t *testing.T) {
	doc := `{
		"product": "ATL06",
		"version": "006",
		"variables": [
			"ancillary_data/atlas_sdp_gps_epoch",
			"gt1l/land_ice_segments/latitude"
		]
	}`
	caps, err := ParseCapabilities([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "ATL06", caps.Product)
	assert.Equal(t, "006", caps.Version)
	assert.Equal(t, []string{
		"ancillary_data/atlas_sdp_gps_epoch",
		"gt1l/land_ice_segments/latitude",
	}, caps.Paths)
}

func TestParseCapabilities_ObjectEntries(t *testing.T) {
	doc := `{
		"product": "ATL09",
		"variables": [
			{"path": "profile_1/high_rate/latitude", "unit": "degrees"},
			{"path": "profile_1/high_rate/longitude"}
		]
	}`
	caps, err := ParseCapabilities([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, caps.Version)
	assert.Equal(t, []string{
		"profile_1/high_rate/latitude",
		"profile_1/high_rate/longitude",
	}, caps.Paths)
}

func TestParseCapabilities_Errors(t *testing.T) {
	_, err := ParseCapabilities([]byte(`{not json`))
	assert.Error(t, err)

	_, err = ParseCapabilities([]byte(`{"product": "ATL06", "variables": []}`))
	assert.Error(t, err, "a catalog with no variables is useless")

	_, err = ParseCapabilities([]byte(`{"variables": [{"name": "no path member"}]}`))
	assert.Error(t, err)

	_, err = ParseCapabilities([]byte(`{"variables": [42]}`))
	assert.Error(t, err)
}

func TestReadPathsFile(t *testing.T) {
	src := `# ATL06 offline listing
ancillary_data/atlas_sdp_gps_epoch

gt1l/land_ice_segments/latitude
`
	path := filepath.Join(t.TempDir(), "catalog.txt")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	paths, err := ReadPathsFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ancillary_data/atlas_sdp_gps_epoch",
		"gt1l/land_ice_segments/latitude",
	}, paths)

	_, err = ReadPathsFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
