package product

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Builtins(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, []string{"ATL06", "ATL07", "ATL08", "ATL09", "ATL10"}, reg.IDs())

	defaults, err := reg.DefaultVariables("ATL06")
	require.NoError(t, err)
	assert.Contains(t, defaults, "latitude")
	assert.Contains(t, defaults, "h_li")

	// Atmosphere product uses profiles, not ground tracks.
	assert.Equal(t, []string{"profile_1", "profile_2", "profile_3"}, reg.Branches("ATL09"))
	assert.Equal(t, []string{"gt1l", "gt1r", "gt2l", "gt2r", "gt3l", "gt3r"}, reg.Branches("ATL06"))

	mandatory := reg.MandatoryPaths("ATL06")
	assert.Contains(t, mandatory, "orbit_info/sc_orient")
	assert.Contains(t, mandatory, "ancillary_data/atlas_sdp_gps_epoch")
	assert.Len(t, mandatory, 9)
}

func TestRegistry_UnknownProduct(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.DefaultVariables("ATL99")
	assert.ErrorIs(t, err, ErrUnknownProduct)

	// Branch and mandatory lookups degrade to shared fallbacks.
	assert.Equal(t, []string{"gt1l", "gt1r", "gt2l", "gt2r", "gt3l", "gt3r"}, reg.Branches("ATL99"))
	assert.Contains(t, reg.MandatoryPaths("ATL99"), "orbit_info/sc_orient")
}

func TestRegistry_LoadFileMergesAndOverrides(t *testing.T) {
	src := `
product "ATL99" {
  defaults = ["latitude", "longitude"]
}

product "ATL06" {
  branches  = ["gt1l"]
  defaults  = ["h_li"]
  mandatory = ["orbit_info/sc_orient"]
}
`
	path := filepath.Join(t.TempDir(), "extra.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	reg := NewRegistry()
	require.NoError(t, reg.LoadFile(path))

	// New product picks up the shared fallbacks it did not set.
	defaults, err := reg.DefaultVariables("ATL99")
	require.NoError(t, err)
	assert.Equal(t, []string{"latitude", "longitude"}, defaults)
	assert.Equal(t, []string{"gt1l", "gt1r", "gt2l", "gt2r", "gt3l", "gt3r"}, reg.Branches("ATL99"))
	assert.Len(t, reg.MandatoryPaths("ATL99"), 9)

	// Re-declared product replaces the built-in entry wholesale.
	defaults, err = reg.DefaultVariables("ATL06")
	require.NoError(t, err)
	assert.Equal(t, []string{"h_li"}, defaults)
	assert.Equal(t, []string{"gt1l"}, reg.Branches("ATL06"))
	assert.Equal(t, []string{"orbit_info/sc_orient"}, reg.MandatoryPaths("ATL06"))
}

func TestRegistry_LoadFileErrors(t *testing.T) {
	reg := NewRegistry()
	assert.Error(t, reg.LoadFile(filepath.Join(t.TempDir(), "missing.hcl")))

	bad := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(bad, []byte(`product "X" {`), 0o644))
	assert.Error(t, reg.LoadFile(bad))
}
