package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverageParam(t *testing.T) {
	assert.Equal(t, "", CoverageParam(nil))
	assert.Equal(t, "a/b", CoverageParam([]string{"a/b"}))
	assert.Equal(t, "a/b,c/d/e", CoverageParam([]string{"a/b", "c/d/e"}))
}

func TestNewSubsetRequest(t *testing.T) {
	req := NewSubsetRequest("ATL06", "006", []string{"orbit_info/sc_orient", "gt1l/land_ice_segments/latitude"})
	assert.Equal(t, "ATL06", req.Product)
	assert.Equal(t, "006", req.Version)
	assert.Equal(t, "orbit_info/sc_orient,gt1l/land_ice_segments/latitude", req.Coverage)
}
