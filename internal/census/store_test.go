package census

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionInsert(t *testing.T) {
	c := make(Collection)
	goa := Record{Schema: SchemaStateCode, Code: &CodeRecord{SerialNumber: "12", RegionName: "Goa", TaxIdentifier: "30", RegionCode: "GA"}}

	require.NoError(t, c.Insert("GA", goa))
	assert.Len(t, c, 1)
	assert.Equal(t, goa, c["GA"])
}

func TestCollectionInsert_DuplicateKeepsFirst(t *testing.T) {
	c := make(Collection)
	first := Record{Schema: SchemaStateCode, Code: &CodeRecord{RegionName: "Goa", RegionCode: "GA"}}
	second := Record{Schema: SchemaStateCode, Code: &CodeRecord{RegionName: "Goa North", RegionCode: "GA"}}

	require.NoError(t, c.Insert("GA", first))
	err := c.Insert("GA", second)

	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, "Goa", c["GA"].Code.RegionName)
}

func TestCollectionKeys_Sorted(t *testing.T) {
	c := Collection{"WB": {}, "AN": {}, "GA": {}}
	assert.Equal(t, []string{"AN", "GA", "WB"}, c.Keys())
}
