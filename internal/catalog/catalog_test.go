package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsMatchContractOrder(t *testing.T) {
	require.Equal(t, 4, Count())

	for i, item := range Items {
		assert.Equal(t, uint64(i+1), item.ID, "item IDs must follow contract array order")
		assert.Equal(t, uint64(3), item.MaxSupply)
		assert.True(t, strings.HasPrefix(item.ImageURI, "ipfs://"))
		assert.True(t, strings.HasPrefix(item.MetadataURI, "ipfs://"))
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.Attributes)
	}
}

func TestItemByID(t *testing.T) {
	item, ok := ItemByID(2)
	require.True(t, ok)
	assert.Equal(t, "DMA Studio Genesis #2", item.Name)
	assert.Equal(t, "Epic", item.Rarity)

	_, ok = ItemByID(0)
	assert.False(t, ok)
	_, ok = ItemByID(5)
	assert.False(t, ok)
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(1))
	assert.True(t, IsValidID(4))
	assert.False(t, IsValidID(0))
	assert.False(t, IsValidID(5))
}
