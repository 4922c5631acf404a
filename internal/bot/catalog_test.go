package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCatalogItem(t *testing.T) {
	item, ok := findCatalogItem(purchaseCatalog, "calzado")
	require.True(t, ok)
	assert.Equal(t, accountPesosID, item.AccountID)
	assert.Equal(t, int64(1500), item.Amount)

	item, ok = findCatalogItem(depositCatalog, "100d")
	require.True(t, ok)
	assert.Equal(t, accountDolaresID, item.AccountID)
	assert.Equal(t, int64(100), item.Amount)

	_, ok = findCatalogItem(purchaseCatalog, "yate")
	assert.False(t, ok)
}

func TestCatalogAmountsArePositive(t *testing.T) {
	for _, item := range append(append([]CatalogItem{}, purchaseCatalog...), depositCatalog...) {
		assert.Positive(t, item.Amount, "item %s", item.Key)
		assert.NotEmpty(t, item.Label, "item %s", item.Key)
	}
}

func TestCatalogKeyboardLayout(t *testing.T) {
	markup := catalogKeyboard(purchaseCatalog, cbPurchasePrefix)

	require.Len(t, markup.InlineKeyboard, 2)
	assert.Len(t, markup.InlineKeyboard[0], 2)
	assert.Len(t, markup.InlineKeyboard[1], 2)

	first := markup.InlineKeyboard[0][0]
	require.NotNil(t, first.CallbackData)
	assert.Equal(t, "gasto:calzado", *first.CallbackData)
}
