package bot

// CatalogItem binds a callback key to an account mutation of a fixed amount.
type CatalogItem struct {
	Key       string
	Label     string
	AccountID uint
	Amount    int64
}

// Purchase catalog behind /gasto. Amounts are in units of the account currency.
var purchaseCatalog = []CatalogItem{
	{Key: "calzado", Label: "👟 $ 1500 - Calzado", AccountID: accountPesosID, Amount: 1500},
	{Key: "medialuna", Label: "🍕 $ 90 - MediaLuna", AccountID: accountPesosID, Amount: 90},
	{Key: "monitor", Label: "📺 U$S 200 - Monitor", AccountID: accountDolaresID, Amount: 200},
	{Key: "psplus", Label: "🎮 U$S 40 - PsPlus", AccountID: accountDolaresID, Amount: 40},
}

// Deposit catalog behind /cargar.
var depositCatalog = []CatalogItem{
	{Key: "500p", Label: "📥 $ 500", AccountID: accountPesosID, Amount: 500},
	{Key: "1000p", Label: "📥 $ 1000", AccountID: accountPesosID, Amount: 1000},
	{Key: "25d", Label: "📥 U$S 25", AccountID: accountDolaresID, Amount: 25},
	{Key: "100d", Label: "📥 U$S 100", AccountID: accountDolaresID, Amount: 100},
}

func findCatalogItem(catalog []CatalogItem, key string) (CatalogItem, bool) {
	for _, item := range catalog {
		if item.Key == key {
			return item, true
		}
	}
	return CatalogItem{}, false
}
