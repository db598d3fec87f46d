// internal/types/price.go
package types

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// PopularTokens - токены, которые показываются первыми, в этом порядке
var PopularTokens = []string{"BTC", "ETH", "USDT", "USDC", "NIBI", "ATOM", "SOL", "BNB", "AVAX", "MATIC"}

// Токен без числового id сортируется после всех реальных id
const missingTokenID = 9999

// Price - цена токена из оракула. PriceUsd == nil означает "цена недоступна".
type Price struct {
	PriceUsd         *decimal.Decimal `json:"priceUsd"`
	Token            *Token           `json:"token"`
	LastUpdatedBlock *BlockRef        `json:"lastUpdatedBlock"`
}

// Symbol возвращает символ токена в верхнем регистре ("" если нет)
func (p *Price) Symbol() string {
	if p.Token == nil {
		return ""
	}
	return strings.ToUpper(p.Token.Symbol)
}

// sortKey - ключ сортировки: популярные токены в порядке списка,
// остальные после них по возрастанию id
func (p *Price) sortKey() (group, rank int64) {
	for i, symbol := range PopularTokens {
		if p.Symbol() == symbol {
			return 0, int64(i)
		}
	}

	id := int64(missingTokenID)
	if p.Token != nil && p.Token.ID != nil {
		id = *p.Token.ID
	}
	return 1, id
}

// SortPrices возвращает копию списка в порядке показа:
// популярные токены первыми, затем остальные по возрастанию id токена
func SortPrices(prices []Price) []Price {
	sorted := make([]Price, len(prices))
	copy(sorted, prices)

	sort.SliceStable(sorted, func(i, j int) bool {
		gi, ri := sorted[i].sortKey()
		gj, rj := sorted[j].sortKey()
		if gi != gj {
			return gi < gj
		}
		return ri < rj
	})

	return sorted
}
