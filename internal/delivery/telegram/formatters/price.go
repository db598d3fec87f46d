// internal/delivery/telegram/formatters/price.go
package formatters

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"sai-trades-bot/internal/types"
)

var (
	one     = decimal.NewFromInt(1)
	oneCent = decimal.RequireFromString("0.01")
)

// FormatPriceList форматирует страницу ленты цен.
// end и total берутся из пагинации по всему отсортированному списку.
func FormatPriceList(items []types.Price, end, total int) string {
	if total == 0 {
		return "No prices found."
	}

	lines := []string{fmt.Sprintf("💰 Oracle Prices (Top %d of %d)\n", end, total)}
	for _, p := range items {
		if p.PriceUsd == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("• %s: %s", priceSymbol(p), formatUSD(*p.PriceUsd)))
	}

	return strings.Join(lines, "\n")
}

// FormatSinglePrice форматирует ответ на /price <symbol>
func FormatSinglePrice(p types.Price) string {
	symbol := p.Token.Display()

	if p.PriceUsd == nil {
		return fmt.Sprintf("Price not available for %s", symbol)
	}

	return fmt.Sprintf("💰 %s: %s", symbol, formatUSD(*p.PriceUsd))
}

// priceSymbol - имя токена в строке ленты: символ, иначе имя, иначе id
func priceSymbol(p types.Price) string {
	if p.Token != nil {
		if p.Token.Symbol != "" {
			return p.Token.Symbol
		}
		if p.Token.Name != "" {
			return p.Token.Name
		}
		if p.Token.ID != nil {
			return fmt.Sprintf("Token %d", *p.Token.ID)
		}
	}
	return "Token ?"
}

// formatUSD печатает цену с точностью, зависящей от величины:
// крупные с двумя знаками и разделителями тысяч, мелкие точнее
func formatUSD(d decimal.Decimal) string {
	switch {
	case d.GreaterThanOrEqual(one):
		return "$" + groupThousands(d.StringFixed(2))
	case d.GreaterThanOrEqual(oneCent):
		return "$" + d.StringFixed(4)
	default:
		return "$" + d.StringFixed(8)
	}
}
