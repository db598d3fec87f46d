// internal/types/trade.go
package types

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// MicroUnitScale - количество знаков неявной фиксированной точки:
// целые суммы из индексатора интерпретируются как значения * 10^6.
const MicroUnitScale = 6

// FromMicro переводит сумму в микроединицах в десятичное значение.
// Единственная точка преобразования масштаба во всем боте.
func FromMicro(v int64) decimal.Decimal {
	return decimal.New(v, -MicroUnitScale)
}

// BlockRef - ссылка на блок индексатора
type BlockRef struct {
	Block   int64  `json:"block"`
	BlockTS string `json:"block_ts"`
}

// Token - токен из оракула/рынка
type Token struct {
	ID     *int64 `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Display возвращает отображаемое имя токена: символ, иначе имя, иначе "?"
func (t *Token) Display() string {
	if t == nil {
		return "?"
	}
	if t.Symbol != "" {
		return t.Symbol
	}
	if t.Name != "" {
		return t.Name
	}
	return "?"
}

// Market - перп-рынок сделки
type Market struct {
	MarketID   json.Number `json:"marketId"`
	BaseToken  *Token      `json:"baseToken"`
	QuoteToken *Token      `json:"quoteToken"`
}

// TradeState - расчетное состояние открытой позиции.
// Все суммы в микроединицах, кроме PnlPct.
type TradeState struct {
	PositionValue    *int64   `json:"positionValue"`
	LiquidationPrice *int64   `json:"liquidationPrice"`
	PnlCollateral    *int64   `json:"pnlCollateral"`
	PnlPct           *float64 `json:"pnlPct"`
}

// Trade - сделка трейдера из индексатора.
// Закрытая сделка (IsOpen == false) - терминальный снимок и больше не меняется;
// открытая при повторной выборке приходит с тем же id и свежим состоянием.
type Trade struct {
	ID                   json.Number      `json:"id"`
	Trader               string           `json:"trader"`
	IsOpen               bool             `json:"isOpen"`
	IsLong               bool             `json:"isLong"`
	Leverage             decimal.Decimal  `json:"leverage"`
	OpenPrice            decimal.Decimal  `json:"openPrice"`
	ClosePrice           *decimal.Decimal `json:"closePrice"`
	OpenCollateralAmount *int64           `json:"openCollateralAmount"`
	CollateralAmount     *int64           `json:"collateralAmount"`
	OpenBlock            *BlockRef        `json:"openBlock"`
	CloseBlock           *BlockRef        `json:"closeBlock"`
	State                *TradeState      `json:"state"`
	Market               *Market          `json:"perpBorrowing"`
}

// BaseSymbol возвращает символ базового актива сделки ("" если нет)
func (t *Trade) BaseSymbol() string {
	if t.Market == nil || t.Market.BaseToken == nil {
		return ""
	}
	return t.Market.BaseToken.Symbol
}

// FilterTradesByBase оставляет сделки с заданным базовым активом.
// Сравнение без учета регистра; порядок выживших сделок сохраняется.
func FilterTradesByBase(trades []Trade, baseSymbol string) []Trade {
	if baseSymbol == "" {
		return trades
	}

	filtered := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if strings.EqualFold(t.BaseSymbol(), baseSymbol) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// SplitByOpen разделяет сделки на открытые и закрытые, сохраняя порядок
func SplitByOpen(trades []Trade) (open, closed []Trade) {
	for _, t := range trades {
		if t.IsOpen {
			open = append(open, t)
		} else {
			closed = append(closed, t)
		}
	}
	return open, closed
}
