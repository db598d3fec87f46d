// internal/delivery/telegram/formatters/trade.go
package formatters

import (
	"fmt"
	"strings"

	"sai-trades-bot/internal/types"
)

const tradeSeparator = "━━━━━━━━━━━━━━━━━━━━"

// FormatOpenTrade форматирует открытую сделку в блок сообщения
func FormatOpenTrade(t types.Trade) string {
	lines := []string{
		tradeSeparator,
		fmt.Sprintf("Trade #%s | ✅ OPEN", tradeID(t)),
		marketLine(t),
		sideLine(t),
		fmt.Sprintf("Entry Price: %s", t.OpenPrice.String()),
	}

	if t.State != nil {
		if t.State.LiquidationPrice != nil && *t.State.LiquidationPrice != 0 {
			lines = append(lines, fmt.Sprintf("Liquidation Price: %d", *t.State.LiquidationPrice))
		}

		if t.State.PositionValue != nil {
			lines = append(lines, fmt.Sprintf("Position Value: $%s", formatMicro(*t.State.PositionValue)))
		}

		if t.State.PnlCollateral != nil {
			sign := ""
			if *t.State.PnlCollateral >= 0 {
				sign = "+"
			}
			lines = append(lines, fmt.Sprintf("PnL: %s$%s", sign, formatMicro(*t.State.PnlCollateral)))
		}

		if t.State.PnlPct != nil {
			sign := ""
			if *t.State.PnlPct >= 0 {
				sign = "+"
			}
			lines = append(lines, fmt.Sprintf("PnL %%: %s%.2f%%", sign, *t.State.PnlPct))
		}
	}

	if t.OpenCollateralAmount != nil && *t.OpenCollateralAmount != 0 {
		lines = append(lines, fmt.Sprintf("Collateral: %s", formatMicro(*t.OpenCollateralAmount)))
	}
	if t.CollateralAmount != nil && *t.CollateralAmount != 0 &&
		(t.OpenCollateralAmount == nil || *t.CollateralAmount != *t.OpenCollateralAmount) {
		lines = append(lines, fmt.Sprintf("Current Collateral: %s", formatMicro(*t.CollateralAmount)))
	}

	if t.OpenBlock != nil && t.OpenBlock.BlockTS != "" {
		lines = append(lines, fmt.Sprintf("Opened: %s", t.OpenBlock.BlockTS))
	}

	return strings.Join(lines, "\n")
}

// FormatClosedTrade форматирует закрытую сделку в блок сообщения
func FormatClosedTrade(t types.Trade) string {
	lines := []string{
		tradeSeparator,
		fmt.Sprintf("Trade #%s | ❌ CLOSED", tradeID(t)),
		marketLine(t),
		sideLine(t),
		fmt.Sprintf("Entry Price: %s", t.OpenPrice.String()),
	}

	if t.ClosePrice != nil && !t.ClosePrice.IsZero() {
		lines = append(lines, fmt.Sprintf("Exit Price: %s", t.ClosePrice.String()))
	}

	if t.OpenCollateralAmount != nil && *t.OpenCollateralAmount != 0 {
		lines = append(lines, fmt.Sprintf("Collateral: %s", formatMicro(*t.OpenCollateralAmount)))
	}

	if t.OpenBlock != nil && t.OpenBlock.BlockTS != "" {
		lines = append(lines, fmt.Sprintf("Opened: %s", t.OpenBlock.BlockTS))
	}
	if t.CloseBlock != nil && t.CloseBlock.BlockTS != "" {
		lines = append(lines, fmt.Sprintf("Closed: %s", t.CloseBlock.BlockTS))
	}

	return strings.Join(lines, "\n")
}

func tradeID(t types.Trade) string {
	if t.ID == "" {
		return "?"
	}
	return t.ID.String()
}

func marketLine(t types.Trade) string {
	base, quote := "?", "?"
	marketID := "?"
	if t.Market != nil {
		base = t.Market.BaseToken.Display()
		quote = t.Market.QuoteToken.Display()
		if t.Market.MarketID != "" {
			marketID = t.Market.MarketID.String()
		}
	}
	return fmt.Sprintf("Market: %s/%s (ID: %s)", base, quote, marketID)
}

func sideLine(t types.Trade) string {
	side := "🔴 Short"
	if t.IsLong {
		side = "🟢 Long"
	}
	return fmt.Sprintf("Side: %s | Leverage: %sx", side, t.Leverage.String())
}

// formatMicro переводит микроединицы в строку с двумя знаками
// и разделителями тысяч
func formatMicro(v int64) string {
	return groupThousands(types.FromMicro(v).StringFixed(2))
}
