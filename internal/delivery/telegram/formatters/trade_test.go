// internal/delivery/telegram/formatters/trade_test.go
package formatters

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"sai-trades-bot/internal/types"
)

func int64p(v int64) *int64 { return &v }

func float64p(v float64) *float64 { return &v }
func decp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFormatOpenTradeFull(t *testing.T) {
	trade := types.Trade{
		ID:                   "217",
		IsOpen:               true,
		IsLong:               true,
		Leverage:             decimal.RequireFromString("5"),
		OpenPrice:            decimal.RequireFromString("64123.5"),
		OpenCollateralAmount: int64p(1_000_000_000),
		CollateralAmount:     int64p(1_250_000_000),
		OpenBlock:            &types.BlockRef{Block: 100, BlockTS: "2025-06-01T12:00:00Z"},
		State: &types.TradeState{
			PositionValue:    int64p(5_125_000_000),
			LiquidationPrice: int64p(51234),
			PnlCollateral:    int64p(250_000_000),
			PnlPct:           float64p(25.0),
		},
		Market: &types.Market{
			MarketID:   "3",
			BaseToken:  &types.Token{Symbol: "BTC"},
			QuoteToken: &types.Token{Symbol: "USDT"},
		},
	}

	got := FormatOpenTrade(trade)

	wantLines := []string{
		"Trade #217 | ✅ OPEN",
		"Market: BTC/USDT (ID: 3)",
		"Side: 🟢 Long | Leverage: 5x",
		"Entry Price: 64123.5",
		"Liquidation Price: 51234",
		"Position Value: $5,125.00",
		"PnL: +$250.00",
		"PnL %: +25.00%",
		"Collateral: 1,000.00",
		"Current Collateral: 1,250.00",
		"Opened: 2025-06-01T12:00:00Z",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("нет строки %q в:\n%s", line, got)
		}
	}
}

func TestFormatOpenTradeNegativePnl(t *testing.T) {
	trade := types.Trade{
		ID:        "1",
		Leverage:  decimal.RequireFromString("2"),
		OpenPrice: decimal.RequireFromString("100"),
		State: &types.TradeState{
			PnlCollateral: int64p(-12_500_000),
			PnlPct:        float64p(-3.75),
		},
	}

	got := FormatOpenTrade(trade)

	if !strings.Contains(got, "PnL: $-12.50") {
		t.Errorf("отрицательный PnL без плюса, получено:\n%s", got)
	}
	if !strings.Contains(got, "PnL %: -3.75%") {
		t.Errorf("отрицательный PnL %% без плюса, получено:\n%s", got)
	}
}

// Сделка с минимумом полей не должна ронять форматтер
func TestFormatOpenTradeBare(t *testing.T) {
	got := FormatOpenTrade(types.Trade{})

	wantLines := []string{
		"Trade #? | ✅ OPEN",
		"Market: ?/? (ID: ?)",
		"Side: 🔴 Short | Leverage: 0x",
		"Entry Price: 0",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("нет строки %q в:\n%s", line, got)
		}
	}
	if strings.Contains(got, "Liquidation") || strings.Contains(got, "PnL") ||
		strings.Contains(got, "Collateral") || strings.Contains(got, "Opened") {
		t.Errorf("необязательные строки не должны появляться:\n%s", got)
	}
}

func TestFormatClosedTrade(t *testing.T) {
	trade := types.Trade{
		ID:                   "88",
		IsLong:               false,
		Leverage:             decimal.RequireFromString("10"),
		OpenPrice:            decimal.RequireFromString("2301.7"),
		ClosePrice:           decp("2150.2"),
		OpenCollateralAmount: int64p(500_000_000),
		OpenBlock:            &types.BlockRef{BlockTS: "2025-05-01T00:00:00Z"},
		CloseBlock:           &types.BlockRef{BlockTS: "2025-05-02T00:00:00Z"},
		Market: &types.Market{
			MarketID:   "1",
			BaseToken:  &types.Token{Symbol: "ETH"},
			QuoteToken: &types.Token{Symbol: "USDT"},
		},
	}

	got := FormatClosedTrade(trade)

	wantLines := []string{
		"Trade #88 | ❌ CLOSED",
		"Market: ETH/USDT (ID: 1)",
		"Side: 🔴 Short | Leverage: 10x",
		"Entry Price: 2301.7",
		"Exit Price: 2150.2",
		"Collateral: 500.00",
		"Opened: 2025-05-01T00:00:00Z",
		"Closed: 2025-05-02T00:00:00Z",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("нет строки %q в:\n%s", line, got)
		}
	}
}

func TestFormatClosedTradeZeroExitHidden(t *testing.T) {
	trade := types.Trade{
		ID:         "5",
		Leverage:   decimal.RequireFromString("1"),
		OpenPrice:  decimal.RequireFromString("10"),
		ClosePrice: decp("0"),
	}

	got := FormatClosedTrade(trade)

	if strings.Contains(got, "Exit Price") {
		t.Errorf("нулевая цена выхода не должна отображаться:\n%s", got)
	}
}
