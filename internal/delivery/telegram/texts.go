// internal/delivery/telegram/texts.go
package telegram

// Статические тексты бота
const (
	usageText = "Welcome to SAI Bot!\n\n" +
		"Commands:\n" +
		"/trades <address> [open|closed] [btc] – View trades\n" +
		"/prices [next] – Show top 10 oracle prices\n" +
		"/price <symbol> – Get price for specific token\n" +
		"/help – Show this help message\n"

	tradesUsageText = "Usage: /trades <wallet_address> [open|closed] [btc]\n\n" +
		"Supports both Nibiru and Ethereum addresses:\n" +
		"• Nibiru: nibiru1abc123...\n" +
		"• Ethereum: 0x1234abcd...\n\n" +
		"Examples:\n" +
		"/trades nibiru1abc123...\n" +
		"/trades 0x1234abcd...\n" +
		"/trades nibiru1abc123... open\n" +
		"/trades 0x1234abcd... closed\n" +
		"/trades nibiru1abc123... btc\n" +
		"/trades 0x1234abcd... open btc"

	priceUsageText = "Usage: /price <symbol>\n\n" +
		"Example: /price btc\n" +
		"Example: /price eth"

	unknownCommandText = "❓ Unknown command. Use /help for the list of commands"

	expiredTradesText = "Trades data expired. Please run /trades again."
	expiredPricesText = "Prices data expired. Please run /prices again."
)
