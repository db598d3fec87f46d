// internal/delivery/telegram/constants.go
package telegram

import "strconv"

// Дорожки пагинации сделок
const (
	trackOpen   = "open"
	trackClosed = "closed"
)

// Callback payload'ы
const (
	callbackSep        = ":"
	tradesNextPrefix   = "trades_next"
	pricesNextCallback = "prices_next"
)

// Дискриминатор ленты цен в хранилище сессий
const pricesDiscriminator = "prices"

// Ключ ленты цен в Redis кэше
const priceFeedCacheKey = "prices:feed"

// tradesDiscriminator - ключ дорожки сделок в хранилище сессий
func tradesDiscriminator(track, address string) string {
	return "trades_" + track + "_" + address
}

// tradesNextPayload - payload кнопки "Next →" для сделок:
// trades_next:<address>:<track>:<page>
func tradesNextPayload(address, track string, page int) string {
	return tradesNextPrefix + callbackSep + address + callbackSep + track + callbackSep + strconv.Itoa(page)
}

// nextKeyboard - клавиатура с единственной кнопкой "Next →"
func nextKeyboard(callbackData string) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{
		InlineKeyboard: [][]InlineKeyboardButton{
			{
				{Text: "Next →", CallbackData: callbackData},
			},
		},
	}
}
