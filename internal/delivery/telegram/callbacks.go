// internal/delivery/telegram/callbacks.go
package telegram

import (
	"strconv"
	"strings"

	"sai-trades-bot/internal/core/pagination"
	"sai-trades-bot/internal/delivery/telegram/formatters"
	"sai-trades-bot/pkg/logger"
)

// handleCallback обрабатывает нажатие inline-кнопки.
// Подтверждение отправляется до обработки, чтобы убрать "часики" у клиента.
func (r *Router) handleCallback(query *CallbackQuery) {
	if query == nil || query.Message == nil {
		return
	}

	if err := r.channel.AnswerCallback(query.ID); err != nil {
		logger.Warn("⚠️ Не удалось подтвердить callback %s: %v", query.ID, err)
	}

	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID
	data := query.Data

	switch {
	case data == pricesNextCallback:
		r.handlePricesCallback(chatID, messageID)
	case strings.HasPrefix(data, tradesNextPrefix+callbackSep):
		r.handleTradesCallback(chatID, messageID, data)
	default:
		logger.Debug("🔕 Неизвестный callback: %q", data)
	}
}

// handleTradesCallback листает страницу сделок по payload
// trades_next:<address>:<open|closed>:<page>
func (r *Router) handleTradesCallback(chatID int64, messageID int, data string) {
	parts := strings.SplitN(data, callbackSep, 4)
	if len(parts) != 4 {
		logger.Debug("🔕 Некорректный callback сделок: %q", data)
		return
	}

	address := parts[1]
	track := parts[2]
	if track != trackOpen && track != trackClosed {
		logger.Debug("🔕 Неизвестная дорожка в callback: %q", data)
		return
	}

	page, err := strconv.Atoi(parts[3])
	if err != nil || page < 0 {
		logger.Debug("🔕 Некорректный номер страницы в callback: %q", data)
		return
	}

	entry, ok := r.trades.Get(chatID, tradesDiscriminator(track, address))
	if !ok {
		if err := r.channel.EditMessage(chatID, messageID, expiredTradesText, nil); err != nil {
			logger.Warn("⚠️ Не удалось обновить сообщение %d: %v", messageID, err)
		}
		return
	}

	r.trades.SetPage(chatID, tradesDiscriminator(track, address), page)

	if err := r.sendTradesPage(chatID, messageID, address, track, entry.Items, page); err != nil {
		logger.Warn("⚠️ Не удалось отправить страницу сделок: %v", err)
	}
}

// handlePricesCallback листает следующую страницу сохраненной ленты цен
func (r *Router) handlePricesCallback(chatID int64, messageID int) {
	entry, ok := r.prices.Get(chatID, pricesDiscriminator)
	if !ok {
		if err := r.channel.EditMessage(chatID, messageID, expiredPricesText, nil); err != nil {
			logger.Warn("⚠️ Не удалось обновить сообщение %d: %v", messageID, err)
		}
		return
	}

	page := entry.LastPage + 1
	r.prices.SetPage(chatID, pricesDiscriminator, page)

	pg := pagination.Paginate(entry.Items, page, r.cfg.PricesPageSize)
	text := formatters.FormatPriceList(pg.Items, pg.End, pg.Total)

	var keyboard *InlineKeyboardMarkup
	if pg.HasMore {
		keyboard = nextKeyboard(pricesNextCallback)
	}

	if err := r.channel.EditMessage(chatID, messageID, text, keyboard); err != nil {
		logger.Warn("⚠️ Не удалось обновить сообщение %d: %v", messageID, err)
	}
}
