// internal/delivery/telegram/bot.go
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sai-trades-bot/pkg/logger"
)

// TelegramBot - клиент Telegram Bot API
type TelegramBot struct {
	httpClient *http.Client
	pollClient *http.Client // отдельный клиент с запасом под long polling
	baseURL    string
}

// sendMessageRequest - тело запроса sendMessage
type sendMessageRequest struct {
	ChatID      int64                 `json:"chat_id"`
	Text        string                `json:"text"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// editMessageRequest - тело запроса editMessageText
type editMessageRequest struct {
	ChatID      int64                 `json:"chat_id"`
	MessageID   int                   `json:"message_id"`
	Text        string                `json:"text"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// answerCallbackRequest - тело запроса answerCallbackQuery
type answerCallbackRequest struct {
	CallbackQueryID string `json:"callback_query_id"`
}

// NewTelegramBot создает новый клиент Telegram Bot API
func NewTelegramBot(token string) *TelegramBot {
	return &TelegramBot{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		pollClient: &http.Client{Timeout: 40 * time.Second},
		baseURL:    fmt.Sprintf("https://api.telegram.org/bot%s/", token),
	}
}

// SetBaseURL переопределяет базовый URL API (для тестов)
func (tb *TelegramBot) SetBaseURL(baseURL string) {
	tb.baseURL = baseURL
}

// SendMessage отправляет новое сообщение, опционально с клавиатурой
func (tb *TelegramBot) SendMessage(chatID int64, text string, keyboard *InlineKeyboardMarkup) error {
	return tb.sendTelegramRequest("sendMessage", sendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
}

// EditMessage правит текст существующего сообщения на месте
func (tb *TelegramBot) EditMessage(chatID int64, messageID int, text string, keyboard *InlineKeyboardMarkup) error {
	return tb.sendTelegramRequest("editMessageText", editMessageRequest{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
}

// AnswerCallback отвечает на callback query (убирает "часики" на кнопке)
func (tb *TelegramBot) AnswerCallback(callbackID string) error {
	return tb.sendTelegramRequest("answerCallbackQuery", answerCallbackRequest{
		CallbackQueryID: callbackID,
	})
}

// GetUpdates запрашивает обновления long polling'ом начиная с offset
func (tb *TelegramBot) GetUpdates(offset, timeoutSec int) ([]Update, error) {
	url := fmt.Sprintf("%sgetUpdates?offset=%d&timeout=%d", tb.baseURL, offset, timeoutSec)

	resp, err := tb.pollClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updates: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		OK          bool     `json:"ok"`
		Result      []Update `json:"result"`
		Description string   `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode updates: %w", err)
	}

	if !result.OK {
		return nil, fmt.Errorf("telegram API error: %s", result.Description)
	}

	return result.Result, nil
}

// sendTelegramRequest - общая функция для отправки запросов к Telegram API
func (tb *TelegramBot) sendTelegramRequest(method string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	resp, err := tb.httpClient.Post(
		tb.baseURL+method,
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var telegramResp struct {
		OK          bool   `json:"ok"`
		ErrorCode   int    `json:"error_code,omitempty"`
		Description string `json:"description,omitempty"`
	}

	if err := json.Unmarshal(body, &telegramResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if !telegramResp.OK {
		// Если ошибка 429, ждем указанное время и пробуем снова один раз
		if telegramResp.ErrorCode == http.StatusTooManyRequests {
			retryAfter := 5
			var retryResp struct {
				Parameters struct {
					RetryAfter int `json:"retry_after"`
				} `json:"parameters"`
			}
			if json.Unmarshal(body, &retryResp) == nil && retryResp.Parameters.RetryAfter > 0 {
				retryAfter = retryResp.Parameters.RetryAfter
			}
			logger.Warn("⚠️ Telegram API лимит, ждем %d секунд", retryAfter)
			time.Sleep(time.Duration(retryAfter) * time.Second)
			return tb.sendTelegramRequest(method, payload)
		}
		return fmt.Errorf("telegram API error %d: %s", telegramResp.ErrorCode, telegramResp.Description)
	}

	return nil
}
