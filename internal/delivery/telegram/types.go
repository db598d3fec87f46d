// internal/delivery/telegram/types.go
package telegram

import (
	"context"

	"sai-trades-bot/internal/types"
)

// Update - обновление от Telegram API
type Update struct {
	UpdateID      int            `json:"update_id"`
	Message       *Message       `json:"message"`
	CallbackQuery *CallbackQuery `json:"callback_query"`
}

// User - отправитель сообщения
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Chat - чат, из которого пришло сообщение
type Chat struct {
	ID int64 `json:"id"`
}

// Message - входящее сообщение
type Message struct {
	MessageID int    `json:"message_id"`
	From      *User  `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// CallbackQuery - нажатие inline кнопки
type CallbackQuery struct {
	ID      string   `json:"id"`
	From    *User    `json:"from"`
	Message *Message `json:"message"`
	Data    string   `json:"data"`
}

// InlineKeyboardButton - кнопка inline клавиатуры
type InlineKeyboardButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data,omitempty"`
	URL          string `json:"url,omitempty"`
}

// InlineKeyboardMarkup - разметка inline клавиатуры
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

// Channel - канал доставки: новое сообщение либо правка существующего.
// Реализуется TelegramBot; в тестах подменяется фейком.
type Channel interface {
	SendMessage(chatID int64, text string, keyboard *InlineKeyboardMarkup) error
	EditMessage(chatID int64, messageID int, text string, keyboard *InlineKeyboardMarkup) error
	AnswerCallback(callbackID string) error
}

// DataSource - источник данных индексатора
type DataSource interface {
	FetchTrades(ctx context.Context, trader string, isOpen *bool, limit int, baseSymbol string) ([]types.Trade, error)
	FetchPrices(ctx context.Context, limit int) ([]types.Price, error)
	FetchPriceBySymbol(ctx context.Context, symbol string, limit int) (*types.Price, error)
}
