// internal/delivery/telegram/bot_test.go
package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBot(t *testing.T, handler http.HandlerFunc) *TelegramBot {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	bot := NewTelegramBot("test-token")
	bot.SetBaseURL(server.URL + "/")
	return bot
}

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest

	bot := newTestBot(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"ok": true}`))
	})

	keyboard := nextKeyboard("prices_next")
	require.NoError(t, bot.SendMessage(42, "hello", keyboard))

	assert.Equal(t, "/sendMessage", gotPath)
	assert.Equal(t, int64(42), gotBody.ChatID)
	assert.Equal(t, "hello", gotBody.Text)
	require.NotNil(t, gotBody.ReplyMarkup)
	assert.Equal(t, "Next →", gotBody.ReplyMarkup.InlineKeyboard[0][0].Text)
}

func TestEditMessage(t *testing.T) {
	var gotPath string
	var gotBody editMessageRequest

	bot := newTestBot(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"ok": true}`))
	})

	require.NoError(t, bot.EditMessage(42, 7, "updated", nil))

	assert.Equal(t, "/editMessageText", gotPath)
	assert.Equal(t, 7, gotBody.MessageID)
	assert.Equal(t, "updated", gotBody.Text)
	assert.Nil(t, gotBody.ReplyMarkup)
}

func TestAnswerCallback(t *testing.T) {
	var gotBody answerCallbackRequest

	bot := newTestBot(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"ok": true}`))
	})

	require.NoError(t, bot.AnswerCallback("cb-99"))
	assert.Equal(t, "cb-99", gotBody.CallbackQueryID)
}

func TestSendMessageAPIError(t *testing.T) {
	bot := newTestBot(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false, "error_code": 400, "description": "Bad Request: chat not found"}`))
	})

	err := bot.SendMessage(42, "hello", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestGetUpdates(t *testing.T) {
	bot := newTestBot(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getUpdates", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("offset"))
		w.Write([]byte(`{"ok": true, "result": [
			{"update_id": 5, "message": {"message_id": 1, "chat": {"id": 42}, "text": "/start"}},
			{"update_id": 6, "callback_query": {"id": "cb-1", "data": "prices_next", "message": {"message_id": 2, "chat": {"id": 42}}}}
		]}`))
	})

	updates, err := bot.GetUpdates(5, 30)
	require.NoError(t, err)
	require.Len(t, updates, 2)

	assert.Equal(t, 5, updates[0].UpdateID)
	require.NotNil(t, updates[0].Message)
	assert.Equal(t, "/start", updates[0].Message.Text)

	require.NotNil(t, updates[1].CallbackQuery)
	assert.Equal(t, "prices_next", updates[1].CallbackQuery.Data)
}

func TestGetUpdatesAPIError(t *testing.T) {
	bot := newTestBot(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false, "description": "Unauthorized"}`))
	})

	_, err := bot.GetUpdates(0, 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized")
}
