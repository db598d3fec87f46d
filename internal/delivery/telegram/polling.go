// internal/delivery/telegram/polling.go
package telegram

import (
	"fmt"
	"sync"
	"time"

	"sai-trades-bot/pkg/logger"
)

// PollingClient - клиент для polling обновлений
type PollingClient struct {
	bot      *TelegramBot
	router   *Router
	offset   int
	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
}

// NewPollingClient создает новый polling клиент
func NewPollingClient(bot *TelegramBot, router *Router) *PollingClient {
	return &PollingClient{
		bot:      bot,
		router:   router,
		stopChan: make(chan struct{}),
	}
}

// Start запускает polling обновлений
func (pc *PollingClient) Start() error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.running {
		return fmt.Errorf("polling already running")
	}

	pc.running = true
	pc.stopChan = make(chan struct{})
	logger.Info("🔄 Starting Telegram bot polling...")

	go pc.pollLoop()

	return nil
}

// Stop останавливает polling обновлений
func (pc *PollingClient) Stop() error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.running {
		return nil
	}

	pc.running = false
	close(pc.stopChan)
	logger.Info("🛑 Stopping Telegram bot polling...")

	return nil
}

func (pc *PollingClient) isRunning() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.running
}

// pollLoop основной цикл polling
func (pc *PollingClient) pollLoop() {
	for pc.isRunning() {
		select {
		case <-pc.stopChan:
			return
		default:
			pc.fetchUpdates()
			time.Sleep(1 * time.Second)
		}
	}
}

// fetchUpdates получает обновления от Telegram API и передает их роутеру
func (pc *PollingClient) fetchUpdates() {
	updates, err := pc.bot.GetUpdates(pc.offset, 30)
	if err != nil {
		logger.Error("❌ Error fetching updates: %v", err)
		return
	}

	for i := range updates {
		update := updates[i]
		if err := pc.router.HandleUpdate(&update); err != nil {
			logger.Error("❌ Error handling update %d: %v", update.UpdateID, err)
		}
		pc.offset = update.UpdateID + 1
	}
}
