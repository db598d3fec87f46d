// cmd/bot/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"sai-trades-bot/internal/api/sai"
	"sai-trades-bot/internal/config"
	"sai-trades-bot/internal/core/session"
	"sai-trades-bot/internal/delivery/telegram"
	rediscache "sai-trades-bot/internal/infrastructure/cache/redis"
	"sai-trades-bot/internal/infrastructure/persistence/postgres"
	"sai-trades-bot/internal/infrastructure/persistence/postgres/activity"
	"sai-trades-bot/internal/types"
	"sai-trades-bot/pkg/logger"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	// Инициализируем глобальный логгер
	if err := logger.InitGlobal(cfg.LogFile, cfg.LogLevel, cfg.Debug); err != nil {
		log.Fatalf("Не удалось инициализировать логгер: %v", err)
	}

	printHeader("SAI TRADES BOT")
	fmt.Printf("🔧 Конфигурация:\n")
	fmt.Printf("   GraphQL endpoint: %s\n", cfg.SaiEndpoint)
	fmt.Printf("   Таймаут запросов: %s\n", cfg.RequestTimeout)
	fmt.Printf("   Страница сделок: %d | Страница цен: %d\n", cfg.TradesPageSize, cfg.PricesPageSize)
	fmt.Printf("   Лимит выборки сделок: %d | цен: %d\n", cfg.TradesFetchLimit, cfg.PricesFetchLimit)
	fmt.Println()

	startTime := time.Now()

	// Клиент SAI keeper
	saiClient := sai.NewClient(cfg.SaiEndpoint, cfg.RequestTimeout)

	// Хранилища сессий пагинации (живут только в памяти процесса)
	tradeStore := session.NewStore[types.Trade](cfg.SessionCacheSize)
	priceStore := session.NewStore[types.Price](cfg.SessionCacheSize)

	// Telegram и маршрутизатор
	bot := telegram.NewTelegramBot(cfg.TelegramBotToken)
	router := telegram.NewRouter(cfg, bot, saiClient, tradeStore, priceStore)

	// Опциональный Redis кэш ленты цен
	if cfg.RedisAddr != "" {
		cache := rediscache.NewCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		router.SetPriceCache(cache)
		fmt.Printf("🗄️  Redis кэш цен: %s (TTL %s)\n", cfg.RedisAddr, cfg.PriceCacheTTL)
	}

	// Опциональный журнал активности в PostgreSQL
	if cfg.DBHost != "" {
		db, err := postgres.Connect(&postgres.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			Database: cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
			MaxConns: 25,
			MaxIdle:  10,
		})
		if err != nil {
			logger.Warn("⚠️ PostgreSQL недоступен, журнал активности отключен: %v", err)
		} else {
			repo := activity.NewRepository(db)
			if err := repo.EnsureSchema(); err != nil {
				logger.Warn("⚠️ Не удалось подготовить схему журнала: %v", err)
			} else {
				router.SetActivityLog(repo)
				fmt.Printf("🗃️  Журнал активности: %s:%d/%s\n", cfg.DBHost, cfg.DBPort, cfg.DBName)
			}
		}
	}

	// Запускаем long polling
	poller := telegram.NewPollingClient(bot, router)
	if err := poller.Start(); err != nil {
		log.Fatalf("Не удалось запустить polling: %v", err)
	}
	logger.Info("🚀 Бот запущен, ожидаем обновления")

	fmt.Println("🎮 Управление:")
	fmt.Println("   Ctrl+C - Остановить бота")
	fmt.Println()

	// Обработка сигналов для graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)
	<-stopChan

	fmt.Println()
	printHeader("Завершение работы")
	if err := poller.Stop(); err != nil {
		logger.Warn("⚠️ Ошибка остановки polling: %v", err)
	}
	fmt.Printf("⏱️  Время работы: %s\n", time.Since(startTime).Round(time.Second))
	logger.Info("👋 Бот остановлен")
}

func printHeader(text string) {
	width := 80
	padding := (width - len(text)) / 2

	if padding < 0 {
		padding = 0
	}

	fmt.Println(strings.Repeat("═", width))
	fmt.Printf("%s%s%s\n",
		strings.Repeat(" ", padding),
		text,
		strings.Repeat(" ", width-len(text)-padding))
	fmt.Println(strings.Repeat("═", width))
}
