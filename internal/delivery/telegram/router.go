// internal/delivery/telegram/router.go
package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"sai-trades-bot/internal/config"
	"sai-trades-bot/internal/core/pagination"
	"sai-trades-bot/internal/core/session"
	"sai-trades-bot/internal/delivery/telegram/formatters"
	rediscache "sai-trades-bot/internal/infrastructure/cache/redis"
	"sai-trades-bot/internal/infrastructure/persistence/postgres/activity"
	"sai-trades-bot/internal/types"
	"sai-trades-bot/pkg/logger"
)

// Router - маршрутизатор команд и callback'ов пагинации.
// Хранилища сессий и канал доставки передаются явно и принадлежат вызывающему.
type Router struct {
	cfg     *config.Config
	channel Channel
	source  DataSource
	trades  *session.Store[types.Trade]
	prices  *session.Store[types.Price]

	cache       *rediscache.Cache    // опционально: кэш ленты цен
	activityLog *activity.Repository // опционально: журнал команд
}

// NewRouter создает новый маршрутизатор
func NewRouter(
	cfg *config.Config,
	channel Channel,
	source DataSource,
	trades *session.Store[types.Trade],
	prices *session.Store[types.Price],
) *Router {
	return &Router{
		cfg:     cfg,
		channel: channel,
		source:  source,
		trades:  trades,
		prices:  prices,
	}
}

// SetPriceCache подключает Redis кэш ленты цен
func (r *Router) SetPriceCache(cache *rediscache.Cache) {
	r.cache = cache
}

// SetActivityLog подключает журнал активности
func (r *Router) SetActivityLog(repo *activity.Repository) {
	r.activityLog = repo
}

// HandleUpdate обрабатывает одно обновление от Telegram
func (r *Router) HandleUpdate(update *Update) error {
	if update == nil {
		return nil
	}

	if update.Message != nil && strings.HasPrefix(update.Message.Text, "/") {
		return r.handleCommand(update.Message.Chat.ID, update.Message.Text)
	}

	if update.CallbackQuery != nil {
		r.handleCallback(update.CallbackQuery)
	}

	return nil
}

// handleCommand разбирает команду и передает ее обработчику
func (r *Router) handleCommand(chatID int64, text string) error {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	// Отрезаем упоминание бота: /trades@sai_bot
	command := strings.SplitN(fields[0], "@", 2)[0]
	args := fields[1:]

	interactionID := uuid.New().String()
	logger.Info("📨 [%s] Команда %s от чата %d", interactionID, command, chatID)

	var err error
	switch command {
	case "/start", "/help":
		err = r.channel.SendMessage(chatID, usageText, nil)
	case "/trades":
		err = r.handleTrades(chatID, args)
	case "/prices":
		err = r.handlePrices(chatID, args)
	case "/price":
		err = r.handlePrice(chatID, args)
	default:
		err = r.channel.SendMessage(chatID, unknownCommandText, nil)
	}

	r.recordActivity(interactionID, chatID, command, args, err)
	return err
}

// handleTrades обрабатывает /trades <address> [open|closed] [symbol]
func (r *Router) handleTrades(chatID int64, args []string) error {
	if len(args) == 0 {
		return r.channel.SendMessage(chatID, tradesUsageText, nil)
	}

	address := strings.TrimSpace(args[0])

	var isOpen *bool
	baseSymbol := ""
	for _, arg := range args[1:] {
		switch strings.ToLower(strings.TrimSpace(arg)) {
		case "open":
			v := true
			isOpen = &v
		case "closed":
			v := false
			isOpen = &v
		default:
			// Любой другой токен считаем символом базового актива
			baseSymbol = strings.ToUpper(strings.TrimSpace(arg))
		}
	}

	trades, err := r.source.FetchTrades(context.Background(), address, isOpen, r.cfg.TradesFetchLimit, baseSymbol)
	if err != nil {
		logger.Error("❌ Ошибка выборки сделок: %v", err)
		r.sendErrorReport(chatID, fmt.Sprintf("Error fetching trades: %v", err))
		return err
	}

	if len(trades) == 0 {
		return r.channel.SendMessage(chatID, noTradesText(address, isOpen, baseSymbol), nil)
	}

	// Одна выборка разделяется на две независимо пагинируемые дорожки
	open, closed := types.SplitByOpen(trades)
	r.trades.Put(chatID, tradesDiscriminator(trackOpen, address), open)
	r.trades.Put(chatID, tradesDiscriminator(trackClosed, address), closed)

	if len(open) > 0 && (isOpen == nil || *isOpen) {
		if err := r.sendTradesPage(chatID, 0, address, trackOpen, open, 0); err != nil {
			return err
		}
	}

	if len(closed) > 0 && (isOpen == nil || !*isOpen) {
		if err := r.sendTradesPage(chatID, 0, address, trackClosed, closed, 0); err != nil {
			return err
		}
	}

	return nil
}

// sendTradesPage отправляет страницу сделок; messageID > 0 означает правку
// существующего сообщения вместо отправки нового
func (r *Router) sendTradesPage(chatID int64, messageID int, address, track string, trades []types.Trade, page int) error {
	pg := pagination.Paginate(trades, page, r.cfg.TradesPageSize)

	var header string
	blocks := make([]string, 0, len(pg.Items))
	if track == trackOpen {
		header = fmt.Sprintf("✅ OPEN TRADES for %s", formatters.AddressDisplay(address))
		for _, t := range pg.Items {
			blocks = append(blocks, formatters.FormatOpenTrade(t))
		}
	} else {
		header = fmt.Sprintf("❌ CLOSED TRADES for %s", formatters.AddressDisplay(address))
		for _, t := range pg.Items {
			blocks = append(blocks, formatters.FormatClosedTrade(t))
		}
	}

	text := fmt.Sprintf("%s\n(%d of %d)\n\n%s", header, pg.End, pg.Total, strings.Join(blocks, "\n\n"))

	var keyboard *InlineKeyboardMarkup
	if pg.HasMore {
		keyboard = nextKeyboard(tradesNextPayload(address, track, page+1))
	}

	if messageID > 0 {
		return r.channel.EditMessage(chatID, messageID, text, keyboard)
	}
	return r.channel.SendMessage(chatID, text, keyboard)
}

// handlePrices обрабатывает /prices [next]
func (r *Router) handlePrices(chatID int64, args []string) error {
	next := len(args) > 0 && strings.EqualFold(strings.TrimSpace(args[0]), "next")

	var items []types.Price
	page := 0

	if next {
		if entry, ok := r.prices.Get(chatID, pricesDiscriminator); ok {
			items = entry.Items
			page = entry.LastPage + 1
		}
	}

	// Без сохраненного снимка (или для свежего /prices) выбираем ленту заново
	if items == nil {
		fetched, err := r.fetchPriceFeed(context.Background())
		if err != nil {
			logger.Error("❌ Ошибка выборки цен: %v", err)
			r.sendErrorReport(chatID, fmt.Sprintf("Error fetching prices: %v", err))
			return err
		}

		items = types.SortPrices(fetched)
		r.prices.Put(chatID, pricesDiscriminator, items)
		if next {
			page = 1
		}
	}

	r.prices.SetPage(chatID, pricesDiscriminator, page)

	pg := pagination.Paginate(items, page, r.cfg.PricesPageSize)
	text := formatters.FormatPriceList(pg.Items, pg.End, pg.Total)

	var keyboard *InlineKeyboardMarkup
	if pg.HasMore {
		keyboard = nextKeyboard(pricesNextCallback)
	}

	return r.channel.SendMessage(chatID, text, keyboard)
}

// handlePrice обрабатывает /price <symbol>
func (r *Router) handlePrice(chatID int64, args []string) error {
	if len(args) == 0 {
		return r.channel.SendMessage(chatID, priceUsageText, nil)
	}

	symbol := strings.TrimSpace(args[0])

	price, err := r.source.FetchPriceBySymbol(context.Background(), symbol, r.cfg.PricesFetchLimit)
	if err != nil {
		logger.Error("❌ Ошибка выборки цены: %v", err)
		r.sendErrorReport(chatID, fmt.Sprintf("Error fetching price: %v", err))
		return err
	}

	if price == nil {
		return r.channel.SendMessage(chatID, fmt.Sprintf("Token '%s' not found.", symbol), nil)
	}

	return r.channel.SendMessage(chatID, formatters.FormatSinglePrice(*price), nil)
}

// fetchPriceFeed выбирает ленту цен, при настроенном Redis - через кэш
func (r *Router) fetchPriceFeed(ctx context.Context) ([]types.Price, error) {
	if r.cache != nil {
		var cached []types.Price
		if err := r.cache.Get(ctx, priceFeedCacheKey, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	prices, err := r.source.FetchPrices(ctx, r.cfg.PricesFetchLimit)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, priceFeedCacheKey, prices, r.cfg.PriceCacheTTL); err != nil {
			logger.Debug("⚠️ Не удалось закэшировать ленту цен: %v", err)
		}
	}

	return prices, nil
}

// sendErrorReport доставляет короткую строку об ошибке;
// сбой самой доставки только логируется
func (r *Router) sendErrorReport(chatID int64, text string) {
	if err := r.channel.SendMessage(chatID, text, nil); err != nil {
		logger.Warn("⚠️ Не удалось отправить сообщение об ошибке: %v", err)
	}
}

// noTradesText - сообщение о пустой выборке с учетом активных фильтров
func noTradesText(address string, isOpen *bool, baseSymbol string) string {
	status := ""
	if isOpen != nil {
		if *isOpen {
			status = "open "
		} else {
			status = "closed "
		}
	}

	symbolText := ""
	if baseSymbol != "" {
		symbolText = " for " + baseSymbol
	}

	return fmt.Sprintf("No %strades%s found for address: %s", status, symbolText, address)
}

// recordActivity пишет запись в журнал команд, если он подключен
func (r *Router) recordActivity(interactionID string, chatID int64, command string, args []string, handleErr error) {
	if r.activityLog == nil {
		return
	}

	outcome := "ok"
	if handleErr != nil {
		outcome = "error"
	}

	err := r.activityLog.Record(activity.Activity{
		ID:      interactionID,
		ChatID:  chatID,
		Command: command,
		Args:    strings.Join(args, " "),
		Outcome: outcome,
	})
	if err != nil {
		logger.Warn("⚠️ Не удалось записать активность: %v", err)
	}
}
