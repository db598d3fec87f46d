// internal/api/sai/client.go
package sai

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"

	"sai-trades-bot/internal/config"
	"sai-trades-bot/internal/types"
)

// Тело ответа в transport-ошибках обрезается до этого размера
const errorBodyLimit = 200

// graphQLRequest - запрос к GraphQL endpoint
type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// graphQLResponse - конверт ответа GraphQL
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

// Client - клиент для работы с GraphQL API SAI keeper
type Client struct {
	endpoint string
	http     *resty.Client
}

// NewClient создает новый клиент SAI keeper
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = config.DefaultSaiEndpoint
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "SaiTradesBot/1.0")

	return &Client{
		endpoint: endpoint,
		http:     httpClient,
	}
}

// Query выполняет GraphQL запрос и декодирует поле data в out
func (c *Client) Query(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	if variables == nil {
		variables = map[string]interface{}{}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(graphQLRequest{Query: query, Variables: variables}).
		Post(c.endpoint)
	if err != nil {
		return &TransportError{Op: "query", Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		return &TransportError{
			Op:         "query",
			StatusCode: resp.StatusCode(),
			Body:       trimBody(resp.Body()),
		}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return &TransportError{
			Op:         "decode",
			StatusCode: resp.StatusCode(),
			Body:       trimBody(resp.Body()),
			Err:        err,
		}
	}

	if len(envelope.Errors) > 0 && string(envelope.Errors) != "null" {
		return &UpstreamError{Errors: envelope.Errors}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &TransportError{Op: "decode", Err: err}
		}
	}

	return nil
}

// FetchTrades возвращает сделки трейдера. isOpen == nil означает "любые".
// baseSymbol фильтруется на стороне клиента после выборки, без учета регистра,
// с сохранением порядка сервера.
func (c *Client) FetchTrades(ctx context.Context, trader string, isOpen *bool, limit int, baseSymbol string) ([]types.Trade, error) {
	var data struct {
		Perp struct {
			Trades []types.Trade `json:"trades"`
		} `json:"perp"`
	}

	variables := map[string]interface{}{
		"trader": trader,
		"isOpen": isOpen,
		"limit":  limit,
	}

	if err := c.Query(ctx, tradesQuery, variables, &data); err != nil {
		return nil, err
	}

	return types.FilterTradesByBase(data.Perp.Trades, baseSymbol), nil
}

// FetchPrices возвращает цены оракула, порядок сервера (по token_id)
func (c *Client) FetchPrices(ctx context.Context, limit int) ([]types.Price, error) {
	var data struct {
		Oracle struct {
			TokenPricesUsd []types.Price `json:"tokenPricesUsd"`
		} `json:"oracle"`
	}

	variables := map[string]interface{}{
		"limit": limit,
	}

	if err := c.Query(ctx, pricesQuery, variables, &data); err != nil {
		return nil, err
	}

	return data.Oracle.TokenPricesUsd, nil
}

// FetchPriceBySymbol возвращает цену токена по символу: выбирается вся лента
// и берется первое совпадение без учета регистра. nil без ошибки - токен не найден.
func (c *Client) FetchPriceBySymbol(ctx context.Context, symbol string, limit int) (*types.Price, error) {
	prices, err := c.FetchPrices(ctx, limit)
	if err != nil {
		return nil, err
	}

	for i := range prices {
		if strings.EqualFold(prices[i].Symbol(), symbol) {
			return &prices[i], nil
		}
	}
	return nil, nil
}

// trimBody обрезает тело ответа до лимита, не разрезая UTF-8 руну
func trimBody(body []byte) string {
	s := string(body)
	if len(s) <= errorBodyLimit {
		return s
	}

	cut := errorBodyLimit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
