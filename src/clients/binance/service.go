package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"whale/src/config"
	"whale/src/utils"
	"whale/src/utils/requests"
)

type BinanceServiceClientI interface {
	GetTicker24h(ctx context.Context) ([]Ticker24hEntry, error)
	GetPrice(ctx context.Context, symbol string) (*TickerPriceResponse, error)
}

type BinanceServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
}

// NewClient creates a new instance of BinanceServiceClient sharing the given HTTP client
func NewClient(cfg *config.Config, httpClient *http.Client) *BinanceServiceClient {
	api := requests.NewExternalAPIService(httpClient)
	return &BinanceServiceClient{
		API:     api,
		BaseURL: cfg.ExternalClients.Binance.BaseURL,
	}
}

// GetTicker24h fetches the 24 hour rolling window statistics for every traded symbol.
// Failures reported by Binance itself come back as 502 HTTPErrors.
func (c *BinanceServiceClient) GetTicker24h(ctx context.Context) ([]Ticker24hEntry, error) {
	endpoint := fmt.Sprintf("%s/api/v3/ticker/24hr", c.BaseURL)

	resp, err := c.API.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var entries []Ticker24hEntry
	if err := json.Unmarshal(responseBody, &entries); err == nil {
		return entries, nil
	}

	// Binance answers errors with an object rather than the ticker array.
	var apiError APIError
	if err := json.Unmarshal(responseBody, &apiError); err == nil && apiError.Msg != "" {
		return nil, utils.BadGateway(fmt.Sprintf("binance api error: %d %s", apiError.Code, apiError.Msg))
	}

	return nil, utils.BadGateway(fmt.Sprintf("binance api returned unexpected response: %s", string(responseBody)))
}

// GetPrice fetches the current price for the {symbol}USDT trading pair
func (c *BinanceServiceClient) GetPrice(ctx context.Context, symbol string) (*TickerPriceResponse, error) {
	endpoint := fmt.Sprintf("%s/api/v3/ticker/price", c.BaseURL)

	params := url.Values{}
	params.Add("symbol", symbol+"USDT")

	resp, err := c.API.Get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var apiError APIError
	if resp.StatusCode != http.StatusOK {
		if err := json.Unmarshal(responseBody, &apiError); err == nil && apiError.Msg != "" {
			return nil, utils.BadGateway(fmt.Sprintf("binance api error: %d %s", apiError.Code, apiError.Msg))
		}
		return nil, utils.BadGateway(fmt.Sprintf("binance api returned status %s", resp.Status))
	}

	var priceResponse TickerPriceResponse
	if err := json.Unmarshal(responseBody, &priceResponse); err != nil {
		return nil, err
	}
	if priceResponse.Price == "" {
		return nil, utils.BadGateway(fmt.Sprintf("binance api returned no price for %sUSDT", symbol))
	}

	return &priceResponse, nil
}
