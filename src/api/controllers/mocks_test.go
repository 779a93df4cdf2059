package controllers_test

import (
	"context"
	"whale/src/clients/binance"
	"whale/src/models"
)

// BinanceServiceClientMock is a mock implementation of BinanceServiceClientI
// that serves canned responses instead of making actual API calls.
type BinanceServiceClientMock struct {
	TickerEntries []binance.Ticker24hEntry
	TickerErr     error

	PriceResponse *binance.TickerPriceResponse
	PriceErr      error
	PriceCalls    int
}

func (m *BinanceServiceClientMock) GetTicker24h(_ context.Context) ([]binance.Ticker24hEntry, error) {
	if m.TickerErr != nil {
		return nil, m.TickerErr
	}
	return m.TickerEntries, nil
}

func (m *BinanceServiceClientMock) GetPrice(_ context.Context, _ string) (*binance.TickerPriceResponse, error) {
	m.PriceCalls++
	if m.PriceErr != nil {
		return nil, m.PriceErr
	}
	return m.PriceResponse, nil
}

// TransactionRepositoryMock records inserted documents in memory.
type TransactionRepositoryMock struct {
	InsertErr error
	Inserted  []*models.Transaction
}

func (m *TransactionRepositoryMock) InsertTransaction(_ context.Context, transaction *models.Transaction) (string, error) {
	if m.InsertErr != nil {
		return "", m.InsertErr
	}
	m.Inserted = append(m.Inserted, transaction)
	return "652f1a2b3c4d5e6f70819203", nil
}
