package controllers_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
	"whale/src/api/controllers"
	"whale/src/clients/binance"
	"whale/src/schemas"
)

func TestProcessTransaction(t *testing.T) {
	request := &schemas.TransactionRequest{
		PortfolioID:     "portfolio-1",
		UserID:          "user-1",
		Symbol:          "BTC",
		Quantity:        2,
		PricePaid:       100,
		TransactionDate: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("computes and persists profit/loss", func(t *testing.T) {
		client := &BinanceServiceClientMock{
			PriceResponse: &binance.TickerPriceResponse{Symbol: "BTCUSDT", Price: "150"},
		}
		repo := &TransactionRepositoryMock{}
		ctrl := controllers.NewController(client, repo)

		response, err := ctrl.ProcessTransaction(context.Background(), request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if response.ID == "" {
			t.Error("expected an assigned document id")
		}
		if response.CurrentValue != 300 {
			t.Errorf("expected current value 300, got %f", response.CurrentValue)
		}
		if response.ProfitLoss != 100 {
			t.Errorf("expected profit/loss 100, got %f", response.ProfitLoss)
		}
		if response.ProfitLossPercent != 50.0 {
			t.Errorf("expected profit/loss percent 50, got %f", response.ProfitLossPercent)
		}

		if len(repo.Inserted) != 1 {
			t.Fatalf("expected one persisted document, got %d", len(repo.Inserted))
		}
		stored := repo.Inserted[0]
		if stored.PortfolioID != "portfolio-1" || stored.UserID != "user-1" || stored.Symbol != "BTC" {
			t.Errorf("unexpected input fields on stored document: %+v", stored)
		}
		if stored.CurrentPrice != 150 || stored.CurrentValue != 300 || stored.ProfitLoss != 100 {
			t.Errorf("unexpected computed fields on stored document: %+v", stored)
		}
		if !stored.TransactionDate.Equal(request.TransactionDate) {
			t.Errorf("expected transaction date preserved, got %v", stored.TransactionDate)
		}
		if stored.ProcessedAt.IsZero() {
			t.Error("expected processed_at to be set")
		}
		if stored.ProcessedAt.Location() != time.UTC {
			t.Errorf("expected processed_at in UTC, got %v", stored.ProcessedAt.Location())
		}
	})

	t.Run("zero invested value propagates a non-finite percent", func(t *testing.T) {
		client := &BinanceServiceClientMock{
			PriceResponse: &binance.TickerPriceResponse{Symbol: "BTCUSDT", Price: "150"},
		}
		repo := &TransactionRepositoryMock{}
		ctrl := controllers.NewController(client, repo)

		zeroQuantity := *request
		zeroQuantity.Quantity = 0

		response, err := ctrl.ProcessTransaction(context.Background(), &zeroQuantity)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		percent := response.ProfitLossPercent
		if !math.IsNaN(percent) && !math.IsInf(percent, 0) {
			t.Errorf("expected non-finite percent, got %f", percent)
		}
		if len(repo.Inserted) != 1 {
			t.Fatalf("expected one persisted document, got %d", len(repo.Inserted))
		}
	})

	t.Run("failed price lookup surfaces an error before persisting", func(t *testing.T) {
		client := &BinanceServiceClientMock{PriceErr: errors.New("connection refused")}
		repo := &TransactionRepositoryMock{}
		ctrl := controllers.NewController(client, repo)

		if _, err := ctrl.ProcessTransaction(context.Background(), request); err == nil {
			t.Error("expected an error, got none")
		}
		if len(repo.Inserted) != 0 {
			t.Errorf("expected no persisted documents, got %d", len(repo.Inserted))
		}
	})

	t.Run("unparsable price surfaces an error", func(t *testing.T) {
		client := &BinanceServiceClientMock{
			PriceResponse: &binance.TickerPriceResponse{Symbol: "BTCUSDT", Price: "garbage"},
		}
		repo := &TransactionRepositoryMock{}
		ctrl := controllers.NewController(client, repo)

		if _, err := ctrl.ProcessTransaction(context.Background(), request); err == nil {
			t.Error("expected an error, got none")
		}
		if len(repo.Inserted) != 0 {
			t.Errorf("expected no persisted documents, got %d", len(repo.Inserted))
		}
	})

	t.Run("store failure is returned after a single price fetch", func(t *testing.T) {
		client := &BinanceServiceClientMock{
			PriceResponse: &binance.TickerPriceResponse{Symbol: "BTCUSDT", Price: "150"},
		}
		repo := &TransactionRepositoryMock{InsertErr: errors.New("server selection timeout")}
		ctrl := controllers.NewController(client, repo)

		_, err := ctrl.ProcessTransaction(context.Background(), request)
		if err == nil {
			t.Fatal("expected an error, got none")
		}
		if client.PriceCalls != 1 {
			t.Errorf("expected exactly one price fetch, got %d", client.PriceCalls)
		}
		if len(repo.Inserted) != 0 {
			t.Errorf("expected no persisted documents, got %d", len(repo.Inserted))
		}
	})
}
