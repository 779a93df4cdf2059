package controllers

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"whale/src/models"
	"whale/src/schemas"
	"whale/src/utils"
)

// ProcessTransaction enriches a submitted transaction with the current
// Binance price, computes profit/loss against the price paid, and persists
// the result. A failed price lookup is surfaced as an error rather than
// treated as a zero price.
func (c *Controller) ProcessTransaction(ctx context.Context, request *schemas.TransactionRequest) (*schemas.TransactionResponse, error) {
	priceResponse, err := c.BinanceClient.GetPrice(ctx, request.Symbol)
	if err != nil {
		return nil, fmt.Errorf("price lookup for %s failed: %w", request.Symbol, err)
	}

	currentPrice, err := strconv.ParseFloat(priceResponse.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q for %s: %w", priceResponse.Price, request.Symbol, err)
	}

	currentValue := request.Quantity * currentPrice
	investedValue := request.Quantity * request.PricePaid
	profitLoss := currentValue - investedValue
	// An invested value of zero yields a non-finite percent; it is stored as-is.
	profitLossPercent := (profitLoss / investedValue) * 100

	transaction := &models.Transaction{
		PortfolioID:       request.PortfolioID,
		UserID:            request.UserID,
		Symbol:            request.Symbol,
		Quantity:          request.Quantity,
		PricePaid:         request.PricePaid,
		CurrentPrice:      currentPrice,
		CurrentValue:      currentValue,
		ProfitLoss:        profitLoss,
		ProfitLossPercent: profitLossPercent,
		TransactionDate:   request.TransactionDate,
		ProcessedAt:       time.Now().UTC(),
	}

	id, err := c.TransactionRepo.InsertTransaction(ctx, transaction)
	if err != nil {
		return nil, err
	}

	utils.LoggerFromContext(ctx).WithFields(map[string]interface{}{
		"transaction_id": id,
		"symbol":         request.Symbol,
	}).Info("transaction saved")

	return &schemas.TransactionResponse{
		ID:                id,
		CurrentPrice:      currentPrice,
		CurrentValue:      currentValue,
		ProfitLoss:        profitLoss,
		ProfitLossPercent: profitLossPercent,
	}, nil
}
