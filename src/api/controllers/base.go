package controllers

import (
	"context"
	"whale/src/clients/binance"
	"whale/src/repositories"
	"whale/src/schemas"
)

type IController interface {
	GetTopCryptos(ctx context.Context) ([]string, error)
	ProcessTransaction(ctx context.Context, request *schemas.TransactionRequest) (*schemas.TransactionResponse, error)
}

type Controller struct {
	BinanceClient   binance.BinanceServiceClientI
	TransactionRepo repositories.TransactionRepositoryI
}

func NewController(binanceClient binance.BinanceServiceClientI, transactionRepo repositories.TransactionRepositoryI) *Controller {
	return &Controller{BinanceClient: binanceClient, TransactionRepo: transactionRepo}
}
