package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Transaction struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	PortfolioID       string             `bson:"portfolio_id"`
	UserID            string             `bson:"user_id"`
	Symbol            string             `bson:"symbol"`
	Quantity          float64            `bson:"quantity"`
	PricePaid         float64            `bson:"price_paid"`
	CurrentPrice      float64            `bson:"current_price"`
	CurrentValue      float64            `bson:"current_value"`
	ProfitLoss        float64            `bson:"profit_loss"`
	ProfitLossPercent float64            `bson:"profit_loss_percent"`
	TransactionDate   time.Time          `bson:"transaction_date"`
	ProcessedAt       time.Time          `bson:"processed_at"`
}
