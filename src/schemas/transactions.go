package schemas

import "time"

type TransactionRequest struct {
	PortfolioID     string    `json:"portfolio_id"`
	UserID          string    `json:"user_id"`
	Symbol          string    `json:"symbol"`
	Quantity        float64   `json:"quantity"`
	PricePaid       float64   `json:"price_paid"`
	TransactionDate time.Time `json:"transaction_date"`
}

// Empty reports whether no field of the request was populated,
// which happens for bodies like "null" or "{}".
func (r *TransactionRequest) Empty() bool {
	return *r == TransactionRequest{}
}

type TransactionResponse struct {
	ID                string  `json:"id"`
	CurrentPrice      float64 `json:"current_price"`
	CurrentValue      float64 `json:"current_value"`
	ProfitLoss        float64 `json:"profit_loss"`
	ProfitLossPercent float64 `json:"profit_loss_percent"`
}
