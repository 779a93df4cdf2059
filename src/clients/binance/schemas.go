package binance

// Ticker24hEntry is one symbol's 24 hour rolling window statistics.
// Binance encodes every numeric field as a string.
type Ticker24hEntry struct {
	Symbol      string `json:"symbol"`
	LastPrice   string `json:"lastPrice"`
	QuoteVolume string `json:"quoteVolume"`
}

// TickerPriceResponse is the latest price for a single symbol.
type TickerPriceResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// APIError is the error payload Binance returns instead of the requested data.
type APIError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}
