package controllers

import (
	"context"
	"sort"
	"strings"
	"whale/src/clients/binance"

	"github.com/shopspring/decimal"
)

const (
	pairSuffix   = "USDT"
	topPairCount = 12
)

type rankedPair struct {
	entry  binance.Ticker24hEntry
	volume decimal.Decimal
}

// GetTopCryptos returns the top traded USDT pairs by 24h quote volume as an
// interleaved [symbol, lastPrice, ...] list, at most topPairCount pairs long.
func (c *Controller) GetTopCryptos(ctx context.Context) ([]string, error) {
	entries, err := c.BinanceClient.GetTicker24h(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]rankedPair, 0, len(entries))
	for _, entry := range entries {
		if strings.HasSuffix(entry.Symbol, pairSuffix) {
			ranked = append(ranked, rankedPair{entry: entry, volume: parseVolume(entry.QuoteVolume)})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].volume.GreaterThan(ranked[j].volume)
	})

	if len(ranked) > topPairCount {
		ranked = ranked[:topPairCount]
	}

	pairs := make([]string, 0, len(ranked)*2)
	for _, pair := range ranked {
		pairs = append(pairs, pair.entry.Symbol, pair.entry.LastPrice)
	}
	return pairs, nil
}

// parseVolume ranks entries with an unparsable quote volume as zero.
func parseVolume(value string) decimal.Decimal {
	volume, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return volume
}
