package goldquote

import (
	"context"
	"log"
	"os"
	"strconv"

	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase/interfaces"
)

const (
	defaultPrice       = 345.67
	defaultSource      = "https://mock.local"
	defaultSourceTitle = "Valor Mockado"
)

// StaticProvider serves a fixed gold quote. It stands in for a market-data
// client; GOLD_PRICE_OVERRIDE lets deployments pin a fallback price without
// a code change.
type StaticProvider struct {
	quote entities.GoldQuote
}

var _ interfaces.IGoldQuoteProvider = (*StaticProvider)(nil)

func NewStaticProvider() *StaticProvider {
	quote := entities.GoldQuote{
		Price:       defaultPrice,
		Source:      defaultSource,
		SourceTitle: defaultSourceTitle,
	}

	if v := os.Getenv("GOLD_PRICE_OVERRIDE"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			log.Printf("[goldquote] ignoring invalid GOLD_PRICE_OVERRIDE=%q", v)
		} else {
			quote.Price = price
			quote.SourceTitle = "Override"
		}
	}
	return &StaticProvider{quote: quote}
}

func (p *StaticProvider) GetCurrentPrice(_ context.Context) (entities.GoldQuote, error) {
	return p.quote, nil
}
