package interfaces

import (
	"context"
	"xtagy_banho/internal/domain/entities"
)

// IGoldQuoteProvider supplies the current gold price per gram.
//
// The stub implementation never fails; a real market-data client must define
// a fallback quote and a staleness policy behind the same contract.
type IGoldQuoteProvider interface {
	GetCurrentPrice(ctx context.Context) (entities.GoldQuote, error)
}
