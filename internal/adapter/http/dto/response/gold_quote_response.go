package response

import "xtagy_banho/internal/domain/entities"

type GoldQuoteResponse struct {
	Price       float64 `json:"price"`
	Source      string  `json:"source,omitempty"`
	SourceTitle string  `json:"source_title,omitempty"`
}

func FromGoldQuote(q entities.GoldQuote) GoldQuoteResponse {
	return GoldQuoteResponse{Price: q.Price, Source: q.Source, SourceTitle: q.SourceTitle}
}
