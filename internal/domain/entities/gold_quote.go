package entities

// GoldQuote is the current metal price per gram used for piece costing.
// Source fields identify where the quote came from, for display only.
type GoldQuote struct {
	Price       float64 `json:"price"`
	Source      string  `json:"source,omitempty"`
	SourceTitle string  `json:"source_title,omitempty"`
}
