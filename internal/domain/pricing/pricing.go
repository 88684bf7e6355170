// Package pricing holds the piece-cost formulas.
//
// The formulas are the contract of the whole costing flow and must not be
// reordered or rounded: pieces snapshot their inputs at creation time and the
// derived values are expected to be reproducible bit-for-bit from them.
package pricing

// Cost is the derived monetary output of the engine.
type Cost struct {
	MetalCost       float64
	FinalClientCost float64
}

// ComputePieceCost derives the metal cost and final client cost of a piece.
//
//	metalCost       = (camadas + maoDeObra) * goldPricePerGram / 1000
//	finalClientCost = pesoPeca * metalCost + valorPecaBruta
//
// Zero-valued inputs are valid and simply yield zero-valued components; no
// validation is performed here, callers own input sanity. The function is
// pure: identical inputs always produce identical outputs.
func ComputePieceCost(pesoPeca, valorPecaBruta, camadas, maoDeObra, goldPricePerGram float64) Cost {
	metal := (camadas + maoDeObra) * goldPricePerGram / 1000
	return Cost{
		MetalCost:       metal,
		FinalClientCost: pesoPeca*metal + valorPecaBruta,
	}
}

// SuggestedPrice applies the order's default margin to the final client cost.
func (c Cost) SuggestedPrice(margin float64) float64 {
	return c.FinalClientCost * margin
}
