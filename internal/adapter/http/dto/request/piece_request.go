package request

import (
	"time"

	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase"
)

// CreatePieceRequest carries the raw fields of one physical item. Weights and
// values default to zero; the pricing engine treats that as valid input.
type CreatePieceRequest struct {
	Photo          string  `json:"photo"`
	InternalCode   string  `json:"internal_code"`
	Type           string  `json:"type"`
	PesoPeca       float64 `json:"peso_peca"`
	ValorPecaBruta float64 `json:"valor_peca_bruta"`
}

func (r CreatePieceRequest) ToInput() usecase.CreatePieceInput {
	return usecase.CreatePieceInput{
		Photo:          r.Photo,
		InternalCode:   r.InternalCode,
		Type:           r.Type,
		PesoPeca:       r.PesoPeca,
		ValorPecaBruta: r.ValorPecaBruta,
	}
}

// UpdateLabelRequest attaches a print-time snapshot to a piece.
type UpdateLabelRequest struct {
	Layout       string  `json:"layout" binding:"required,oneof=A4 COMPACT THERMAL"`
	InternalCode string  `json:"internal_code"`
	PesoPeca     float64 `json:"peso_peca"`
	ValorBruto   float64 `json:"valor_bruto"`
	Camadas      float64 `json:"camadas"`
	MaoDeObra    float64 `json:"mao_de_obra"`
	CotacaoOuro  float64 `json:"cotacao_ouro"`
	CustoFinal   float64 `json:"custo_final"`
}

func (r UpdateLabelRequest) ToSnapshot() entities.LabelSnapshot {
	return entities.LabelSnapshot{
		Layout:       entities.LabelLayout(r.Layout),
		GeneratedAt:  time.Now().UTC(),
		InternalCode: r.InternalCode,
		PesoPeca:     r.PesoPeca,
		ValorBruto:   r.ValorBruto,
		Camadas:      r.Camadas,
		MaoDeObra:    r.MaoDeObra,
		CotacaoOuro:  r.CotacaoOuro,
		CustoFinal:   r.CustoFinal,
	}
}
