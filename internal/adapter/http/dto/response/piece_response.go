package response

import (
	"time"

	"xtagy_banho/internal/domain/entities"
)

type LabelResponse struct {
	Layout       string    `json:"layout"`
	GeneratedAt  time.Time `json:"generated_at"`
	InternalCode string    `json:"internal_code"`
	PesoPeca     float64   `json:"peso_peca"`
	ValorBruto   float64   `json:"valor_bruto"`
	Camadas      float64   `json:"camadas"`
	MaoDeObra    float64   `json:"mao_de_obra"`
	CotacaoOuro  float64   `json:"cotacao_ouro"`
	CustoFinal   float64   `json:"custo_final"`
}

type PieceResponse struct {
	ID                string         `json:"id"`
	OrderID           string         `json:"order_id"`
	Photo             string         `json:"photo"`
	InternalCode      string         `json:"internal_code"`
	Type              string         `json:"type"`
	PesoPeca          float64        `json:"peso_peca"`
	ValorPecaBruta    float64        `json:"valor_peca_bruta"`
	Camadas           float64        `json:"camadas"`
	MaoDeObra         float64        `json:"mao_de_obra"`
	CotacaoOuroDia    float64        `json:"cotacao_ouro_dia"`
	CalculoMetal      float64        `json:"calculo_metal"`
	CustoFinalCliente float64        `json:"custo_final_cliente"`
	SuggestedPrice    float64        `json:"suggested_price"`
	QRURL             string         `json:"qr_url"`
	Label             *LabelResponse `json:"label,omitempty"`
}

// FromPiece renders a piece. baseURL is the public front-end origin; the QR
// on a printed label encodes qr_url so a scan lands on the piece detail view.
func FromPiece(p entities.Piece, baseURL string) PieceResponse {
	out := PieceResponse{
		ID:                p.ID,
		OrderID:           p.OrderID,
		Photo:             p.Photo,
		InternalCode:      p.InternalCode,
		Type:              p.Type,
		PesoPeca:          p.PesoPeca,
		ValorPecaBruta:    p.ValorPecaBruta,
		Camadas:           p.Camadas,
		MaoDeObra:         p.MaoDeObra,
		CotacaoOuroDia:    p.CotacaoOuroDia,
		CalculoMetal:      p.CalculoMetal,
		CustoFinalCliente: p.CustoFinalCliente,
		SuggestedPrice:    p.SuggestedPrice,
		QRURL:             baseURL + "/#/piece/" + p.ID,
	}
	if p.Label != nil {
		out.Label = &LabelResponse{
			Layout:       string(p.Label.Layout),
			GeneratedAt:  p.Label.GeneratedAt,
			InternalCode: p.Label.InternalCode,
			PesoPeca:     p.Label.PesoPeca,
			ValorBruto:   p.Label.ValorBruto,
			Camadas:      p.Label.Camadas,
			MaoDeObra:    p.Label.MaoDeObra,
			CotacaoOuro:  p.Label.CotacaoOuro,
			CustoFinal:   p.Label.CustoFinal,
		}
	}
	return out
}

func FromPieces(pieces []entities.Piece, baseURL string) []PieceResponse {
	out := make([]PieceResponse, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, FromPiece(p, baseURL))
	}
	return out
}
