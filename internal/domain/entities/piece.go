package entities

import "time"

// LabelLayout selects the printable label template.

type LabelLayout string

const (
	LabelLayoutA4      LabelLayout = "A4"
	LabelLayoutCompact LabelLayout = "COMPACT"
	LabelLayoutThermal LabelLayout = "THERMAL"
)

// LabelSnapshot captures the piece values as they existed at the last label
// print. It is attached by the label-print flow and never recomputed.
type LabelSnapshot struct {
	Layout       LabelLayout `json:"layout"`
	GeneratedAt  time.Time   `json:"generated_at"`
	InternalCode string      `json:"internal_code"`
	PesoPeca     float64     `json:"peso_peca"`
	ValorBruto   float64     `json:"valor_bruto"`
	Camadas      float64     `json:"camadas"`
	MaoDeObra    float64     `json:"mao_de_obra"`
	CotacaoOuro  float64     `json:"cotacao_ouro"`
	CustoFinal   float64     `json:"custo_final"`
}

// Piece is one physical item inside a lote, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Camadas, MaoDeObra and CotacaoOuroDia are copied from the parent Order at
// creation. CalculoMetal, CustoFinalCliente and SuggestedPrice are derived
// from those copies by the pricing engine at creation and are deliberately
// frozen: they are never recalculated when the parent order changes.
type Piece struct {
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
	Label             *LabelSnapshot `json:"label,omitempty"`
}
