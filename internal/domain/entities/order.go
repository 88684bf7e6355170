package entities

import "time"

// OrderStatus represents the lifecycle of a lote (batch of pieces).
//
// Transitions are presentation-driven; no engine enforces an ordering here.
//
//go:generate stringer -type=OrderStatus

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusFinished   OrderStatus = "finished"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// Order is a lote: a batch of pieces plated under one set of parameters,
// persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (banho_company_id-index): banho_company_id
//   - GSI2 (cliente_company_id-index): cliente_company_id
//   - GSI3 (access_code-index): access_code
//
// GoldPrice, Camadas, MaoDeObra and DefaultMargin are snapshots taken at
// creation; pieces copy them again at piece-creation time and never see later
// order mutations.
//
// AccessCode is the only mechanism by which a cliente company attaches itself
// to a lote it did not create. Codes are stored uppercase; lookups uppercase
// their input so matching is case-insensitive.
type Order struct {
	ID               string      `json:"id"`
	BanhoCompanyID   string      `json:"banho_company_id"`
	ClienteCompanyID string      `json:"cliente_company_id,omitempty"`
	Status           OrderStatus `json:"status"`
	GoldPrice        float64     `json:"gold_price"`
	DefaultMargin    float64     `json:"default_margin"`
	Camadas          float64     `json:"camadas"`
	MaoDeObra        float64     `json:"mao_de_obra"`
	AccessCode       string      `json:"access_code"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
