package request

// CreateOrderRequest carries the plating parameters of a new lote.
//
// GoldPrice may be omitted: the handler then snapshots the current quote from
// the gold provider, matching the capture flow's behavior.
type CreateOrderRequest struct {
	ClienteCompanyID string  `json:"cliente_company_id"`
	GoldPrice        float64 `json:"gold_price"`
	Camadas          float64 `json:"camadas"`
	MaoDeObra        float64 `json:"mao_de_obra"`
	DefaultMargin    float64 `json:"default_margin"`
}

// LinkOrderRequest claims a lote by access code for the caller's company.
type LinkOrderRequest struct {
	AccessCode string `json:"access_code" binding:"required"`
}

// UpdateOrderStatusRequest patches the presentation-driven lote status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing finished delivered"`
}
