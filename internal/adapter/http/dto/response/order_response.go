package response

import (
	"time"

	"xtagy_banho/internal/domain/entities"
)

type OrderResponse struct {
	ID               string    `json:"id"`
	BanhoCompanyID   string    `json:"banho_company_id"`
	ClienteCompanyID string    `json:"cliente_company_id,omitempty"`
	Status           string    `json:"status"`
	GoldPrice        float64   `json:"gold_price"`
	DefaultMargin    float64   `json:"default_margin"`
	Camadas          float64   `json:"camadas"`
	MaoDeObra        float64   `json:"mao_de_obra"`
	AccessCode       string    `json:"access_code"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		BanhoCompanyID:   o.BanhoCompanyID,
		ClienteCompanyID: o.ClienteCompanyID,
		Status:           string(o.Status),
		GoldPrice:        o.GoldPrice,
		DefaultMargin:    o.DefaultMargin,
		Camadas:          o.Camadas,
		MaoDeObra:        o.MaoDeObra,
		AccessCode:       o.AccessCode,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
