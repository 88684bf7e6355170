package request

import (
	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase"
)

// RegisterCompanyRequest is the registration payload. Role decides whether a
// subscription record is born with the company.
type RegisterCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	TradingName string `json:"trading_name"`
	Role        string `json:"role" binding:"required,oneof=banho cliente"`
	Email       string `json:"email" binding:"required,email"`
	TaxID       string `json:"tax_id"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

func (r RegisterCompanyRequest) ToInput() usecase.RegisterCompanyInput {
	return usecase.RegisterCompanyInput{
		Name:        r.Name,
		TradingName: r.TradingName,
		Role:        entities.CompanyRole(r.Role),
		Email:       r.Email,
		TaxID:       r.TaxID,
		Phone:       r.Phone,
		Address:     r.Address,
	}
}
