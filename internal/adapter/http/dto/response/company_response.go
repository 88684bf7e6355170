package response

import (
	"time"

	"xtagy_banho/internal/domain/entities"
)

type SubscriptionResponse struct {
	Status         string    `json:"status"`
	Plan           string    `json:"plan"`
	TrialStartedAt time.Time `json:"trial_started_at"`
	TrialEndsAt    time.Time `json:"trial_ends_at"`
}

type BillingResponse struct {
	Status    string     `json:"status"`
	Mode      string     `json:"mode"`
	Provider  string     `json:"provider,omitempty"`
	IntentID  string     `json:"intent_id,omitempty"`
	Amount    float64    `json:"amount,omitempty"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	SkippedAt *time.Time `json:"skipped_at,omitempty"`
}

type CompanyResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	TradingName  string                `json:"trading_name"`
	Role         string                `json:"role"`
	Email        string                `json:"email"`
	TaxID        string                `json:"tax_id"`
	Phone        string                `json:"phone"`
	Address      string                `json:"address"`
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
	Billing      *BillingResponse      `json:"billing,omitempty"`
}

func FromCompany(c entities.Company) CompanyResponse {
	out := CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		TradingName: c.TradingName,
		Role:        string(c.Role),
		Email:       c.Email,
		TaxID:       c.TaxID,
		Phone:       c.Phone,
		Address:     c.Address,
	}
	if c.Subscription != nil {
		out.Subscription = &SubscriptionResponse{
			Status:         string(c.Subscription.Status),
			Plan:           c.Subscription.Plan,
			TrialStartedAt: c.Subscription.TrialStartedAt,
			TrialEndsAt:    c.Subscription.TrialEndsAt,
		}
	}
	if c.Billing != nil {
		out.Billing = &BillingResponse{
			Status:   c.Billing.Status,
			Mode:     c.Billing.Mode,
			Provider: c.Billing.Provider,
			IntentID: c.Billing.IntentID,
			Amount:   c.Billing.Amount,
		}
		if !c.Billing.PaidAt.IsZero() {
			t := c.Billing.PaidAt
			out.Billing.PaidAt = &t
		}
		if !c.Billing.SkippedAt.IsZero() {
			t := c.Billing.SkippedAt
			out.Billing.SkippedAt = &t
		}
	}
	return out
}

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	CompanyID   string `json:"company_id"`
	Role        string `json:"role"`
	CompanyRole string `json:"company_role"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		CompanyID:   u.CompanyID,
		Role:        string(u.Role),
		CompanyRole: string(u.CompanyRole),
	}
}

// ProfileResponse is the authenticated actor plus its company.
type ProfileResponse struct {
	User    UserResponse    `json:"user"`
	Company CompanyResponse `json:"company"`
}
