package entities

import "time"

// CompanyRole distinguishes the two sides of the plating workflow:
// the service provider ("banho") and its client ("cliente").

type CompanyRole string

const (
	CompanyRoleBanho   CompanyRole = "banho"
	CompanyRoleCliente CompanyRole = "cliente"
)

// SubscriptionStatus is the provider-company subscription lifecycle.
//
// Transitions are applied through the subscription transition table only;
// see usecase.SubscriptionUseCase.

type SubscriptionStatus string

const (
	SubscriptionStatusPaymentPending SubscriptionStatus = "payment_pending"
	SubscriptionStatusTrial          SubscriptionStatus = "trial"
	SubscriptionStatusActive         SubscriptionStatus = "active"
	SubscriptionStatusPastDue        SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled       SubscriptionStatus = "canceled"
)

const SubscriptionPlanBanhoMensal = "banho_mensal"

// SubscriptionInfo exists only on banho companies; cliente companies never
// carry one.
type SubscriptionInfo struct {
	Status                 SubscriptionStatus `json:"status"`
	Plan                   string             `json:"plan"`
	ProviderCustomerID     string             `json:"provider_customer_id,omitempty"`
	ProviderSubscriptionID string             `json:"provider_subscription_id,omitempty"`
	TrialStartedAt         time.Time          `json:"trial_started_at"`
	TrialEndsAt            time.Time          `json:"trial_ends_at"`
}

// BillingRecord stores the last confirmed payment outcome. It is written only
// on a successful charge or an explicit "skip payment" action.
type BillingRecord struct {
	Status    string    `json:"status"` // paid | skipped | pending
	Mode      string    `json:"mode"`   // test
	Provider  string    `json:"provider,omitempty"`
	IntentID  string    `json:"intent_id,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
	PaidAt    time.Time `json:"paid_at,omitempty"`
	SkippedAt time.Time `json:"skipped_at,omitempty"`
}

// Company is a registered business entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariant: a banho company always has Subscription set at creation;
// a cliente company never does.
type Company struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	TradingName  string            `json:"trading_name"`
	Role         CompanyRole       `json:"role"`
	Email        string            `json:"email"`
	TaxID        string            `json:"tax_id"`
	Phone        string            `json:"phone"`
	Address      string            `json:"address"`
	Subscription *SubscriptionInfo `json:"subscription,omitempty"`
	Billing      *BillingRecord    `json:"billing,omitempty"`
}
