package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase/interfaces"
)

var (
	ErrNoSubscription                = errors.New("company has no subscription")
	ErrInvalidSubscriptionTransition = errors.New("invalid subscription transition")
	ErrInvalidWebhookEventID         = errors.New("invalid webhook event id")
)

// SubscriptionEvent is what drives the subscription state machine.

type SubscriptionEvent string

const (
	SubscriptionEventPaymentSucceeded SubscriptionEvent = "payment_succeeded"
	SubscriptionEventPaymentSkipped   SubscriptionEvent = "payment_skipped"
	SubscriptionEventChargeFailed     SubscriptionEvent = "charge_failed"
	SubscriptionEventDeleted          SubscriptionEvent = "subscription_deleted"
)

type transitionKey struct {
	from  entities.SubscriptionStatus
	event SubscriptionEvent
}

// subscriptionTransitions is the full set of allowed transitions; anything
// absent from this table is rejected. past_due recovery to active is
// intentionally not listed.
var subscriptionTransitions = map[transitionKey]entities.SubscriptionStatus{
	{entities.SubscriptionStatusPaymentPending, SubscriptionEventPaymentSkipped}:   entities.SubscriptionStatusTrial,
	{entities.SubscriptionStatusPaymentPending, SubscriptionEventPaymentSucceeded}: entities.SubscriptionStatusActive,
	{entities.SubscriptionStatusTrial, SubscriptionEventPaymentSucceeded}:          entities.SubscriptionStatusActive,
	{entities.SubscriptionStatusActive, SubscriptionEventChargeFailed}:             entities.SubscriptionStatusPastDue,

	{entities.SubscriptionStatusPaymentPending, SubscriptionEventDeleted}: entities.SubscriptionStatusCanceled,
	{entities.SubscriptionStatusTrial, SubscriptionEventDeleted}:          entities.SubscriptionStatusCanceled,
	{entities.SubscriptionStatusActive, SubscriptionEventDeleted}:         entities.SubscriptionStatusCanceled,
	{entities.SubscriptionStatusPastDue, SubscriptionEventDeleted}:        entities.SubscriptionStatusCanceled,
	{entities.SubscriptionStatusCanceled, SubscriptionEventDeleted}:       entities.SubscriptionStatusCanceled,
}

// ProcessorEvent is the inbound payment-processor webhook payload after
// parsing. CompanyID comes from the intent metadata the service itself wrote
// at intent creation.
type ProcessorEvent struct {
	EventID   string
	Type      string
	IntentID  string
	Amount    float64
	CompanyID string
}

// ISubscriptionUseCase drives the provider-company subscription state machine
// and the billing record.
//
//   - SkipPayment is the explicit "skip for now" onboarding action.
//   - HandleProcessorEvent ingests webhook deliveries; it deduplicates by
//     event id because the processor delivers at-least-once.

type ISubscriptionUseCase interface {
	SkipPayment(ctx context.Context, companyID string) (entities.Company, error)
	HandleProcessorEvent(ctx context.Context, ev ProcessorEvent) error
}

type SubscriptionUseCase struct {
	companyRepo interfaces.ICompanyRepository
	eventRepo   interfaces.IWebhookEventRepository
	eventLog    interfaces.IEventLogRepository
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(companyRepo interfaces.ICompanyRepository, eventRepo interfaces.IWebhookEventRepository, eventLog interfaces.IEventLogRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{companyRepo: companyRepo, eventRepo: eventRepo, eventLog: eventLog}
}

func (u *SubscriptionUseCase) SkipPayment(ctx context.Context, companyID string) (entities.Company, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.Company{}, ErrInvalidCompanyID
	}

	company, err := u.applyTransition(ctx, companyID, SubscriptionEventPaymentSkipped)
	if err != nil {
		return entities.Company{}, err
	}

	company, err = u.companyRepo.UpdateBilling(ctx, companyID, entities.BillingRecord{
		Status:    "skipped",
		Mode:      "test",
		SkippedAt: time.Now().UTC(),
	})
	if err != nil {
		return entities.Company{}, err
	}

	u.logEvent(ctx, entities.EventPaymentSkipped, companyID, companyID, nil)
	return company, nil
}

// HandleProcessorEvent applies the webhook side effects. The HTTP handler
// always acknowledges regardless of the error returned here; retrying is the
// processor's job, not ours to signal.
func (u *SubscriptionUseCase) HandleProcessorEvent(ctx context.Context, ev ProcessorEvent) error {
	if strings.TrimSpace(ev.EventID) == "" {
		return ErrInvalidWebhookEventID
	}

	event, ok := mapProcessorEventType(ev.Type)
	if !ok {
		log.Printf("[subscription][usecase] ignoring webhook event id=%s type=%s", ev.EventID, ev.Type)
		return nil
	}

	fresh, err := u.eventRepo.MarkProcessed(ctx, entities.WebhookEvent{
		ID:         ev.EventID,
		Type:       ev.Type,
		ReceivedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	if !fresh {
		log.Printf("[subscription][usecase] duplicate webhook event skipped id=%s type=%s", ev.EventID, ev.Type)
		return nil
	}

	if strings.TrimSpace(ev.CompanyID) == "" {
		log.Printf("[subscription][usecase] webhook event without company metadata id=%s type=%s", ev.EventID, ev.Type)
		return nil
	}

	if _, err := u.applyTransition(ctx, ev.CompanyID, event); err != nil {
		return err
	}

	if event == SubscriptionEventPaymentSucceeded {
		_, err := u.companyRepo.UpdateBilling(ctx, ev.CompanyID, entities.BillingRecord{
			Status:   "paid",
			Mode:     "test",
			Provider: "mercadopago",
			IntentID: ev.IntentID,
			Amount:   ev.Amount,
			PaidAt:   time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		u.logEvent(ctx, entities.EventPaymentSuccess, ev.CompanyID, ev.IntentID, map[string]any{
			"amount": ev.Amount,
		})
	}
	return nil
}

func (u *SubscriptionUseCase) applyTransition(ctx context.Context, companyID string, event SubscriptionEvent) (entities.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return entities.Company{}, err
	}
	if company.ID == "" {
		return entities.Company{}, ErrCompanyNotFound
	}
	if company.Subscription == nil {
		return entities.Company{}, ErrNoSubscription
	}

	next, ok := subscriptionTransitions[transitionKey{company.Subscription.Status, event}]
	if !ok {
		log.Printf("[subscription][usecase] transition rejected company_id=%s from=%s event=%s", companyID, company.Subscription.Status, event)
		return entities.Company{}, ErrInvalidSubscriptionTransition
	}

	updated, err := u.companyRepo.UpdateSubscriptionStatus(ctx, companyID, next)
	if err != nil {
		return entities.Company{}, err
	}
	log.Printf("[subscription][usecase] transition applied company_id=%s from=%s to=%s event=%s", companyID, company.Subscription.Status, next, event)
	return updated, nil
}

// mapProcessorEventType translates processor webhook types into state-machine
// events. Both the neutral names and the processor's own names are accepted.
func mapProcessorEventType(t string) (SubscriptionEvent, bool) {
	switch strings.TrimSpace(t) {
	case "payment.succeeded", "payment_intent.succeeded", "invoice.paid", "checkout.session.completed":
		return SubscriptionEventPaymentSucceeded, true
	case "payment.recurring_failed", "invoice.payment_failed":
		return SubscriptionEventChargeFailed, true
	case "subscription.deleted", "customer.subscription.deleted":
		return SubscriptionEventDeleted, true
	default:
		return "", false
	}
}

func (u *SubscriptionUseCase) logEvent(ctx context.Context, typ entities.EventType, companyID, relatedID string, metadata map[string]any) {
	if u.eventLog == nil {
		return
	}
	ev := entities.AnalyticsEvent{
		ID:              newID(),
		Type:            typ,
		Timestamp:       time.Now().UTC(),
		CompanyID:       companyID,
		CompanyRole:     entities.CompanyRoleBanho,
		RelatedEntityID: relatedID,
		Metadata:        metadata,
	}
	if err := u.eventLog.Append(ctx, ev); err != nil {
		log.Printf("[subscription][usecase] event log append failed type=%s company_id=%s err=%v", typ, companyID, err)
	}
}
