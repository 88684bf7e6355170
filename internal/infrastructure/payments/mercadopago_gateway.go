package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates payment intents for subscription activation.
//
// The company id travels in external_reference and metadata so the webhook
// can reconcile the succeeded charge back to a company without any extra
// lookup. Mock mode (PAYMENT_GATEWAY_MOCK/MERCADOPAGO_MOCK) approves intents
// locally without touching the processor.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
	payload := map[string]any{
		"transaction_amount": req.Amount,
		"description":        fmt.Sprintf("Assinatura %s", entities.SubscriptionPlanBanhoMensal),
		"external_reference": req.CompanyID,
		"metadata": map[string]any{
			"company_id":  req.CompanyID,
			"user_id":     req.UserID,
			"environment": req.Environment,
		},
	}

	if g != nil && g.mockMode {
		return g.mockIntent(payload)
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentIntent{}, ErrMercadoPagoGatewayNotConfigured
	}

	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		payload["payer"] = map[string]any{"email": email}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	var sdkReq payment.Request
	if err := json.Unmarshal(raw, &sdkReq); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return entities.PaymentIntent{}, err
	}

	log.Printf("[payment][gateway] create intent start company_id=%s amount=%.2f", req.CompanyID, req.Amount)
	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return entities.PaymentIntent{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return entities.PaymentIntent{}, err
	}
	log.Printf("[payment][gateway] create intent success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return entities.PaymentIntent{
		ID:               fmt.Sprintf("%d", resp.ID),
		ClientSecret:     extractClientSecret(b),
		Status:           resp.Status,
		ProviderResponse: b,
	}, nil
}

func (g *MercadoPagoGateway) mockIntent(payload map[string]any) (entities.PaymentIntent, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := map[string]any{}
	for k, v := range payload {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "pending"
	resp["date_created"] = now

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return entities.PaymentIntent{}, err
	}

	log.Printf("[payment][gateway] mock create intent provider_payment_id=%s", id)
	return entities.PaymentIntent{
		ID:               id,
		ClientSecret:     "mock_secret_" + id,
		Status:           "pending",
		ProviderResponse: b,
	}, nil
}

// extractClientSecret digs the checkout credential out of the provider
// response without binding to SDK struct versions. Ticket URL is what the
// sandbox checkout consumes.
func extractClientSecret(raw []byte) string {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	poi, ok := m["point_of_interaction"].(map[string]any)
	if !ok {
		return ""
	}
	td, ok := poi["transaction_data"].(map[string]any)
	if !ok {
		return ""
	}
	if s, ok := td["ticket_url"].(string); ok {
		return s
	}
	return ""
}

func isGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
