package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"printworks/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates hosted checkout sessions through the Mercado
// Pago preference API. Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK)
// fabricates a session locally for development without an access token.
type MercadoPagoGateway struct {
	client          preference.Client
	notificationURL string
	mockMode        bool
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, notificationURL string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, notificationURL: notificationURL}, nil
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

	return &MercadoPagoGateway{client: preference.NewClient(cfg), notificationURL: notificationURL}, nil
}

func (g *MercadoPagoGateway) CreateSession(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock session created session_id=%s request_id=%s amount_minor=%d", id, req.RequestID, req.AmountMinorUnits)
		return interfaces.CheckoutSession{
			ID:          id,
			RedirectURL: fmt.Sprintf("https://checkout.invalid/session/%s", id),
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] session create start request_id=%s amount_minor=%d lines=%d", req.RequestID, req.AmountMinorUnits, len(req.Lines))

	items := make([]preference.ItemRequest, 0, len(req.Lines))
	for _, line := range req.Lines {
		unitPrice, _ := decimal.NewFromInt(line.UnitAmountMinor).Shift(-2).Float64()
		items = append(items, preference.ItemRequest{
			Title:      line.Title,
			Quantity:   line.Quantity,
			UnitPrice:  unitPrice,
			CurrencyID: req.Currency,
		})
	}

	metadata := make(map[string]any, len(req.Metadata))
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	prefReq := preference.Request{
		Items:             items,
		ExternalReference: req.RequestID,
		NotificationURL:   g.notificationURL,
		Metadata:          metadata,
		BackURLs: &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Pending: req.SuccessURL,
			Failure: req.CancelURL,
		},
	}

	resp, err := g.client.Create(ctx, prefReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed request_id=%s err=%v", req.RequestID, err)
		return interfaces.CheckoutSession{}, err
	}
	log.Printf("[payment][gateway] session create success session_id=%s request_id=%s", resp.ID, req.RequestID)

	return interfaces.CheckoutSession{ID: resp.ID, RedirectURL: resp.InitPoint}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
