package response

import (
	"time"

	"printworks/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type LineItemResponse struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type SundryResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	UnitPrice   string    `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}

type QuoteDetailsResponse struct {
	Specifications string     `json:"specifications"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

type PriceMatchDetailsResponse struct {
	CompetitorName  string `json:"competitor_name"`
	CompetitorPrice string `json:"competitor_price"`
	ProofURL        string `json:"proof_url,omitempty"`
}

type RequestRecordResponse struct {
	ID                  string                     `json:"id"`
	Kind                string                     `json:"kind"`
	Status              string                     `json:"status"`
	PaymentStatus       string                     `json:"payment_status"`
	ProductionStatus    string                     `json:"production_status,omitempty"`
	LineItems           []LineItemResponse         `json:"line_items"`
	Sundries            []SundryResponse           `json:"sundries"`
	Subtotal            string                     `json:"subtotal"`
	Tax                 string                     `json:"tax"`
	Total               string                     `json:"total"`
	TaxApplicable       bool                       `json:"tax_applicable"`
	TaxRate             string                     `json:"tax_rate"`
	Quote               *QuoteDetailsResponse      `json:"quote,omitempty"`
	PriceMatch          *PriceMatchDetailsResponse `json:"price_match,omitempty"`
	NoPaymentException  bool                       `json:"no_payment_exception,omitempty"`
	CustomerRef         string                     `json:"customer_ref"`
	AssignedOperatorRef string                     `json:"assigned_operator_ref,omitempty"`
	ExternalPaymentRef  string                     `json:"external_payment_ref,omitempty"`
	RejectReason        string                     `json:"reject_reason,omitempty"`
	PaidAt              *time.Time                 `json:"paid_at,omitempty"`
	CreatedAt           time.Time                  `json:"created_at"`
	UpdatedAt           time.Time                  `json:"updated_at"`
}

func FromRequestRecord(r entities.RequestRecord) RequestRecordResponse {
	resp := RequestRecordResponse{
		ID:                  r.ID,
		Kind:                string(r.Kind),
		Status:              string(r.Status),
		PaymentStatus:       string(r.PaymentStatus),
		ProductionStatus:    string(r.ProductionStatus),
		LineItems:           make([]LineItemResponse, 0, len(r.LineItems)),
		Sundries:            make([]SundryResponse, 0, len(r.Sundries)),
		Subtotal:            r.Subtotal.StringFixed(2),
		Tax:                 r.Tax.StringFixed(2),
		Total:               r.Total.StringFixed(2),
		TaxApplicable:       r.TaxPolicy.Applicable,
		TaxRate:             r.TaxPolicy.Rate.String(),
		NoPaymentException:  r.NoPaymentException,
		CustomerRef:         r.CustomerRef,
		AssignedOperatorRef: r.AssignedOperatorRef,
		ExternalPaymentRef:  r.ExternalPaymentRef,
		RejectReason:        r.RejectReason,
		PaidAt:              r.PaidAt,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
	for _, li := range r.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			Name:      li.Name,
			UnitPrice: li.UnitPrice.StringFixed(2),
			Quantity:  li.Quantity,
			LineTotal: li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity))).StringFixed(2),
		})
	}
	for _, s := range r.Sundries {
		resp.Sundries = append(resp.Sundries, SundryResponse{
			ID:          s.ID,
			Description: s.Description,
			UnitPrice:   s.UnitPrice.StringFixed(2),
			Quantity:    s.Quantity,
			AddedAt:     s.AddedAt,
		})
	}
	if r.QuoteDetails != nil {
		resp.Quote = &QuoteDetailsResponse{
			Specifications: r.QuoteDetails.Specifications,
			Deadline:       r.QuoteDetails.Deadline,
		}
	}
	if r.PriceMatchDetails != nil {
		resp.PriceMatch = &PriceMatchDetailsResponse{
			CompetitorName:  r.PriceMatchDetails.CompetitorName,
			CompetitorPrice: r.PriceMatchDetails.CompetitorPrice.StringFixed(2),
			ProofURL:        r.PriceMatchDetails.ProofURL,
		}
	}
	return resp
}

func FromRequestRecords(records []entities.RequestRecord) []RequestRecordResponse {
	out := make([]RequestRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromRequestRecord(r))
	}
	return out
}
