package response

import (
	"time"

	"printworks/internal/domain/entities"
)

type SundryTemplateResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	UnitPrice   string    `json:"unit_price"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromSundryTemplates(templates []entities.SundryTemplate) []SundryTemplateResponse {
	out := make([]SundryTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, SundryTemplateResponse{
			ID:          t.ID,
			Description: t.Description,
			UnitPrice:   t.UnitPrice.StringFixed(2),
			CreatedAt:   t.CreatedAt,
		})
	}
	return out
}
