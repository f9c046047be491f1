package interfaces

import (
	"context"

	"printworks/internal/domain/entities"
)

// ISundryTemplateRepository abstracts the reusable-sundry catalog. Writing a
// template is a side effect of adding a sundry; failures must not fail the
// append.

type ISundryTemplateRepository interface {
	Create(ctx context.Context, t entities.SundryTemplate) (entities.SundryTemplate, error)
	List(ctx context.Context) ([]entities.SundryTemplate, error)
}
