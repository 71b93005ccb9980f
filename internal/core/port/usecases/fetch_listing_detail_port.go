package usecases_port

import (
	"context"

	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
)

// FetchListingDetailPort resolves a listing identifier to its detail URL and
// extracts the visual page content. Returns domain.ErrListingNotFound when
// the identifier matches nothing currently listed.
type FetchListingDetailPort interface {
	Execute(ctx context.Context, listingID string) (*domain.DetailPageResult, error)
}
