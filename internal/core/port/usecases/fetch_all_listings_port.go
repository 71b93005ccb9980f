package usecases_port

import (
	"context"

	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
)

// FetchAllListingsPort runs the whole extraction pipeline: discovery,
// batched detail fetching, fragment joining. The returned slice includes
// error records (for diagnostics); callers filter before publishing.
type FetchAllListingsPort interface {
	Execute(ctx context.Context) ([]*domain.ListingRecord, error)
}
