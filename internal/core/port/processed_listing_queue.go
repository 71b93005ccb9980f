package port

import (
	"context"

	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
)

// ProcessedListingQueuePort publishes successfully scraped listings for
// downstream consumers. Publishing is best effort: the pipeline's own result
// never depends on it.
type ProcessedListingQueuePort interface {
	EnqueueListing(ctx context.Context, record *domain.ListingRecord) error
	Close() error
}
