package port

import (
	"context"

	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
)

// ListingFetcherPort covers every interaction with the upstream marketplace.
type ListingFetcherPort interface {
	// FetchLinks paginates the dealer index starting at rootURL and returns
	// all unique detail URLs (sorted) together with the card fragments found
	// on the same pages. A non-success page status ends pagination early with
	// partial results; only a transport failure returns an error.
	FetchLinks(ctx context.Context, rootURL string, maxPages int) (*domain.DiscoveryResult, error)

	// FetchListingDetails fetches one detail page and maps its embedded
	// structured data onto a ListingRecord. Failures never return an error:
	// they are carried in the record's Error field.
	FetchListingDetails(ctx context.Context, listingURL string) *domain.ListingRecord

	// FetchDetailPageContent fetches one detail page and extracts the
	// sanitized visual content (gallery, title, price string, key specs,
	// car-only HTML). A non-success status is returned as an error.
	FetchDetailPageContent(ctx context.Context, listingURL string) (*domain.DetailPageResult, error)
}
