package autoscout_adapter

import (
	"context"
	"fmt"

	"github.com/hendrikderyck/steven-car-company/internal/contextkeys"
	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
)

// FetchListingDetails fetches one detail page and maps its embedded
// structured data onto a ListingRecord. A failure of any kind produces a
// record carrying the error instead of an error return, so one broken
// listing never sinks the batch it rides in.
func (a *Adapter) FetchListingDetails(ctx context.Context, listingURL string) *domain.ListingRecord {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"listing_url": listingURL,
	})

	resp, err := a.client.R().SetContext(ctx).Get(listingURL)
	if err != nil {
		logger.Warn("Detail page fetch failed", port.Fields{"error": err.Error()})
		return failedRecord(listingURL, fmt.Errorf("fetching detail page: %w", err))
	}
	if resp.IsError() {
		logger.Warn("Detail page returned non-success status", port.Fields{
			"status": resp.StatusCode(),
		})
		return failedRecord(listingURL, fmt.Errorf("detail page returned HTTP %d", resp.StatusCode()))
	}

	rawJSON := findListingLdJSON(resp.String())
	if rawJSON == "" {
		logger.Warn("Detail page carries no vehicle structured data", nil)
		return failedRecord(listingURL, fmt.Errorf("no vehicle structured data on page"))
	}

	record, err := mapLdJSONToRecord(rawJSON, listingURL)
	if err != nil {
		logger.Warn("Structured data could not be mapped", port.Fields{"error": err.Error()})
		return failedRecord(listingURL, err)
	}

	logger.Debug("Listing details extracted", port.Fields{
		"has_title": record.Title != nil,
		"has_price": record.Price != nil,
	})
	return record
}

func failedRecord(listingURL string, err error) *domain.ListingRecord {
	return &domain.ListingRecord{
		URL:   listingURL,
		Error: err.Error(),
	}
}
