package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/hendrikderyck/steven-car-company/internal/configs"
	"github.com/hendrikderyck/steven-car-company/internal/constants"
	"github.com/hendrikderyck/steven-car-company/internal/contextkeys"
	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
	usecases_port "github.com/hendrikderyck/steven-car-company/internal/core/port/usecases"
)

// FetchAllListingsUseCase runs the full extraction pipeline: discover every
// detail URL on the paginated dealer index, fetch the details in bounded
// batches, join the index-page card fragments onto the records, and hand the
// successful ones to the queue.
type FetchAllListingsUseCase struct {
	fetcher port.ListingFetcherPort
	queue   port.ProcessedListingQueuePort
	cfg     configs.ScraperConfig
}

var _ usecases_port.FetchAllListingsPort = (*FetchAllListingsUseCase)(nil)

func NewFetchAllListingsUseCase(
	fetcher port.ListingFetcherPort,
	queue port.ProcessedListingQueuePort,
	cfg configs.ScraperConfig,
) *FetchAllListingsUseCase {
	return &FetchAllListingsUseCase{
		fetcher: fetcher,
		queue:   queue,
		cfg:     cfg,
	}
}

// Execute returns one record per discovered URL, in discovery order. Records
// that failed individually are included with their Error set; only a failed
// discovery is an error for the whole run.
func (uc *FetchAllListingsUseCase) Execute(ctx context.Context) ([]*domain.ListingRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	discovery, err := uc.fetcher.FetchLinks(ctx, uc.cfg.DealerURL, uc.maxPages())
	if err != nil {
		return nil, fmt.Errorf("discovering listings: %w", err)
	}

	records := uc.fetchInBatches(ctx, discovery.URLs)

	joined := 0
	for _, record := range records {
		id := domain.ExtractListingID(record.URL)
		if fragment, ok := discovery.Fragments[id]; ok {
			record.HTMLWrapper = fragment
			joined++
		}
	}

	failed := 0
	for _, record := range records {
		if record.Failed() {
			failed++
			continue
		}
		if err := uc.queue.EnqueueListing(ctx, record); err != nil {
			// Publishing is best effort; the caller still gets the record.
			logger.Warn("Failed to enqueue processed listing", port.Fields{
				"listing_url": record.URL,
				"error":       err.Error(),
			})
		}
	}

	logger.Info("Extraction pipeline finished", port.Fields{
		"total":            len(records),
		"failed":           failed,
		"fragments_joined": joined,
	})
	return records, nil
}

// fetchInBatches fetches detail pages with at most batchSize requests in
// flight; batches run strictly one after another to keep upstream pressure
// predictable. Results land at their URL's index so order is stable.
func (uc *FetchAllListingsUseCase) fetchInBatches(ctx context.Context, urls []string) []*domain.ListingRecord {
	records := make([]*domain.ListingRecord, len(urls))
	batchSize := uc.batchSize()

	for start := 0; start < len(urls); start += batchSize {
		end := start + batchSize
		if end > len(urls) {
			end = len(urls)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int, listingURL string) {
				defer wg.Done()
				records[idx] = uc.fetcher.FetchListingDetails(ctx, listingURL)
			}(i, urls[i])
		}
		wg.Wait()
	}
	return records
}

func (uc *FetchAllListingsUseCase) batchSize() int {
	if uc.cfg.BatchSize > 0 {
		return uc.cfg.BatchSize
	}
	return constants.DefaultBatchSize
}

func (uc *FetchAllListingsUseCase) maxPages() int {
	if uc.cfg.MaxPages > 0 {
		return uc.cfg.MaxPages
	}
	return constants.DefaultMaxPages
}
