package usecase

import (
	"context"
	"fmt"

	"github.com/hendrikderyck/steven-car-company/internal/configs"
	"github.com/hendrikderyck/steven-car-company/internal/constants"
	"github.com/hendrikderyck/steven-car-company/internal/contextkeys"
	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
	usecases_port "github.com/hendrikderyck/steven-car-company/internal/core/port/usecases"
)

// FetchListingDetailUseCase resolves a listing identifier to its live detail
// URL (via a fresh discovery pass) and extracts the visual page content.
type FetchListingDetailUseCase struct {
	fetcher port.ListingFetcherPort
	cfg     configs.ScraperConfig
}

var _ usecases_port.FetchListingDetailPort = (*FetchListingDetailUseCase)(nil)

func NewFetchListingDetailUseCase(fetcher port.ListingFetcherPort, cfg configs.ScraperConfig) *FetchListingDetailUseCase {
	return &FetchListingDetailUseCase{fetcher: fetcher, cfg: cfg}
}

func (uc *FetchListingDetailUseCase) Execute(ctx context.Context, listingID string) (*domain.DetailPageResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	// Mock cars carry short ids and have no upstream page; skip the
	// discovery round trip for them.
	if !domain.IsRealListingID(listingID) {
		return nil, domain.ErrListingNotFound
	}

	discovery, err := uc.fetcher.FetchLinks(ctx, uc.cfg.DealerURL, uc.maxPages())
	if err != nil {
		return nil, fmt.Errorf("discovering listings: %w", err)
	}

	for _, listingURL := range discovery.URLs {
		if domain.ExtractListingID(listingURL) != listingID {
			continue
		}
		logger.Debug("Listing identifier resolved", port.Fields{
			"listing_id":  listingID,
			"listing_url": listingURL,
		})
		return uc.fetcher.FetchDetailPageContent(ctx, listingURL)
	}

	logger.Info("Listing identifier matched no discovered URL", port.Fields{
		"listing_id": listingID,
		"known_urls": len(discovery.URLs),
	})
	return nil, domain.ErrListingNotFound
}

func (uc *FetchListingDetailUseCase) maxPages() int {
	if uc.cfg.MaxPages > 0 {
		return uc.cfg.MaxPages
	}
	return constants.DefaultMaxPages
}
