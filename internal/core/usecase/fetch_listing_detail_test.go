package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestFetchListingDetailResolvesIdentifier(t *testing.T) {
	fetcher := &fakeFetcher{
		discovery: &domain.DiscoveryResult{URLs: []string{urlA, urlB}},
		detailPage: &domain.DetailPageResult{
			Title:      "BMW 118",
			ListingURL: urlA,
		},
	}

	detail, err := NewFetchListingDetailUseCase(fetcher, scraperCfg()).Execute(context.Background(), idA)
	require.NoError(t, err)
	require.Equal(t, "BMW 118", detail.Title)
}

func TestFetchListingDetailMockIDSkipsDiscovery(t *testing.T) {
	fetcher := &fakeFetcher{
		discovery: &domain.DiscoveryResult{URLs: []string{urlA}},
	}

	_, err := NewFetchListingDetailUseCase(fetcher, scraperCfg()).Execute(context.Background(), "1")
	require.ErrorIs(t, err, domain.ErrListingNotFound)
	require.Zero(t, atomic.LoadInt32(&fetcher.linksCalls))
}

func TestFetchListingDetailUnknownIdentifier(t *testing.T) {
	fetcher := &fakeFetcher{
		discovery: &domain.DiscoveryResult{URLs: []string{urlA, urlB}},
	}

	_, err := NewFetchListingDetailUseCase(fetcher, scraperCfg()).Execute(context.Background(), "dddddddd-1111-2222-3333-444444444444")
	require.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestFetchListingDetailDiscoveryFailure(t *testing.T) {
	fetcher := &fakeFetcher{linksErr: errors.New("dealer index unreachable")}

	_, err := NewFetchListingDetailUseCase(fetcher, scraperCfg()).Execute(context.Background(), idA)
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrListingNotFound)
}

func TestFetchListingDetailUpstreamContentFailure(t *testing.T) {
	fetcher := &fakeFetcher{
		discovery:     &domain.DiscoveryResult{URLs: []string{urlA}},
		detailPageErr: errors.New("detail page returned HTTP 403"),
	}

	_, err := NewFetchListingDetailUseCase(fetcher, scraperCfg()).Execute(context.Background(), idA)
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrListingNotFound)
}
