package autoscout_adapter

import (
	"context"
	"fmt"
	"sort"

	"github.com/hendrikderyck/steven-car-company/internal/contextkeys"
	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
)

// FetchLinks walks the paginated dealer index and collects every unique
// listing detail URL plus the card fragments found along the way.
//
// Pagination stops at the first page that responds non-2xx, yields no URLs,
// or yields no URLs we have not already seen (the site repeats the last page
// for out-of-range page numbers). Only a transport failure on the first page
// is an error; later failures return the partial result.
func (a *Adapter) FetchLinks(ctx context.Context, rootURL string, maxPages int) (*domain.DiscoveryResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	seen := make(map[string]struct{})
	var urls []string
	fragments := make(map[string]string)

	for page := 1; page <= maxPages; page++ {
		resp, err := a.client.R().SetContext(ctx).Get(pageURL(rootURL, page))
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("fetching dealer index: %w", err)
			}
			logger.Warn("Index page fetch failed, keeping partial result", port.Fields{
				"page":  page,
				"error": err.Error(),
			})
			break
		}
		if resp.IsError() {
			logger.Warn("Index page returned non-success status, stopping pagination", port.Fields{
				"page":   page,
				"status": resp.StatusCode(),
			})
			break
		}

		html := resp.String()
		pageURLs := extractListingURLs(html)
		if len(pageURLs) == 0 {
			logger.Debug("Index page yielded no listing URLs, stopping pagination", port.Fields{
				"page": page,
			})
			break
		}

		newCount := 0
		for _, u := range pageURLs {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			urls = append(urls, u)
			newCount++
		}

		for id, fragment := range extractFragments(html) {
			if _, ok := fragments[id]; !ok {
				fragments[id] = fragment
			}
		}

		logger.Debug("Index page scanned", port.Fields{
			"page":     page,
			"urls":     len(pageURLs),
			"new_urls": newCount,
		})

		if newCount == 0 {
			break
		}
	}

	sort.Strings(urls)

	logger.Info("Listing discovery finished", port.Fields{
		"total_urls":      len(urls),
		"total_fragments": len(fragments),
	})

	return &domain.DiscoveryResult{URLs: urls, Fragments: fragments}, nil
}
