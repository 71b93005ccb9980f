package domain

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Listing URLs end in a slug whose tail is a UUID, e.g.
// .../nl/aanbod/bmw-118-full-led-m-pack-6b17f310-39a7-4f10-aa7f-4aafa0fde646.
// The UUID is the join key between detail records and index-page fragments.
var uuidPattern = regexp.MustCompile(`(?i)([a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12})`)

// ExtractListingID returns the identifier for a listing URL: the UUID inside
// the trailing path segment when present, otherwise the raw segment itself.
func ExtractListingID(listingURL string) string {
	lastPart := lastPathSegment(listingURL)
	if m := uuidPattern.FindString(lastPart); m != "" {
		return m
	}
	return lastPart
}

// IsRealListingID reports whether id identifies a real upstream listing (a
// UUID). Mock cars use short ids like "1" and have no detail page.
func IsRealListingID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ExtractListingSlug returns the full trailing slug of the listing URL
// (brand-model-features-uuid).
func ExtractListingSlug(listingURL string) string {
	if u, err := url.Parse(listingURL); err == nil {
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(segments) > 0 && segments[len(segments)-1] != "" {
			return segments[len(segments)-1]
		}
	}
	return ExtractListingID(listingURL)
}

func lastPathSegment(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
