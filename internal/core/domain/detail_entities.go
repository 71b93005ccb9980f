package domain

import "errors"

// ErrListingNotFound is returned when a requested listing identifier matches
// none of the currently discovered detail URLs.
var ErrListingNotFound = errors.New("listing not found")

// KeySpec is one label/value pair from the detail page overview block
// (Kilometerstand, Transmissie, ...).
type KeySpec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DetailPageResult is the visual-reproduction payload for a single listing:
// the sanitized car-only content fragment plus everything the hero section
// needs. Distinct from ListingRecord, which carries structured data.
type DetailPageResult struct {
	Title       string `json:"title"`
	ContentHTML string `json:"contentHtml"`
	ListingURL  string `json:"listingUrl"`
	// Images are gallery URLs rewritten to the big variant; first is the
	// main image.
	Images   []string  `json:"images"`
	Price    string    `json:"price,omitempty"`
	KeySpecs []KeySpec `json:"keySpecs,omitempty"`
}
