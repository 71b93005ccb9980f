package autoscout_adapter

import (
	"strings"

	"github.com/hendrikderyck/steven-car-company/internal/constants"
)

// extractListingURLs scans raw index-page markup for listing detail URLs.
// Both absolute and site-relative occurrences of the listing path are picked
// up; relative ones are resolved against the site root. Query strings are cut
// off and duplicates collapse, preserving first-seen order.
func extractListingURLs(html string) []string {
	seen := make(map[string]struct{})
	var urls []string

	add := func(u string) {
		if u == "" {
			return
		}
		// A bare "/nl/aanbod/" with nothing after it is a navigation link,
		// not a listing.
		if strings.HasSuffix(u, constants.ListingPathMarker) {
			return
		}
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}

	absoluteMarker := constants.BaseURL + constants.ListingPathMarker
	for _, start := range markerIndexes(html, absoluteMarker) {
		add(scanURL(html, start))
	}

	for _, start := range markerIndexes(html, constants.ListingPathMarker) {
		// Skip hits that are the tail of an absolute URL already collected.
		if start >= len(constants.BaseURL) && html[start-len(constants.BaseURL):start] == constants.BaseURL {
			continue
		}
		if u := scanURL(html, start); u != "" {
			add(constants.BaseURL + u)
		}
	}

	return urls
}

// scanURL reads forward from start until a stop character, then trims any
// query string. Returns "" when nothing usable follows the marker.
func scanURL(html string, start int) string {
	end := start
	for end < len(html) && !strings.ContainsRune(constants.URLStopChars, rune(html[end])) {
		end++
	}
	u := html[start:end]
	if q := strings.IndexByte(u, '?'); q >= 0 {
		u = u[:q]
	}
	return u
}

// markerIndexes returns every index at which marker occurs in s.
func markerIndexes(s, marker string) []int {
	var idxs []int
	from := 0
	for {
		i := strings.Index(s[from:], marker)
		if i < 0 {
			return idxs
		}
		idxs = append(idxs, from+i)
		from += i + len(marker)
	}
}

// findListingLdJSON locates the ld+json block that describes the vehicle.
// Detail pages carry several structured-data blocks (breadcrumbs, the dealer
// organization, the product itself); only a block containing one of the
// plausibility markers is accepted. Returns "" when no such block exists.
func findListingLdJSON(html string) string {
	from := 0
	for {
		i := strings.Index(html[from:], constants.LdJSONMarker)
		if i < 0 {
			return ""
		}
		from += i + len(constants.LdJSONMarker)

		open := strings.IndexByte(html[from:], '>')
		if open < 0 {
			return ""
		}
		contentStart := from + open + 1

		closeTag := strings.Index(html[contentStart:], "</script>")
		if closeTag < 0 {
			return ""
		}
		candidate := strings.TrimSpace(html[contentStart : contentStart+closeTag])
		from = contentStart + closeTag

		for _, marker := range constants.LdJSONPlausibilityMarkers {
			if strings.Contains(candidate, marker) {
				return candidate
			}
		}
	}
}

// extractFragments lifts the listing card <article> blocks out of an index
// page, keyed by the article's id attribute (the listing UUID). The first
// closing </article> ends a card; the cards on these pages do not nest.
func extractFragments(html string) map[string]string {
	fragments := make(map[string]string)

	from := 0
	for {
		i := strings.Index(html[from:], "<article")
		if i < 0 {
			return fragments
		}
		start := from + i

		tagEnd := strings.IndexByte(html[start:], '>')
		if tagEnd < 0 {
			return fragments
		}
		openTag := html[start : start+tagEnd+1]
		from = start + tagEnd + 1

		if !strings.Contains(openTag, constants.FragmentWrapperClass) {
			continue
		}
		id := attributeValue(openTag, "id")
		if id == "" {
			continue
		}

		closeIdx := strings.Index(html[from:], "</article>")
		if closeIdx < 0 {
			return fragments
		}
		end := from + closeIdx + len("</article>")
		fragments[id] = html[start:end]
		from = end
	}
}

// attributeValue pulls a double-quoted attribute out of a single tag.
func attributeValue(tag, attr string) string {
	marker := attr + `="`
	i := strings.Index(tag, marker)
	if i < 0 {
		return ""
	}
	rest := tag[i+len(marker):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return ""
	}
	return rest[:end]
}
