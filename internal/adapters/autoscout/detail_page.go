package autoscout_adapter

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hendrikderyck/steven-car-company/internal/constants"
	"github.com/hendrikderyck/steven-car-company/internal/contextkeys"
	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
)

var (
	h1AnyPattern    = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	titleTagPattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

	imgTagPattern    = regexp.MustCompile(`(?is)<img[^>]*>`)
	imageSizePattern = regexp.MustCompile(`/\d+x\d+\.(jpg|webp)$`)

	priceTextPattern  = regexp.MustCompile(`(?s)<[^>]+>([^<]*€\s*[\d.,]+[^<]*)</[a-zA-Z]+>`)
	euroValuePattern  = regexp.MustCompile(`€\s*(\d{1,3}(?:\.\d{3})*)`)
	monthlyCtxPattern = regexp.MustCompile(`(?i)per\s*maand|Total|TAEG|maandaflossing|vanaf|maandelijks`)
	centsPattern      = regexp.MustCompile(`,\d{2}\b`)

	dtDdPattern    = regexp.MustCompile(`(?is)<dt[^>]*>(.*?)</dt>\s*<dd[^>]*>(.*?)</dd>`)
	h2OpenPattern  = regexp.MustCompile(`(?is)<h2[^>]*>`)
	svgPattern     = regexp.MustCompile(`(?is)<svg.*?</svg>`)
	scriptPattern  = regexp.MustCompile(`(?is)<script.*?</script>`)
	stylePattern   = regexp.MustCompile(`(?is)<style.*?</style>`)
	iframePattern  = regexp.MustCompile(`(?is)<iframe.*?</iframe>`)
	chromePattern  = regexp.MustCompile(`(?is)<(header|nav|footer)[^>]*>.*?</(header|nav|footer)>`)
	// Links back into the marketplace would leak visitors out of the site.
	upstreamHrefPattern = regexp.MustCompile(`href="(?:https?://www\.autoscout24\.[^"]*|/nl/[^"]*)"`)

	anyTagPattern  = regexp.MustCompile(`(?s)<[^>]*>`)
	multiWSPattern = regexp.MustCompile(`\s+`)
)

// unwantedTextPatterns remove the financing and insurance marketing copy
// AutoScout24 interleaves with the vehicle sections. Order matters: the more
// specific sentences go before their catch-all tails.
var unwantedTextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)97%\s*(van de klanten is\s*)?tevreden[^<]*`),
	regexp.MustCompile(`(?i)Let op, geld lenen kost ook geld\.?[^<]*`),
	regexp.MustCompile(`(?i)geld lenen kost ook geld\.?[^<]*`),
	regexp.MustCompile(`(?i)AXA\s*(Bank|Belgium)?[^<]*`),
	regexp.MustCompile(`(?i)Comfort Auto[^<]*`),
	regexp.MustCompile(`(?i)Sterrenbeoordeling[^<]*`),
	regexp.MustCompile(`(?i)Krediet aanvragen[^<]*`),
	regexp.MustCompile(`(?i)Bereken je (auto)?lening[^<]*`),
	regexp.MustCompile(`(?i)Verzeker je (nieuwe )?auto[^<]*`),
	regexp.MustCompile(`(?i)Vraag een offerte aan[^<]*`),
}

// FetchDetailPageContent fetches one detail page and extracts everything the
// site needs to reproduce it: title, gallery, price, key specs and the
// sanitized car-only content fragment.
func (a *Adapter) FetchDetailPageContent(ctx context.Context, listingURL string) (*domain.DetailPageResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"listing_url": listingURL,
	})

	resp, err := a.client.R().SetContext(ctx).Get(listingURL)
	if err != nil {
		return nil, fmt.Errorf("fetching detail page: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("detail page returned HTTP %d", resp.StatusCode())
	}

	html := resp.String()

	result := &domain.DetailPageResult{
		Title:       extractPageTitle(html),
		ListingURL:  listingURL,
		Images:      extractGalleryImages(html),
		Price:       extractPriceString(html),
		KeySpecs:    extractKeySpecs(html),
		ContentHTML: buildContentHTML(html),
	}

	logger.Debug("Detail page content extracted", port.Fields{
		"images":    len(result.Images),
		"key_specs": len(result.KeySpecs),
		"has_price": result.Price != "",
	})
	return result, nil
}

// extractPageTitle prefers the pipe-separated marketing h1 ("BMW 118 | Full
// LED | M Pack"), then any h1, then the document title without the site
// suffix, then a generic placeholder.
func extractPageTitle(html string) string {
	var headings []string
	for _, m := range h1AnyPattern.FindAllStringSubmatch(html, -1) {
		if title := collapseText(stripTags(m[1])); title != "" {
			headings = append(headings, title)
		}
	}
	for _, h := range headings {
		if strings.Contains(h, "|") {
			return h
		}
	}
	if len(headings) > 0 {
		return headings[0]
	}
	if m := titleTagPattern.FindStringSubmatch(html); m != nil {
		title := m[1]
		if pipe := strings.Index(title, "|"); pipe >= 0 {
			title = title[:pipe]
		}
		if title = collapseText(stripTags(title)); title != "" {
			return title
		}
	}
	return "Voertuig"
}

// extractGalleryImages collects the gallery thumbnails and rewrites every
// URL to the big variant. Thumbnails repeat per size, so images dedupe on
// their size-stripped base path; first occurrence order is kept.
func extractGalleryImages(html string) []string {
	seen := make(map[string]struct{})
	var images []string

	for _, tag := range imgTagPattern.FindAllString(html, -1) {
		if !strings.Contains(tag, "image-gallery-thumbnail-image") {
			continue
		}
		src := attributeValue(tag, "src")
		if src == "" || !strings.Contains(src, "listing-images") {
			continue
		}
		base := imageSizePattern.ReplaceAllString(src, "")
		if _, ok := seen[base]; ok {
			continue
		}
		seen[base] = struct{}{}
		images = append(images, base+"/"+constants.BigImageSize)
	}
	return images
}

// extractPriceString finds the asking price in the raw markup. The page is
// littered with financing figures, so the candidates are the text elements
// containing a € amount: an element whose own text mentions a monthly rate
// or cents is skipped, amounts under €1000 are ignored, and the largest
// survivor wins. Returns "" when nothing qualifies.
func extractPriceString(html string) string {
	best := 0
	bestText := ""
	for _, m := range priceTextPattern.FindAllStringSubmatch(html, -1) {
		inner := m[1]
		if monthlyCtxPattern.MatchString(inner) {
			continue
		}
		if centsPattern.MatchString(inner) {
			continue
		}

		pm := euroValuePattern.FindStringSubmatch(inner)
		if pm == nil {
			continue
		}
		amount, err := strconv.Atoi(strings.ReplaceAll(pm[1], ".", ""))
		if err != nil || amount < 1000 {
			continue
		}
		if amount > best {
			best = amount
			bestText = strings.TrimSpace(pm[0])
		}
	}
	return bestText
}

// extractKeySpecs pulls the overview spec table near the Kilometerstand
// label. The window opens 400 bytes before the label (snapped back to the
// enclosing <div) and closes 1100 bytes after it or at the next section
// heading. Within the window dt/dd pairs are preferred; a text-proximity
// fallback covers markup without definition lists.
func extractKeySpecs(html string) []domain.KeySpec {
	idx := strings.Index(html, "Kilometerstand")
	if idx < 0 {
		return nil
	}

	start := idx - 400
	if start < 0 {
		start = 0
	}
	if div := strings.LastIndex(html[:start], "<div"); div >= 0 {
		start = div
	}

	end := idx + 1100
	if end > len(html) {
		end = len(html)
	}
	if h2 := strings.Index(html[idx:end], "<h2"); h2 >= 0 {
		end = idx + h2
	}

	window := html[start:end]

	var specs []domain.KeySpec
	for _, m := range dtDdPattern.FindAllStringSubmatch(window, -1) {
		label := collapseText(stripTags(svgPattern.ReplaceAllString(m[1], "")))
		if !isKeySpecLabel(label) {
			continue
		}
		value := collapseText(stripTags(svgPattern.ReplaceAllString(m[2], "")))
		if value != "" {
			specs = append(specs, domain.KeySpec{Label: label, Value: value})
		}
	}
	if len(specs) > 0 {
		return specs
	}

	// Fallback: some page variants render the overview as styled spans.
	for _, label := range constants.KeySpecLabels {
		pos := strings.Index(window, label)
		if pos < 0 {
			continue
		}
		tail := window[pos+len(label):]
		if len(tail) > 200 {
			tail = tail[:200]
		}
		value := collapseText(stripTags(svgPattern.ReplaceAllString(tail, "")))
		if value == "" {
			continue
		}
		// First text chunk only; the rest belongs to the next cell.
		if fields := strings.Fields(value); len(fields) > 4 {
			value = strings.Join(fields[:4], " ")
		}
		specs = append(specs, domain.KeySpec{Label: label, Value: value})
	}
	return specs
}

func isKeySpecLabel(label string) bool {
	for _, allowed := range constants.KeySpecLabels {
		if label == allowed {
			return true
		}
	}
	return false
}

// buildContentHTML assembles the sanitized car-only fragment: the kept
// vehicle sections, each truncated at the first financing/insurance heading
// and scrubbed of marketing copy, wrapped in a single container.
func buildContentHTML(html string) string {
	var b strings.Builder
	b.WriteString(`<div class="as24-detail-main">`)

	for _, section := range extractKeptSections(html) {
		b.WriteString(cleanSectionHTML(section))
	}

	b.WriteString(`</div>`)
	return b.String()
}

type sectionHeading struct {
	start int
	text  string
}

// extractKeptSections returns the raw markup of every kept section, from its
// h2 heading up to the next h2 (or end of document), truncated early at any
// embedded stop-section text.
func extractKeptSections(html string) []string {
	headings := findH2Headings(html)
	var sections []string

	for i, h := range headings {
		if !matchesAny(h.text, constants.KeepSections) {
			continue
		}
		end := len(html)
		if i+1 < len(headings) {
			end = headings[i+1].start
		}
		section := html[h.start:end]

		for _, stop := range constants.StopSections {
			if pos := strings.Index(section, stop); pos >= 0 {
				section = section[:pos]
			}
		}
		sections = append(sections, section)
	}
	return sections
}

func findH2Headings(html string) []sectionHeading {
	var headings []sectionHeading
	for _, loc := range h2OpenPattern.FindAllStringIndex(html, -1) {
		closeTag := strings.Index(html[loc[1]:], "</h2>")
		if closeTag < 0 {
			continue
		}
		inner := html[loc[1] : loc[1]+closeTag]
		headings = append(headings, sectionHeading{
			start: loc[0],
			text:  collapseText(stripTags(inner)),
		})
	}
	return headings
}

func matchesAny(text string, candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(text, c) {
			return true
		}
	}
	return false
}

func cleanSectionHTML(section string) string {
	cleaned := scriptPattern.ReplaceAllString(section, "")
	cleaned = stylePattern.ReplaceAllString(cleaned, "")
	cleaned = iframePattern.ReplaceAllString(cleaned, "")
	cleaned = chromePattern.ReplaceAllString(cleaned, "")
	for _, p := range unwantedTextPatterns {
		cleaned = p.ReplaceAllString(cleaned, "")
	}
	return upstreamHrefPattern.ReplaceAllString(cleaned, `href="#"`)
}

func stripTags(s string) string {
	return anyTagPattern.ReplaceAllString(s, " ")
}

func collapseText(s string) string {
	return strings.TrimSpace(multiWSPattern.ReplaceAllString(s, " "))
}
