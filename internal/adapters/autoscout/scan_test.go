package autoscout_adapter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractListingURLs(t *testing.T) {
	html := `
		<a href="https://www.autoscout24.be/nl/aanbod/bmw-118-6b17f310-39a7-4f10-aa7f-4aafa0fde646?source=list">card</a>
		<a href='/nl/aanbod/opel-corsa-11111111-2222-3333-4444-555555555555'>card</a>
		<a href="/nl/aanbod/">all listings</a>
		<span>https://www.autoscout24.be/nl/aanbod/bmw-118-6b17f310-39a7-4f10-aa7f-4aafa0fde646</span>
	`

	urls := extractListingURLs(html)
	require.Equal(t, []string{
		"https://www.autoscout24.be/nl/aanbod/bmw-118-6b17f310-39a7-4f10-aa7f-4aafa0fde646",
		"https://www.autoscout24.be/nl/aanbod/opel-corsa-11111111-2222-3333-4444-555555555555",
	}, urls)
}

func TestExtractListingURLsStopsAtStopChars(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "double quote",
			html: `href="/nl/aanbod/bmw-118-abc"`,
			want: "https://www.autoscout24.be/nl/aanbod/bmw-118-abc",
		},
		{
			name: "closing paren",
			html: `url(/nl/aanbod/bmw-118-abc)`,
			want: "https://www.autoscout24.be/nl/aanbod/bmw-118-abc",
		},
		{
			name: "whitespace",
			html: "/nl/aanbod/bmw-118-abc next-token",
			want: "https://www.autoscout24.be/nl/aanbod/bmw-118-abc",
		},
		{
			name: "query string trimmed",
			html: `"/nl/aanbod/bmw-118-abc?page=2&src=x"`,
			want: "https://www.autoscout24.be/nl/aanbod/bmw-118-abc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls := extractListingURLs(tt.html)
			require.Equal(t, []string{tt.want}, urls)
		})
	}
}

func TestFindListingLdJSONSkipsImplausibleBlocks(t *testing.T) {
	html := `
		<script type="application/ld+json">{"@type":"BreadcrumbList","itemListElement":[]}</script>
		<script type="application/ld+json">{"@type":"Product","offers":{"price":16990}}</script>
	`
	raw := findListingLdJSON(html)
	require.Contains(t, raw, `"Product"`)
	require.NotContains(t, raw, "BreadcrumbList")
}

func TestFindListingLdJSONNoCandidate(t *testing.T) {
	html := `<script type="application/ld+json">{"@type":"Organization"}</script>`
	require.Empty(t, findListingLdJSON(html))
}

func TestExtractFragments(t *testing.T) {
	html := `
		<article id="6b17f310-39a7-4f10-aa7f-4aafa0fde646" class="card dp-listing-item__wrapper">
			<h2>BMW 118</h2><span>€ 16.990</span>
		</article>
		<article class="unrelated-block"><p>ad</p></article>
		<article id="11111111-2222-3333-4444-555555555555" class="dp-listing-item__wrapper">
			<h2>Opel Corsa</h2>
		</article>
	`

	fragments := extractFragments(html)
	require.Len(t, fragments, 2)

	bmw := fragments["6b17f310-39a7-4f10-aa7f-4aafa0fde646"]
	require.Contains(t, bmw, "BMW 118")
	require.True(t, len(bmw) > 0 && bmw[:8] == "<article")
	require.Contains(t, bmw, "</article>")

	require.Contains(t, fragments["11111111-2222-3333-4444-555555555555"], "Opel Corsa")
}

func TestAttributeValue(t *testing.T) {
	tag := `<article id="abc-123" class="dp-listing-item__wrapper">`
	require.Equal(t, "abc-123", attributeValue(tag, "id"))
	require.Equal(t, "dp-listing-item__wrapper", attributeValue(tag, "class"))
	require.Empty(t, attributeValue(tag, "href"))
}
