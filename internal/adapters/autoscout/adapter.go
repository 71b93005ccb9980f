package autoscout_adapter

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hendrikderyck/steven-car-company/internal/constants"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
)

// Adapter talks to the AutoScout24 site over plain HTTPS and turns its pages
// into domain objects. It deliberately works on the raw markup with bounded
// text scans instead of a DOM tree: the pages are huge and we only ever need
// a handful of well-known anchors in them.
type Adapter struct {
	client *resty.Client
}

var _ port.ListingFetcherPort = (*Adapter)(nil)

// NewAdapter creates a fetcher with browser-like headers already set.
func NewAdapter() *Adapter {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", constants.UserAgent).
		SetHeader("Accept", constants.AcceptHeader).
		SetHeader("Accept-Language", "nl-BE,nl;q=0.9,en;q=0.8")

	return &Adapter{client: client}
}

// NewAdapterWithClient is used by tests to point the fetcher at a local server.
func NewAdapterWithClient(client *resty.Client) *Adapter {
	return &Adapter{client: client}
}

// pageURL builds the index URL for a given page number. The page parameter
// is always set, replacing any page already on the root.
func pageURL(rootURL string, page int) string {
	u, err := url.Parse(rootURL)
	if err != nil {
		return fmt.Sprintf("%s?page=%d", rootURL, page)
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}
