package autoscout_adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

const (
	uuidA = "aaaaaaaa-1111-2222-3333-444444444444"
	uuidB = "bbbbbbbb-1111-2222-3333-444444444444"
	uuidC = "cccccccc-1111-2222-3333-444444444444"
)

func indexPage(slugs ...string) string {
	page := "<html><body>"
	for _, slug := range slugs {
		page += fmt.Sprintf(`<article id="%s" class="dp-listing-item__wrapper">`, slug[len(slug)-36:])
		page += fmt.Sprintf(`<a href="/nl/aanbod/%s">card</a></article>`, slug)
	}
	return page + "</body></html>"
}

func TestPageURLAlwaysCarriesPageParam(t *testing.T) {
	root := "https://www.autoscout24.be/nl/verkopers/steven-car-company-bv"
	require.Equal(t, root+"?page=1", pageURL(root, 1))
	require.Equal(t, root+"?page=3", pageURL(root, 3))
	require.Equal(t, root+"?page=2", pageURL(root+"?page=99", 2))
}

func TestFetchLinksPaginatesUntilNoNewURLs(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, indexPage("zcar-"+uuidB, "acar-"+uuidA))
		case "2":
			fmt.Fprint(w, indexPage("mcar-"+uuidC))
		default:
			// Out-of-range pages repeat the last page.
			fmt.Fprint(w, indexPage("mcar-"+uuidC))
		}
	}))
	defer server.Close()

	adapter := NewAdapterWithClient(resty.New())
	result, err := adapter.FetchLinks(context.Background(), server.URL, 50)
	require.NoError(t, err)

	// Pages 1 and 2 brought new URLs, page 3 repeated and stopped the walk.
	require.EqualValues(t, 3, atomic.LoadInt32(&requests))

	require.Equal(t, []string{
		"https://www.autoscout24.be/nl/aanbod/acar-" + uuidA,
		"https://www.autoscout24.be/nl/aanbod/mcar-" + uuidC,
		"https://www.autoscout24.be/nl/aanbod/zcar-" + uuidB,
	}, result.URLs)

	require.Len(t, result.Fragments, 3)
	require.Contains(t, result.Fragments[uuidA], "acar-"+uuidA)
}

func TestFetchLinksRespectsMaxPages(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&requests, 1)
		// Every page yields a fresh URL, so only the cap can stop the walk.
		fmt.Fprint(w, indexPage(fmt.Sprintf("car%02d-aaaaaaaa-1111-2222-3333-4444444444%02d", n, n)))
	}))
	defer server.Close()

	adapter := NewAdapterWithClient(resty.New())
	result, err := adapter.FetchLinks(context.Background(), server.URL, 4)
	require.NoError(t, err)
	require.EqualValues(t, 4, atomic.LoadInt32(&requests))
	require.Len(t, result.URLs, 4)
}

func TestFetchLinksStopsOnErrorStatusWithPartialResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, indexPage("acar-"+uuidA))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	adapter := NewAdapterWithClient(resty.New())
	result, err := adapter.FetchLinks(context.Background(), server.URL, 50)
	require.NoError(t, err)
	require.Len(t, result.URLs, 1)
}

func TestFetchLinksStopsOnEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, indexPage("acar-"+uuidA))
			return
		}
		fmt.Fprint(w, "<html><body>geen resultaten</body></html>")
	}))
	defer server.Close()

	adapter := NewAdapterWithClient(resty.New())
	result, err := adapter.FetchLinks(context.Background(), server.URL, 50)
	require.NoError(t, err)
	require.Len(t, result.URLs, 1)
	require.Len(t, result.Fragments, 1)
}

func TestFetchLinksTransportFailureOnFirstPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from the first request on

	adapter := NewAdapterWithClient(resty.New())
	_, err := adapter.FetchLinks(context.Background(), server.URL, 50)
	require.Error(t, err)
}
