package autoscout_adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestFetchListingDetailsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head>
			<script type="application/ld+json">{"@type":"BreadcrumbList"}</script>
			<script type="application/ld+json">{
				"@type":"Product",
				"name":"BMW 118",
				"offers":{"price":16990,"priceCurrency":"EUR"}
			}</script>
		</head><body></body></html>`)
	}))
	defer server.Close()

	adapter := NewAdapterWithClient(resty.New())
	record := adapter.FetchListingDetails(context.Background(), server.URL+"/nl/aanbod/bmw-118-"+uuidA)

	require.False(t, record.Failed())
	require.Equal(t, "BMW 118", *record.Title)
	require.Equal(t, 16990.0, *record.Price)
	require.Equal(t, server.URL+"/nl/aanbod/bmw-118-"+uuidA, record.URL)
}

func TestFetchListingDetailsErrorsBecomeRecords(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found upstream",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "page without structured data",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "<html><body>niets hier</body></html>")
			},
		},
		{
			name: "broken structured data",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `<script type="application/ld+json">{"offers": broken</script>`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			adapter := NewAdapterWithClient(resty.New())
			record := adapter.FetchListingDetails(context.Background(), server.URL+"/nl/aanbod/x-"+uuidA)

			require.True(t, record.Failed())
			require.NotEmpty(t, record.Error)
			require.Equal(t, server.URL+"/nl/aanbod/x-"+uuidA, record.URL)
			require.Nil(t, record.Title)
		})
	}
}

func TestFetchListingDetailsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	adapter := NewAdapterWithClient(resty.New())
	record := adapter.FetchListingDetails(context.Background(), server.URL+"/nl/aanbod/x-"+uuidA)
	require.True(t, record.Failed())
}
