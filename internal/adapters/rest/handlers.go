package rest_adapter

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hendrikderyck/steven-car-company/internal/contextkeys"
	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
)

// handleListingsJSON serves the raw pipeline output. The envelope keeps its
// shape on failure: listings stays an empty array, count zero, error set.
func (s *Server) handleListingsJSON(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	records, err := s.fetchAllListings.Execute(r.Context())
	if err != nil {
		logger.Error("Extraction pipeline failed", err, nil)
		RespondWithJSON(w, r, http.StatusInternalServerError, ListingsResponse{
			Listings: []*domain.ListingRecord{},
			Count:    0,
			Error:    err.Error(),
		})
		return
	}

	// Only the succeeded subset is served; error records stay in the logs.
	published := make([]*domain.ListingRecord, 0, len(records))
	for _, record := range records {
		if !record.Failed() {
			published = append(published, record)
		}
	}
	RespondWithJSON(w, r, http.StatusOK, ListingsResponse{
		Listings: published,
		Count:    len(published),
	})
}

func (s *Server) handleGetCars(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	cars, err := s.buildCars.Execute(r.Context())
	if err != nil {
		logger.Error("Building published car set failed", err, nil)
		WriteJSONError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	if cars == nil {
		cars = []domain.Car{}
	}
	RespondWithJSON(w, r, http.StatusOK, CarsResponse{Cars: cars, Count: len(cars)})
}

// handleGetCarDetail serves the visual detail content for one listing.
// Unknown identifiers are 404; an unreachable upstream is 502 because the
// failure is theirs, not ours.
func (s *Server) handleGetCarDetail(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	listingID := chi.URLParam(r, "id")

	detail, err := s.fetchListingDetail.Execute(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, r, http.StatusNotFound, "listing not found")
			return
		}
		logger.Error("Detail page extraction failed", err, port.Fields{
			"listing_id": listingID,
		})
		WriteJSONError(w, r, http.StatusBadGateway, "upstream fetch failed")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, detail)
}

func (s *Server) handleGetTime(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, s.timeFetcher.FetchTime(r.Context()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
