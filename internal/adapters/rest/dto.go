package rest_adapter

import "github.com/hendrikderyck/steven-car-company/internal/core/domain"

// ListingsResponse is the envelope for the raw pipeline output. On failure
// the listings stay present (empty) so the frontend never branches on shape.
type ListingsResponse struct {
	Listings []*domain.ListingRecord `json:"listings"`
	Count    int                     `json:"count"`
	Error    string                  `json:"error,omitempty"`
}

// CarsResponse is the envelope for the published car set.
type CarsResponse struct {
	Cars  []domain.Car `json:"cars"`
	Count int          `json:"count"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
