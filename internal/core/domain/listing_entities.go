package domain

// ListingRecord is the canonical result of scraping one AutoScout24 detail
// page. Optional fields are pointers so "absent" survives the JSON round trip
// to the frontend unchanged.
type ListingRecord struct {
	URL               string   `json:"url"`
	Title             *string  `json:"title"`
	Description       *string  `json:"description"`
	Brand             *string  `json:"brand"`
	Model             *string  `json:"model"`
	BodyType          *string  `json:"bodyType"`
	FuelType          *string  `json:"fuelType"`
	Transmission      *string  `json:"transmission"`
	MileageKm         *int     `json:"mileageKm"`
	FirstRegistration *string  `json:"firstRegistration"`
	Price             *float64 `json:"price"`
	Currency          *string  `json:"currency"`
	Power             *string  `json:"power"`
	Images            []string `json:"images"`
	PreviousOwners    *int     `json:"previousOwners,omitempty"`
	FuelConsumption   *string  `json:"fuelConsumption,omitempty"`
	CO2Emissions      *int     `json:"co2Emissions,omitempty"`
	InteriorType      *string  `json:"interiorType,omitempty"`
	InteriorColor     *string  `json:"interiorColor,omitempty"`
	NumberOfDoors     *int     `json:"numberOfDoors,omitempty"`
	SeatingCapacity   *int     `json:"seatingCapacity,omitempty"`
	Condition         *string  `json:"condition,omitempty"`

	// HTMLWrapper is the card markup lifted verbatim from the dealer index
	// page, joined by listing identifier. Display sugar only.
	HTMLWrapper string `json:"htmlWrapper,omitempty"`

	// Error is set instead of the data fields when fetching or parsing this
	// listing failed. Records with a non-empty Error are kept for diagnostics
	// but never published.
	Error string `json:"error,omitempty"`
}

// Failed reports whether the record carries a per-listing error.
func (r *ListingRecord) Failed() bool {
	return r.Error != ""
}

// DiscoveryResult is what one pass over the paginated dealer index yields:
// every unique detail URL plus the card fragments found on the same pages.
type DiscoveryResult struct {
	URLs []string
	// Fragments maps listing identifier -> raw card markup.
	Fragments map[string]string
}
