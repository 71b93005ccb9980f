package domain

// Car is the published view of a listing, shaped for the site's aanbod pages.
// It is derived from a ListingRecord by BuildCarsUseCase; records without a
// title or a positive price never become a Car.
type Car struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Brand         string   `json:"brand"`
	Model         string   `json:"model"`
	Price         float64  `json:"price"`
	PriceExclBtw  *float64 `json:"priceExclBtw,omitempty"`
	Km            int      `json:"km"`
	Year          string   `json:"year"`
	Power         string   `json:"power"`
	Fuel          string   `json:"fuel"`
	Transmission  string   `json:"transmission"`
	Features      []string `json:"features"`
	ImageURL      string   `json:"imageUrl"`
	BtwAftrekbaar bool     `json:"btwAftrekbaar,omitempty"`

	BodyType        string `json:"bodyType,omitempty"`
	Condition       string `json:"condition,omitempty"`
	PreviousOwners  *int   `json:"previousOwners,omitempty"`
	FuelConsumption string `json:"fuelConsumption,omitempty"`
	CO2Emissions    *int   `json:"co2Emissions,omitempty"`
	InteriorType    string `json:"interiorType,omitempty"`
	InteriorColor   string `json:"interiorColor,omitempty"`
	NumberOfDoors   *int   `json:"numberOfDoors,omitempty"`
	SeatingCapacity *int   `json:"seatingCapacity,omitempty"`
	HTMLWrapper     string `json:"htmlWrapper,omitempty"`
	ListingURL      string `json:"listingUrl,omitempty"`
}
