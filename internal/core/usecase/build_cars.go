package usecase

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/hendrikderyck/steven-car-company/internal/constants"
	"github.com/hendrikderyck/steven-car-company/internal/contextkeys"
	"github.com/hendrikderyck/steven-car-company/internal/contracts"
	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
	usecases_port "github.com/hendrikderyck/steven-car-company/internal/core/port/usecases"
)

const (
	// Belgian VAT.
	btwRate = 1.21
	// Dealer stock above this price is sold BTW-deductible.
	btwDeductibleThreshold = 10000.0

	placeholderImageURL = "/images/placeholder-car.svg"
)

// "2 jaar garantie" in the free text becomes a "2 Jaar Garantie" feature.
var jaarGarantiePattern = regexp.MustCompile(`(?i)(\d+)\s*(?:jaar|year)\s*garantie`)

// BuildCarsUseCase turns pipeline output into the published car set: failed
// and unsellable records are dropped, the rest are reshaped for the
// storefront and validated against the published schema.
type BuildCarsUseCase struct {
	listings usecases_port.FetchAllListingsPort
}

var _ usecases_port.BuildCarsPort = (*BuildCarsUseCase)(nil)

func NewBuildCarsUseCase(listings usecases_port.FetchAllListingsPort) *BuildCarsUseCase {
	return &BuildCarsUseCase{listings: listings}
}

func (uc *BuildCarsUseCase) Execute(ctx context.Context) ([]domain.Car, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	records, err := uc.listings.Execute(ctx)
	if err != nil {
		return nil, err
	}

	cars := make([]domain.Car, 0, len(records))
	for _, record := range records {
		if record.Failed() {
			continue
		}
		car := carFromRecord(record)
		if car == nil {
			continue
		}
		if err := contracts.ValidateCar(car); err != nil {
			logger.Warn("Car rejected by published schema", port.Fields{
				"listing_url": record.URL,
				"error":       err.Error(),
			})
			continue
		}
		cars = append(cars, *car)
	}

	logger.Info("Published car set built", port.Fields{
		"records": len(records),
		"cars":    len(cars),
	})
	return cars, nil
}

// carFromRecord maps one listing record onto the storefront car shape.
// Records without a title or a positive price are not sellable and map to
// nil.
func carFromRecord(record *domain.ListingRecord) *domain.Car {
	if record.Title == nil || record.Price == nil || *record.Price == 0 {
		return nil
	}
	price := *record.Price

	car := &domain.Car{
		ID:           domain.ExtractListingID(record.URL),
		Title:        *record.Title,
		Brand:        derefOr(record.Brand, "Onbekend"),
		Model:        derefOr(record.Model, "Onbekend"),
		Price:        price,
		Km:           derefIntOr(record.MileageKm, 0),
		Year:         derefOr(record.FirstRegistration, "Onbekend"),
		Power:        derefOr(record.Power, "Onbekend"),
		Fuel:         derefOr(record.FuelType, "Onbekend"),
		Transmission: derefOr(record.Transmission, "Manueel"),
		Features:     extractFeatures(record),
		ImageURL:     placeholderImageURL,

		BodyType:        derefOr(record.BodyType, ""),
		Condition:       derefOr(record.Condition, "Tweedehands"),
		PreviousOwners:  record.PreviousOwners,
		FuelConsumption: derefOr(record.FuelConsumption, ""),
		CO2Emissions:    record.CO2Emissions,
		InteriorType:    derefOr(record.InteriorType, ""),
		InteriorColor:   derefOr(record.InteriorColor, ""),
		NumberOfDoors:   record.NumberOfDoors,
		SeatingCapacity: record.SeatingCapacity,
		HTMLWrapper:     record.HTMLWrapper,
		ListingURL:      record.URL,
	}

	if len(record.Images) > 0 {
		car.ImageURL = record.Images[0]
	}

	if price > btwDeductibleThreshold {
		car.BtwAftrekbaar = true
		excl := math.Round(price / btwRate)
		car.PriceExclBtw = &excl
	}

	return car
}

// extractFeatures surfaces equipment keywords from the URL slug and the free
// text description, in allow-list order, capped at the storefront maximum.
// More specific keywords come first in the list, so "FULL LED" suppresses a
// separate "LED" entry.
func extractFeatures(record *domain.ListingRecord) []string {
	slugText := strings.ToUpper(strings.ReplaceAll(domain.ExtractListingSlug(record.URL), "-", " "))
	description := ""
	if record.Description != nil {
		description = strings.ToUpper(*record.Description)
	}

	features := make([]string, 0, constants.MaxCarFeatures)

	add := func(keyword string) {
		if len(features) >= constants.MaxCarFeatures {
			return
		}
		for _, existing := range features {
			if strings.Contains(existing, keyword) {
				return
			}
		}
		features = append(features, keyword)
	}

	for _, keyword := range constants.SlugFeatureKeywords {
		if strings.Contains(slugText, keyword) {
			add(keyword)
		}
	}
	for _, keyword := range constants.DescriptionFeatureKeywords {
		if strings.Contains(description, keyword) {
			add(keyword)
		}
	}
	if record.Description != nil {
		if m := jaarGarantiePattern.FindStringSubmatch(*record.Description); m != nil {
			add(m[1] + " Jaar Garantie")
		}
	}
	if record.InteriorType != nil {
		add(*record.InteriorType)
	}
	return features
}

func derefOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

func derefIntOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}
