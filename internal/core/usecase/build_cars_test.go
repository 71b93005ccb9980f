package usecase

import (
	"context"
	"testing"

	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"github.com/stretchr/testify/require"
)

type fakeListings struct {
	records []*domain.ListingRecord
	err     error
}

func (f *fakeListings) Execute(ctx context.Context) ([]*domain.ListingRecord, error) {
	return f.records, f.err
}

func fullRecord(listingURL string, price float64) *domain.ListingRecord {
	title := "BMW 118 M Pack"
	brand := "BMW"
	model := "118"
	fuel := "Benzine"
	transmission := "Manueel"
	km := 78500
	year := "02/2019"
	power := "136 PK (100 kW)"
	condition := "Tweedehands"
	return &domain.ListingRecord{
		URL:               listingURL,
		Title:             &title,
		Brand:             &brand,
		Model:             &model,
		FuelType:          &fuel,
		Transmission:      &transmission,
		MileageKm:         &km,
		FirstRegistration: &year,
		Price:             &price,
		Power:             &power,
		Condition:         &condition,
		Images:            []string{"https://prod.pictures.autoscout24.net/listing-images/abc/1920x1080.webp"},
	}
}

func TestBuildCarsMapsSellableRecords(t *testing.T) {
	listings := &fakeListings{records: []*domain.ListingRecord{fullRecord(urlA, 16990)}}

	cars, err := NewBuildCarsUseCase(listings).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, cars, 1)

	car := cars[0]
	require.Equal(t, idA, car.ID)
	require.Equal(t, "BMW 118 M Pack", car.Title)
	require.Equal(t, 16990.0, car.Price)
	require.Equal(t, 78500, car.Km)
	require.Equal(t, "02/2019", car.Year)
	require.Equal(t, "https://prod.pictures.autoscout24.net/listing-images/abc/1920x1080.webp", car.ImageURL)

	// Above the threshold the price is BTW-deductible.
	require.True(t, car.BtwAftrekbaar)
	require.NotNil(t, car.PriceExclBtw)
	require.Equal(t, 14041.0, *car.PriceExclBtw) // round(16990 / 1.21)
}

func TestBuildCarsCheapCarKeepsBtwInPrice(t *testing.T) {
	listings := &fakeListings{records: []*domain.ListingRecord{fullRecord(urlA, 8500)}}

	cars, err := NewBuildCarsUseCase(listings).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, cars, 1)
	require.False(t, cars[0].BtwAftrekbaar)
	require.Nil(t, cars[0].PriceExclBtw)
}

func TestBuildCarsFiltersUnsellableRecords(t *testing.T) {
	noTitle := fullRecord(urlA, 16990)
	noTitle.Title = nil

	zeroPrice := fullRecord(urlB, 0)

	noPrice := fullRecord(urlC, 16990)
	noPrice.Price = nil

	failed := &domain.ListingRecord{URL: urlA, Error: "detail page returned HTTP 404"}

	listings := &fakeListings{records: []*domain.ListingRecord{noTitle, zeroPrice, noPrice, failed}}

	cars, err := NewBuildCarsUseCase(listings).Execute(context.Background())
	require.NoError(t, err)
	require.Empty(t, cars)
}

func TestBuildCarsDefaults(t *testing.T) {
	record := fullRecord(urlA, 16990)
	record.Brand = nil
	record.Model = nil
	record.FuelType = nil
	record.Transmission = nil
	record.Condition = nil
	record.MileageKm = nil
	record.Images = nil
	listings := &fakeListings{records: []*domain.ListingRecord{record}}

	cars, err := NewBuildCarsUseCase(listings).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, cars, 1)

	car := cars[0]
	require.Equal(t, "Onbekend", car.Brand)
	require.Equal(t, "Onbekend", car.Model)
	require.Equal(t, "Onbekend", car.Fuel)
	require.Equal(t, "Manueel", car.Transmission)
	require.Equal(t, "Tweedehands", car.Condition)
	require.Zero(t, car.Km)
	require.Equal(t, "/images/placeholder-car.svg", car.ImageURL)
}

func TestBuildCarsFeatureExtraction(t *testing.T) {
	record := fullRecord("https://www.autoscout24.be/nl/aanbod/bmw-118-full-led-m-pack-navi-"+idA, 16990)
	description := "Wagen met GARANTIE en geldige KEURING, car-pass aanwezig"
	record.Description = &description
	listings := &fakeListings{records: []*domain.ListingRecord{record}}

	cars, err := NewBuildCarsUseCase(listings).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, cars, 1)

	features := cars[0].Features
	require.Contains(t, features, "FULL LED")
	require.NotContains(t, features, "LED") // suppressed by FULL LED
	require.Contains(t, features, "NAVI")
	require.Contains(t, features, "M PACK")
	require.Contains(t, features, "GARANTIE")
	require.Contains(t, features, "CAR-PASS")
	require.LessOrEqual(t, len(features), 8)
}

func TestBuildCarsWarrantyAndInteriorFeatures(t *testing.T) {
	record := fullRecord(urlA, 16990)
	description := "Verkocht met 2 jaar garantie en recente keuring"
	interior := "Leder"
	record.Description = &description
	record.InteriorType = &interior
	listings := &fakeListings{records: []*domain.ListingRecord{record}}

	cars, err := NewBuildCarsUseCase(listings).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, cars, 1)

	features := cars[0].Features
	require.Contains(t, features, "2 Jaar Garantie")
	require.Contains(t, features, "Leder")
}

func TestBuildCarsPropagatesPipelineError(t *testing.T) {
	listings := &fakeListings{err: context.DeadlineExceeded}

	_, err := NewBuildCarsUseCase(listings).Execute(context.Background())
	require.Error(t, err)
}
