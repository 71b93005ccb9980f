package contracts

import (
	"testing"

	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func validCar() domain.Car {
	return domain.Car{
		ID:           "6b17f310-39a7-4f10-aa7f-4aafa0fde646",
		Title:        "BMW 118 M Pack",
		Brand:        "BMW",
		Model:        "118",
		Price:        16990,
		Km:           78500,
		Year:         "02/2019",
		Power:        "136 PK (100 kW)",
		Fuel:         "Benzine",
		Transmission: "Manueel",
		Features:     []string{"FULL LED", "M PACK"},
		ImageURL:     "https://prod.pictures.autoscout24.net/listing-images/abc/1920x1080.webp",
		Condition:    "Tweedehands",
	}
}

func TestValidateCarAcceptsValidCar(t *testing.T) {
	require.NoError(t, ValidateCar(validCar()))
}

func TestValidateCarRejectsInvalidCars(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *domain.Car)
	}{
		{
			name:   "empty title",
			mutate: func(c *domain.Car) { c.Title = "" },
		},
		{
			name:   "zero price",
			mutate: func(c *domain.Car) { c.Price = 0 },
		},
		{
			name:   "negative price",
			mutate: func(c *domain.Car) { c.Price = -500 },
		},
		{
			name:   "unknown condition",
			mutate: func(c *domain.Car) { c.Condition = "Beschadigd" },
		},
		{
			name:   "empty id",
			mutate: func(c *domain.Car) { c.ID = "" },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car := validCar()
			tt.mutate(&car)
			require.Error(t, ValidateCar(car))
		})
	}
}
