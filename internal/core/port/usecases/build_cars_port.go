package usecases_port

import (
	"context"

	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
)

// BuildCarsPort produces the published car set: pipeline output transformed
// to the site's Car shape, filtered and schema-validated.
type BuildCarsPort interface {
	Execute(ctx context.Context) ([]domain.Car, error)
}
