package port

import (
	"context"

	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
)

// TimeFetcherPort provides the showroom clock. Implementations must degrade
// to a server-side value instead of returning an error.
type TimeFetcherPort interface {
	FetchTime(ctx context.Context) *domain.TimeData
}
