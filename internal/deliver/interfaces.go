package deliver

import (
	"context"

	"github.com/StevenCC12/server-side-capi/internal/domain"
)

// Deliverer transmits an assembled conversion event to an opaque HTTP sink
// and blocks until the policy resolves it.
type Deliverer interface {
	Deliver(ctx context.Context, endpoint string, event *domain.ConversionEvent, policy Policy) Outcome
}

// Dispatcher hands an event off for fire-and-forget delivery. The call never
// blocks the triggering interaction and the outcome is never reported back.
type Dispatcher interface {
	Dispatch(endpoint string, event *domain.ConversionEvent)
}
