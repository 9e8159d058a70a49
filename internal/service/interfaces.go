package service

import (
	"context"
	"errors"

	"github.com/StevenCC12/server-side-capi/internal/dto"
)

// ErrUnknownPage is returned when the request names a funnel page with no
// canonical configuration.
var ErrUnknownPage = errors.New("unknown funnel page")

// Relayer defines the interface for the attribution-and-conversion relay.
type Relayer interface {
	// CapturePageView runs attribution capture for an entry-page load.
	CapturePageView(ctx context.Context, req *dto.PageViewRequest) *dto.CaptureResponse

	// TrackInteraction assembles and delivers the conversion event for a
	// form submit or button click on the named funnel page.
	TrackInteraction(ctx context.Context, page string, req *dto.InteractionRequest) (*dto.TrackResponse, error)

	// ConfirmPurchase replays the purchase draft stashed at checkout.
	ConfirmPurchase(ctx context.Context, page string, req *dto.ConfirmationRequest) (*dto.ConfirmResponse, error)

	// Health checks the relay's backing store.
	Health(ctx context.Context) error
}
