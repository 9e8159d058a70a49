package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/StevenCC12/server-side-capi/internal/assemble"
	"github.com/StevenCC12/server-side-capi/internal/bridge"
	"github.com/StevenCC12/server-side-capi/internal/capture"
	"github.com/StevenCC12/server-side-capi/internal/deliver"
	"github.com/StevenCC12/server-side-capi/internal/domain"
	"github.com/StevenCC12/server-side-capi/internal/dto"
	"github.com/StevenCC12/server-side-capi/internal/funnel"
	"github.com/StevenCC12/server-side-capi/internal/session"
)

// RelayService orchestrates the capture -> assemble -> deliver pipeline.
// Within one interaction capture always precedes assembly and assembly
// always precedes delivery; each stage reads only the previous stage's
// output. No failure inside the pipeline ever propagates to the page.
type RelayService struct {
	pages      map[string]funnel.Page
	capturer   *capture.Capturer
	bridge     *bridge.Bridge
	store      session.Store
	deliverer  deliver.Deliverer
	dispatcher deliver.Dispatcher
	log        *zap.Logger
}

// NewRelayService creates a new relay service.
func NewRelayService(pages map[string]funnel.Page, store session.Store, deliverer deliver.Deliverer, dispatcher deliver.Dispatcher, log *zap.Logger) *RelayService {
	return &RelayService{
		pages:      pages,
		capturer:   capture.NewCapturer(store, log),
		bridge:     bridge.New(store, log),
		store:      store,
		deliverer:  deliverer,
		dispatcher: dispatcher,
		log:        log,
	}
}

// CapturePageView captures attribution for an entry-page load. The snippet
// posts once the pixel cookie writers have settled, so the request itself is
// the readiness signal the browser variants approximated with a fixed delay.
func (s *RelayService) CapturePageView(ctx context.Context, req *dto.PageViewRequest) *dto.CaptureResponse {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	meta := capture.PageMeta{
		URL:       req.PageURL,
		Referrer:  req.Referrer,
		UserAgent: req.UserAgent,
	}
	_, stored := s.capturer.Capture(ctx, sessionID, req.QueryParams, req.Cookies, meta, req.Overwrite)

	status := "captured"
	if !stored {
		status = "retained"
	}

	s.log.Info("Attribution captured",
		zap.String("session_id", sessionID),
		zap.String("status", status))

	return &dto.CaptureResponse{
		SessionID: sessionID,
		Status:    status,
	}
}

// TrackInteraction runs the pipeline for one form submit or button click.
// Each call is an independent traversal of
// Idle -> Validating -> {Aborted | Assembled} -> Sent -> {Delivered | GivenUp}.
func (s *RelayService) TrackInteraction(ctx context.Context, page string, req *dto.InteractionRequest) (*dto.TrackResponse, error) {
	p, ok := s.pages[page]
	if !ok || p.Confirmation {
		return nil, ErrUnknownPage
	}

	snap := snapshotFromRequest(req, p)
	attribution := s.capturer.Load(ctx, req.SessionID)

	ev := assemble.Event(assemble.Input{
		Form:        snap,
		Attribution: attribution,
		Cookies:     req.Cookies,
		Query:       req.QueryParams,
		PageURL:     req.PageURL,
		UserAgent:   req.UserAgent,
	}, p.Assemble, time.Now())

	if ev == nil {
		s.log.Info("Interaction aborted, gate or required field unsatisfied",
			zap.String("page", p.Slug),
			zap.String("session_id", req.SessionID))
		return &dto.TrackResponse{
			SessionID: req.SessionID,
			State:     string(domain.StateAborted),
		}, nil
	}

	if p.StashDraft {
		draft := &domain.PurchaseDraft{
			EventID:    ev.EventID,
			UserData:   ev.UserData,
			CustomData: ev.CustomData,
		}
		if err := s.bridge.Stash(ctx, req.SessionID, bridge.PurchaseKey, draft); err != nil {
			// The confirmation page will simply find nothing; the event
			// fired here is unaffected.
			s.log.Warn("Failed to stash purchase draft",
				zap.String("session_id", req.SessionID),
				zap.Error(err))
		}
	}

	state := s.send(ctx, p, ev)

	s.log.Info("Interaction tracked",
		zap.String("page", p.Slug),
		zap.String("session_id", req.SessionID),
		zap.String("event_name", string(ev.EventName)),
		zap.String("event_id", ev.EventID),
		zap.String("state", string(state)))

	return &dto.TrackResponse{
		SessionID: req.SessionID,
		State:     string(state),
		EventName: string(ev.EventName),
		EventID:   ev.EventID,
	}, nil
}

// ConfirmPurchase consumes the draft stashed at checkout and replays it as a
// Purchase event carrying the original event_id. A second confirmation in
// the same session finds nothing and does nothing.
func (s *RelayService) ConfirmPurchase(ctx context.Context, page string, req *dto.ConfirmationRequest) (*dto.ConfirmResponse, error) {
	p, ok := s.pages[page]
	if !ok || !p.Confirmation {
		return nil, ErrUnknownPage
	}

	draft := s.bridge.Take(ctx, req.SessionID, bridge.PurchaseKey)
	if draft == nil {
		s.log.Info("No pending purchase for session",
			zap.String("session_id", req.SessionID))
		return &dto.ConfirmResponse{
			SessionID: req.SessionID,
			State:     string(domain.StateIdle),
		}, nil
	}

	ev := &domain.ConversionEvent{
		EventID:        draft.EventID,
		EventName:      domain.EventPurchase,
		EventTime:      time.Now().Unix(),
		EventSourceURL: req.PageURL,
		ActionSource:   domain.ActionSourceWebsite,
		UserData:       draft.UserData,
		CustomData:     draft.CustomData,
	}

	state := s.send(ctx, p, ev)

	s.log.Info("Purchase confirmed",
		zap.String("session_id", req.SessionID),
		zap.String("event_id", ev.EventID),
		zap.String("state", string(state)))

	return &dto.ConfirmResponse{
		SessionID: req.SessionID,
		State:     string(state),
		EventID:   ev.EventID,
		CRMSync: &dto.CRMSync{
			Email:   draft.UserData.Email,
			EventID: draft.EventID,
		},
	}, nil
}

// Health pings the session store.
func (s *RelayService) Health(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// send delivers under the page's policy: awaited pages block until the
// outcome is terminal, fire-and-forget pages hand off and report Sent.
func (s *RelayService) send(ctx context.Context, p funnel.Page, ev *domain.ConversionEvent) domain.InteractionState {
	if !p.Awaited() {
		s.dispatcher.Dispatch(p.Endpoint, ev)
		return domain.StateSent
	}

	switch s.deliverer.Deliver(ctx, p.Endpoint, ev, p.Policy) {
	case deliver.OutcomeDelivered:
		return domain.StateDelivered
	default:
		return domain.StateGivenUp
	}
}

// snapshotFromRequest builds the form snapshot, folding recognized query
// parameters into fields for pages fed by the URL instead of a form.
func snapshotFromRequest(req *dto.InteractionRequest, p funnel.Page) assemble.FormSnapshot {
	snap := assemble.FormSnapshot{
		Fields: make(map[string]string, len(req.Fields)),
		Checks: req.Checks,
	}
	for name, value := range req.Fields {
		snap.Fields[name] = value
	}
	for param, field := range p.QueryFields {
		if v, ok := req.QueryParams[param]; ok && snap.Fields[field] == "" {
			snap.Fields[field] = v
		}
	}
	return snap
}
