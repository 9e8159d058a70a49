package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/StevenCC12/server-side-capi/internal/config"
	"github.com/StevenCC12/server-side-capi/internal/deliver"
	"github.com/StevenCC12/server-side-capi/internal/domain"
	"github.com/StevenCC12/server-side-capi/internal/dto"
	"github.com/StevenCC12/server-side-capi/internal/funnel"
	"github.com/StevenCC12/server-side-capi/internal/session/memory"
)

type MockDeliverer struct {
	mock.Mock
}

func (m *MockDeliverer) Deliver(ctx context.Context, endpoint string, event *domain.ConversionEvent, policy deliver.Policy) deliver.Outcome {
	args := m.Called(ctx, endpoint, event, policy)
	return args.Get(0).(deliver.Outcome)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(endpoint string, event *domain.ConversionEvent) {
	m.Called(endpoint, event)
}

func testConfig() *config.Config {
	return &config.Config{
		Delivery: config.Delivery{
			CAPIEndpoint:  "https://capi.example.com/events",
			CRMWebhookURL: "https://crm.example.com/hooks/inbound",
			MaxAttempts:   3,
			RetryDelayMS:  2000,
		},
		Funnel: config.Funnel{
			Currency:              "SEK",
			CheckoutBasePrice:     297,
			CheckoutBumpIncrement: 97,
		},
	}
}

func newTestService(t *testing.T) (*RelayService, *MockDeliverer, *MockDispatcher) {
	t.Helper()

	deliverer := new(MockDeliverer)
	dispatcher := new(MockDispatcher)
	store := memory.NewStore(30 * time.Minute)
	svc := NewRelayService(funnel.Pages(testConfig()), store, deliverer, dispatcher, zap.NewNop())
	return svc, deliverer, dispatcher
}

func TestCapturePageView_AssignsSessionID(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp := svc.CapturePageView(context.Background(), &dto.PageViewRequest{
		PageURL:     "https://pages.example.com/webinar?utm_source=fb",
		QueryParams: map[string]string{"utm_source": "fb"},
	})

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "captured", resp.Status)
}

func TestCapturePageView_FirstRecordWinsAcrossViews(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first := svc.CapturePageView(ctx, &dto.PageViewRequest{
		SessionID:   "sess-1",
		PageURL:     "https://pages.example.com/webinar?utm_source=fb",
		QueryParams: map[string]string{"utm_source": "fb"},
	})
	second := svc.CapturePageView(ctx, &dto.PageViewRequest{
		SessionID:   "sess-1",
		PageURL:     "https://pages.example.com/webinar?utm_source=ig",
		QueryParams: map[string]string{"utm_source": "ig"},
	})

	assert.Equal(t, "captured", first.Status)
	assert.Equal(t, "retained", second.Status)
}

func TestTrackInteraction_UnknownPage(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.TrackInteraction(context.Background(), "upsell-2", &dto.InteractionRequest{
		SessionID: "sess-1",
		PageURL:   "https://pages.example.com/upsell-2",
	})
	assert.ErrorIs(t, err, ErrUnknownPage)

	// The confirmation page has no form pipeline of its own.
	_, err = svc.TrackInteraction(context.Background(), funnel.PageConfirmation, &dto.InteractionRequest{
		SessionID: "sess-1",
		PageURL:   "https://pages.example.com/thank-you",
	})
	assert.ErrorIs(t, err, ErrUnknownPage)
}

func TestTrackInteraction_AbortsWithoutEmail(t *testing.T) {
	svc, deliverer, dispatcher := newTestService(t)

	resp, err := svc.TrackInteraction(context.Background(), funnel.PageOptIn, &dto.InteractionRequest{
		SessionID: "sess-1",
		PageURL:   "https://pages.example.com/webinar",
		Fields:    map[string]string{"full_name": "Anna Svensson"},
		Checks:    map[string]bool{"terms_and_conditions": true},
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StateAborted), resp.State)
	assert.Empty(t, resp.EventID)
	deliverer.AssertNotCalled(t, "Deliver")
	dispatcher.AssertNotCalled(t, "Dispatch")
}

func TestTrackInteraction_OptInDispatchesLead(t *testing.T) {
	svc, _, dispatcher := newTestService(t)
	ctx := context.Background()

	svc.CapturePageView(ctx, &dto.PageViewRequest{
		SessionID:   "sess-1",
		PageURL:     "https://pages.example.com/webinar?utm_source=fb&utm_campaign=summit",
		QueryParams: map[string]string{"utm_source": "fb", "utm_campaign": "summit"},
		Cookies:     map[string]string{"_fbp": "fb.1.1723475600000.123456789"},
	})

	var sent *domain.ConversionEvent
	dispatcher.On("Dispatch", "https://capi.example.com/events", mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*domain.ConversionEvent)
		}).Once()

	resp, err := svc.TrackInteraction(ctx, funnel.PageOptIn, &dto.InteractionRequest{
		SessionID: "sess-1",
		PageURL:   "https://pages.example.com/webinar",
		Fields: map[string]string{
			"email":     "anna@example.com",
			"full_name": "Anna Svensson",
		},
		Checks: map[string]bool{"terms_and_conditions": true},
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StateSent), resp.State)
	assert.Equal(t, string(domain.EventLead), resp.EventName)

	dispatcher.AssertExpectations(t)
	assert.Equal(t, domain.EventLead, sent.EventName)
	assert.Equal(t, "anna@example.com", sent.UserData.Email)
	assert.Equal(t, "Anna", sent.UserData.FirstName)
	assert.Equal(t, "Svensson", sent.UserData.LastName)
	assert.Equal(t, "fb.1.1723475600000.123456789", sent.UserData.FBP)
	assert.Equal(t, "fb", sent.CustomData.UTMSource)
	assert.Equal(t, "summit", sent.CustomData.UTMCampaign)
}

func TestConfirmPurchase_ReplaysStashedDraft(t *testing.T) {
	svc, _, dispatcher := newTestService(t)
	ctx := context.Background()

	var checkout, purchase *domain.ConversionEvent
	dispatcher.On("Dispatch", "https://capi.example.com/events", mock.Anything).
		Run(func(args mock.Arguments) {
			ev := args.Get(1).(*domain.ConversionEvent)
			switch ev.EventName {
			case domain.EventInitiateCheckout:
				checkout = ev
			case domain.EventPurchase:
				purchase = ev
			}
		}).Twice()

	_, err := svc.TrackInteraction(ctx, funnel.PageCheckout, &dto.InteractionRequest{
		SessionID: "sess-1",
		PageURL:   "https://pages.example.com/checkout",
		Fields: map[string]string{
			"email": "anna@example.com",
			"name":  "Anna Svensson",
		},
		Checks: map[string]bool{"order-bump": true},
	})
	assert.NoError(t, err)

	resp, err := svc.ConfirmPurchase(ctx, funnel.PageConfirmation, &dto.ConfirmationRequest{
		SessionID: "sess-1",
		PageURL:   "https://pages.example.com/thank-you",
	})
	assert.NoError(t, err)

	dispatcher.AssertExpectations(t)
	assert.Equal(t, checkout.EventID, purchase.EventID, "purchase must reuse the checkout event id for deduplication")
	assert.Equal(t, string(domain.StateSent), resp.State)
	assert.Equal(t, checkout.EventID, resp.EventID)
	assert.Equal(t, 394.00, purchase.CustomData.Value)
	assert.Equal(t, "https://pages.example.com/thank-you", purchase.EventSourceURL)

	assert.NotNil(t, resp.CRMSync)
	assert.Equal(t, "anna@example.com", resp.CRMSync.Email)
	assert.Equal(t, checkout.EventID, resp.CRMSync.EventID)
}

func TestConfirmPurchase_SecondVisitFindsNothing(t *testing.T) {
	svc, _, dispatcher := newTestService(t)
	ctx := context.Background()

	dispatcher.On("Dispatch", mock.Anything, mock.Anything).Twice()

	_, err := svc.TrackInteraction(ctx, funnel.PageCheckout, &dto.InteractionRequest{
		SessionID: "sess-1",
		PageURL:   "https://pages.example.com/checkout",
		Fields:    map[string]string{"email": "anna@example.com", "name": "Anna"},
	})
	assert.NoError(t, err)

	first, err := svc.ConfirmPurchase(ctx, funnel.PageConfirmation, &dto.ConfirmationRequest{
		SessionID: "sess-1",
		PageURL:   "https://pages.example.com/thank-you",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StateSent), first.State)

	second, err := svc.ConfirmPurchase(ctx, funnel.PageConfirmation, &dto.ConfirmationRequest{
		SessionID: "sess-1",
		PageURL:   "https://pages.example.com/thank-you",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StateIdle), second.State)
	assert.Empty(t, second.EventID)
	assert.Nil(t, second.CRMSync)

	dispatcher.AssertExpectations(t)
}

func TestConfirmPurchase_UnknownPage(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ConfirmPurchase(context.Background(), funnel.PageOptIn, &dto.ConfirmationRequest{
		SessionID: "sess-1",
		PageURL:   "https://pages.example.com/webinar",
	})
	assert.ErrorIs(t, err, ErrUnknownPage)
}

func TestTrackInteraction_WebinarPageIsAwaited(t *testing.T) {
	svc, deliverer, _ := newTestService(t)

	var sent *domain.ConversionEvent
	deliverer.On("Deliver", mock.Anything, "https://crm.example.com/hooks/inbound", mock.Anything,
		deliver.Policy{MaxAttempts: 3, RetryDelay: 2 * time.Second}).
		Run(func(args mock.Arguments) {
			sent = args.Get(2).(*domain.ConversionEvent)
		}).
		Return(deliver.OutcomeDelivered).Once()

	// The webinar platform hands the lead over on the URL, not in a form.
	resp, err := svc.TrackInteraction(context.Background(), funnel.PageWebinarThankYou, &dto.InteractionRequest{
		SessionID: "sess-1",
		PageURL:   "https://pages.example.com/webinar-thankyou",
		QueryParams: map[string]string{
			"wj_lead_email":              "anna@example.com",
			"wj_lead_first_name":         "anna maria",
			"wj_lead_last_name":          "svensson",
			"wj_lead_phone_country_code": "+46",
			"wj_lead_phone_number":       "701234567",
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StateDelivered), resp.State)

	deliverer.AssertExpectations(t)
	assert.Equal(t, "Anna Maria", sent.UserData.FirstName)
	assert.Equal(t, "Svensson", sent.UserData.LastName)
	assert.Equal(t, "+46701234567", sent.UserData.Phone)
	assert.Equal(t, "SE", sent.UserData.Country)
}

func TestTrackInteraction_WebinarPageReportsGivenUp(t *testing.T) {
	svc, deliverer, _ := newTestService(t)

	deliverer.On("Deliver", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(deliver.OutcomeGivenUp).Once()

	resp, err := svc.TrackInteraction(context.Background(), funnel.PageWebinarThankYou, &dto.InteractionRequest{
		SessionID:   "sess-1",
		PageURL:     "https://pages.example.com/webinar-thankyou",
		QueryParams: map[string]string{"wj_lead_email": "anna@example.com"},
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StateGivenUp), resp.State)
	deliverer.AssertExpectations(t)
}

func TestHealth(t *testing.T) {
	svc, _, _ := newTestService(t)
	assert.NoError(t, svc.Health(context.Background()))
}
