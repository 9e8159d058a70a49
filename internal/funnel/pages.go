package funnel

import (
	"time"

	"github.com/StevenCC12/server-side-capi/internal/assemble"
	"github.com/StevenCC12/server-side-capi/internal/config"
	"github.com/StevenCC12/server-side-capi/internal/deliver"
	"github.com/StevenCC12/server-side-capi/internal/domain"
)

// Page is the single configuration struct that replaces one forked tracking
// script per landing page: which form fields feed the assembler, how
// eligibility is gated, how the event is priced, where it goes and under
// which delivery policy.
type Page struct {
	Slug     string
	Assemble assemble.Config

	// Endpoint is the fixed per-deployment sink URL for this page.
	Endpoint string

	// Policy bounds delivery. Pages with MaxAttempts == 1 run on the
	// fire-and-forget path and never block the interaction; pages with
	// retries are awaited and report a terminal state.
	Policy deliver.Policy

	// QueryFields maps recognized query parameters into form snapshot
	// fields, for pages whose input arrives on the URL (the webinar
	// platform's registration hand-off) rather than in a form.
	QueryFields map[string]string

	// StashDraft saves the assembled event as a purchase draft for the
	// confirmation page (checkout → thank-you hand-off).
	StashDraft bool

	// Confirmation marks the page that replays a stashed draft as a
	// Purchase event instead of assembling from a form.
	Confirmation bool
}

// Awaited reports whether the caller blocks on this page's delivery.
func (p Page) Awaited() bool {
	return p.Policy.MaxAttempts > 1
}

// Canonical page slugs.
const (
	PageOptIn           = "optin"
	PageCheckout        = "checkout"
	PageConfirmation    = "confirmation"
	PageWebinarThankYou = "webinar-thankyou"
)

// Pages builds the canonical configuration set for the funnel. One entry per
// funnel stage; historical per-page script variants collapse into these.
func Pages(cfg *config.Config) map[string]Page {
	retry := deliver.Policy{
		MaxAttempts: cfg.Delivery.MaxAttempts,
		RetryDelay:  time.Duration(cfg.Delivery.RetryDelayMS) * time.Millisecond,
	}
	crmEndpoint := cfg.Delivery.CRMWebhookURL
	if crmEndpoint == "" {
		crmEndpoint = cfg.Delivery.CAPIEndpoint
	}

	return map[string]Page{
		PageOptIn: {
			Slug: PageOptIn,
			Assemble: assemble.Config{
				EventName:     domain.EventLead,
				EmailField:    "email",
				FullNameField: "full_name",
				PhoneField:    "phone",
				GateField:     "terms_and_conditions",
				Currency:      cfg.Funnel.Currency,
				Value:         0,
				IDPrefix:      "lead",
			},
			Endpoint: cfg.Delivery.CAPIEndpoint,
			Policy:   deliver.FireAndForget,
		},
		PageCheckout: {
			Slug: PageCheckout,
			Assemble: assemble.Config{
				EventName:     domain.EventInitiateCheckout,
				EmailField:    "email",
				FullNameField: "name",
				PhoneField:    "phone",
				CityField:     "city",
				ZipField:      "zipcode",
				Currency:      cfg.Funnel.Currency,
				Pricing: &assemble.Pricing{
					Base:          cfg.Funnel.CheckoutBasePrice,
					BumpField:     "order-bump",
					BumpIncrement: cfg.Funnel.CheckoutBumpIncrement,
				},
				IDPrefix: "purchase",
			},
			Endpoint:   cfg.Delivery.CAPIEndpoint,
			Policy:     deliver.FireAndForget,
			StashDraft: true,
		},
		PageConfirmation: {
			Slug:         PageConfirmation,
			Endpoint:     cfg.Delivery.CAPIEndpoint,
			Policy:       deliver.FireAndForget,
			Confirmation: true,
		},
		PageWebinarThankYou: {
			Slug: PageWebinarThankYou,
			Assemble: assemble.Config{
				EventName:         domain.EventLead,
				EmailField:        "email",
				FirstNameField:    "first_name",
				LastNameField:     "last_name",
				PhoneCountryField: "phone_country_code",
				PhoneNumberField:  "phone_number",
				TitleCaseNames:    true,
				CarryWebinarMeta:  true,
				Currency:          cfg.Funnel.Currency,
				Value:             0,
			},
			Endpoint: crmEndpoint,
			Policy:   retry,
			QueryFields: map[string]string{
				"wj_lead_email":              "email",
				"wj_lead_first_name":         "first_name",
				"wj_lead_last_name":          "last_name",
				"wj_lead_phone_country_code": "phone_country_code",
				"wj_lead_phone_number":       "phone_number",
			},
		},
	}
}
