package domain

// EventName identifies the conversion an event reports.
type EventName string

const (
	EventLead             EventName = "Lead"
	EventInitiateCheckout EventName = "InitiateCheckout"
	EventPurchase         EventName = "Purchase"
)

// ActionSourceWebsite is the only action source this relay produces.
const ActionSourceWebsite = "website"

// UserData carries the identifying fields of a conversion event.
//
// FirstName and LastName are serialized even when empty; the receiving
// system's schema expects both keys on every event. Every other optional
// field is dropped from the payload when absent.
type UserData struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	City      string `json:"city,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Country   string `json:"country,omitempty"`
	FBC       string `json:"fbc,omitempty"`
	FBP       string `json:"fbp,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// CustomData carries campaign attribution and order value alongside a
// conversion event.
type CustomData struct {
	UTMSource       string `json:"utm_source,omitempty"`
	UTMMedium       string `json:"utm_medium,omitempty"`
	UTMCampaign     string `json:"utm_campaign,omitempty"`
	UTMContent      string `json:"utm_content,omitempty"`
	UTMTerm         string `json:"utm_term,omitempty"`
	UTMPlacement    string `json:"utm_placement,omitempty"`
	AudienceSegment string `json:"audience_segment,omitempty"`
	FBCLID          string `json:"fbclid,omitempty"`
	GCLID           string `json:"gclid,omitempty"`

	LandingURL  string `json:"initial_landing_page_url,omitempty"`
	ReferrerURL string `json:"initial_referrer_url,omitempty"`

	LiveRoomURL    string `json:"wj_lead_unique_link_live_room,omitempty"`
	EventTimestamp string `json:"wj_event_ts,omitempty"`

	Currency string  `json:"currency,omitempty"`
	Value    float64 `json:"value"`
}

// ConversionEvent is the outbound payload delivered to the conversion API
// or CRM webhook sink.
type ConversionEvent struct {
	EventID        string     `json:"event_id,omitempty"`
	EventName      EventName  `json:"event_name"`
	EventTime      int64      `json:"event_time"`
	EventSourceURL string     `json:"event_source_url"`
	ActionSource   string     `json:"action_source"`
	UserData       UserData   `json:"user_data"`
	CustomData     CustomData `json:"custom_data"`
}

// PurchaseDraft is a pending conversion stashed at checkout and replayed by
// the confirmation page: a ConversionEvent minus event_name and event_time,
// which the confirming page supplies when it fires.
type PurchaseDraft struct {
	EventID    string     `json:"event_id,omitempty"`
	UserData   UserData   `json:"user_data"`
	CustomData CustomData `json:"custom_data"`
}

// InteractionState names the stages one tracked interaction traverses.
// Aborted, Delivered and GivenUp are terminal; Sent is reported when the
// outcome resolves asynchronously after the response is written.
type InteractionState string

const (
	StateIdle      InteractionState = "idle"
	StateAborted   InteractionState = "aborted"
	StateSent      InteractionState = "sent"
	StateDelivered InteractionState = "delivered"
	StateGivenUp   InteractionState = "given_up"
)
