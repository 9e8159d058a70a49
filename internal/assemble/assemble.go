package assemble

import (
	"strings"
	"time"

	"github.com/StevenCC12/server-side-capi/internal/domain"
)

// FormSnapshot is the state of the page's form at interaction time: text
// inputs by name, and checkbox/radio controls by name. A control missing
// from Checks means the element does not exist on the page.
type FormSnapshot struct {
	Fields map[string]string `json:"fields"`
	Checks map[string]bool   `json:"checks"`
}

// Field returns the trimmed value of a named input, or "" when the name is
// unset or the input is absent.
func (s FormSnapshot) Field(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimSpace(s.Fields[name])
}

// Pricing is the checkout pricing rule: a fixed base, plus a fixed increment
// if and only if the order-bump control is checked. No other total exists.
type Pricing struct {
	Base          float64
	BumpField     string
	BumpIncrement float64
}

// Config describes how one funnel page's form maps onto a conversion event.
type Config struct {
	EventName domain.EventName

	EmailField        string
	FullNameField     string
	FirstNameField    string
	LastNameField     string
	PhoneField        string
	PhoneCountryField string
	PhoneNumberField  string
	CityField         string
	ZipField          string

	// GateField names an eligibility control (terms checkbox, qualifying
	// radio). When the snapshot reports the control and it is unsatisfied,
	// no event is produced. An absent control never blocks.
	GateField string

	// TitleCaseNames is set on the variant delivering to the CRM webhook,
	// which expects human-readable names.
	TitleCaseNames bool

	// CarryWebinarMeta copies the webinar platform's hand-off parameters
	// (live-room link, registration timestamp) into custom_data.
	CarryWebinarMeta bool

	Currency string
	Value    float64
	Pricing  *Pricing

	// IDPrefix enables deduplication: when non-empty, the event gets an
	// opaque ID generated at assembly time. Empty means no event_id.
	IDPrefix string
}

// Input is everything the assembler reads: the form snapshot, the persisted
// attribution record (nil when capture never ran), a fresh cookie read, the
// page's query parameters and metadata.
type Input struct {
	Form        FormSnapshot
	Attribution *domain.AttributionRecord
	Cookies     map[string]string
	Query       map[string]string
	PageURL     string
	UserAgent   string
}

// Event assembles the outbound conversion event, or returns nil when the
// interaction is ineligible: empty email, or a present-but-unsatisfied
// eligibility gate. Returning nil means nothing is transmitted.
func Event(in Input, cfg Config, now time.Time) *domain.ConversionEvent {
	email := in.Form.Field(cfg.EmailField)
	if email == "" {
		return nil
	}
	if cfg.GateField != "" {
		if satisfied, present := in.Form.Checks[cfg.GateField]; present && !satisfied {
			return nil
		}
	}

	firstName, lastName := assembleName(in.Form, cfg)
	phone, country := assemblePhone(in.Form, cfg)

	user := domain.UserData{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		City:      in.Form.Field(cfg.CityField),
		Zip:       in.Form.Field(cfg.ZipField),
		Country:   country,
		UserAgent: in.UserAgent,
	}

	custom := assembleCustomData(in, cfg)

	// Persisted attribution wins; only fbc/fbp fall back to a fresh cookie
	// read. Everything else absent from the record stays absent.
	user.FBC = attributionOrCookie(in.Attribution.FBC(), in.Cookies, "_fbc")
	user.FBP = attributionOrCookie(in.Attribution.FBP(), in.Cookies, "_fbp")

	ev := &domain.ConversionEvent{
		EventName:      cfg.EventName,
		EventTime:      now.Unix(),
		EventSourceURL: in.PageURL,
		ActionSource:   domain.ActionSourceWebsite,
		UserData:       user,
		CustomData:     custom,
	}
	if cfg.IDPrefix != "" {
		ev.EventID = NewEventID(cfg.IDPrefix)
	}
	return ev
}

func assembleName(form FormSnapshot, cfg Config) (string, string) {
	var first, last string
	if cfg.FirstNameField != "" {
		first, last = resolveName(form.Field(cfg.FirstNameField), form.Field(cfg.LastNameField))
	} else {
		first, last = SplitFullName(form.Field(cfg.FullNameField))
	}
	if cfg.TitleCaseNames {
		first, last = TitleCase(first), TitleCase(last)
	}
	return first, last
}

func assemblePhone(form FormSnapshot, cfg Config) (phone, country string) {
	if cfg.PhoneNumberField != "" {
		code := form.Field(cfg.PhoneCountryField)
		number := form.Field(cfg.PhoneNumberField)
		switch {
		case code != "" && number != "":
			phone = code + number
		case number != "":
			phone = number
		}
		return phone, CountryISO(code)
	}
	return form.Field(cfg.PhoneField), ""
}

func assembleCustomData(in Input, cfg Config) domain.CustomData {
	custom := domain.CustomData{
		Currency: cfg.Currency,
		Value:    cfg.Value,
	}

	if cfg.Pricing != nil {
		custom.Value = cfg.Pricing.Base
		if in.Form.Checks[cfg.Pricing.BumpField] {
			custom.Value += cfg.Pricing.BumpIncrement
		}
	}

	if attr := in.Attribution; attr != nil {
		custom.UTMSource = domain.StringOrEmpty(attr.UTMSource)
		custom.UTMMedium = domain.StringOrEmpty(attr.UTMMedium)
		custom.UTMCampaign = domain.StringOrEmpty(attr.UTMCampaign)
		custom.UTMContent = domain.StringOrEmpty(attr.UTMContent)
		custom.UTMTerm = domain.StringOrEmpty(attr.UTMTerm)
		custom.UTMPlacement = domain.StringOrEmpty(attr.UTMPlacement)
		custom.AudienceSegment = domain.StringOrEmpty(attr.AudienceSegment)
		custom.FBCLID = domain.StringOrEmpty(attr.FBCLID)
		custom.GCLID = domain.StringOrEmpty(attr.GCLID)
		custom.LandingURL = attr.LandingURL
		custom.ReferrerURL = attr.ReferrerURL
	}

	if cfg.CarryWebinarMeta {
		custom.LiveRoomURL = in.Query["wj_lead_unique_link_live_room"]
		custom.EventTimestamp = in.Query["wj_event_ts"]
	}

	return custom
}

func attributionOrCookie(fromRecord string, cookies map[string]string, cookie string) string {
	if fromRecord != "" {
		return fromRecord
	}
	return cookies[cookie]
}
