package domain

// AttributionRecord is captured once per browser session on the first
// entry-page load. Optional fields are pointers so that "not observed"
// survives a JSON round trip instead of collapsing into an empty string.
type AttributionRecord struct {
	UTMSource       *string `json:"utm_source,omitempty"`
	UTMMedium       *string `json:"utm_medium,omitempty"`
	UTMCampaign     *string `json:"utm_campaign,omitempty"`
	UTMContent      *string `json:"utm_content,omitempty"`
	UTMTerm         *string `json:"utm_term,omitempty"`
	UTMPlacement    *string `json:"utm_placement,omitempty"`
	AudienceSegment *string `json:"audience_segment,omitempty"`
	FBCLID          *string `json:"fbclid,omitempty"`
	GCLID           *string `json:"gclid,omitempty"`

	FBPCookie *string `json:"fbp_cookie,omitempty"`
	FBCCookie *string `json:"fbc_cookie,omitempty"`

	LandingURL  string `json:"landing_url"`
	ReferrerURL string `json:"referrer_url"`
	UserAgent   string `json:"user_agent"`
	CapturedAt  int64  `json:"captured_at"`
}

// FBC returns the recorded _fbc cookie value, tolerating a nil record.
func (r *AttributionRecord) FBC() string {
	if r == nil {
		return ""
	}
	return StringOrEmpty(r.FBCCookie)
}

// FBP returns the recorded _fbp cookie value, tolerating a nil record.
func (r *AttributionRecord) FBP() string {
	if r == nil {
		return ""
	}
	return StringOrEmpty(r.FBPCookie)
}

// StringOrEmpty dereferences an optional attribution field.
func StringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
