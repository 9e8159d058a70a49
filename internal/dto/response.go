package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"page_url is required"`
}

// CaptureResponse acknowledges an attribution capture. Status is "captured"
// when the record was persisted and "retained" when the session's earlier
// record was kept. Storage degradation is never reported to the page.
type CaptureResponse struct {
	SessionID string `json:"session_id" example:"7f9c31ad-8a5f-4a63-9c19-21b5e1a0f3d2"`
	Status    string `json:"status" example:"captured"`
}

// TrackResponse reports the terminal or in-flight state of one tracked
// interaction: sent, aborted, delivered or given_up.
type TrackResponse struct {
	SessionID string `json:"session_id" example:"7f9c31ad-8a5f-4a63-9c19-21b5e1a0f3d2"`
	State     string `json:"state" example:"sent"`
	EventName string `json:"event_name,omitempty" example:"Lead"`
	EventID   string `json:"event_id,omitempty" example:"lead_1723475612000_k3j9x2m1q"`
}

// CRMSync carries the hidden-form side channel values the thank-you page
// replays so the CRM can associate the event ID with the contact. It rides
// alongside the relay's own delivery and never gates it.
type CRMSync struct {
	Email   string `json:"email" example:"anna@example.com"`
	EventID string `json:"capi_event_id" example:"purchase_1723475612000_k3j9x2m1q"`
}

// ConfirmResponse reports a purchase confirmation. State is "idle" when no
// draft was stashed (reload, direct visit), otherwise "sent".
type ConfirmResponse struct {
	SessionID string   `json:"session_id" example:"7f9c31ad-8a5f-4a63-9c19-21b5e1a0f3d2"`
	State     string   `json:"state" example:"sent"`
	EventID   string   `json:"event_id,omitempty" example:"purchase_1723475612000_k3j9x2m1q"`
	CRMSync   *CRMSync `json:"crm_sync,omitempty"`
}
