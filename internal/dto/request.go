package dto

// PageViewRequest is posted by the entry-page snippet once the pixel cookies
// are observable. An empty session_id asks the relay to assign one.
type PageViewRequest struct {
	SessionID   string            `json:"session_id" example:"7f9c31ad-8a5f-4a63-9c19-21b5e1a0f3d2"`
	PageURL     string            `json:"page_url" binding:"required" example:"https://pages.example.com/webinar?utm_source=fb"`
	Referrer    string            `json:"referrer" example:"https://www.facebook.com/"`
	UserAgent   string            `json:"user_agent" example:"Mozilla/5.0"`
	QueryParams map[string]string `json:"query_params"`
	Cookies     map[string]string `json:"cookies"`

	// Overwrite replaces an already-captured attribution record instead of
	// keeping the session's first one.
	Overwrite bool `json:"overwrite"`
}

// InteractionRequest is posted by a page snippet when a tracked form submit
// or button click fires.
type InteractionRequest struct {
	SessionID   string            `json:"session_id" binding:"required" example:"7f9c31ad-8a5f-4a63-9c19-21b5e1a0f3d2"`
	PageURL     string            `json:"page_url" binding:"required" example:"https://pages.example.com/checkout"`
	UserAgent   string            `json:"user_agent" example:"Mozilla/5.0"`
	QueryParams map[string]string `json:"query_params"`
	Cookies     map[string]string `json:"cookies"`

	// Fields carries text input values by input name; Checks carries
	// checkbox/radio state by input name. A control absent from Checks does
	// not exist on the page.
	Fields map[string]string `json:"fields"`
	Checks map[string]bool   `json:"checks"`
}

// ConfirmationRequest is posted by a thank-you page to replay the purchase
// stashed at checkout.
type ConfirmationRequest struct {
	SessionID string `json:"session_id" binding:"required" example:"7f9c31ad-8a5f-4a63-9c19-21b5e1a0f3d2"`
	PageURL   string `json:"page_url" binding:"required" example:"https://pages.example.com/thank-you"`
	UserAgent string `json:"user_agent" example:"Mozilla/5.0"`
}
