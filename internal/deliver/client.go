package deliver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/StevenCC12/server-side-capi/internal/domain"
)

// Outcome is the terminal result of one delivery.
type Outcome string

const (
	OutcomeDelivered Outcome = "delivered"
	OutcomeGivenUp   Outcome = "given_up"
)

// Policy bounds the delivery attempts for one event. Failures (network
// errors and non-2xx responses) are retried after RetryDelay until the
// attempts are exhausted, then the event is silently dropped.
type Policy struct {
	MaxAttempts int
	RetryDelay  time.Duration
}

// FireAndForget makes a single attempt and discards any failure.
var FireAndForget = Policy{MaxAttempts: 1}

// BoundedRetry matches the thank-you page webhook behavior: three attempts
// two seconds apart, then give up.
var BoundedRetry = Policy{MaxAttempts: 3, RetryDelay: 2 * time.Second}

// Client posts JSON-serialized conversion events to fixed endpoint URLs.
type Client struct {
	httpClient *http.Client
	sleep      func(ctx context.Context, d time.Duration)
	log        *zap.Logger
}

// NewClient creates a delivery client.
func NewClient(log *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		sleep:      sleepContext,
		log:        log,
	}
}

// Deliver posts the event to the endpoint under the given policy. The
// request context is detached from the caller's cancellation so a delivery
// triggered by a click that also navigates away is not aborted mid-flight.
// No failure is surfaced beyond the returned outcome.
func (c *Client) Deliver(ctx context.Context, endpoint string, event *domain.ConversionEvent, policy Policy) Outcome {
	body, err := json.Marshal(event)
	if err != nil {
		c.log.Error("Failed to marshal conversion event",
			zap.String("event_name", string(event.EventName)),
			zap.Error(err))
		return OutcomeGivenUp
	}

	ctx = context.WithoutCancel(ctx)

	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := c.post(ctx, endpoint, body); err == nil {
			c.log.Info("Conversion event delivered",
				zap.String("event_name", string(event.EventName)),
				zap.String("event_id", event.EventID),
				zap.Int("attempt", attempt))
			return OutcomeDelivered
		} else {
			c.log.Warn("Delivery attempt failed",
				zap.String("event_name", string(event.EventName)),
				zap.String("event_id", event.EventID),
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", attempts),
				zap.Error(err))
		}

		if attempt < attempts {
			c.sleep(ctx, policy.RetryDelay)
		}
	}

	return OutcomeGivenUp
}

func (c *Client) post(ctx context.Context, endpoint string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// The response body, when present, is expected JSON but is never
	// schema-validated; drain it so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{status: resp.StatusCode}
	}
	return nil
}

type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.status)
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
