package capture

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/StevenCC12/server-side-capi/internal/domain"
	"github.com/StevenCC12/server-side-capi/internal/session"
)

// StorageKey is the session-storage slot holding the attribution record.
const StorageKey = "webinarOptInAttribution"

// recognizedParams is the closed set of URL parameters captured on an
// entry-page load. Anything else in the query string is ignored.
var recognizedParams = []string{
	"utm_source", "utm_medium", "utm_campaign", "utm_content", "utm_term",
	"utm_placement", "audience_segment", "fbclid", "gclid",
}

// PageMeta describes the page the capture request came from.
type PageMeta struct {
	URL       string
	Referrer  string
	UserAgent string
}

// Attribution builds an attribution record from the observed query
// parameters, cookie jar and page metadata. It is a pure function of its
// inputs; persistence is the Capturer's concern.
func Attribution(params, cookies map[string]string, meta PageMeta, now time.Time) domain.AttributionRecord {
	rec := domain.AttributionRecord{
		LandingURL:  meta.URL,
		ReferrerURL: meta.Referrer,
		UserAgent:   meta.UserAgent,
		CapturedAt:  now.Unix(),
	}

	observed := make(map[string]*string, len(recognizedParams))
	for _, key := range recognizedParams {
		if v, ok := params[key]; ok {
			value := v
			observed[key] = &value
		}
	}
	rec.UTMSource = observed["utm_source"]
	rec.UTMMedium = observed["utm_medium"]
	rec.UTMCampaign = observed["utm_campaign"]
	rec.UTMContent = observed["utm_content"]
	rec.UTMTerm = observed["utm_term"]
	rec.UTMPlacement = observed["utm_placement"]
	rec.AudienceSegment = observed["audience_segment"]
	rec.FBCLID = observed["fbclid"]
	rec.GCLID = observed["gclid"]

	if v, ok := cookies["_fbp"]; ok {
		rec.FBPCookie = &v
	}
	if v, ok := cookies["_fbc"]; ok {
		rec.FBCCookie = &v
	}

	return rec
}

// Capturer persists attribution records in session-scoped storage.
type Capturer struct {
	store session.Store
	log   *zap.Logger
}

// NewCapturer creates a new attribution capturer.
func NewCapturer(store session.Store, log *zap.Logger) *Capturer {
	return &Capturer{
		store: store,
		log:   log,
	}
}

// Capture builds the attribution record and persists it under StorageKey.
// The first record of a session wins; later captures are kept out unless
// overwrite is set. Persistence is at-most-effort: a storage failure is
// swallowed and the record is still returned, so the calling page is never
// affected by a degraded store.
func (c *Capturer) Capture(ctx context.Context, sessionID string, params, cookies map[string]string, meta PageMeta, overwrite bool) (domain.AttributionRecord, bool) {
	rec := Attribution(params, cookies, meta, time.Now())

	raw, err := json.Marshal(rec)
	if err != nil {
		c.log.Warn("Failed to marshal attribution record", zap.Error(err))
		return rec, false
	}

	stored := true
	if overwrite {
		err = c.store.Set(ctx, sessionID, StorageKey, string(raw))
	} else {
		stored, err = c.store.SetIfAbsent(ctx, sessionID, StorageKey, string(raw))
	}
	if err != nil {
		c.log.Debug("Attribution capture not persisted",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return rec, false
	}

	return rec, stored
}

// Load reads the session's attribution record. A missing or corrupt record
// yields nil; the assembler then degrades to fresh cookie reads.
func (c *Capturer) Load(ctx context.Context, sessionID string) *domain.AttributionRecord {
	raw, found, err := c.store.Get(ctx, sessionID, StorageKey)
	if err != nil {
		c.log.Debug("Failed to read attribution record",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}

	var rec domain.AttributionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		c.log.Warn("Discarding corrupt attribution record",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil
	}
	return &rec
}
