package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/StevenCC12/server-side-capi/internal/domain"
	"github.com/StevenCC12/server-side-capi/internal/session"
)

// PurchaseKey is the single session-storage slot bridging a checkout click
// to its thank-you page. At most one pending record exists per session.
const PurchaseKey = "ghl_purchase_data"

// Bridge hands a pending conversion from the page that produced it to the
// page that confirms it.
type Bridge struct {
	store session.Store
	log   *zap.Logger
}

// New creates a cross-page bridge over the session store.
func New(store session.Store, log *zap.Logger) *Bridge {
	return &Bridge{
		store: store,
		log:   log,
	}
}

// Stash saves a pending purchase draft under key, overwriting any previous
// draft (last write wins, no merge).
func (b *Bridge) Stash(ctx context.Context, sessionID, key string, draft *domain.PurchaseDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal purchase draft: %w", err)
	}
	if err := b.store.Set(ctx, sessionID, key, string(raw)); err != nil {
		return fmt.Errorf("failed to stash purchase draft: %w", err)
	}
	return nil
}

// Take reads, parses and deletes the draft under key in one logical
// operation, so a reload of the consuming page cannot re-fire the event.
// An absent key or an unparseable value yields nil with no further action.
func (b *Bridge) Take(ctx context.Context, sessionID, key string) *domain.PurchaseDraft {
	raw, found, err := b.store.GetDelete(ctx, sessionID, key)
	if err != nil {
		b.log.Debug("Failed to take stashed draft",
			zap.String("session_id", sessionID),
			zap.String("key", key),
			zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}

	var draft domain.PurchaseDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		b.log.Warn("Discarding corrupt stashed draft",
			zap.String("session_id", sessionID),
			zap.String("key", key),
			zap.Error(err))
		return nil
	}
	return &draft
}
