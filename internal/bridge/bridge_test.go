package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/StevenCC12/server-side-capi/internal/domain"
	"github.com/StevenCC12/server-side-capi/internal/session/memory"
)

const testSessionID = "7f9c31ad-8a5f-4a63-9c19-21b5e1a0f3d2"

func testDraft() *domain.PurchaseDraft {
	return &domain.PurchaseDraft{
		EventID: "purchase_1723475612000_k3j9x2m1q",
		UserData: domain.UserData{
			Email:     "anna@example.com",
			FirstName: "Anna",
			LastName:  "Svensson",
			City:      "Stockholm",
		},
		CustomData: domain.CustomData{
			UTMSource: "facebook",
			Currency:  "SEK",
			Value:     394.00,
		},
	}
}

func TestBridge_RoundTrip(t *testing.T) {
	b := New(memory.NewStore(time.Minute), zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, b.Stash(ctx, testSessionID, PurchaseKey, testDraft()))

	got := b.Take(ctx, testSessionID, PurchaseKey)
	assert.Equal(t, testDraft(), got)

	// A second take in the same session finds nothing: back-navigation or a
	// reload of the consuming page cannot re-fire the event.
	assert.Nil(t, b.Take(ctx, testSessionID, PurchaseKey))
}

func TestBridge_StashOverwrites(t *testing.T) {
	b := New(memory.NewStore(time.Minute), zap.NewNop())
	ctx := context.Background()

	first := testDraft()
	assert.NoError(t, b.Stash(ctx, testSessionID, PurchaseKey, first))

	second := testDraft()
	second.EventID = "purchase_1723475699000_z8y7x6w5v"
	second.CustomData.Value = 297.00
	assert.NoError(t, b.Stash(ctx, testSessionID, PurchaseKey, second))

	got := b.Take(ctx, testSessionID, PurchaseKey)
	assert.Equal(t, second, got, "last write wins, no merge")
}

func TestBridge_TakeAbsentKey(t *testing.T) {
	b := New(memory.NewStore(time.Minute), zap.NewNop())

	assert.Nil(t, b.Take(context.Background(), testSessionID, PurchaseKey))
}

func TestBridge_TakeCorruptValue(t *testing.T) {
	store := memory.NewStore(time.Minute)
	b := New(store, zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, testSessionID, PurchaseKey, "{not json"))
	assert.Nil(t, b.Take(ctx, testSessionID, PurchaseKey))

	// The corrupt value was consumed along the way.
	_, found, err := store.Get(ctx, testSessionID, PurchaseKey)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestBridge_SessionsAreIsolated(t *testing.T) {
	b := New(memory.NewStore(time.Minute), zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, b.Stash(ctx, testSessionID, PurchaseKey, testDraft()))
	assert.Nil(t, b.Take(ctx, "other-session", PurchaseKey))
	assert.NotNil(t, b.Take(ctx, testSessionID, PurchaseKey))
}
