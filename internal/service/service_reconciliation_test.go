// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSessionID  = "edge-session-1"
	testToken      = "bearer-token-1"
	testPrivateKey = "user-private-key"
)

var testUser = models.User{UserID: 7, Username: "alice"}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestEngine(ms *memStore, policy models.UndecryptablePolicy, clock *fakeClock) *reconciliationEngine {
	return &reconciliationEngine{
		pendingRepository: ms,
		vaultRepository:   ms,
		cipher:            crypto.NewSymmetricCipher(),
		policy:            policy,
		now:               clock.Now,
		newID:             sequentialIDs("entry"),
		logger:            logger.Nop(),
	}
}

func sealedItem(t *testing.T, id, title string, scheme models.Scheme, source models.KeySource, plaintext, key string) models.PendingCredential {
	t.Helper()
	payload, err := crypto.NewSymmetricCipher().Seal(scheme, plaintext, key)
	require.NoError(t, err)

	return models.PendingCredential{
		ID:        id,
		SessionID: testSessionID,
		Title:     title,
		Category:  models.CategoryLogin,
		Secret:    models.Ciphertext{Scheme: scheme, KeySource: source, Payload: payload},
		Status:    models.PendingStatusPending,
		CreatedAt: testNow,
	}
}

func preAuthKeys() models.SessionKeys {
	return models.SessionKeys{SessionID: testSessionID}
}

func authKeys() models.SessionKeys {
	return models.SessionKeys{SessionID: testSessionID, Token: testToken}
}

func openSecret(t *testing.T, ciphertext string) string {
	t.Helper()
	plain, err := crypto.DecryptAES(ciphertext, testPrivateKey)
	require.NoError(t, err)
	return plain
}

func appendItems(ms *memStore, items ...models.PendingCredential) {
	for _, item := range items {
		_ = ms.AppendPending(context.Background(), item)
	}
}

// ─────────────────────────────────────────────
// Basic migration
// ─────────────────────────────────────────────

func TestReconcile_EmptyQueue(t *testing.T) {
	ms := newMemStore()
	engine := newTestEngine(ms, models.PolicyStoreRaw, newFakeClock())

	report, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())

	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.NotNil(t, report.Items)
	assert.Empty(t, ms.entries(testUser.UserID))
}

func TestReconcile_RequiresPrivateKey(t *testing.T) {
	engine := newTestEngine(newMemStore(), models.PolicyStoreRaw, newFakeClock())

	_, err := engine.Reconcile(context.Background(), testSessionID, testUser, "", preAuthKeys())

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestReconcile_MigratesEveryTaggedForm(t *testing.T) {
	tests := []struct {
		name   string
		scheme models.Scheme
		source models.KeySource
		key    string
		keys   models.SessionKeys
	}{
		{name: "aes under session id", scheme: models.SchemeAES, source: models.KeySourceSession, key: testSessionID, keys: preAuthKeys()},
		{name: "xor under session id", scheme: models.SchemeXOR, source: models.KeySourceSession, key: testSessionID, keys: preAuthKeys()},
		{name: "aes under token", scheme: models.SchemeAES, source: models.KeySourceToken, key: testToken, keys: authKeys()},
		{name: "xor under token", scheme: models.SchemeXOR, source: models.KeySourceToken, key: testToken, keys: authKeys()},
		{name: "aes under replaced token", scheme: models.SchemeAES, source: models.KeySourceToken, key: testToken, keys: models.SessionKeys{SessionID: testSessionID, Token: "rotated-token", PreviousToken: testToken}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := newMemStore()
			appendItems(ms, sealedItem(t, "p-1", "mail", tt.scheme, tt.source, "pässwörd 🔑", tt.key))
			engine := newTestEngine(ms, models.PolicyStoreRaw, newFakeClock())

			report, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, tt.keys)

			require.NoError(t, err)
			assert.Equal(t, 1, report.Merged)
			assert.Equal(t, []string{"p-1"}, report.RemovedIDs())

			entries := ms.entries(testUser.UserID)
			require.Len(t, entries, 1)
			assert.Equal(t, "mail", entries[0].Title)
			assert.Equal(t, models.CategoryLogin, entries[0].Category)
			assert.Equal(t, "pässwörd 🔑", openSecret(t, entries[0].Secrets["password"]))
			assert.Empty(t, ms.pendingIDs(testSessionID))
		})
	}
}

func TestReconcile_UntaggedPayloadsAreSniffed(t *testing.T) {
	xorPayload, err := crypto.EncryptXOR("legacy-xor", testToken)
	require.NoError(t, err)
	aesPayload, err := crypto.EncryptAESDeterministic("legacy-aes", testSessionID)
	require.NoError(t, err)

	ms := newMemStore()
	appendItems(ms,
		models.PendingCredential{ID: "p-1", SessionID: testSessionID, Title: "a", Category: models.CategoryLogin,
			Secret: models.Ciphertext{Payload: xorPayload}, Status: models.PendingStatusPending},
		models.PendingCredential{ID: "p-2", SessionID: testSessionID, Title: "b", Category: models.CategoryLogin,
			Secret: models.Ciphertext{Payload: aesPayload}, Status: models.PendingStatusPending},
	)
	engine := newTestEngine(ms, models.PolicyDrop, newFakeClock())

	report, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, authKeys())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Merged)
	assert.Equal(t, 0, report.Dropped)

	byTitle := map[string]models.VaultEntry{}
	for _, e := range ms.entries(testUser.UserID) {
		byTitle[e.Title] = e
	}
	assert.Equal(t, "legacy-xor", openSecret(t, byTitle["a"].Secrets["password"]))
	assert.Equal(t, "legacy-aes", openSecret(t, byTitle["b"].Secrets["password"]))
}

func TestReconcile_SavedItemsAreMigratedToo(t *testing.T) {
	ms := newMemStore()
	item := sealedItem(t, "p-1", "mail", models.SchemeAES, models.KeySourceSession, "pw", testSessionID)
	item.Status = models.PendingStatusSaved
	appendItems(ms, item)
	engine := newTestEngine(ms, models.PolicyStoreRaw, newFakeClock())

	report, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed())
	assert.Empty(t, ms.pendingIDs(testSessionID))
}

// ─────────────────────────────────────────────
// Merge and idempotency
// ─────────────────────────────────────────────

func TestReconcile_MergesIntoExistingEntry(t *testing.T) {
	created := testNow.Add(-48 * time.Hour)
	ms := newMemStore()
	ms.vault[testUser.UserID] = []models.VaultEntry{{
		ID:        "existing",
		UserID:    testUser.UserID,
		Title:     "mail",
		Category:  models.CategoryLogin,
		Fields:    map[string]string{"website": "mail.example.com"},
		Secrets:   map[string]string{"password": "old"},
		CreatedAt: created,
		UpdatedAt: created,
	}}
	appendItems(ms, sealedItem(t, "p-1", "mail", models.SchemeAES, models.KeySourceSession, "new-pw", testSessionID))
	clock := newFakeClock()
	engine := newTestEngine(ms, models.PolicyStoreRaw, clock)

	report, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)

	entries := ms.entries(testUser.UserID)
	require.Len(t, entries, 1)
	assert.Equal(t, "existing", entries[0].ID)
	assert.Equal(t, created, entries[0].CreatedAt)
	assert.Equal(t, clock.Now(), entries[0].UpdatedAt)
	assert.Equal(t, "mail.example.com", entries[0].Fields["website"])
	assert.Equal(t, "new-pw", openSecret(t, entries[0].Secrets["password"]))
}

func TestReconcile_IsIdempotent(t *testing.T) {
	ms := newMemStore()
	clock := newFakeClock()
	engine := newTestEngine(ms, models.PolicyStoreRaw, clock)
	item := sealedItem(t, "p-1", "mail", models.SchemeAES, models.KeySourceSession, "pw", testSessionID)
	appendItems(ms, item)

	_, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())
	require.NoError(t, err)
	first := ms.entries(testUser.UserID)

	// a second run over the drained queue changes nothing
	report, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.Equal(t, first, ms.entries(testUser.UserID))

	// replaying the same item converges on the same entry
	clock.Advance(time.Minute)
	appendItems(ms, item)
	report, err = engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)

	second := ms.entries(testUser.UserID)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].CreatedAt, second[0].CreatedAt)
	assert.Equal(t, "pw", openSecret(t, second[0].Secrets["password"]))
}

func TestReconcile_SameKeyTwiceInOneBatch(t *testing.T) {
	ms := newMemStore()
	appendItems(ms,
		sealedItem(t, "p-1", "mail", models.SchemeAES, models.KeySourceSession, "first", testSessionID),
		sealedItem(t, "p-2", "mail", models.SchemeAES, models.KeySourceSession, "second", testSessionID),
	)
	engine := newTestEngine(ms, models.PolicyStoreRaw, newFakeClock())

	report, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Merged)
	assert.Equal(t, 1, report.Updated)

	entries := ms.entries(testUser.UserID)
	require.Len(t, entries, 1)
	assert.Equal(t, "second", openSecret(t, entries[0].Secrets["password"]))
}

// ─────────────────────────────────────────────
// Queue drain
// ─────────────────────────────────────────────

func TestReconcile_ItemEnqueuedDuringRunSurvives(t *testing.T) {
	ms := newMemStore()
	appendItems(ms,
		sealedItem(t, "p-1", "a", models.SchemeAES, models.KeySourceSession, "pw-a", testSessionID),
		sealedItem(t, "p-2", "b", models.SchemeXOR, models.KeySourceSession, "pw-b", testSessionID),
	)
	late := sealedItem(t, "p-late", "late", models.SchemeAES, models.KeySourceSession, "pw-late", testSessionID)
	ms.saveEntriesFn = func([]models.VaultEntry) error {
		appendItems(ms, late)
		return nil
	}
	engine := newTestEngine(ms, models.PolicyStoreRaw, newFakeClock())

	report, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p-1", "p-2"}, report.RemovedIDs())
	assert.Equal(t, []string{"p-late"}, ms.pendingIDs(testSessionID))
	assert.Len(t, ms.entries(testUser.UserID), 2)
}

func TestReconcile_OtherSessionsAreUntouched(t *testing.T) {
	ms := newMemStore()
	other := sealedItem(t, "o-1", "other", models.SchemeAES, models.KeySourceSession, "pw", "other-session")
	other.SessionID = "other-session"
	appendItems(ms, other, sealedItem(t, "p-1", "mail", models.SchemeAES, models.KeySourceSession, "pw", testSessionID))
	engine := newTestEngine(ms, models.PolicyStoreRaw, newFakeClock())

	_, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())

	require.NoError(t, err)
	assert.Equal(t, []string{"o-1"}, ms.pendingIDs("other-session"))
}

// ─────────────────────────────────────────────
// Undecryptable policy
// ─────────────────────────────────────────────

func undecryptableItem(t *testing.T) models.PendingCredential {
	return sealedItem(t, "bad", "broken", models.SchemeAES, models.KeySourceSession, "pw", "some-other-secret")
}

func TestReconcile_PolicyRawStoresPayload(t *testing.T) {
	ms := newMemStore()
	item := undecryptableItem(t)
	appendItems(ms, item)
	engine := newTestEngine(ms, models.PolicyStoreRaw, newFakeClock())

	report, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Fallback)
	assert.Equal(t, models.OutcomeFallback, report.Items[0].Outcome)
	assert.Empty(t, ms.pendingIDs(testSessionID))

	entries := ms.entries(testUser.UserID)
	require.Len(t, entries, 1)
	assert.Equal(t, item.Secret.Payload, openSecret(t, entries[0].Secrets["password"]))
}

func TestReconcile_PolicyDropRemovesWithoutWrite(t *testing.T) {
	ms := newMemStore()
	appendItems(ms, undecryptableItem(t))
	engine := newTestEngine(ms, models.PolicyDrop, newFakeClock())

	report, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Dropped)
	assert.NotEmpty(t, report.Items[0].Error)
	assert.Empty(t, ms.pendingIDs(testSessionID))
	assert.Empty(t, ms.entries(testUser.UserID))
}

func TestReconcile_PolicyQuarantineKeepsItem(t *testing.T) {
	ms := newMemStore()
	appendItems(ms, undecryptableItem(t), sealedItem(t, "good", "mail", models.SchemeAES, models.KeySourceSession, "pw", testSessionID))
	engine := newTestEngine(ms, models.PolicyQuarantine, newFakeClock())

	report, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Quarantined)
	assert.Equal(t, 1, report.Merged)
	assert.Equal(t, []string{"bad"}, ms.pendingIDs(testSessionID))

	items, _ := ms.ListPending(context.Background(), testSessionID)
	assert.Equal(t, models.PendingStatusQuarantined, items[0].Status)

	// quarantined items are not retried automatically
	report, err = engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.Equal(t, []string{"bad"}, ms.pendingIDs(testSessionID))
}

// ─────────────────────────────────────────────
// Failures
// ─────────────────────────────────────────────

func TestReconcile_VaultWriteFailureLeavesQueueIntact(t *testing.T) {
	ms := newMemStore()
	appendItems(ms, sealedItem(t, "p-1", "mail", models.SchemeAES, models.KeySourceSession, "pw", testSessionID))
	ms.saveEntriesFn = func([]models.VaultEntry) error { return errors.New("disk full") }
	engine := newTestEngine(ms, models.PolicyStoreRaw, newFakeClock())

	_, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())

	require.ErrorIs(t, err, ErrReconciliationFailed)
	assert.Equal(t, []string{"p-1"}, ms.pendingIDs(testSessionID))
	assert.Empty(t, ms.entries(testUser.UserID))
}

func TestReconcile_QueueCleanupFailure(t *testing.T) {
	ms := newMemStore()
	appendItems(ms, sealedItem(t, "p-1", "mail", models.SchemeAES, models.KeySourceSession, "pw", testSessionID))
	ms.removePendingFn = func([]string) error { return errors.New("connection reset") }
	engine := newTestEngine(ms, models.PolicyStoreRaw, newFakeClock())

	_, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())

	require.ErrorIs(t, err, ErrReconciliationFailed)
	assert.Len(t, ms.entries(testUser.UserID), 1)
	assert.Equal(t, []string{"p-1"}, ms.pendingIDs(testSessionID))
}

func TestReconcile_SnapshotFailure(t *testing.T) {
	ms := newMemStore()
	ms.listPendingFn = func() error { return errors.New("timeout") }
	engine := newTestEngine(ms, models.PolicyStoreRaw, newFakeClock())

	_, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())

	assert.ErrorIs(t, err, ErrReconciliationFailed)
}

// ─────────────────────────────────────────────
// Structured payloads
// ─────────────────────────────────────────────

func TestReconcile_StructuredCardPayload(t *testing.T) {
	card := `{"category":"card","cardType":"visa","cardNumber":"4111111111111111","cardholderName":"Alice","expiryDate":"12/29","cvv":"123","notes":"travel"}`
	ms := newMemStore()
	appendItems(ms, sealedItem(t, "p-1", "visa", models.SchemeAES, models.KeySourceSession, card, testSessionID))
	engine := newTestEngine(ms, models.PolicyStoreRaw, newFakeClock())

	_, err := engine.Reconcile(context.Background(), testSessionID, testUser, testPrivateKey, preAuthKeys())
	require.NoError(t, err)

	entries := ms.entries(testUser.UserID)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, models.CategoryCard, entry.Category)
	assert.Equal(t, map[string]string{
		"cardType":       "visa",
		"cardholderName": "Alice",
		"expiryDate":     "12/29",
		"notes":          "travel",
	}, entry.Fields)
	assert.Len(t, entry.Secrets, 2)
	assert.Equal(t, "4111111111111111", openSecret(t, entry.Secrets["cardNumber"]))
	assert.Equal(t, "123", openSecret(t, entry.Secrets["cvv"]))
}
