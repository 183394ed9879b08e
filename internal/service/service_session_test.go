package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
	"github.com/MKhiriev/go-pass-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testExpiry = 2 * time.Hour

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type sessionFixture struct {
	ms      *memStore
	clock   *fakeClock
	svc     *sessionService
	alice   models.User
	storage *store.Storages
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	ms := newMemStore()
	clock := newFakeClock()
	storages := ms.storages()

	alice, err := ms.CreateUser(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)

	auth := NewAuthService(ms, config.App{TokenSignKey: "test-sign-key", TokenIssuer: "test"}, logger.Nop())
	engine := newTestEngine(ms, models.PolicyStoreRaw, clock)

	svc := &sessionService{
		sessionRepository: ms,
		userRepository:    ms,
		keyCache:          storages.PrivateKeyCache,
		authService:       auth,
		engine:            engine,
		expiry:            testExpiry,
		now:               clock.Now,
		logger:            logger.Nop(),
	}
	return &sessionFixture{ms: ms, clock: clock, svc: svc, alice: alice, storage: storages}
}

func (f *sessionFixture) create(t *testing.T, sessionID string) models.Session {
	t.Helper()
	session, created, err := f.svc.Create(context.Background(), models.CreateSessionRequest{SessionID: sessionID})
	require.NoError(t, err)
	require.True(t, created)
	return session
}

func (f *sessionFixture) authenticate(t *testing.T, sessionID string) models.AuthResult {
	t.Helper()
	result, err := f.svc.Authenticate(context.Background(), models.AuthenticateRequest{
		SessionID:  sessionID,
		Username:   f.alice.Username,
		PrivateKey: testPrivateKey,
	})
	require.NoError(t, err)
	return result
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestSessionService_Create(t *testing.T) {
	f := newSessionFixture(t)

	session := f.create(t, testSessionID)

	assert.Equal(t, models.SessionCreated, session.State)
	assert.Equal(t, testNow, session.CreatedAt)
	assert.Equal(t, testNow.Add(testExpiry), session.ExpiresAt)
	assert.Empty(t, session.Token)
}

func TestSessionService_Create_ExistingIsReturned(t *testing.T) {
	f := newSessionFixture(t)
	first := f.create(t, testSessionID)
	f.clock.Advance(time.Minute)

	again, created, err := f.svc.Create(context.Background(), models.CreateSessionRequest{SessionID: testSessionID})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, again)
}

func TestSessionService_Create_CustomExpiry(t *testing.T) {
	f := newSessionFixture(t)

	session, _, err := f.svc.Create(context.Background(), models.CreateSessionRequest{SessionID: testSessionID, ExpirySeconds: 60})

	require.NoError(t, err)
	assert.Equal(t, testNow.Add(time.Minute), session.ExpiresAt)
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestSessionService_Authenticate_MigratesQueue(t *testing.T) {
	f := newSessionFixture(t)
	f.create(t, testSessionID)
	appendItems(f.ms, sealedItem(t, "p-1", "mail", models.SchemeAES, models.KeySourceSession, "pw", testSessionID))

	result := f.authenticate(t, testSessionID)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, f.alice.UserID, result.UserID)
	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, testPrivateKey, result.PrivateKey)
	require.NotNil(t, result.Report)
	assert.Equal(t, 1, result.Report.Merged)

	stored, err := f.ms.GetSession(context.Background(), testSessionID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionAuthenticated, stored.State)
	assert.Equal(t, result.Token, stored.Token)
	assert.Equal(t, models.DefaultDeviceName, stored.DeviceName)

	assert.Empty(t, f.ms.pendingIDs(testSessionID))
	entries := f.ms.entries(f.alice.UserID)
	require.Len(t, entries, 1)
	assert.Equal(t, "pw", openSecret(t, entries[0].Secrets["password"]))
}

func TestSessionService_Authenticate_Errors(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		f := newSessionFixture(t)
		f.create(t, testSessionID)

		_, err := f.svc.Authenticate(context.Background(), models.AuthenticateRequest{SessionID: testSessionID, Username: "bob", PrivateKey: "k"})

		assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newSessionFixture(t)

		_, err := f.svc.Authenticate(context.Background(), models.AuthenticateRequest{SessionID: "nope", Username: "alice", PrivateKey: "k"})

		assert.ErrorIs(t, err, store.ErrSessionNotFound)
	})

	t.Run("expired session", func(t *testing.T) {
		f := newSessionFixture(t)
		f.create(t, testSessionID)
		f.clock.Advance(testExpiry + time.Second)

		_, err := f.svc.Authenticate(context.Background(), models.AuthenticateRequest{SessionID: testSessionID, Username: "alice", PrivateKey: "k"})

		assert.ErrorIs(t, err, ErrSessionExpired)
	})
}

func TestSessionService_Authenticate_FailedMigrationKeepsSessionCreated(t *testing.T) {
	f := newSessionFixture(t)
	f.create(t, testSessionID)
	appendItems(f.ms, sealedItem(t, "p-1", "mail", models.SchemeAES, models.KeySourceSession, "pw", testSessionID))
	f.ms.saveEntriesFn = func([]models.VaultEntry) error { return errors.New("vault offline") }

	_, err := f.svc.Authenticate(context.Background(), models.AuthenticateRequest{SessionID: testSessionID, Username: "alice", PrivateKey: testPrivateKey})

	require.ErrorIs(t, err, ErrReconciliationFailed)
	stored, _ := f.ms.GetSession(context.Background(), testSessionID)
	assert.Equal(t, models.SessionCreated, stored.State)
	assert.Equal(t, []string{"p-1"}, f.ms.pendingIDs(testSessionID))

	check, err := f.svc.Check(context.Background(), testSessionID)
	require.NoError(t, err)
	assert.False(t, check.Authenticated)
}

func TestSessionService_Authenticate_RebindsSession(t *testing.T) {
	f := newSessionFixture(t)
	bob, err := f.ms.CreateUser(context.Background(), models.User{Username: "bob"})
	require.NoError(t, err)
	f.create(t, testSessionID)
	f.authenticate(t, testSessionID)

	result, err := f.svc.Authenticate(context.Background(), models.AuthenticateRequest{SessionID: testSessionID, Username: "bob", PrivateKey: "bob-key", DeviceName: "Pixel"})

	require.NoError(t, err)
	stored, _ := f.ms.GetSession(context.Background(), testSessionID)
	assert.Equal(t, bob.UserID, stored.UserID)
	assert.Equal(t, "Pixel", stored.DeviceName)
	assert.Equal(t, result.Token, stored.Token)
}

func TestSessionService_Authenticate_RebindDrainsItemsUnderReplacedToken(t *testing.T) {
	f := newSessionFixture(t)
	_, err := f.ms.CreateUser(context.Background(), models.User{Username: "bob"})
	require.NoError(t, err)
	f.create(t, testSessionID)
	first := f.authenticate(t, testSessionID)

	// an enqueue lands after the first pass took its snapshot but before the
	// rotated token is stored
	f.ms.updateSessionFn = func(models.Session) error {
		appendItems(f.ms, sealedItem(t, "late", "late", models.SchemeAES, models.KeySourceToken, "late-pw", first.Token))
		f.ms.updateSessionFn = nil
		return nil
	}

	result, err := f.svc.Authenticate(context.Background(), models.AuthenticateRequest{SessionID: testSessionID, Username: "bob", PrivateKey: "bob-key"})

	require.NoError(t, err)
	assert.NotEqual(t, first.Token, result.Token)
	assert.Empty(t, f.ms.pendingIDs(testSessionID))
	require.NotNil(t, result.Report)
	assert.Equal(t, 1, result.Report.Merged)
	assert.Zero(t, result.Report.Fallback)

	entries := f.ms.entries(result.UserID)
	require.Len(t, entries, 1)
	plain, err := crypto.DecryptAES(entries[0].Secrets["password"], "bob-key")
	require.NoError(t, err)
	assert.Equal(t, "late-pw", plain)
}

// ─────────────────────────────────────────────
// Check
// ─────────────────────────────────────────────

func TestSessionService_Check(t *testing.T) {
	f := newSessionFixture(t)
	f.create(t, testSessionID)

	check, err := f.svc.Check(context.Background(), testSessionID)
	require.NoError(t, err)
	assert.False(t, check.Authenticated)
	assert.Nil(t, check.Session)

	result := f.authenticate(t, testSessionID)

	check, err = f.svc.Check(context.Background(), testSessionID)
	require.NoError(t, err)
	require.True(t, check.Authenticated)
	assert.Equal(t, &models.SessionIdentity{
		Token:      result.Token,
		Username:   "alice",
		UserID:     f.alice.UserID,
		PrivateKey: testPrivateKey,
		SessionID:  testSessionID,
	}, check.Session)
}

func TestSessionService_Check_LostKeyCache(t *testing.T) {
	f := newSessionFixture(t)
	f.create(t, testSessionID)
	f.authenticate(t, testSessionID)
	f.svc.keyCache = store.NewMemoryKeyCache(0)

	check, err := f.svc.Check(context.Background(), testSessionID)

	require.NoError(t, err)
	require.True(t, check.Authenticated)
	assert.Empty(t, check.Session.PrivateKey)
}

func TestSessionService_Check_Expired(t *testing.T) {
	f := newSessionFixture(t)
	f.create(t, testSessionID)
	f.authenticate(t, testSessionID)
	f.clock.Advance(testExpiry + time.Second)

	check, err := f.svc.Check(context.Background(), testSessionID)

	require.NoError(t, err)
	assert.False(t, check.Authenticated)
}

// ─────────────────────────────────────────────
// Delete / Logout
// ─────────────────────────────────────────────

func TestSessionService_DeleteAndLogout(t *testing.T) {
	for name, remove := range map[string]func(s *sessionService, id string, caller int64) error{
		"delete": func(s *sessionService, id string, caller int64) error {
			return s.Delete(context.Background(), id, caller)
		},
		"logout": func(s *sessionService, id string, caller int64) error {
			return s.Logout(context.Background(), id, caller)
		},
	} {
		t.Run(name, func(t *testing.T) {
			f := newSessionFixture(t)
			f.create(t, testSessionID)
			f.authenticate(t, testSessionID)
			appendItems(f.ms, sealedItem(t, "p-1", "mail", models.SchemeAES, models.KeySourceSession, "pw", testSessionID))

			err := remove(f.svc, testSessionID, f.alice.UserID+1)
			require.ErrorIs(t, err, ErrSessionAccessDenied)

			require.NoError(t, remove(f.svc, testSessionID, f.alice.UserID))

			_, err = f.ms.GetSession(context.Background(), testSessionID)
			assert.ErrorIs(t, err, store.ErrSessionNotFound)
			assert.Empty(t, f.ms.pendingIDs(testSessionID))

			_, found, err := f.storage.PrivateKeyCache.Get(context.Background(), testSessionID)
			require.NoError(t, err)
			assert.False(t, found)

			err = remove(f.svc, testSessionID, f.alice.UserID)
			assert.ErrorIs(t, err, store.ErrSessionNotFound)
		})
	}
}

// ─────────────────────────────────────────────
// SweepExpired
// ─────────────────────────────────────────────

func TestSessionService_SweepExpired_Boundary(t *testing.T) {
	f := newSessionFixture(t)
	f.create(t, "old")
	f.clock.Advance(time.Hour)
	f.create(t, "young")
	appendItems(f.ms, models.PendingCredential{ID: "p-1", SessionID: "old", Title: "x"})

	removed, err := f.svc.SweepExpired(context.Background(), testNow.Add(testExpiry))
	require.NoError(t, err)
	assert.Equal(t, 0, removed, "a session exactly at the cutoff is kept")

	removed, err = f.svc.SweepExpired(context.Background(), testNow.Add(testExpiry+time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = f.ms.GetSession(context.Background(), "old")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
	_, err = f.ms.GetSession(context.Background(), "young")
	assert.NoError(t, err)
	assert.Empty(t, f.ms.pendingIDs("old"))
}

func TestSessionService_SweepExpired_CutoffInUTC(t *testing.T) {
	f := newSessionFixture(t)
	f.create(t, testSessionID)

	var cutoff time.Time
	f.ms.sweepCutoffFn = func(c time.Time) { cutoff = c }

	tokyo := time.FixedZone("UTC+9", 9*60*60)
	removed, err := f.svc.SweepExpired(context.Background(), testNow.Add(10*time.Minute).In(tokyo))

	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, time.UTC, cutoff.Location())
	assert.True(t, cutoff.Equal(testNow.Add(10*time.Minute-testExpiry)))
}

func TestSessionService_SweepExpired_EvictsCachedKeys(t *testing.T) {
	f := newSessionFixture(t)
	f.create(t, testSessionID)
	f.authenticate(t, testSessionID)

	removed, err := f.svc.SweepExpired(context.Background(), testNow.Add(3*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	_, found, _ := f.storage.PrivateKeyCache.Get(context.Background(), testSessionID)
	assert.False(t, found)
}

// ─────────────────────────────────────────────
// List / Verify
// ─────────────────────────────────────────────

func TestSessionService_ListAndVerify(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	err := f.svc.Verify(ctx, "alice", f.alice.UserID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	f.create(t, "s-1")
	f.authenticate(t, "s-1")
	f.create(t, "s-2")

	sessions, err := f.svc.List(ctx, "alice", f.alice.UserID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "s-1", sessions[0].SessionID)
	assert.Equal(t, models.DefaultDeviceName, sessions[0].DeviceName)

	assert.NoError(t, f.svc.Verify(ctx, "alice", f.alice.UserID))

	_, err = f.svc.List(ctx, "alice", f.alice.UserID+1)
	assert.ErrorIs(t, err, ErrSessionAccessDenied)

	_, err = f.svc.List(ctx, "nobody", f.alice.UserID)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)

	f.clock.Advance(testExpiry + time.Second)
	assert.ErrorIs(t, f.svc.Verify(ctx, "alice", f.alice.UserID), ErrUnauthorized)
}

// ─────────────────────────────────────────────
// Process
// ─────────────────────────────────────────────

func TestSessionService_Process(t *testing.T) {
	f := newSessionFixture(t)
	f.create(t, testSessionID)
	result := f.authenticate(t, testSessionID)
	appendItems(f.ms, sealedItem(t, "late", "bank", models.SchemeXOR, models.KeySourceToken, "late-pw", result.Token))

	resp, err := f.svc.Process(context.Background(), models.ProcessRequest{SessionID: testSessionID}, f.alice.UserID)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.ProcessedCount)
	assert.Empty(t, f.ms.pendingIDs(testSessionID))
	assert.Len(t, f.ms.entries(f.alice.UserID), 1)
}

func TestSessionService_Process_Errors(t *testing.T) {
	t.Run("not authenticated", func(t *testing.T) {
		f := newSessionFixture(t)
		f.create(t, testSessionID)

		_, err := f.svc.Process(context.Background(), models.ProcessRequest{SessionID: testSessionID}, f.alice.UserID)
		assert.ErrorIs(t, err, ErrSessionNotAuthenticated)
	})

	t.Run("expired", func(t *testing.T) {
		f := newSessionFixture(t)
		f.create(t, testSessionID)
		f.authenticate(t, testSessionID)
		f.clock.Advance(testExpiry + time.Second)

		_, err := f.svc.Process(context.Background(), models.ProcessRequest{SessionID: testSessionID}, f.alice.UserID)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("other user", func(t *testing.T) {
		f := newSessionFixture(t)
		f.create(t, testSessionID)
		f.authenticate(t, testSessionID)

		_, err := f.svc.Process(context.Background(), models.ProcessRequest{SessionID: testSessionID, Username: "mallory"}, f.alice.UserID)
		assert.ErrorIs(t, err, ErrSessionAccessDenied)
	})

	t.Run("no key anywhere", func(t *testing.T) {
		f := newSessionFixture(t)
		f.create(t, testSessionID)
		f.authenticate(t, testSessionID)
		f.svc.keyCache = store.NewMemoryKeyCache(0)

		_, err := f.svc.Process(context.Background(), models.ProcessRequest{SessionID: testSessionID}, f.alice.UserID)
		assert.ErrorIs(t, err, ErrValidationNoKey)
	})
}
