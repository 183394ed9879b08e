package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-bridge/internal/adapter"
	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVoiceVerifier implements adapter.VoiceVerifier with a function field.
type fakeVoiceVerifier struct {
	verifyFn func(ctx context.Context, userID int64, sample []byte) (models.VoiceVerdict, error)
	calls    int
}

func (f *fakeVoiceVerifier) Verify(ctx context.Context, userID int64, sample []byte) (models.VoiceVerdict, error) {
	f.calls++
	return f.verifyFn(ctx, userID, sample)
}

func newTestAccessService(ms *memStore, clock *fakeClock, verifier adapter.VoiceVerifier) *accessService {
	return &accessService{
		sessionRepository: ms,
		cipher:            crypto.NewSymmetricCipher(),
		voiceVerifier:     verifier,
		now:               clock.Now,
		logger:            logger.Nop(),
	}
}

func ptrTo[T any](v T) *T { return &v }

// ─────────────────────────────────────────────
// PIN and biometrics
// ─────────────────────────────────────────────

func TestAccessService_PIN(t *testing.T) {
	ms := newMemStore()
	putSession(t, ms, authenticatedSession(t, testSessionID))
	svc := newTestAccessService(ms, newFakeClock(), nil)
	ctx := context.Background()

	_, err := svc.VerifyAccess(ctx, models.VerifyAccessRequest{SessionID: testSessionID, PIN: "1234"})
	assert.ErrorIs(t, err, ErrInvalidPIN, "no pin configured")

	require.NoError(t, svc.SetAccessMethod(ctx, models.AccessMethodRequest{SessionID: testSessionID, PIN: ptrTo("1234")}))

	stored, _ := ms.GetSession(ctx, testSessionID)
	assert.NotEqual(t, "1234", stored.AccessPIN)
	assert.Equal(t, crypto.HashString("1234"), stored.AccessPIN)

	resp, err := svc.VerifyAccess(ctx, models.VerifyAccessRequest{SessionID: testSessionID, PIN: "1234"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.UseBiometrics)

	_, err = svc.VerifyAccess(ctx, models.VerifyAccessRequest{SessionID: testSessionID, PIN: "0000"})
	assert.ErrorIs(t, err, ErrInvalidPIN)

	require.NoError(t, svc.SetAccessMethod(ctx, models.AccessMethodRequest{SessionID: testSessionID, PIN: ptrTo("")}))
	_, err = svc.VerifyAccess(ctx, models.VerifyAccessRequest{SessionID: testSessionID, PIN: "1234"})
	assert.ErrorIs(t, err, ErrInvalidPIN, "pin cleared")
}

func TestAccessService_Biometrics(t *testing.T) {
	ms := newMemStore()
	putSession(t, ms, authenticatedSession(t, testSessionID))
	svc := newTestAccessService(ms, newFakeClock(), nil)
	ctx := context.Background()

	require.NoError(t, svc.SetAccessMethod(ctx, models.AccessMethodRequest{SessionID: testSessionID, PIN: ptrTo("1234")}))
	require.NoError(t, svc.SetAccessMethod(ctx, models.AccessMethodRequest{SessionID: testSessionID, UseBiometrics: ptrTo(true)}))

	resp, err := svc.VerifyAccess(ctx, models.VerifyAccessRequest{SessionID: testSessionID, PIN: "1234"})
	require.NoError(t, err)
	assert.True(t, resp.UseBiometrics, "biometrics update keeps the pin")
}

func TestAccessService_SessionState(t *testing.T) {
	ms := newMemStore()
	putSession(t, ms, models.NewSession("anonymous", testNow, testExpiry))
	putSession(t, ms, authenticatedSession(t, testSessionID))
	clock := newFakeClock()
	svc := newTestAccessService(ms, clock, nil)
	ctx := context.Background()

	err := svc.SetAccessMethod(ctx, models.AccessMethodRequest{SessionID: "anonymous", PIN: ptrTo("1")})
	assert.ErrorIs(t, err, ErrSessionNotAuthenticated)

	err = svc.SetAccessMethod(ctx, models.AccessMethodRequest{PIN: ptrTo("1")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	clock.Advance(testExpiry + time.Second)
	_, err = svc.VerifyAccess(ctx, models.VerifyAccessRequest{SessionID: testSessionID, PIN: "1"})
	assert.ErrorIs(t, err, ErrSessionExpired)
}

// ─────────────────────────────────────────────
// Voice
// ─────────────────────────────────────────────

func TestAccessService_VerifyVoice(t *testing.T) {
	tests := []struct {
		name         string
		verdict      models.VoiceVerdict
		verifyErr    error
		wantErr      error
		wantVerified bool
	}{
		{name: "verified", verdict: models.VoiceVerdict{Verified: true, Similarity: 0.4}, wantVerified: true},
		{name: "similar enough", verdict: models.VoiceVerdict{Similarity: 0.76}, wantVerified: true},
		{name: "at threshold", verdict: models.VoiceVerdict{Similarity: VoiceSimilarityThreshold}, wantErr: ErrVoiceNotMatched},
		{name: "no match", verdict: models.VoiceVerdict{Similarity: 0.1}, wantErr: ErrVoiceNotMatched},
		{name: "upstream down", verifyErr: adapter.ErrUpstreamUnavailable, wantErr: adapter.ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := newMemStore()
			putSession(t, ms, authenticatedSession(t, testSessionID))
			verifier := &fakeVoiceVerifier{
				verifyFn: func(_ context.Context, userID int64, sample []byte) (models.VoiceVerdict, error) {
					assert.Equal(t, testUser.UserID, userID)
					assert.Equal(t, []byte("sample"), sample)
					return tt.verdict, tt.verifyErr
				},
			}
			svc := newTestAccessService(ms, newFakeClock(), verifier)

			verdict, err := svc.VerifyVoice(context.Background(), testSessionID, []byte("sample"))

			assert.Equal(t, 1, verifier.calls)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, verdict.Verified)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVerified, verdict.Verified)
			assert.Equal(t, tt.verdict.Similarity, verdict.Similarity)
		})
	}
}

func TestAccessService_VerifyVoice_Rejected(t *testing.T) {
	verifier := &fakeVoiceVerifier{
		verifyFn: func(context.Context, int64, []byte) (models.VoiceVerdict, error) {
			return models.VoiceVerdict{}, errors.New("unexpected call")
		},
	}

	t.Run("not configured", func(t *testing.T) {
		svc := newTestAccessService(newMemStore(), newFakeClock(), nil)
		_, err := svc.VerifyVoice(context.Background(), testSessionID, []byte("sample"))
		assert.ErrorIs(t, err, ErrVoiceNotConfigured)
	})

	t.Run("empty sample", func(t *testing.T) {
		svc := newTestAccessService(newMemStore(), newFakeClock(), verifier)
		_, err := svc.VerifyVoice(context.Background(), testSessionID, nil)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("anonymous session", func(t *testing.T) {
		ms := newMemStore()
		putSession(t, ms, models.NewSession(testSessionID, testNow, testExpiry))
		svc := newTestAccessService(ms, newFakeClock(), verifier)
		_, err := svc.VerifyVoice(context.Background(), testSessionID, []byte("sample"))
		assert.ErrorIs(t, err, ErrSessionNotAuthenticated)
	})

	assert.Zero(t, verifier.calls)
}
