package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-bridge/internal/adapter"
	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
	"github.com/MKhiriev/go-pass-bridge/models"
)

// VoiceSimilarityThreshold is the similarity above which a voice sample
// matches even without an explicit verified flag.
const VoiceSimilarityThreshold = 0.75

// accessService is the concrete implementation of AccessService.
type accessService struct {
	sessionRepository store.SessionRepository
	cipher            crypto.SymmetricCipher

	// voiceVerifier is nil when no voice service is configured.
	voiceVerifier adapter.VoiceVerifier

	now func() time.Time

	logger *logger.Logger
}

func NewAccessService(storages *store.Storages, cipher crypto.SymmetricCipher, voiceVerifier adapter.VoiceVerifier, logger *logger.Logger) AccessService {
	return &accessService{
		sessionRepository: storages.SessionRepository,
		cipher:            cipher,
		voiceVerifier:     voiceVerifier,
		now:               time.Now,
		logger:            logger,
	}
}

// SetAccessMethod stores the SHA-256 of the PIN and the biometrics flag.
// Nil fields in req leave the current value untouched.
func (a *accessService) SetAccessMethod(ctx context.Context, req models.AccessMethodRequest) error {
	session, err := a.authenticatedSession(ctx, req.SessionID)
	if err != nil {
		return err
	}

	if req.PIN != nil {
		if *req.PIN == "" {
			session.AccessPIN = ""
		} else {
			session.AccessPIN = a.cipher.Hash(*req.PIN)
		}
	}
	if req.UseBiometrics != nil {
		session.UseBiometrics = *req.UseBiometrics
	}

	if err = a.sessionRepository.UpdateSession(ctx, session); err != nil {
		return fmt.Errorf("session update failed: %w", err)
	}
	return nil
}

// VerifyAccess compares the PIN with the stored hash in constant time.
func (a *accessService) VerifyAccess(ctx context.Context, req models.VerifyAccessRequest) (models.VerifyAccessResponse, error) {
	session, err := a.authenticatedSession(ctx, req.SessionID)
	if err != nil {
		return models.VerifyAccessResponse{}, err
	}

	if session.AccessPIN == "" {
		return models.VerifyAccessResponse{}, ErrInvalidPIN
	}

	given := a.cipher.Hash(req.PIN)
	if subtle.ConstantTimeCompare([]byte(given), []byte(session.AccessPIN)) != 1 {
		logger.FromContext(ctx).Warn().Str("session_id", req.SessionID).Msg("wrong pin")
		return models.VerifyAccessResponse{}, ErrInvalidPIN
	}

	return models.VerifyAccessResponse{Success: true, UseBiometrics: session.UseBiometrics}, nil
}

// VerifyVoice forwards sample to the voice service for the session's user.
// The verdict is returned together with ErrVoiceNotMatched when the voice
// did not match.
func (a *accessService) VerifyVoice(ctx context.Context, sessionID string, sample []byte) (models.VoiceVerdict, error) {
	if a.voiceVerifier == nil {
		return models.VoiceVerdict{}, ErrVoiceNotConfigured
	}
	if len(sample) == 0 {
		return models.VoiceVerdict{}, ErrInvalidDataProvided
	}

	session, err := a.authenticatedSession(ctx, sessionID)
	if err != nil {
		return models.VoiceVerdict{}, err
	}

	verdict, err := a.voiceVerifier.Verify(ctx, session.UserID, sample)
	if err != nil {
		return models.VoiceVerdict{}, fmt.Errorf("voice verification failed: %w", err)
	}

	if !verdict.Verified && verdict.Similarity <= VoiceSimilarityThreshold {
		return verdict, ErrVoiceNotMatched
	}
	verdict.Verified = true
	return verdict, nil
}

func (a *accessService) authenticatedSession(ctx context.Context, sessionID string) (models.Session, error) {
	if sessionID == "" {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoSessionID)
	}

	session, err := a.sessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	switch session.StateAt(a.now()) {
	case models.SessionExpired:
		return models.Session{}, ErrSessionExpired
	case models.SessionCreated:
		return models.Session{}, ErrSessionNotAuthenticated
	}
	return session, nil
}
