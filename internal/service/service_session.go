package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
	"github.com/MKhiriev/go-pass-bridge/models"
)

// sessionService is the concrete implementation of SessionService.
//
// The durable session record never holds the private key: it is handed to
// the key cache after a successful authentication and read back by Check and
// Process.
type sessionService struct {
	sessionRepository store.SessionRepository
	userRepository    store.UserRepository
	keyCache          store.PrivateKeyCache

	authService AuthService
	engine      ReconciliationEngine

	// expiry is the default session lifetime and the sweep window.
	expiry time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewSessionService constructs a SessionService. expiry is the default
// lifetime of new sessions and the age after which SweepExpired removes
// them.
func NewSessionService(
	storages *store.Storages,
	authService AuthService,
	engine ReconciliationEngine,
	expiry time.Duration,
	logger *logger.Logger,
) SessionService {
	return &sessionService{
		sessionRepository: storages.SessionRepository,
		userRepository:    storages.UserRepository,
		keyCache:          storages.PrivateKeyCache,
		authService:       authService,
		engine:            engine,
		expiry:            expiry,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *sessionService) Create(ctx context.Context, req models.CreateSessionRequest) (models.Session, bool, error) {
	log := logger.FromContext(ctx)

	existing, err := s.sessionRepository.GetSession(ctx, req.SessionID)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, store.ErrSessionNotFound):
		log.Err(err).Str("session_id", req.SessionID).Msg("session lookup failed")
		return models.Session{}, false, fmt.Errorf("session lookup failed: %w", err)
	}

	ttl := s.expiry
	if req.ExpirySeconds > 0 {
		ttl = time.Duration(req.ExpirySeconds) * time.Second
	}

	session := models.NewSession(req.SessionID, s.now().UTC(), ttl)
	if err = s.sessionRepository.CreateSession(ctx, session); err != nil {
		if errors.Is(err, store.ErrSessionAlreadyExists) {
			existing, getErr := s.sessionRepository.GetSession(ctx, req.SessionID)
			if getErr != nil {
				return models.Session{}, false, fmt.Errorf("session lookup failed: %w", getErr)
			}
			return existing, false, nil
		}
		log.Err(err).Str("session_id", req.SessionID).Msg("session creation failed")
		return models.Session{}, false, fmt.Errorf("session creation failed: %w", err)
	}

	log.Info().Str("session_id", session.SessionID).Time("expires_at", session.ExpiresAt).Msg("session created")
	return session, true, nil
}

// Authenticate binds the session to the user named in req.
//
// The pending queue is reconciled with the secrets the session held before
// this call, because those are the secrets its items were encrypted with.
// Only after a successful reconciliation is the session moved to the
// authenticated state and the private key cached.
func (s *sessionService) Authenticate(ctx context.Context, req models.AuthenticateRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx).With().Str("session_id", req.SessionID).Logger()

	user, err := s.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user lookup failed")
		return models.AuthResult{}, fmt.Errorf("user lookup failed: %w", err)
	}

	session, err := s.sessionRepository.GetSession(ctx, req.SessionID)
	if err != nil {
		log.Err(err).Msg("session lookup failed")
		return models.AuthResult{}, fmt.Errorf("session lookup failed: %w", err)
	}

	now := s.now().UTC()
	if session.StateAt(now) == models.SessionExpired {
		return models.AuthResult{}, ErrSessionExpired
	}

	preAuthKeys := session.Keys()

	token, err := s.authService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("token creation failed")
		return models.AuthResult{}, err
	}

	report, err := s.engine.Reconcile(ctx, session.SessionID, user, req.PrivateKey, preAuthKeys)
	if err != nil {
		log.Err(err).Msg("reconciliation during authentication failed")
		return models.AuthResult{}, err
	}

	if err = session.Authenticate(token.String(), user.UserID, user.Username, req.DeviceName, now); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err = s.sessionRepository.UpdateSession(ctx, session); err != nil {
		log.Err(err).Msg("session update failed")
		return models.AuthResult{}, fmt.Errorf("session update failed: %w", err)
	}

	// a rebound session may have taken items sealed under the replaced
	// token while the first pass ran
	if preAuthKeys.Token != "" {
		keys := session.Keys()
		keys.PreviousToken = preAuthKeys.Token
		late, lateErr := s.engine.Reconcile(ctx, session.SessionID, user, req.PrivateKey, keys)
		if lateErr != nil {
			log.Warn().Err(lateErr).Msg("follow-up reconciliation after rebind failed")
		} else {
			report.Merge(late)
		}
	}

	if err = s.keyCache.Put(ctx, session.SessionID, req.PrivateKey); err != nil {
		log.Warn().Err(err).Msg("private key was not cached")
	}

	log.Info().Int64("user_id", user.UserID).Int("migrated", report.Processed()).Msg("session authenticated")

	return models.AuthResult{
		Token:      session.Token,
		UserID:     user.UserID,
		Username:   user.Username,
		PrivateKey: req.PrivateKey,
		SessionID:  session.SessionID,
		Report:     &report,
	}, nil
}

// Check reports whether the session is authenticated. The private key of
// the identity may be empty if the cache lost it.
func (s *sessionService) Check(ctx context.Context, sessionID string) (models.CheckSessionResponse, error) {
	session, err := s.sessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return models.CheckSessionResponse{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.StateAt(s.now()) != models.SessionAuthenticated {
		return models.CheckSessionResponse{Authenticated: false}, nil
	}

	privateKey, _, err := s.keyCache.Get(ctx, sessionID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("session_id", sessionID).Msg("private key cache lookup failed")
		privateKey = ""
	}

	return models.CheckSessionResponse{
		Authenticated: true,
		Session: &models.SessionIdentity{
			Token:      session.Token,
			Username:   session.Username,
			UserID:     session.UserID,
			PrivateKey: privateKey,
			SessionID:  session.SessionID,
		},
	}, nil
}

func (s *sessionService) Delete(ctx context.Context, sessionID string, callerID int64) error {
	if err := s.removeOwned(ctx, sessionID, callerID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("session_id", sessionID).Msg("session deleted")
	return nil
}

func (s *sessionService) Logout(ctx context.Context, sessionID string, callerID int64) error {
	if err := s.removeOwned(ctx, sessionID, callerID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("session_id", sessionID).Msg("session logged out")
	return nil
}

func (s *sessionService) removeOwned(ctx context.Context, sessionID string, callerID int64) error {
	session, err := s.sessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("session lookup failed: %w", err)
	}
	if session.UserID != callerID {
		return ErrSessionAccessDenied
	}

	if err = s.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("session removal failed: %w", err)
	}
	if err = s.keyCache.Delete(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("session_id", sessionID).Msg("private key eviction failed")
	}
	return nil
}

// SweepExpired removes sessions whose CreatedAt is strictly before
// now minus the expiry window, whatever their state.
func (s *sessionService) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.UTC().Add(-s.expiry)

	ids, err := s.sessionRepository.DeleteSessionsCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("expired session removal failed: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err = s.keyCache.Delete(ctx, ids...); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int("sessions", len(ids)).Msg("private key eviction failed")
	}
	return len(ids), nil
}

// List returns the live authenticated sessions of username. Only the user
// themself may list them.
func (s *sessionService) List(ctx context.Context, username string, callerID int64) ([]models.SessionSummary, error) {
	sessions, err := s.liveSessions(ctx, username, callerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, models.SessionSummary{
			SessionID:  session.SessionID,
			DeviceName: session.DeviceName,
			CreatedAt:  session.CreatedAt,
			ExpiresAt:  session.ExpiresAt,
		})
	}
	return summaries, nil
}

// Verify returns ErrUnauthorized unless username has a live authenticated
// session.
func (s *sessionService) Verify(ctx context.Context, username string, callerID int64) error {
	sessions, err := s.liveSessions(ctx, username, callerID)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return ErrUnauthorized
	}
	return nil
}

func (s *sessionService) liveSessions(ctx context.Context, username string, callerID int64) ([]models.Session, error) {
	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	if user.UserID != callerID {
		return nil, ErrSessionAccessDenied
	}

	sessions, err := s.sessionRepository.ListUserSessions(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("session listing failed: %w", err)
	}

	now := s.now()
	live := make([]models.Session, 0, len(sessions))
	for _, session := range sessions {
		if session.StateAt(now) == models.SessionAuthenticated {
			live = append(live, session)
		}
	}
	return live, nil
}

// Process re-runs reconciliation for an authenticated session with its
// current token. An empty private key in req falls back to the cached one.
func (s *sessionService) Process(ctx context.Context, req models.ProcessRequest, callerID int64) (models.ProcessResponse, error) {
	session, err := s.sessionRepository.GetSession(ctx, req.SessionID)
	if err != nil {
		return models.ProcessResponse{}, fmt.Errorf("session lookup failed: %w", err)
	}

	switch session.StateAt(s.now()) {
	case models.SessionExpired:
		return models.ProcessResponse{}, ErrSessionExpired
	case models.SessionCreated:
		return models.ProcessResponse{}, ErrSessionNotAuthenticated
	}
	if session.UserID != callerID || (req.Username != "" && req.Username != session.Username) {
		return models.ProcessResponse{}, ErrSessionAccessDenied
	}

	user, err := s.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		return models.ProcessResponse{}, fmt.Errorf("user lookup failed: %w", err)
	}

	privateKey := req.PrivateKey
	if privateKey == "" {
		cached, found, cacheErr := s.keyCache.Get(ctx, session.SessionID)
		if cacheErr != nil || !found {
			return models.ProcessResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoKey)
		}
		privateKey = cached
	}

	report, err := s.engine.Reconcile(ctx, session.SessionID, user, privateKey, session.Keys())
	if err != nil {
		return models.ProcessResponse{}, err
	}

	return models.ProcessResponse{ProcessedCount: report.Processed(), Report: report}, nil
}
