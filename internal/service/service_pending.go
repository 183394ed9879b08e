package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
	"github.com/MKhiriev/go-pass-bridge/internal/utils"
	"github.com/MKhiriev/go-pass-bridge/models"
)

// MaskedPassword replaces a pending password that cannot be decoded for
// display.
const MaskedPassword = "●●●●●●●●"

// pendingService is the concrete implementation of PendingService.
type pendingService struct {
	sessionRepository store.SessionRepository
	pendingRepository store.PendingCredentialRepository

	cipher        crypto.SymmetricCipher
	defaultScheme models.Scheme

	now   func() time.Time
	newID func() string

	logger *logger.Logger
}

// NewPendingService constructs a PendingService. Plaintext enqueued without a
// scheme is sealed with defaultScheme under the session's queue key.
func NewPendingService(storages *store.Storages, cipher crypto.SymmetricCipher, defaultScheme models.Scheme, logger *logger.Logger) PendingService {
	return &pendingService{
		sessionRepository: storages.SessionRepository,
		pendingRepository: storages.PendingCredentialRepository,
		cipher:            cipher,
		defaultScheme:     defaultScheme,
		now:               time.Now,
		newID:             utils.NewUUIDGenerator().Generate,
		logger:            logger,
	}
}

// Enqueue appends one credential to the session's queue and returns its id.
//
// Without req.Scheme the password is plaintext and is sealed here. With a
// scheme it is a payload the caller sealed under the session's queue key;
// only its shape is checked.
func (p *pendingService) Enqueue(ctx context.Context, req models.EnqueueRequest) (string, error) {
	log := logger.FromContext(ctx).With().Str("session_id", req.SessionID).Logger()

	if req.Title == "" || req.Password == "" {
		return "", ErrInvalidDataProvided
	}

	session, err := p.liveSession(ctx, req.SessionID)
	if err != nil {
		return "", err
	}

	key, source := session.QueueKey()
	secret := models.Ciphertext{Scheme: req.Scheme, KeySource: source, Payload: req.Password}

	if req.Scheme == "" {
		secret.Scheme = p.defaultScheme
		secret.Payload, err = p.cipher.Seal(p.defaultScheme, req.Password, key)
		if err != nil {
			log.Err(err).Msg("error sealing pending password")
			return "", fmt.Errorf("error sealing pending password: %w", err)
		}
	} else if err = crypto.ValidatePayload(req.Scheme, req.Password); err != nil {
		return "", err
	}

	item := models.PendingCredential{
		ID:        p.newID(),
		SessionID: session.SessionID,
		Title:     req.Title,
		Category:  models.ParseCategory(req.Category),
		Secret:    secret,
		Status:    models.PendingStatusPending,
		CreatedAt: p.now().UTC(),
	}
	if err = p.pendingRepository.AppendPending(ctx, item); err != nil {
		log.Err(err).Msg("error appending pending password")
		return "", fmt.Errorf("error appending pending password: %w", err)
	}

	log.Info().Str("item_id", item.ID).Str("scheme", string(secret.Scheme)).Msg("pending password queued")
	return item.ID, nil
}

// MarkSaved flags the given items as acknowledged by the edge device. The
// items stay in the queue.
func (p *pendingService) MarkSaved(ctx context.Context, req models.MarkSavedRequest, callerID int64) (int64, error) {
	session, err := p.ownedSession(ctx, req.SessionID, "", callerID)
	if err != nil {
		return 0, err
	}

	updated, err := p.pendingRepository.MarkPendingSaved(ctx, session.SessionID, req.PasswordIDs)
	if err != nil {
		return 0, fmt.Errorf("error marking pending passwords saved: %w", err)
	}
	return updated, nil
}

func (p *pendingService) HasPending(ctx context.Context, sessionID string) (bool, error) {
	if _, err := p.sessionRepository.GetSession(ctx, sessionID); err != nil {
		return false, fmt.Errorf("session lookup failed: %w", err)
	}

	has, err := p.pendingRepository.HasUnsavedPending(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("error checking pending passwords: %w", err)
	}
	return has, nil
}

// List returns the session's queue prepared for display on the primary
// device. Passwords are decoded with the session's secrets; a structured
// payload shows its password field. Undecodable passwords are masked.
func (p *pendingService) List(ctx context.Context, sessionID, username string, callerID int64) ([]models.PendingPasswordView, error) {
	session, err := p.ownedSession(ctx, sessionID, username, callerID)
	if err != nil {
		return nil, err
	}

	items, err := p.pendingRepository.ListPending(ctx, session.SessionID)
	if err != nil {
		return nil, fmt.Errorf("error listing pending passwords: %w", err)
	}

	views := make([]models.PendingPasswordView, 0, len(items))
	for _, item := range items {
		views = append(views, models.PendingPasswordView{
			ID:        item.ID,
			Title:     item.Title,
			Category:  item.Category,
			Password:  p.displayPassword(item, session.Keys()),
			Saved:     item.IsSaved(),
			Status:    item.Status,
			CreatedAt: item.CreatedAt,
		})
	}
	return views, nil
}

func (p *pendingService) displayPassword(item models.PendingCredential, keys models.SessionKeys) string {
	plaintext, err := decodeSecret(p.cipher, item.Secret, keys)
	if err != nil {
		return MaskedPassword
	}

	if obj, ok := parseStructured(plaintext); ok {
		if password := stringValue(obj["password"]); password != "" {
			return password
		}
	}
	return plaintext
}

func (p *pendingService) liveSession(ctx context.Context, sessionID string) (models.Session, error) {
	session, err := p.sessionRepository.GetSession(ctx, sessionID)
	if err != nil {
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}
	if session.StateAt(p.now()) == models.SessionExpired {
		return models.Session{}, ErrSessionExpired
	}
	return session, nil
}

// ownedSession loads a live session and checks that callerID (and username,
// when given) owns it.
func (p *pendingService) ownedSession(ctx context.Context, sessionID, username string, callerID int64) (models.Session, error) {
	session, err := p.liveSession(ctx, sessionID)
	if err != nil {
		return models.Session{}, err
	}
	if !session.IsAuthenticated() {
		return models.Session{}, ErrSessionNotAuthenticated
	}
	if session.UserID != callerID || (username != "" && username != session.Username) {
		return models.Session{}, ErrSessionAccessDenied
	}
	return session, nil
}
