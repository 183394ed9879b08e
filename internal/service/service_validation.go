package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-bridge/internal/validators"
	"github.com/MKhiriev/go-pass-bridge/models"
)

// SessionValidationService validates requests before they reach the wrapped
// SessionService. Validation failures wrap ErrInvalidDataProvided.
type SessionValidationService struct {
	inner     SessionService
	validator validators.Validator
}

func NewSessionValidationService() SessionServiceWrapper {
	return &SessionValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *SessionValidationService) Wrap(wrapped SessionService) SessionService {
	v.inner = wrapped
	return v
}

func (v *SessionValidationService) Create(ctx context.Context, req models.CreateSessionRequest) (models.Session, bool, error) {
	if err := v.check(ctx, req); err != nil {
		return models.Session{}, false, err
	}
	return v.inner.Create(ctx, req)
}

func (v *SessionValidationService) Authenticate(ctx context.Context, req models.AuthenticateRequest) (models.AuthResult, error) {
	if err := v.check(ctx, req); err != nil {
		return models.AuthResult{}, err
	}
	return v.inner.Authenticate(ctx, req)
}

func (v *SessionValidationService) Check(ctx context.Context, sessionID string) (models.CheckSessionResponse, error) {
	if err := v.check(ctx, models.SessionIDRequest{SessionID: sessionID}); err != nil {
		return models.CheckSessionResponse{}, err
	}
	return v.inner.Check(ctx, sessionID)
}

func (v *SessionValidationService) Delete(ctx context.Context, sessionID string, callerID int64) error {
	if err := v.check(ctx, models.SessionIDRequest{SessionID: sessionID}); err != nil {
		return err
	}
	return v.inner.Delete(ctx, sessionID, callerID)
}

func (v *SessionValidationService) Logout(ctx context.Context, sessionID string, callerID int64) error {
	if err := v.check(ctx, models.SessionIDRequest{SessionID: sessionID}); err != nil {
		return err
	}
	return v.inner.Logout(ctx, sessionID, callerID)
}

func (v *SessionValidationService) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	return v.inner.SweepExpired(ctx, now)
}

func (v *SessionValidationService) List(ctx context.Context, username string, callerID int64) ([]models.SessionSummary, error) {
	if err := v.check(ctx, models.RegisterUserRequest{Username: username}); err != nil {
		return nil, err
	}
	return v.inner.List(ctx, username, callerID)
}

func (v *SessionValidationService) Verify(ctx context.Context, username string, callerID int64) error {
	if err := v.check(ctx, models.RegisterUserRequest{Username: username}); err != nil {
		return err
	}
	return v.inner.Verify(ctx, username, callerID)
}

func (v *SessionValidationService) Process(ctx context.Context, req models.ProcessRequest, callerID int64) (models.ProcessResponse, error) {
	if err := v.check(ctx, req); err != nil {
		return models.ProcessResponse{}, err
	}
	return v.inner.Process(ctx, req, callerID)
}

func (v *SessionValidationService) check(ctx context.Context, req any) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// PendingValidationService validates requests before they reach the wrapped
// PendingService.
type PendingValidationService struct {
	inner     PendingService
	validator validators.Validator
}

func NewPendingValidationService() PendingServiceWrapper {
	return &PendingValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *PendingValidationService) Wrap(wrapped PendingService) PendingService {
	v.inner = wrapped
	return v
}

func (v *PendingValidationService) Enqueue(ctx context.Context, req models.EnqueueRequest) (string, error) {
	if err := v.check(ctx, req); err != nil {
		return "", err
	}
	return v.inner.Enqueue(ctx, req)
}

func (v *PendingValidationService) MarkSaved(ctx context.Context, req models.MarkSavedRequest, callerID int64) (int64, error) {
	if err := v.check(ctx, req); err != nil {
		return 0, err
	}
	return v.inner.MarkSaved(ctx, req, callerID)
}

func (v *PendingValidationService) HasPending(ctx context.Context, sessionID string) (bool, error) {
	if err := v.check(ctx, models.SessionIDRequest{SessionID: sessionID}); err != nil {
		return false, err
	}
	return v.inner.HasPending(ctx, sessionID)
}

func (v *PendingValidationService) List(ctx context.Context, sessionID, username string, callerID int64) ([]models.PendingPasswordView, error) {
	if err := v.check(ctx, models.SessionIDRequest{SessionID: sessionID}); err != nil {
		return nil, err
	}
	return v.inner.List(ctx, sessionID, username, callerID)
}

func (v *PendingValidationService) check(ctx context.Context, req any) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
