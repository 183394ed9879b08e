package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-bridge/internal/adapter"
	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
	"github.com/MKhiriev/go-pass-bridge/models"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	PendingService PendingService
	AccessService  AccessService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. voiceVerifier may be nil,
// in which case voice verification answers ErrVoiceNotConfigured.
func NewServices(storages *store.Storages, voiceVerifier adapter.VoiceVerifier, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	policy, err := models.ParseUndecryptablePolicy(cfg.Session.UndecryptablePolicy)
	if err != nil {
		return nil, err
	}

	scheme := models.Scheme(cfg.Session.DefaultScheme)
	if !scheme.IsValid() {
		return nil, fmt.Errorf("%w: %q", crypto.ErrUnknownScheme, cfg.Session.DefaultScheme)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	cipher := crypto.NewSymmetricCipher()
	authService := NewAuthService(storages.UserRepository, cfg.App, logger)
	engine := NewReconciliationEngine(storages.PendingCredentialRepository, storages.VaultRepository, cipher, policy, logger)

	sessionService := NewSessionValidationService().Wrap(
		NewSessionService(storages, authService, engine, cfg.Session.Expiry, logger),
	)
	pendingService := NewPendingValidationService().Wrap(
		NewPendingService(storages, cipher, scheme, logger),
	)

	return &Services{
		AuthService:    authService,
		SessionService: sessionService,
		PendingService: pendingService,
		AccessService:  NewAccessService(storages, cipher, voiceVerifier, logger),
		AppInfoService: appInfoService,
	}, nil
}
