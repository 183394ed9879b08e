package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-bridge/internal/adapter"
	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/service"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:         http.StatusBadRequest,
	ErrBodyTooLarge:        http.StatusRequestEntityTooLarge,
	ErrMissingQueryParam:   http.StatusBadRequest,
	ErrNoCaller:            http.StatusUnauthorized,
	adapter.ErrEmptySample: http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrSessionExpired:          http.StatusUnauthorized,
	service.ErrSessionNotAuthenticated: http.StatusUnauthorized,
	service.ErrSessionAccessDenied:     http.StatusForbidden,
	service.ErrReconciliationFailed:    http.StatusInternalServerError,
	service.ErrInvalidPIN:              http.StatusUnauthorized,
	service.ErrVoiceNotMatched:         http.StatusUnauthorized,
	service.ErrVoiceNotConfigured:      http.StatusNotImplemented,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUnauthorized:            http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,

	crypto.ErrMalformedCiphertext: http.StatusBadRequest,
	crypto.ErrUnknownScheme:       http.StatusBadRequest,
	crypto.ErrCryptoDecrypt:       http.StatusUnprocessableEntity,

	adapter.ErrUpstreamTimeout:     http.StatusGatewayTimeout,
	adapter.ErrUpstreamUnavailable: http.StatusBadGateway,
	adapter.ErrUpstreamRejected:    http.StatusBadGateway,

	store.ErrSessionNotFound:       http.StatusNotFound,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrSessionAlreadyExists:  http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingColumn:       http.StatusInternalServerError,
}

// statusFromError picks the status of err. When err wraps several mapped
// errors, server-side failures win over client errors.
func statusFromError(err error) int {
	status := 0
	for target, s := range errorStatusMap {
		if errors.Is(err, target) && s > status {
			status = s
		}
	}
	if status == 0 {
		return http.StatusInternalServerError
	}
	return status
}

// writeError logs err and answers with its mapped status. Server errors are
// reported with the bare status text.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
