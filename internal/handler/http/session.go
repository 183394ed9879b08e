package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-bridge/internal/app"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/service"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
	"github.com/MKhiriev/go-pass-bridge/internal/utils"
	"github.com/MKhiriev/go-pass-bridge/models"
)

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.createSession", err)
		return
	}

	session, created, err := h.services.SessionService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.createSession", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, models.CreateSessionResponse{
		SessionID:     session.SessionID,
		ExpirySeconds: int64(session.ExpiresAt.Sub(session.CreatedAt).Seconds()),
	}, status)
}

// authenticateSession hides the failure reason from the caller: a missing
// user or session is "not found", anything else is an internal error.
func (h *Handler) authenticateSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AuthenticateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.authenticateSession", err)
		return
	}

	result, err := h.services.SessionService.Authenticate(r.Context(), req)
	if err != nil {
		status := statusFromError(err)
		if status != http.StatusNotFound && status != http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		log.Err(err).Str("func", "*Handler.authenticateSession").Int("status", status).Msg("session authentication failed")
		http.Error(w, authFailureText(status), status)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func authFailureText(status int) string {
	switch status {
	case http.StatusNotFound:
		return app.MsgNotFound
	case http.StatusBadRequest:
		return app.MsgInvalidDataProvided
	default:
		return app.MsgInternalServerError
	}
}

func (h *Handler) checkSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionIDRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.checkSession", err)
		return
	}

	resp, err := h.services.SessionService.Check(r.Context(), req.SessionID)
	if err != nil {
		writeError(w, r, "*Handler.checkSession", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) processPasswords(w http.ResponseWriter, r *http.Request) {
	callerID, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.processPasswords", err)
		return
	}

	var req models.ProcessRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.processPasswords", err)
		return
	}

	resp, err := h.services.SessionService.Process(r.Context(), req, callerID)
	if err != nil {
		writeError(w, r, "*Handler.processPasswords", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	h.removeSession(w, r, "*Handler.deleteSession", h.services.SessionService.Delete)
}

func (h *Handler) logoutSession(w http.ResponseWriter, r *http.Request) {
	h.removeSession(w, r, "*Handler.logoutSession", h.services.SessionService.Logout)
}

func (h *Handler) removeSession(
	w http.ResponseWriter,
	r *http.Request,
	fn string,
	remove func(ctx context.Context, sessionID string, callerID int64) error,
) {
	callerID, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	var req models.SessionIDRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, fn, err)
		return
	}

	if err = remove(r.Context(), req.SessionID, callerID); err != nil {
		writeError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	callerID, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.listSessions", err)
		return
	}

	username, err := requiredQuery(r, "username")
	if err != nil {
		writeError(w, r, "*Handler.listSessions", err)
		return
	}

	sessions, err := h.services.SessionService.List(r.Context(), username, callerID)
	if err != nil {
		writeError(w, r, "*Handler.listSessions", err)
		return
	}

	utils.WriteJSON(w, models.ListSessionsResponse{Sessions: sessions}, http.StatusOK)
}

// verifySession answers {valid:false} instead of an error when the user has
// no live session.
func (h *Handler) verifySession(w http.ResponseWriter, r *http.Request) {
	callerID, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.verifySession", err)
		return
	}

	username, err := requiredQuery(r, "username")
	if err != nil {
		writeError(w, r, "*Handler.verifySession", err)
		return
	}

	err = h.services.SessionService.Verify(r.Context(), username, callerID)
	switch {
	case err == nil:
		utils.WriteJSON(w, models.VerifySessionResponse{Valid: true}, http.StatusOK)
	case isNotLive(err):
		utils.WriteJSON(w, models.VerifySessionResponse{Valid: false}, http.StatusOK)
	default:
		writeError(w, r, "*Handler.verifySession", err)
	}
}

func isNotLive(err error) bool {
	return errors.Is(err, service.ErrUnauthorized) || errors.Is(err, store.ErrNoUserWasFound)
}
