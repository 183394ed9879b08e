package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-bridge/internal/utils"
	"github.com/MKhiriev/go-pass-bridge/models"
)

func (h *Handler) enqueuePendingPassword(w http.ResponseWriter, r *http.Request) {
	var req models.EnqueueRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.enqueuePendingPassword", err)
		return
	}

	id, err := h.services.PendingService.Enqueue(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.enqueuePendingPassword", err)
		return
	}

	utils.WriteJSON(w, models.EnqueueResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) hasPendingPasswords(w http.ResponseWriter, r *http.Request) {
	sessionID, err := requiredQuery(r, "sessionId")
	if err != nil {
		writeError(w, r, "*Handler.hasPendingPasswords", err)
		return
	}

	has, err := h.services.PendingService.HasPending(r.Context(), sessionID)
	if err != nil {
		writeError(w, r, "*Handler.hasPendingPasswords", err)
		return
	}

	utils.WriteJSON(w, models.HasPendingResponse{HasPendingPasswords: has}, http.StatusOK)
}

func (h *Handler) pendingPasswords(w http.ResponseWriter, r *http.Request) {
	callerID, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.pendingPasswords", err)
		return
	}

	sessionID, err := requiredQuery(r, "sessionId")
	if err != nil {
		writeError(w, r, "*Handler.pendingPasswords", err)
		return
	}

	views, err := h.services.PendingService.List(r.Context(), sessionID, r.URL.Query().Get("username"), callerID)
	if err != nil {
		writeError(w, r, "*Handler.pendingPasswords", err)
		return
	}

	utils.WriteJSON(w, models.PendingPasswordsResponse{PendingPasswords: views}, http.StatusOK)
}

func (h *Handler) markSaved(w http.ResponseWriter, r *http.Request) {
	callerID, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.markSaved", err)
		return
	}

	var req models.MarkSavedRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.markSaved", err)
		return
	}

	updated, err := h.services.PendingService.MarkSaved(r.Context(), req, callerID)
	if err != nil {
		writeError(w, r, "*Handler.markSaved", err)
		return
	}

	utils.WriteJSON(w, models.MarkSavedResponse{Updated: updated}, http.StatusOK)
}
