package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-pass-bridge/internal/adapter"
	"github.com/MKhiriev/go-pass-bridge/internal/utils"
	"github.com/MKhiriev/go-pass-bridge/models"
)

// maxVoiceSampleBytes bounds uploaded voice samples.
const maxVoiceSampleBytes = 10 << 20

func (h *Handler) setAccessMethod(w http.ResponseWriter, r *http.Request) {
	var req models.AccessMethodRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.setAccessMethod", err)
		return
	}

	if err := h.services.AccessService.SetAccessMethod(r.Context(), req); err != nil {
		writeError(w, r, "*Handler.setAccessMethod", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) verifyAccess(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyAccessRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.verifyAccess", err)
		return
	}

	resp, err := h.services.AccessService.VerifyAccess(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.verifyAccess", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) verifyVoice(w http.ResponseWriter, r *http.Request) {
	sessionID, err := requiredQuery(r, "sessionId")
	if err != nil {
		writeError(w, r, "*Handler.verifyVoice", err)
		return
	}

	if r.Body == nil {
		writeError(w, r, "*Handler.verifyVoice", adapter.ErrEmptySample)
		return
	}
	sample, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxVoiceSampleBytes))
	if err != nil {
		writeError(w, r, "*Handler.verifyVoice", fmt.Errorf("%w: %w", ErrBodyTooLarge, err))
		return
	}
	if len(sample) == 0 {
		writeError(w, r, "*Handler.verifyVoice", adapter.ErrEmptySample)
		return
	}

	verdict, err := h.services.AccessService.VerifyVoice(r.Context(), sessionID, sample)
	if err != nil {
		writeError(w, r, "*Handler.verifyVoice", err)
		return
	}

	utils.WriteJSON(w, verdict, http.StatusOK)
}
