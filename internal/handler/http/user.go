package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-bridge/internal/utils"
	"github.com/MKhiriev/go-pass-bridge/models"
)

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.registerUser", err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), req.Username)
	if err != nil {
		writeError(w, r, "*Handler.registerUser", err)
		return
	}

	utils.WriteJSON(w, models.RegisterUserResponse{UserID: user.UserID, Username: user.Username}, http.StatusCreated)
}
