package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization: the extension side and device-local checks
	router.Group(func(r chi.Router) {
		r.Post("/api/sessions", h.createSession)
		r.Post("/api/sessions/authenticate", h.authenticateSession)
		r.Post("/api/sessions/check", h.checkSession)
		r.Post("/api/sessions/pending-password", h.enqueuePendingPassword)
		r.Get("/api/sessions/has-pending-passwords", h.hasPendingPasswords)

		r.Post("/api/sessions/access-method", h.setAccessMethod)
		r.Post("/api/sessions/verify-access", h.verifyAccess)
		r.Post("/api/sessions/verify-voice", h.verifyVoice)

		r.Post("/api/users/register", h.registerUser)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes of the vault owner
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/sessions/pending-passwords", h.pendingPasswords)
		r.Post("/api/sessions/mark-saved", h.markSaved)
		r.Post("/api/sessions/process-passwords", h.processPasswords)
		r.Post("/api/sessions/delete", h.deleteSession)
		r.Post("/api/sessions/logout", h.logoutSession)
		r.Get("/api/sessions/list", h.listSessions)
		r.Get("/api/sessions/verify", h.verifySession)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
