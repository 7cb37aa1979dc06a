package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.status)
		r.Get("/api/version/", h.getServerVersion)

		r.Post("/auth/signup/init", h.signupInit)
		r.Post("/auth/signup/verify", h.signupVerify)
		r.Post("/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/auth/me", h.me)

		r.Post("/jd/submit", h.submitJD)
		r.Put("/jd/update/{jd_id}", h.updateJD)
		r.Delete("/jd/delete/{jd_id}", h.deleteJD)
		r.Get("/jd/history", h.jdHistory)

		r.Post("/ai/store", h.storeResults)
		r.Get("/ai/results/{jd_id}", h.results)
		r.Get("/ai/candidate-count/{jd_id}", h.candidateCount)

		r.Post("/upload/", h.uploadFiles)
		r.Delete("/upload/*", h.deleteFile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
