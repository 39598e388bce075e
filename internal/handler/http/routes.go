package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// wallet web-service protocol, one tree per kind
	for _, kind := range models.Kinds() {
		router.Route("/api/"+kind.MustSpec().PathSegment+"/v1", func(r chi.Router) {
			h.walletRoutes(r, kind)
		})
	}

	// routes behind the admin secret
	router.Route("/api/admin", func(r chi.Router) {
		r.Use(h.adminOnly)
		r.Use(withGZip)

		r.Post("/{kind}/items", h.createItem)
		r.Put("/{kind}/items/{type}/{id}", h.updateItem)
		r.Delete("/{kind}/items/{type}/{id}", h.deleteItem)
		r.Post("/{kind}/bundles", h.batchBundle)
		r.Delete("/devices/orphans", h.sweepOrphanDevices)
	})

	router.Get("/api/version/", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) walletRoutes(r chi.Router, kind models.Kind) {
	spec := kind.MustSpec()
	auth := h.itemAuth(kind)

	r.With(withGZip).Get("/devices/{device}/registrations/{type}", h.changedSince(kind))
	r.With(auth).Post("/devices/{device}/registrations/{type}/{id}", h.registerDevice)
	r.With(auth).Delete("/devices/{device}/registrations/{type}/{id}", h.unregisterDevice)

	r.With(auth).Get("/"+spec.PathSegment+"/{type}/{id}", h.latestBundle(kind))
	if spec.SupportsPersonalization {
		r.Post("/"+spec.PathSegment+"/{type}/{id}/personalize", h.personalize(kind))
	}

	r.Post("/log", h.saveLogs(kind))

	r.With(h.adminOnly).Get("/push/{type}/{id}", h.pushTokens(kind))
	r.With(h.adminOnly).Post("/push/{type}/{id}", h.sendPush(kind))
}
