// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-issuer/internal/utils"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/go-chi/chi/v5"
)

// itemAuth authorizes a device request against the item named by the
// {type} and {id} path parameters.
//
// The item is looked up before the Authorization header is inspected: a
// request for an unknown item is answered with 404 whatever token it
// carries, and a known item with a missing, malformed or wrong token with
// 401. On success the item is stored in the request context under
// [utils.ItemCtxKey].
func (h *Handler) itemAuth(kind models.Kind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			item, err := h.services.ItemService.Authorize(ctx,
				kind,
				chi.URLParam(r, "type"),
				chi.URLParam(r, "id"),
				r.Header.Get("Authorization"),
			)
			if err != nil {
				writeError(w, r, err, "Handler.itemAuth")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithItem(ctx, item)))
		})
	}
}

// adminOnly rejects requests whose admin secret header does not match the
// configured secret. An empty configured secret disables the admin API.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := r.Header.Get(h.adminSecretHeader)
		if h.adminSecret == "" || secret == "" || !utils.SecureCompare(secret, h.adminSecret) {
			writeError(w, r, ErrAdminSecretMismatch, "Handler.adminOnly")
			return
		}

		next.ServeHTTP(w, r)
	})
}
