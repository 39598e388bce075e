// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/utils"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/go-chi/chi/v5"
)

// kindFromRequest resolves the {kind} path parameter. Both the kind name
// ("pass") and its URL segment ("passes") are accepted.
func kindFromRequest(r *http.Request) (models.Kind, error) {
	param := chi.URLParam(r, "kind")
	for _, kind := range models.Kinds() {
		if param == kind.String() || param == kind.MustSpec().PathSegment {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, param)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	kind, err := kindFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.createItem")
		return
	}

	var req models.CreateItemRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "Handler.createItem")
		return
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), kind, req)
	if err != nil {
		writeError(w, r, err, "Handler.createItem")
		return
	}

	if _, err = utils.WriteJSON(w, item, http.StatusCreated); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.createItem").Send()
	}
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	kind, err := kindFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.updateItem")
		return
	}

	var req models.UpdateItemRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "Handler.updateItem")
		return
	}

	item, err := h.services.ItemService.UpdateItem(r.Context(), kind, chi.URLParam(r, "type"), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, "Handler.updateItem")
		return
	}

	if _, err = utils.WriteJSON(w, item, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.updateItem").Send()
	}
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	kind, err := kindFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.deleteItem")
		return
	}

	if err = h.services.ItemService.DeleteItem(r.Context(), kind, chi.URLParam(r, "type"), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "Handler.deleteItem")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// batchBundle packs the bundles of several items of one type identifier
// into a single archive, in request order.
func (h *Handler) batchBundle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, err := kindFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.batchBundle")
		return
	}

	var req models.BatchBundleRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "Handler.batchBundle")
		return
	}

	found, err := h.services.ItemService.GetItems(ctx, kind, req.TypeIdentifier, req.SerialNumbers)
	if err != nil {
		writeError(w, r, err, "Handler.batchBundle")
		return
	}

	items := make([]models.Item, 0, len(found))
	for _, item := range found {
		items = append(items, item)
	}

	data, err := h.services.BundleService.GenerateBatch(ctx, items)
	if err != nil {
		writeError(w, r, err, "Handler.batchBundle")
		return
	}

	spec := kind.MustSpec()
	w.Header().Set("Content-Type", spec.BatchMIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "bundle"+spec.BatchExtension))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.batchBundle").Send()
	}
}

func (h *Handler) sweepOrphanDevices(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.RegistrationService.SweepOrphanDevices(r.Context())
	if err != nil {
		writeError(w, r, err, "Handler.sweepOrphanDevices")
		return
	}

	logger.FromRequest(r).Info().Int64("deleted", deleted).Msg("orphan devices removed")

	if _, err = utils.WriteJSON(w, models.OrphanSweepResponse{Deleted: deleted}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.sweepOrphanDevices").Send()
	}
}
