package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/utils"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/go-chi/chi/v5"
)

const genericSinceParam = "since"

func (h *Handler) registerDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	item, _ := utils.GetItemFromContext(ctx)

	var req models.RegistrationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "Handler.registerDevice")
		return
	}

	status, err := h.services.RegistrationService.Register(ctx, item, chi.URLParam(r, "device"), req)
	if err != nil {
		writeError(w, r, err, "Handler.registerDevice")
		return
	}

	if status == models.RegistrationCreated {
		w.WriteHeader(http.StatusCreated)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) unregisterDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	item, _ := utils.GetItemFromContext(ctx)

	if err := h.services.RegistrationService.Unregister(ctx, item, chi.URLParam(r, "device")); err != nil {
		writeError(w, r, err, "Handler.unregisterDevice")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// changedSince lists the serials of items registered by the device that
// changed after the cursor. No authorization: the device proves nothing
// here and learns only serials it already holds.
func (h *Handler) changedSince(kind models.Kind) http.HandlerFunc {
	spec := kind.MustSpec()

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		since, err := parseCursor(cursorParam(r, spec.ChangedSinceParam))
		if err != nil {
			writeError(w, r, err, "Handler.changedSince")
			return
		}

		changed, err := h.services.RegistrationService.ChangedSince(ctx,
			kind,
			chi.URLParam(r, "type"),
			chi.URLParam(r, "device"),
			since,
		)
		if err != nil {
			writeError(w, r, err, "Handler.changedSince")
			return
		}

		if len(changed.Serials) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if _, err = utils.WriteJSON(w, changedResponse(kind, changed), http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "Handler.changedSince").Send()
		}
	}
}

func changedResponse(kind models.Kind, changed models.ChangedItems) any {
	cursor := formatCursor(changed.LastUpdated)
	if kind == models.KindOrder {
		return models.OrderIdentifiersResponse{OrderIdentifiers: changed.Serials, LastModified: cursor}
	}
	return models.SerialNumbersResponse{SerialNumbers: changed.Serials, LastUpdated: cursor}
}

// cursorParam reads the kind's own cursor parameter, falling back to the
// generic "since".
func cursorParam(r *http.Request, name string) string {
	query := r.URL.Query()
	if v := query.Get(name); v != "" {
		return v
	}
	return query.Get(genericSinceParam)
}
