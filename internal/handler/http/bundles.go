package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/utils"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/go-chi/chi/v5"
)

// latestBundle serves the freshly signed bundle of an authorized item.
func (h *Handler) latestBundle(kind models.Kind) http.HandlerFunc {
	spec := kind.MustSpec()

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		item, _ := utils.GetItemFromContext(ctx)
		modified := item.ItemUpdatedAt().UTC()

		if notModified(r, modified) {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		data, err := h.services.BundleService.Generate(ctx, item)
		if err != nil {
			writeError(w, r, err, "Handler.latestBundle")
			return
		}

		w.Header().Set("Content-Type", spec.MIMEType)
		w.Header().Set("Last-Modified", modified.Format(http.TimeFormat))
		w.WriteHeader(http.StatusOK)
		if _, err = w.Write(data); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "Handler.latestBundle").Msg("failed to write bundle")
		}
	}
}

// notModified compares against the full stored precision: an item changed
// within the second named by If-Modified-Since is served again.
func notModified(r *http.Request, modified time.Time) bool {
	header := r.Header.Get("If-Modified-Since")
	if header == "" {
		return false
	}
	since, err := http.ParseTime(header)
	if err != nil {
		return false
	}
	return !modified.After(since)
}

func (h *Handler) personalize(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PersonalizationRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err, "Handler.personalize")
			return
		}

		signature, err := h.services.PersonalizationService.Personalize(r.Context(),
			kind,
			chi.URLParam(r, "type"),
			chi.URLParam(r, "id"),
			req,
		)
		if err != nil {
			writeError(w, r, err, "Handler.personalize")
			return
		}

		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(http.StatusOK)
		if _, err = w.Write(signature); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "Handler.personalize").Send()
		}
	}
}

func (h *Handler) saveLogs(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LogsRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err, "Handler.saveLogs")
			return
		}

		if err := h.services.ErrorLogService.SaveLogs(r.Context(), kind, req); err != nil {
			writeError(w, r, err, "Handler.saveLogs")
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
