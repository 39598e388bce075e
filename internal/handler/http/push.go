package http

import (
	"net/http"

	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/utils"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) pushTokens(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		item, err := h.services.ItemService.GetItem(ctx, kind, chi.URLParam(r, "type"), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err, "Handler.pushTokens")
			return
		}

		tokens, err := h.services.RegistrationService.PushTokens(ctx, item)
		if err != nil {
			writeError(w, r, err, "Handler.pushTokens")
			return
		}

		if _, err = utils.WriteJSON(w, models.PushTokensResponse{PushTokens: tokens}, http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "Handler.pushTokens").Send()
		}
	}
}

// sendPush notifies every device of the item synchronously. Pruned and
// failed deliveries are logged; only a transport failure fails the request.
func (h *Handler) sendPush(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		item, err := h.services.ItemService.GetItem(ctx, kind, chi.URLParam(r, "type"), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err, "Handler.sendPush")
			return
		}

		report, err := h.services.NotificationService.Notify(ctx, item)
		if err != nil {
			writeError(w, r, err, "Handler.sendPush")
			return
		}

		logger.FromRequest(r).WithItem(item).Info().
			Int("attempted", report.Attempted).
			Int("delivered", report.Delivered).
			Int("pruned", report.Pruned).
			Int("failed", report.Failed).
			Msg("push sent")

		w.WriteHeader(http.StatusNoContent)
	}
}
