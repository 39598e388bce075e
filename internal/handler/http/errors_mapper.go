package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wallet-issuer/internal/bundle"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/service"
	"github.com/MKhiriev/go-wallet-issuer/internal/store"
	"github.com/MKhiriev/go-wallet-issuer/internal/utils"
	"github.com/MKhiriev/go-wallet-issuer/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:         http.StatusBadRequest,
	ErrInvalidCursor:       http.StatusBadRequest,
	ErrUnknownKind:         http.StatusNotFound,
	ErrAdminSecretMismatch: http.StatusUnauthorized,

	utils.ErrInvalidAuthorization: http.StatusUnauthorized,

	service.ErrKindNotSupported:           http.StatusNotFound,
	service.ErrTemplateNotFound:           http.StatusBadRequest,
	service.ErrInvalidNumberOfItems:       http.StatusBadRequest,
	service.ErrMixedBatch:                 http.StatusBadRequest,
	service.ErrUnauthorized:               http.StatusUnauthorized,
	service.ErrPersonalizationUnsupported: http.StatusBadRequest,
	service.ErrPushFailed:                 http.StatusBadGateway,
	service.ErrDispatcherStopped:          http.StatusServiceUnavailable,
	service.ErrTransportNotExists:         http.StatusServiceUnavailable,
	service.ErrSignerNotConfigured:        http.StatusInternalServerError,

	validators.ErrInvalidTypeIdentifier:   http.StatusBadRequest,
	validators.ErrInvalidAuthToken:        http.StatusBadRequest,
	validators.ErrInvalidTemplate:         http.StatusBadRequest,
	validators.ErrInvalidProperties:       http.StatusBadRequest,
	validators.ErrInvalidPersonalization:  http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate:        http.StatusBadRequest,
	validators.ErrEmptyPushToken:          http.StatusBadRequest,
	validators.ErrEmptyLogs:               http.StatusBadRequest,
	validators.ErrEmptySerialNumbers:      http.StatusBadRequest,
	validators.ErrTooManySerialNumbers:    http.StatusBadRequest,
	validators.ErrDuplicateSerialNumber:   http.StatusBadRequest,
	validators.ErrEmptyPersonalizationTok: http.StatusBadRequest,
	validators.ErrEmptyPersonalInfo:       http.StatusBadRequest,

	bundle.ErrInvalidProperties: http.StatusUnprocessableEntity,
	bundle.ErrSigningTimedOut:   http.StatusServiceUnavailable,

	store.ErrItemAlreadyExists:    http.StatusConflict,
	store.ErrItemNotFound:         http.StatusNotFound,
	store.ErrContentNotFound:      http.StatusNotFound,
	store.ErrRegistrationNotFound: http.StatusNotFound,
	store.ErrAlreadyPersonalized:  http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the status it maps to. The body is
// the status text only.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Send()

	http.Error(w, http.StatusText(status), status)
}
