package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTypeIdentifier   = errors.New("type identifier is required")
	ErrInvalidAuthToken        = errors.New("authentication token must be at least 16 characters")
	ErrInvalidTemplate         = errors.New("template must be a single path element")
	ErrInvalidProperties       = errors.New("properties must be a JSON object")
	ErrInvalidPersonalization  = errors.New("personalization must be a JSON object")
	ErrNoFieldsToUpdate        = errors.New("at least one field must be provided for update")
	ErrEmptyPushToken          = errors.New("push token is required")
	ErrEmptyLogs               = errors.New("logs list cannot be empty")
	ErrEmptySerialNumbers      = errors.New("serial numbers list cannot be empty")
	ErrTooManySerialNumbers    = errors.New("too many serial numbers")
	ErrDuplicateSerialNumber   = errors.New("serial numbers must be unique")
	ErrEmptyPersonalizationTok = errors.New("personalization token is required")
	ErrEmptyPersonalInfo       = errors.New("personalization info is required")
)
