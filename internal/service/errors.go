package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrKindNotSupported     = errors.New("item kind is not served")
	ErrSignerNotConfigured  = errors.New("no signer configured for item kind")
	ErrInvalidNumberOfItems = errors.New("invalid number of items")
	ErrMixedBatch           = errors.New("batch items must share kind and type identifier")
	ErrTemplateNotFound     = errors.New("template not found")

	ErrUnauthorized = errors.New("invalid authentication token")

	ErrPersonalizationUnsupported = errors.New("item does not support personalization")

	ErrPushFailed         = errors.New("push delivery failed")
	ErrDispatcherStopped  = errors.New("notification dispatcher is stopped")
	ErrTransportNotExists = errors.New("no push transport for item kind")
)
