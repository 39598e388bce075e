package client

import "errors"

var (
	ErrUnknownKind  = errors.New("unknown kind")
	ErrEmptyBody    = errors.New("request body is empty")
	ErrNoSerials    = errors.New("at least one serial number is required")
	ErrOutputNeeded = errors.New("an output path is required, use --output - for stdout")
)
