package entity

import "errors"

var (
	// ErrNotFound indicates an error when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrValidation indicates an error when client input fails validation
	ErrValidation = errors.New("invalid input")

	// ErrDuplicateKey indicates an error when a key uniqueness is violated
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrRetryExecution indicates a transient store error worth retrying
	ErrRetryExecution = errors.New("retry execution")

	// ErrPaymentProvider indicates an error when the payment processor is
	// unreachable or rejected the call
	ErrPaymentProvider = errors.New("payment provider unavailable")

	// ErrInvalidSignature indicates a webhook payload that failed
	// authenticity verification
	ErrInvalidSignature = errors.New("invalid webhook signature")
)
