package pricefeed

import "errors"

var (
	// ErrSourceUnavailable is returned when the price API cannot be reached or
	// answers with a non-success status.
	ErrSourceUnavailable = errors.New("price source unavailable")

	// ErrIncompletePriceSet is returned when a requested token is missing from
	// the response or priced at zero or below.
	ErrIncompletePriceSet = errors.New("incomplete price set")

	// ErrFeedResolution is returned when a symbol has no usable feed contract.
	ErrFeedResolution = errors.New("feed resolution failed")

	// ErrSubmission is returned when a price update is rejected, reverted or
	// never confirmed.
	ErrSubmission = errors.New("price submission failed")
)
