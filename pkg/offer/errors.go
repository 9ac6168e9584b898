package offer

import "errors"

var (
	// ErrDecode is returned when an offers document cannot be parsed.
	ErrDecode = errors.New("offer: failed to decode offers")

	// ErrNoOffers is returned when a document holds no offers.
	ErrNoOffers = errors.New("offer: document contains no offers")

	// ErrEncode is returned when offers cannot be serialized.
	ErrEncode = errors.New("offer: failed to encode offers")
)
