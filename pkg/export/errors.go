package export

import "errors"

var (
	ErrNoValidOffers        = errors.New("export: no offers are complete enough to export")
	ErrInvalidOptions       = errors.New("export: invalid options")
	ErrDeliveryFailed       = errors.New("export: delivery failed")
	ErrWriteFile            = errors.New("export: failed to write file")
	ErrClipboardUnavailable = errors.New("export: clipboard is not available")
	ErrNothingToDeliver     = errors.New("export: no files to deliver")
)
