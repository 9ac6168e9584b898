package logger

import "log/slog"

// Error records err under "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// OfferID records the offer identifier under "offer_id".
func OfferID(id string) slog.Attr {
	return slog.String("offer_id", id)
}

// Variation records the resolved color variation id.
func Variation(id string) slog.Attr {
	return slog.String("variation", id)
}

// Layout records the layout template id.
func Layout(id string) slog.Attr {
	return slog.String("layout", id)
}

// ExportFormat records an export format.
func ExportFormat(format string) slog.Attr {
	return slog.String("format", format)
}

// File records a produced file name.
func File(name string) slog.Attr {
	return slog.String("file", name)
}

// Count records a number of items.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Missing records the names of missing fields.
func Missing(fields []string) slog.Attr {
	return slog.Any("missing", fields)
}

// Component records the component name.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
