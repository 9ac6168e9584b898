package export

import (
	"strings"
	"time"

	"github.com/dmitrymomot/offerkit/pkg/offer"
	"github.com/dmitrymomot/offerkit/pkg/sanitizer"
	"github.com/dmitrymomot/offerkit/pkg/slug"
)

// CollectionBaseName names multi-offer exports.
const CollectionBaseName = "automotive-offers-collection"

// Filename names a single offer export: the custom name when set, else
// {make}-{model}, with an optional date suffix and the extension.
func Filename(o offer.Offer, ext string, opts Options, now time.Time) string {
	base := orDefault(o.Make, "vehicle") + "-" + orDefault(o.Model, "offer")
	return filename(slug.Make(base), ext, opts, now)
}

// CollectionFilename names a multi-offer export.
func CollectionFilename(ext string, opts Options, now time.Time) string {
	return filename(CollectionBaseName, ext, opts, now)
}

func filename(base, ext string, opts Options, now time.Time) string {
	if custom := strings.TrimSpace(opts.CustomFilename); custom != "" {
		base = sanitizer.SecureFilename(strings.TrimSuffix(custom, "."+ext))
	}
	if base == "" {
		base = "offer"
	}
	if opts.IncludeTimestamp {
		base += "-" + now.UTC().Format("2006-01-02")
	}
	return base + "." + ext
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
