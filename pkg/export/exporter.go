package export

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/offerkit/pkg/logger"
	"github.com/dmitrymomot/offerkit/pkg/offer"
	"github.com/dmitrymomot/offerkit/pkg/render"
)

// Skipped describes an offer left out of a collection export.
type Skipped struct {
	Index         int
	OfferID       string
	MissingFields []string
}

// Result reports what an export produced.
type Result struct {
	Files     []File
	Variation string
	Exported  int
	Skipped   []Skipped
}

// Exporter renders offers into files and delivers them to its sinks.
type Exporter struct {
	sinks  []Sink
	logger *slog.Logger
	now    func() time.Time
	locale language.Tag
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithSink adds a destination. Sinks receive files in the order added.
func WithSink(s Sink) Option {
	return func(e *Exporter) {
		if s != nil {
			e.sinks = append(e.sinks, s)
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocale sets the locale of the collection date.
func WithLocale(tag language.Tag) Option {
	return func(e *Exporter) { e.locale = tag }
}

// New returns an Exporter. Without sinks it only returns the files.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		logger: logger.Discard(),
		now:    time.Now,
		locale: language.AmericanEnglish,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(logger.Component("export"))
	return e
}

// ExportOffer exports one offer with its own color selection. Incomplete
// offers are still exported; a warning is logged.
func (e *Exporter) ExportOffer(ctx context.Context, o offer.Offer, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	if v := offer.ValidateForDownload(o); !v.IsValid {
		e.logger.WarnContext(ctx, "exporting incomplete offer",
			logger.OfferID(o.ID), logger.Missing(v.MissingFields))
	}

	now := e.now()
	variation, custom := o.Variation()

	var files []File
	if opts.Format.html() {
		files = append(files, File{
			Name:     Filename(o, "html", opts, now),
			MIMEType: MIMEHTML,
			Content:  []byte(render.OfferHTML(o, variation, custom)),
		})
	}
	if opts.Format.text() {
		files = append(files, File{
			Name:     Filename(o, "txt", opts, now),
			MIMEType: MIMEText,
			Content:  []byte(PlainText(o, opts, now)),
		})
	}

	res := Result{Files: files, Variation: variation, Exported: 1}
	if err := e.deliver(ctx, files); err != nil {
		return res, err
	}

	e.logger.InfoContext(ctx, "offer exported",
		logger.OfferID(o.ID),
		logger.Variation(variation),
		logger.Layout(string(o.LayoutTemplate)),
		logger.ExportFormat(string(opts.Format)))
	return res, nil
}

// ExportAll exports every complete offer as one collection. The first
// complete offer's color selection applies to all of them.
func (e *Exporter) ExportAll(ctx context.Context, offers []offer.Offer, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	var (
		valid []offer.Offer
		res   Result
	)
	for i, o := range offers {
		v := offer.ValidateForDownload(o)
		if !v.IsValid {
			res.Skipped = append(res.Skipped, Skipped{Index: i, OfferID: o.ID, MissingFields: v.MissingFields})
			e.logger.WarnContext(ctx, "skipping incomplete offer",
				logger.OfferID(o.ID), slog.Int("index", i), logger.Missing(v.MissingFields))
			continue
		}
		valid = append(valid, o)
	}
	if len(valid) == 0 {
		return res, ErrNoValidOffers
	}

	now := e.now()
	variation, custom := valid[0].Variation()
	res.Variation = variation
	res.Exported = len(valid)

	if opts.Format.html() {
		html := render.MultipleOffersHTML(valid, variation, custom,
			render.WithClock(func() time.Time { return now }),
			render.WithLocale(e.locale))
		res.Files = append(res.Files, File{
			Name:     CollectionFilename("html", opts, now),
			MIMEType: MIMEHTML,
			Content:  []byte(html),
		})
	}
	if opts.Format.text() {
		res.Files = append(res.Files, File{
			Name:     CollectionFilename("txt", opts, now),
			MIMEType: MIMEText,
			Content:  []byte(PlainTextCollection(valid, opts, now)),
		})
	}

	if err := e.deliver(ctx, res.Files); err != nil {
		return res, err
	}

	e.logger.InfoContext(ctx, "offers exported",
		logger.Count(len(valid)),
		slog.Int("skipped", len(res.Skipped)),
		logger.Variation(variation),
		logger.ExportFormat(string(opts.Format)))
	return res, nil
}

func (e *Exporter) deliver(ctx context.Context, files []File) error {
	var errs []error
	for _, s := range e.sinks {
		if err := s.Deliver(ctx, files...); err != nil {
			e.logger.ErrorContext(ctx, "delivery failed", logger.Error(err))
			errs = append(errs, err)
			continue
		}
		for _, f := range files {
			e.logger.DebugContext(ctx, "file delivered", logger.File(f.Name))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrDeliveryFailed}, errs...)...)
	}
	return nil
}
