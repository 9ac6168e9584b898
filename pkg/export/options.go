package export

import (
	"errors"

	"github.com/dmitrymomot/offerkit/pkg/validator"
)

// Format selects which files an export produces.
type Format string

const (
	FormatHTML Format = "html"
	FormatText Format = "txt"
	FormatBoth Format = "both"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{FormatHTML, FormatText, FormatBoth} }

func (f Format) html() bool { return f == FormatHTML || f == FormatBoth }
func (f Format) text() bool { return f == FormatText || f == FormatBoth }

// Options controls one export.
type Options struct {
	Format Format
	// IncludeInlineCSS is kept for parity with saved settings. Documents
	// always embed their stylesheet.
	IncludeInlineCSS bool
	// IncludeTimestamp appends the date to file names and a generation
	// line to plain text.
	IncludeTimestamp bool
	CustomFilename   string
}

// DefaultOptions exports HTML with a dated file name.
func DefaultOptions() Options {
	return Options{
		Format:           FormatHTML,
		IncludeInlineCSS: true,
		IncludeTimestamp: true,
	}
}

// Validate checks the format.
func (o Options) Validate() error {
	formats := make([]string, 0, 3)
	for _, f := range Formats() {
		formats = append(formats, string(f))
	}
	if err := validator.Apply(
		validator.RequiredString("format", string(o.Format)),
		validator.OneOfString("format", string(o.Format), formats),
	); err != nil {
		return errors.Join(ErrInvalidOptions, err)
	}
	return nil
}
