package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/offerkit/pkg/offer"
)

var (
	ErrEmptyContent     = errors.New("qrcode: content cannot be empty")
	ErrNoLink           = errors.New("qrcode: offer has no call to action link")
	ErrFailedToGenerate = errors.New("qrcode: failed to generate QR code")
)

// DefaultSize is the image edge in pixels.
const DefaultSize = 256

// Level is the error correction level. Higher levels survive more damage
// and print larger.
type Level = skipqrcode.RecoveryLevel

const (
	Low     Level = skipqrcode.Low
	Medium  Level = skipqrcode.Medium
	High    Level = skipqrcode.High
	Highest Level = skipqrcode.Highest
)

type settings struct {
	size  int
	level Level
}

// Option configures a code.
type Option func(*settings)

// WithSize sets the image edge in pixels. Non-positive sizes keep the default.
func WithSize(px int) Option {
	return func(s *settings) {
		if px > 0 {
			s.size = px
		}
	}
}

// WithLevel sets the error correction level.
func WithLevel(l Level) Option {
	return func(s *settings) { s.level = l }
}

// Generate encodes content as a PNG image.
func Generate(content string, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	s := settings{size: DefaultSize, level: Medium}
	for _, opt := range opts {
		opt(&s)
	}
	png, err := skipqrcode.Encode(content, s.level, s.size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}
	return png, nil
}

// ForOffer encodes the offer's primary link.
func ForOffer(o offer.Offer, opts ...Option) ([]byte, error) {
	link := o.PrimaryLink()
	if link == "" || link == "#" {
		return nil, ErrNoLink
	}
	return Generate(link, opts...)
}

// DataURI returns png as a data: URI.
func DataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
