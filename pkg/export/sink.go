package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
	"github.com/atotto/clipboard"

	"github.com/dmitrymomot/offerkit/pkg/email"
)

// MIME types of exported files.
const (
	MIMEHTML = "text/html"
	MIMEText = "text/plain"
)

// File is one exported document.
type File struct {
	Name     string
	MIMEType string
	Content  []byte
}

// Sink receives the files of one export.
type Sink interface {
	Deliver(ctx context.Context, files ...File) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, files ...File) error

func (f SinkFunc) Deliver(ctx context.Context, files ...File) error {
	return f(ctx, files...)
}

func firstOf(files []File, mime string) (File, bool) {
	for _, f := range files {
		if f.MIMEType == mime {
			return f, true
		}
	}
	return File{}, false
}

// DirSink writes files into a directory.
type DirSink struct {
	dir string
}

// NewDirSink returns a sink writing into dir, created on first use.
func NewDirSink(dir string) *DirSink {
	return &DirSink{dir: dir}
}

// Dir returns the target directory.
func (d *DirSink) Dir() string { return d.dir }

func (d *DirSink) Deliver(ctx context.Context, files ...File) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrWriteFile, err)
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(d.dir, filepath.Base(f.Name))
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteFile, f.Name, err)
		}
	}
	return nil
}

// ClipboardSink copies the HTML file, or the first file when there is no
// HTML, to the system clipboard.
type ClipboardSink struct {
	write func(string) error
}

// ClipboardOption configures a ClipboardSink.
type ClipboardOption func(*ClipboardSink)

// WithClipboardWriter replaces the system clipboard writer.
func WithClipboardWriter(write func(string) error) ClipboardOption {
	return func(c *ClipboardSink) { c.write = write }
}

// NewClipboardSink returns a sink backed by the system clipboard.
func NewClipboardSink(opts ...ClipboardOption) *ClipboardSink {
	c := &ClipboardSink{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *ClipboardSink) Deliver(ctx context.Context, files ...File) error {
	if len(files) == 0 {
		return ErrNothingToDeliver
	}
	f, ok := firstOf(files, MIMEHTML)
	if !ok {
		f = files[0]
	}

	write := c.write
	if write == nil {
		if clipboard.Unsupported {
			return ErrClipboardUnavailable
		}
		write = clipboard.WriteAll
	}
	if err := write(string(f.Content)); err != nil {
		return errors.Join(ErrClipboardUnavailable, err)
	}
	return nil
}

// MailSink emails the export as a proof. The HTML file is the body and the
// text file, when present, the plain text alternative.
type MailSink struct {
	sender  email.EmailSender
	to      string
	subject string
	tag     string
}

// MailOption configures a MailSink.
type MailOption func(*MailSink)

// WithSubject sets the subject prefix.
func WithSubject(s string) MailOption {
	return func(m *MailSink) { m.subject = s }
}

// WithTag sets the provider tag.
func WithTag(tag string) MailOption {
	return func(m *MailSink) { m.tag = tag }
}

// NewMailSink returns a sink sending proofs to the given address.
func NewMailSink(sender email.EmailSender, to string, opts ...MailOption) *MailSink {
	m := &MailSink{sender: sender, to: to, subject: "Automotive Offer Proof", tag: "offer-proof"}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MailSink) Deliver(ctx context.Context, files ...File) error {
	if len(files) == 0 {
		return ErrNothingToDeliver
	}

	params := email.SendEmailParams{SendTo: m.to, Tag: m.tag}
	text, hasText := firstOf(files, MIMEText)
	if hasText {
		params.BodyText = string(text.Content)
	}

	name := files[0].Name
	if html, ok := firstOf(files, MIMEHTML); ok {
		params.BodyHTML = string(html.Content)
		name = html.Name
	} else if hasText {
		params.BodyHTML = "<pre>" + templ.EscapeString(params.BodyText) + "</pre>"
	} else {
		params.BodyHTML = string(files[0].Content)
	}
	params.Subject = m.subject + ": " + strings.TrimSuffix(name, filepath.Ext(name))

	return m.sender.SendEmail(ctx, params)
}
