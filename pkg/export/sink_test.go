package export_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/offerkit/pkg/email"
	"github.com/dmitrymomot/offerkit/pkg/export"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	return m.Called(ctx, params).Error(0)
}

var (
	htmlFile = export.File{Name: "honda-civic.html", MIMEType: export.MIMEHTML, Content: []byte("<html>civic</html>")}
	textFile = export.File{Name: "honda-civic.txt", MIMEType: export.MIMEText, Content: []byte("civic & co")}
)

func TestDirSink(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "out")
	sink := export.NewDirSink(dir)
	assert.Equal(t, dir, sink.Dir())

	require.NoError(t, sink.Deliver(context.Background(), htmlFile, textFile))

	got, err := os.ReadFile(filepath.Join(dir, "honda-civic.html"))
	require.NoError(t, err)
	assert.Equal(t, htmlFile.Content, got)
	assert.FileExists(t, filepath.Join(dir, "honda-civic.txt"))
}

func TestDirSink_Errors(t *testing.T) {
	t.Parallel()

	err := export.NewDirSink("/dev/null/nope").Deliver(context.Background(), htmlFile)
	assert.ErrorIs(t, err, export.ErrWriteFile)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = export.NewDirSink(t.TempDir()).Deliver(ctx, htmlFile)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClipboardSink(t *testing.T) {
	t.Parallel()

	var copied string
	sink := export.NewClipboardSink(export.WithClipboardWriter(func(s string) error {
		copied = s
		return nil
	}))

	require.NoError(t, sink.Deliver(context.Background(), textFile, htmlFile))
	assert.Equal(t, "<html>civic</html>", copied)

	require.NoError(t, sink.Deliver(context.Background(), textFile))
	assert.Equal(t, "civic & co", copied)

	assert.ErrorIs(t, sink.Deliver(context.Background()), export.ErrNothingToDeliver)

	failing := export.NewClipboardSink(export.WithClipboardWriter(func(string) error { return errors.New("no display") }))
	assert.ErrorIs(t, failing.Deliver(context.Background(), htmlFile), export.ErrClipboardUnavailable)
}

func TestMailSink(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("html with text alternative", func(t *testing.T) {
		t.Parallel()

		sender := new(mockSender)
		sender.On("SendEmail", ctx, email.SendEmailParams{
			SendTo:   "proofs@example.com",
			Subject:  "Automotive Offer Proof: honda-civic",
			BodyHTML: "<html>civic</html>",
			BodyText: "civic & co",
			Tag:      "offer-proof",
		}).Return(nil)

		sink := export.NewMailSink(sender, "proofs@example.com")
		require.NoError(t, sink.Deliver(ctx, htmlFile, textFile))
		sender.AssertExpectations(t)
	})

	t.Run("text only is wrapped", func(t *testing.T) {
		t.Parallel()

		sender := new(mockSender)
		sender.On("SendEmail", ctx, email.SendEmailParams{
			SendTo:   "proofs@example.com",
			Subject:  "Review: honda-civic",
			BodyHTML: "<pre>civic &amp; co</pre>",
			BodyText: "civic & co",
			Tag:      "spring",
		}).Return(email.ErrFailedToSendEmail)

		sink := export.NewMailSink(sender, "proofs@example.com", export.WithSubject("Review"), export.WithTag("spring"))
		assert.ErrorIs(t, sink.Deliver(ctx, textFile), email.ErrFailedToSendEmail)
		sender.AssertExpectations(t)
	})

	t.Run("nothing to send", func(t *testing.T) {
		t.Parallel()
		sink := export.NewMailSink(new(mockSender), "proofs@example.com")
		assert.ErrorIs(t, sink.Deliver(ctx), export.ErrNothingToDeliver)
	})
}

func TestSinkFunc(t *testing.T) {
	t.Parallel()

	var n int
	var s export.Sink = export.SinkFunc(func(_ context.Context, files ...export.File) error {
		n = len(files)
		return nil
	})
	require.NoError(t, s.Deliver(context.Background(), htmlFile, textFile))
	assert.Equal(t, 2, n)
}
