package export

import (
	"context"
	"path"
	"sync"

	"github.com/dmitrymomot/offerkit/pkg/storage"
)

// Uploader stores one object. *storage.S3 implements it.
type Uploader interface {
	Put(ctx context.Context, key, contentType string, body []byte) (storage.Object, error)
}

// PublishSink uploads every file under a key prefix and remembers the
// resulting objects so callers can print or send their URLs.
type PublishSink struct {
	store  Uploader
	prefix string

	mu      sync.Mutex
	objects []storage.Object
}

// NewPublishSink returns a sink uploading to store under prefix.
func NewPublishSink(store Uploader, prefix string) *PublishSink {
	return &PublishSink{store: store, prefix: prefix}
}

func (p *PublishSink) Deliver(ctx context.Context, files ...File) error {
	if len(files) == 0 {
		return ErrNothingToDeliver
	}
	for _, f := range files {
		key := path.Join(p.prefix, path.Base(f.Name))
		obj, err := p.store.Put(ctx, key, f.MIMEType+"; charset=utf-8", f.Content)
		if err != nil {
			return err
		}
		p.mu.Lock()
		p.objects = append(p.objects, obj)
		p.mu.Unlock()
	}
	return nil
}

// Objects returns what has been uploaded so far.
func (p *PublishSink) Objects() []storage.Object {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]storage.Object(nil), p.objects...)
}
