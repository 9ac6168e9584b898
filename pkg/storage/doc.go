// Package storage publishes exported offer documents to Amazon S3 or an
// S3-compatible service (MinIO, R2, Spaces) so they can be linked from
// campaigns or shared for review.
//
// Objects are addressed by key. Keys are relative, slash separated and may
// not contain "..". Every stored object gets a public URL built from the
// configured base URL, the endpoint, or the default AWS virtual-hosted URL.
//
// Usage:
//
//	store, err := storage.NewS3(ctx, storage.Config{
//		Bucket: "offers",
//		Region: "us-east-1",
//	})
//	if err != nil {
//		return err
//	}
//	obj, err := store.Put(ctx, "proofs/honda-civic.html", "text/html; charset=utf-8", body)
//	fmt.Println(obj.URL)
//
// Errors returned by the SDK are mapped to the sentinel errors in this
// package (ErrBucketNotFound, ErrAccessDenied, ErrServiceUnavailable and so
// on) so callers can react with errors.Is.
package storage
