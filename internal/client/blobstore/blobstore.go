// Package blobstore talks to the external object store that holds raw file
// bytes. Objects are addressed by key; a successful put resolves a durable
// fetch URL.
package blobstore

import (
	"context"
	"io"
)

// ProgressFunc observes a transfer in flight. It is called with the
// cumulative bytes read from the source and the total size of the object.
type ProgressFunc func(bytesTransferred, totalBytes int64)

// BlobStore is the object-store contract used by the upload coordinator
// and the delete path.
type BlobStore interface {
	// Put streams size bytes from r into the object at key, reporting
	// progress along the way, and returns the object's fetch URL.
	// A failed put leaves the partial object's fate to the store; no
	// cleanup is attempted here.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, onProgress ProgressFunc) (string, error)

	// Delete removes the object at key.
	Delete(ctx context.Context, key string) error
}
