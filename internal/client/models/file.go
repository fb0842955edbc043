// Package models defines the data types the docshare client exchanges with
// its external stores.
package models

import "time"

// DefaultMIMEType is recorded when the source file exposes no MIME type.
const DefaultMIMEType = "application/octet-stream"

// FileRecord is one file's metadata as persisted in the external document
// table. ID and CreatedAt are assigned by the store on insert; the client
// never fills them in.
//
// URL is resolved once, at upload completion, and stored as-is. StoragePath
// is the blob store key and is required to delete the underlying object.
// Folder is immutable after creation.
type FileRecord struct {
	ID          string
	Name        string
	URL         string
	StoragePath string
	CreatedAt   time.Time
	Size        int64
	Type        string
	Folder      string
}
