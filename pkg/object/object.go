// Package object defines the provider-neutral model shared by every storage
// dialect: object metadata, listing results, multipart part identifiers,
// and the error taxonomy for translation failures.
//
// Types in this package are plain values with no internal synchronization.
// They are safe to transfer between goroutines and to read concurrently
// once constructed.
package object

import (
	"time"

	"github.com/3leaps/gostratus/pkg/objpath"
)

// Meta describes a single stored object as reported by a listing or head
// operation.
type Meta struct {
	// Location is the parsed object path.
	Location objpath.Path

	// LastModified is when the object was last modified.
	LastModified time.Time

	// Size is the object size in bytes.
	Size int64

	// ETag is the provider-issued entity tag, if the dialect reports one.
	// Nil means the payload carried no entity tag, which is distinct from
	// an empty tag.
	ETag *string

	// Version identifies the object version for versioned stores. Listing
	// dialects that do not report versions leave this nil.
	Version *string
}

// ListResult is the translated outcome of a listing operation.
//
// Objects and CommonPrefixes preserve the order of the raw payload they
// were translated from.
type ListResult struct {
	// Objects are the metadata records for this page.
	Objects []Meta

	// CommonPrefixes are the immediate child prefixes for delimiter
	// listings.
	CommonPrefixes []objpath.Path
}

// PartID is the opaque acknowledgment token returned by a provider for a
// completed part upload.
//
// The token's content is provider-defined; callers must not parse it. Order
// of reassembly is determined by the position of the PartID in the slice
// handed to the completion assembler, never by the token itself.
type PartID struct {
	// ContentID is the provider's token for the uploaded part, typically
	// an entity tag.
	ContentID string
}
