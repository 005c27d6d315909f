// Package output provides JSONL output for translation results.
//
// Output is structured as typed record envelopes containing translated
// objects, common prefixes, errors, and summaries. Each line is a
// self-contained JSON object that can be parsed independently.
package output

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/3leaps/gostratus/pkg/object"
)

// Record type constants define the envelope types for JSONL output.
// These follow the pattern: gostratus.<type>.v<version>
const (
	// TypeObject identifies translated object records.
	TypeObject = "gostratus.object.v1"

	// TypePrefix identifies common-prefix records.
	TypePrefix = "gostratus.prefix.v1"

	// TypeError identifies error records.
	TypeError = "gostratus.error.v1"

	// TypeSummary identifies final summary records.
	TypeSummary = "gostratus.summary.v1"
)

// Record is the envelope for all JSONL output.
//
// Each line of JSONL output contains a Record with a type-specific
// payload in the Data field. The type field determines how to
// interpret the Data payload.
type Record struct {
	// Type identifies the record type (e.g., "gostratus.object.v1").
	Type string `json:"type"`

	// TS is the timestamp when the record was created (RFC3339Nano).
	TS time.Time `json:"ts"`

	// JobID is the correlation ID for this translation run.
	JobID string `json:"job_id"`

	// Dialect identifies the source wire dialect (e.g., "s3", "azure").
	Dialect string `json:"dialect"`

	// Data contains the type-specific payload as raw JSON.
	Data json.RawMessage `json:"data"`
}

// ObjectRecord is the data payload for a translated object.
type ObjectRecord struct {
	// Key is the canonical parsed object path.
	Key string `json:"key" yaml:"key"`

	// Size is the object size in bytes.
	Size int64 `json:"size" yaml:"size"`

	// LastModified is when the object was last modified.
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`

	// ETag is the entity tag, if the payload carried one.
	ETag *string `json:"etag,omitempty" yaml:"etag,omitempty"`

	// Version is the object version, if the dialect reports one.
	Version *string `json:"version,omitempty" yaml:"version,omitempty"`
}

// NewObjectRecord converts a translated metadata record for output.
func NewObjectRecord(meta object.Meta) *ObjectRecord {
	return &ObjectRecord{
		Key:          meta.Location.String(),
		Size:         meta.Size,
		LastModified: meta.LastModified,
		ETag:         meta.ETag,
		Version:      meta.Version,
	}
}

// PrefixRecord is the data payload for a translated common prefix.
type PrefixRecord struct {
	// Prefix is the canonical parsed prefix path.
	Prefix string `json:"prefix"`
}

// ErrorRecord is the data payload for errors.
type ErrorRecord struct {
	// Code is a machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable error description.
	Message string `json:"message"`

	// Key is the raw key or prefix related to this error, if applicable.
	Key string `json:"key,omitempty"`

	// Details contains additional error context.
	Details any `json:"details,omitempty"`
}

// Error codes for ErrorRecord.
const (
	// ErrCodeBadPath indicates a raw key or prefix failed to parse.
	ErrCodeBadPath = "BAD_PATH"

	// ErrCodeBadDocument indicates a wire document failed to decode or render.
	ErrCodeBadDocument = "BAD_DOCUMENT"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal = "INTERNAL"
)

// SummaryRecord is the data payload for final summaries.
//
// A summary record is emitted after a translation with aggregate
// statistics for the payload that was processed.
type SummaryRecord struct {
	// Objects is the number of translated object records.
	Objects int64 `json:"objects"`

	// ObjectsMatched is the number remaining after glob filtering.
	ObjectsMatched int64 `json:"objects_matched"`

	// Prefixes is the number of translated common prefixes.
	Prefixes int64 `json:"prefixes"`

	// BytesTotal is the cumulative size of matched objects in bytes.
	BytesTotal int64 `json:"bytes_total"`

	// ContinuationToken is the payload's continuation token, if any.
	ContinuationToken *string `json:"continuation_token,omitempty"`
}

// Writer errors.
var (
	// ErrWriterClosed is returned when writing to a closed writer.
	ErrWriterClosed = errors.New("writer is closed")
)

// WriteError wraps errors that occur during write operations.
type WriteError struct {
	Op  string // Operation that failed (e.g., "marshal_data", "write")
	Err error  // Underlying error
}

func (e *WriteError) Error() string {
	return "output: " + e.Op + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
