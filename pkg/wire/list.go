package wire

import (
	"time"

	"github.com/3leaps/gostratus/pkg/object"
	"github.com/3leaps/gostratus/pkg/objpath"
)

// ListResponse is the raw listing payload shared by the S3-compatible and
// GCS XML listing APIs (ListObjectsV2 and friends).
//
// All top-level fields are optional on the wire: an absent Contents or
// CommonPrefixes element is an empty page, not an error, and an absent
// NextContinuationToken means the listing is complete.
type ListResponse struct {
	Contents              []ListContents `xml:"Contents" json:"Contents,omitempty"`
	CommonPrefixes        []ListPrefix   `xml:"CommonPrefixes" json:"CommonPrefixes,omitempty"`
	NextContinuationToken *string        `xml:"NextContinuationToken" json:"NextContinuationToken,omitempty"`
}

// ListPrefix is a common-prefix entry in a listing payload.
type ListPrefix struct {
	Prefix string `xml:"Prefix" json:"Prefix"`
}

// ListContents is a single object entry in a listing payload.
type ListContents struct {
	Key          string    `xml:"Key" json:"Key"`
	Size         int64     `xml:"Size" json:"Size"`
	LastModified time.Time `xml:"LastModified" json:"LastModified"`
	ETag         *string   `xml:"ETag" json:"ETag,omitempty"`
}

// Translate converts the raw payload into the provider-neutral list result.
//
// Each content entry becomes one metadata record and each common prefix one
// parsed path, both in payload order. Translation is atomic: the first
// entry whose key fails to parse aborts the whole batch and no partial
// result is returned.
func (r *ListResponse) Translate() (*object.ListResult, error) {
	prefixes := make([]objpath.Path, 0, len(r.CommonPrefixes))
	for _, cp := range r.CommonPrefixes {
		p, err := objpath.Parse(cp.Prefix)
		if err != nil {
			return nil, err
		}
		prefixes = append(prefixes, p)
	}

	objects := make([]object.Meta, 0, len(r.Contents))
	for _, entry := range r.Contents {
		meta, err := entry.Translate()
		if err != nil {
			return nil, err
		}
		objects = append(objects, meta)
	}

	return &object.ListResult{
		Objects:        objects,
		CommonPrefixes: prefixes,
	}, nil
}

// Translate converts one content entry into a metadata record.
//
// The listing dialect carries no version information, so Version is always
// absent. An entry without an ETag stays without one; absence is never
// turned into an empty string.
func (c *ListContents) Translate() (object.Meta, error) {
	location, err := objpath.Parse(c.Key)
	if err != nil {
		return object.Meta{}, err
	}

	return object.Meta{
		Location:     location,
		LastModified: c.LastModified,
		Size:         c.Size,
		ETag:         c.ETag,
		Version:      nil,
	}, nil
}
