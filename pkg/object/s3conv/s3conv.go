// Package s3conv converts between aws-sdk-go-v2 S3 types and the
// provider-neutral object model.
//
// It serves callers that reach S3 through the SDK rather than through the
// raw XML wire path in pkg/wire. Conversions are pure: no client is
// constructed and no request is made here; credential resolution and
// transport belong to the calling layer.
package s3conv

import (
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/3leaps/gostratus/pkg/object"
	"github.com/3leaps/gostratus/pkg/objpath"
)

// Meta converts an SDK listing entry into a metadata record.
//
// The entry's key is parsed into a structured path; a malformed key fails
// the conversion. Optional SDK fields pass through as pointers so absence
// survives the conversion.
func Meta(obj types.Object) (object.Meta, error) {
	location, err := objpath.Parse(aws.ToString(obj.Key))
	if err != nil {
		return object.Meta{}, err
	}

	return object.Meta{
		Location:     location,
		LastModified: aws.ToTime(obj.LastModified),
		Size:         aws.ToInt64(obj.Size),
		ETag:         obj.ETag,
		Version:      nil,
	}, nil
}

// ListResult converts a ListObjectsV2 response into the provider-neutral
// list result.
//
// Like the wire translator, conversion is atomic: the first entry or
// prefix that fails to parse aborts the whole batch.
func ListResult(out *s3.ListObjectsV2Output) (*object.ListResult, error) {
	objects := make([]object.Meta, 0, len(out.Contents))
	for _, obj := range out.Contents {
		meta, err := Meta(obj)
		if err != nil {
			return nil, err
		}
		objects = append(objects, meta)
	}

	prefixes := make([]objpath.Path, 0, len(out.CommonPrefixes))
	for _, cp := range out.CommonPrefixes {
		p, err := objpath.Parse(aws.ToString(cp.Prefix))
		if err != nil {
			return nil, err
		}
		prefixes = append(prefixes, p)
	}

	return &object.ListResult{
		Objects:        objects,
		CommonPrefixes: prefixes,
	}, nil
}

// CompletedParts converts ordered part identifiers into SDK completion
// entries, numbering 1..N by input position.
func CompletedParts(parts []object.PartID) []types.CompletedPart {
	completed := make([]types.CompletedPart, 0, len(parts))
	for i, part := range parts {
		completed = append(completed, types.CompletedPart{
			ETag:       aws.String(part.ContentID),
			PartNumber: aws.Int32(int32(i + 1)),
		})
	}
	return completed
}

// Tags converts a tag mapping into SDK tag entries. Order is unspecified.
func Tags(tags map[string]string) []types.Tag {
	entries := make([]types.Tag, 0, len(tags))
	for key, value := range tags {
		entries = append(entries, types.Tag{
			Key:   aws.String(key),
			Value: aws.String(value),
		})
	}
	return entries
}

// TagMap converts SDK tag entries back into a mapping. Duplicate keys are
// last-write-wins, matching the wire-level behavior.
func TagMap(entries []types.Tag) map[string]string {
	tags := make(map[string]string, len(entries))
	for _, entry := range entries {
		tags[aws.ToString(entry.Key)] = aws.ToString(entry.Value)
	}
	return tags
}

// ClassifyError maps an SDK error onto the shared sentinel errors and
// wraps it with the s3 store context.
//
// Unrecognized errors keep their original cause inside the wrapper.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	return &object.BackendError{Store: "s3", Err: classify(err)}
}

func classify(err error) error {
	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	var noSuchBucket *types.NoSuchBucket

	switch {
	case errors.As(err, &notFound), errors.As(err, &noSuchKey):
		return object.ErrNotFound
	case errors.As(err, &noSuchBucket):
		return object.ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return object.ErrNotFound
		case "NoSuchBucket":
			return object.ErrBucketNotFound
		case "AccessDenied", "Forbidden":
			return object.ErrAccessDenied
		case "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return object.ErrInvalidCredentials
		case "SlowDown", "Throttling", "RequestLimitExceeded":
			return object.ErrThrottled
		case "ServiceUnavailable", "InternalError":
			return object.ErrProviderUnavailable
		}
		return err
	}

	// Fallback: check error message for common cases.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "NoSuchKey") || strings.Contains(msg, "NotFound") || strings.Contains(msg, "404"):
		return object.ErrNotFound
	case strings.Contains(msg, "NoSuchBucket"):
		return object.ErrBucketNotFound
	case strings.Contains(msg, "AccessDenied") || strings.Contains(msg, "Forbidden") || strings.Contains(msg, "403"):
		return object.ErrAccessDenied
	case strings.Contains(msg, "InvalidAccessKeyId") || strings.Contains(msg, "SignatureDoesNotMatch"):
		return object.ErrInvalidCredentials
	case strings.Contains(msg, "SlowDown") || strings.Contains(msg, "Throttling") || strings.Contains(msg, "429"):
		return object.ErrThrottled
	case strings.Contains(msg, "ServiceUnavailable") || strings.Contains(msg, "503"):
		return object.ErrProviderUnavailable
	}

	return err
}
