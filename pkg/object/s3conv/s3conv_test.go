package s3conv

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3leaps/gostratus/pkg/object"
)

// mockAPIError implements smithy.APIError for testing error code mapping.
type mockAPIError struct {
	code    string
	message string
}

func (e *mockAPIError) Error() string                 { return fmt.Sprintf("%s: %s", e.code, e.message) }
func (e *mockAPIError) ErrorCode() string             { return e.code }
func (e *mockAPIError) ErrorMessage() string          { return e.message }
func (e *mockAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultUnknown }

var _ smithy.APIError = (*mockAPIError)(nil)

func TestMeta(t *testing.T) {
	modified := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	meta, err := Meta(types.Object{
		Key:          aws.String("data/a.parquet"),
		Size:         aws.Int64(1024),
		LastModified: aws.Time(modified),
		ETag:         aws.String(`"abc123"`),
	})
	require.NoError(t, err)

	assert.Equal(t, "data/a.parquet", meta.Location.String())
	assert.Equal(t, int64(1024), meta.Size)
	assert.Equal(t, modified, meta.LastModified)
	require.NotNil(t, meta.ETag)
	assert.Equal(t, `"abc123"`, *meta.ETag)
	assert.Nil(t, meta.Version)
}

func TestMeta_BadKey(t *testing.T) {
	_, err := Meta(types.Object{Key: aws.String("data/../escape")})
	require.Error(t, err)
	assert.True(t, object.IsPathError(err))
}

func TestMeta_NoETag(t *testing.T) {
	meta, err := Meta(types.Object{Key: aws.String("data/a")})
	require.NoError(t, err)
	assert.Nil(t, meta.ETag)
}

func TestListResult(t *testing.T) {
	out := &s3.ListObjectsV2Output{
		Contents: []types.Object{
			{Key: aws.String("b/second")},
			{Key: aws.String("a/first")},
		},
		CommonPrefixes: []types.CommonPrefix{
			{Prefix: aws.String("b/")},
			{Prefix: aws.String("a/")},
		},
	}

	result, err := ListResult(out)
	require.NoError(t, err)

	require.Len(t, result.Objects, 2)
	assert.Equal(t, "b/second", result.Objects[0].Location.String())
	assert.Equal(t, "a/first", result.Objects[1].Location.String())

	require.Len(t, result.CommonPrefixes, 2)
	assert.Equal(t, "b", result.CommonPrefixes[0].String())
	assert.Equal(t, "a", result.CommonPrefixes[1].String())
}

func TestListResult_FailsWholeBatch(t *testing.T) {
	out := &s3.ListObjectsV2Output{
		Contents: []types.Object{
			{Key: aws.String("fine")},
			{Key: aws.String("broken//key")},
		},
	}

	result, err := ListResult(out)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestCompletedParts(t *testing.T) {
	parts := CompletedParts([]object.PartID{
		{ContentID: "etag-1"},
		{ContentID: "etag-2"},
	})

	require.Len(t, parts, 2)
	assert.Equal(t, "etag-1", aws.ToString(parts[0].ETag))
	assert.Equal(t, int32(1), aws.ToInt32(parts[0].PartNumber))
	assert.Equal(t, int32(2), aws.ToInt32(parts[1].PartNumber))
}

func TestTags_RoundTrip(t *testing.T) {
	original := map[string]string{"env": "prod", "team": "data-eng"}
	assert.Equal(t, original, TagMap(Tags(original)))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "typed NoSuchKey",
			err:      &types.NoSuchKey{},
			sentinel: object.ErrNotFound,
		},
		{
			name:     "typed NoSuchBucket",
			err:      &types.NoSuchBucket{},
			sentinel: object.ErrBucketNotFound,
		},
		{
			name:     "api error AccessDenied",
			err:      &mockAPIError{code: "AccessDenied", message: "denied"},
			sentinel: object.ErrAccessDenied,
		},
		{
			name:     "api error SlowDown",
			err:      &mockAPIError{code: "SlowDown", message: "slow down"},
			sentinel: object.ErrThrottled,
		},
		{
			name:     "api error InvalidAccessKeyId",
			err:      &mockAPIError{code: "InvalidAccessKeyId", message: "bad key"},
			sentinel: object.ErrInvalidCredentials,
		},
		{
			name:     "api error ServiceUnavailable",
			err:      &mockAPIError{code: "ServiceUnavailable", message: "down"},
			sentinel: object.ErrProviderUnavailable,
		},
		{
			name:     "message fallback 404",
			err:      errors.New("request failed: 404"),
			sentinel: object.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := ClassifyError(tt.err)
			require.Error(t, wrapped)
			assert.True(t, errors.Is(wrapped, tt.sentinel))

			var backendErr *object.BackendError
			require.True(t, errors.As(wrapped, &backendErr))
			assert.Equal(t, "s3", backendErr.Store)
		})
	}
}

func TestClassifyError_Unrecognized(t *testing.T) {
	cause := errors.New("something else entirely")
	wrapped := ClassifyError(cause)

	require.Error(t, wrapped)
	assert.True(t, errors.Is(wrapped, cause))
	assert.False(t, object.IsNotFound(wrapped))
}

func TestClassifyError_Nil(t *testing.T) {
	assert.NoError(t, ClassifyError(nil))
}
