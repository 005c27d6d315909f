package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/3leaps/gostratus/internal/errors"
	"github.com/3leaps/gostratus/pkg/wire"
)

func doJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperrors.HTTPErrorResponse {
	t.Helper()
	var body apperrors.HTTPErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestTranslator_TagsRender(t *testing.T) {
	tr := NewTranslator(wire.DialectS3)

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "default dialect",
			body: `{"tags":{"env":"prod"}}`,
			want: `<?xml version="1.0" encoding="utf-8"?><Tagging><TagSet><Tag><Key>env</Key><Value>prod</Value></Tag></TagSet></Tagging>`,
		},
		{
			name: "azure dialect",
			body: `{"dialect":"azure","tags":{"env":"prod"}}`,
			want: `<?xml version="1.0" encoding="utf-8"?><Tags><TagSet><Tag><Key>env</Key><Value>prod</Value></Tag></TagSet></Tags>`,
		},
		{
			name: "no tags",
			body: `{"tags":{}}`,
			want: `<?xml version="1.0" encoding="utf-8"?><Tagging><TagSet></TagSet></Tagging>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, tr.TagsRender, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var resp TagsRenderResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.want, resp.Document)
		})
	}
}

func TestTranslator_TagsRender_Errors(t *testing.T) {
	tr := NewTranslator(wire.DialectS3)

	t.Run("malformed json", func(t *testing.T) {
		rec := doJSON(t, tr.TagsRender, `{"tags":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apperrors.CodeBadRequest, decodeError(t, rec).Error.Code)
	})

	t.Run("unknown dialect", func(t *testing.T) {
		rec := doJSON(t, tr.TagsRender, `{"dialect":"gcs","tags":{}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apperrors.CodeBadRequest, decodeError(t, rec).Error.Code)
	})
}

func TestTranslator_TagsParse(t *testing.T) {
	tr := NewTranslator(wire.DialectS3)

	t.Run("s3 root", func(t *testing.T) {
		doc := `<?xml version="1.0" encoding="utf-8"?><Tagging><TagSet><Tag><Key>env</Key><Value>prod</Value></Tag></TagSet></Tagging>`
		rec := doJSON(t, tr.TagsParse, doc)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp TagsParseResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, map[string]string{"env": "prod"}, resp.Tags)
	})

	t.Run("azure root", func(t *testing.T) {
		doc := `<Tags><TagSet><Tag><Key>team</Key><Value>storage</Value></Tag></TagSet></Tags>`
		rec := doJSON(t, tr.TagsParse, doc)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp TagsParseResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, map[string]string{"team": "storage"}, resp.Tags)
	})

	t.Run("malformed document", func(t *testing.T) {
		rec := doJSON(t, tr.TagsParse, `<Tagging><TagSet>`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, apperrors.CodeBadDocument, decodeError(t, rec).Error.Code)
	})
}

func TestTranslator_ListTranslate(t *testing.T) {
	tr := NewTranslator(wire.DialectS3)

	t.Run("xml payload", func(t *testing.T) {
		doc := `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult>
  <NextContinuationToken>token-1</NextContinuationToken>
  <Contents>
    <Key>data/report.csv</Key>
    <Size>1024</Size>
    <LastModified>2024-03-01T12:00:00Z</LastModified>
    <ETag>&quot;abc123&quot;</ETag>
  </Contents>
  <CommonPrefixes>
    <Prefix>data/archive/</Prefix>
  </CommonPrefixes>
</ListBucketResult>`

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(doc))
		req.Header.Set("Content-Type", "application/xml")
		rec := httptest.NewRecorder()
		tr.ListTranslate(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp ListTranslateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Objects, 1)
		assert.Equal(t, "data/report.csv", resp.Objects[0].Key)
		assert.Equal(t, int64(1024), resp.Objects[0].Size)
		require.NotNil(t, resp.Objects[0].ETag)
		assert.Equal(t, `"abc123"`, *resp.Objects[0].ETag)
		assert.Equal(t, []string{"data/archive"}, resp.CommonPrefixes)
		require.NotNil(t, resp.ContinuationToken)
		assert.Equal(t, "token-1", *resp.ContinuationToken)
	})

	t.Run("json payload", func(t *testing.T) {
		doc := `{"Contents":[{"Key":"a/b.txt","Size":7,"LastModified":"2024-03-01T12:00:00Z"}]}`
		rec := doJSON(t, tr.ListTranslate, doc)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp ListTranslateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Objects, 1)
		assert.Equal(t, "a/b.txt", resp.Objects[0].Key)
		assert.Nil(t, resp.Objects[0].ETag)
	})

	t.Run("invalid key", func(t *testing.T) {
		doc := `<ListBucketResult><Contents><Key>a//b</Key><Size>1</Size><LastModified>2024-03-01T12:00:00Z</LastModified></Contents></ListBucketResult>`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(doc))
		rec := httptest.NewRecorder()
		tr.ListTranslate(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, apperrors.CodeBadPath, decodeError(t, rec).Error.Code)
	})

	t.Run("malformed xml", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`<ListBucketResult>`))
		rec := httptest.NewRecorder()
		tr.ListTranslate(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, apperrors.CodeBadDocument, decodeError(t, rec).Error.Code)
	})
}

func TestTranslator_MultipartComplete(t *testing.T) {
	tr := NewTranslator(wire.DialectS3)

	t.Run("numbers parts in order", func(t *testing.T) {
		rec := doJSON(t, tr.MultipartComplete, `{"parts":["etag-1","etag-2"]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MultipartCompleteResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		want := `<?xml version="1.0" encoding="utf-8"?><CompleteMultipartUpload><Part><ETag>etag-1</ETag><PartNumber>1</PartNumber></Part><Part><ETag>etag-2</ETag><PartNumber>2</PartNumber></Part></CompleteMultipartUpload>`
		assert.Equal(t, want, resp.Document)
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := doJSON(t, tr.MultipartComplete, `{"parts":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apperrors.CodeBadRequest, decodeError(t, rec).Error.Code)
	})
}
