package handlers

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/3leaps/gostratus/internal/errors"
	"github.com/3leaps/gostratus/pkg/object"
	"github.com/3leaps/gostratus/pkg/output"
	"github.com/3leaps/gostratus/pkg/wire"
)

// maxBodyBytes bounds inspector request bodies. Captured listing payloads
// are at most a few MB; anything larger is a client mistake.
const maxBodyBytes = 16 << 20

// Translator serves the wire translation endpoints.
type Translator struct {
	defaultDialect wire.Dialect
}

// NewTranslator creates the translation handler set.
func NewTranslator(defaultDialect wire.Dialect) *Translator {
	return &Translator{defaultDialect: defaultDialect}
}

// TagsRenderRequest is the body for POST /v1/tags/render.
type TagsRenderRequest struct {
	// Dialect selects the root element ("s3" or "azure"). Empty uses the
	// server default.
	Dialect string `json:"dialect,omitempty"`

	// Tags is the tag mapping to render.
	Tags map[string]string `json:"tags"`
}

// TagsRenderResponse carries the rendered document.
type TagsRenderResponse struct {
	Document string `json:"document"`
}

// TagsRender renders a tag mapping into the wire document.
func (t *Translator) TagsRender(w http.ResponseWriter, r *http.Request) {
	var req TagsRenderRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		apperrors.WriteJSON(w, http.StatusBadRequest, apperrors.CodeBadRequest, "decoding request body: "+err.Error())
		return
	}

	dialect, ok := t.resolveDialect(w, req.Dialect)
	if !ok {
		return
	}

	doc, err := wire.NewTagging(req.Tags).Render(dialect)
	if err != nil {
		apperrors.WriteJSON(w, http.StatusUnprocessableEntity, apperrors.CodeBadDocument, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, TagsRenderResponse{Document: doc})
}

// TagsParseResponse carries the parsed tag mapping.
type TagsParseResponse struct {
	Tags map[string]string `json:"tags"`
}

// TagsParse decodes a tag document (either dialect) into a mapping.
func (t *Translator) TagsParse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		apperrors.WriteJSON(w, http.StatusBadRequest, apperrors.CodeBadRequest, "reading request body: "+err.Error())
		return
	}

	tagging, err := wire.ParseTagging(body)
	if err != nil {
		apperrors.WriteJSON(w, http.StatusUnprocessableEntity, apperrors.CodeBadDocument, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, TagsParseResponse{Tags: tagging.ToMap()})
}

// ListTranslateResponse is the translated listing.
type ListTranslateResponse struct {
	Objects           []*output.ObjectRecord `json:"objects"`
	CommonPrefixes    []string               `json:"common_prefixes"`
	ContinuationToken *string                `json:"continuation_token,omitempty"`
}

// ListTranslate translates a captured listing payload (XML, or JSON when
// the request Content-Type says so) into the provider-neutral result.
func (t *Translator) ListTranslate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		apperrors.WriteJSON(w, http.StatusBadRequest, apperrors.CodeBadRequest, "reading request body: "+err.Error())
		return
	}

	var resp wire.ListResponse
	if strings.Contains(r.Header.Get("Content-Type"), "json") {
		err = json.Unmarshal(body, &resp)
	} else {
		err = xml.Unmarshal(body, &resp)
	}
	if err != nil {
		apperrors.WriteJSON(w, http.StatusUnprocessableEntity, apperrors.CodeBadDocument, err.Error())
		return
	}

	result, err := resp.Translate()
	if err != nil {
		if object.IsPathError(err) {
			apperrors.WriteJSON(w, http.StatusUnprocessableEntity, apperrors.CodeBadPath, err.Error())
			return
		}
		apperrors.WriteJSON(w, http.StatusInternalServerError, apperrors.CodeInternal, err.Error())
		return
	}

	objects := make([]*output.ObjectRecord, 0, len(result.Objects))
	for _, meta := range result.Objects {
		objects = append(objects, output.NewObjectRecord(meta))
	}
	prefixes := make([]string, 0, len(result.CommonPrefixes))
	for _, p := range result.CommonPrefixes {
		prefixes = append(prefixes, p.String())
	}

	writeJSON(w, http.StatusOK, ListTranslateResponse{
		Objects:           objects,
		CommonPrefixes:    prefixes,
		ContinuationToken: resp.NextContinuationToken,
	})
}

// MultipartCompleteRequest is the body for POST /v1/multipart/complete.
type MultipartCompleteRequest struct {
	// Parts are the part identifier tokens in reassembly order.
	Parts []string `json:"parts"`
}

// MultipartCompleteResponse carries the rendered completion document.
type MultipartCompleteResponse struct {
	Document string `json:"document"`
}

// MultipartComplete assembles part identifiers into the completion
// request document.
func (t *Translator) MultipartComplete(w http.ResponseWriter, r *http.Request) {
	var req MultipartCompleteRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		apperrors.WriteJSON(w, http.StatusBadRequest, apperrors.CodeBadRequest, "decoding request body: "+err.Error())
		return
	}

	parts := make([]object.PartID, 0, len(req.Parts))
	for _, id := range req.Parts {
		parts = append(parts, object.PartID{ContentID: id})
	}

	doc, err := wire.NewCompleteMultipartUpload(parts).Render()
	if err != nil {
		apperrors.WriteJSON(w, http.StatusUnprocessableEntity, apperrors.CodeBadDocument, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MultipartCompleteResponse{Document: doc})
}

// resolveDialect parses the requested dialect, falling back to the server
// default. Writes the error response itself when the name is unknown.
func (t *Translator) resolveDialect(w http.ResponseWriter, name string) (wire.Dialect, bool) {
	if name == "" {
		return t.defaultDialect, true
	}
	dialect, err := wire.ParseDialect(name)
	if err != nil {
		apperrors.WriteJSON(w, http.StatusBadRequest, apperrors.CodeBadRequest, err.Error())
		return 0, false
	}
	return dialect, true
}
