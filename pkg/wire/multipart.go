package wire

import (
	"encoding/xml"

	"github.com/3leaps/gostratus/pkg/object"
)

// InitiateMultipartUploadResult is the response to starting a multipart
// upload.
type InitiateMultipartUploadResult struct {
	UploadID string `xml:"UploadId"`
}

// CompleteMultipartUpload is the request document that assembles uploaded
// parts into the final object.
type CompleteMultipartUpload struct {
	XMLName xml.Name        `xml:"CompleteMultipartUpload"`
	Parts   []MultipartPart `xml:"Part"`
}

// MultipartPart is one entry of a completion request.
type MultipartPart struct {
	ETag       string `xml:"ETag"`
	PartNumber int    `xml:"PartNumber"`
}

// CompleteMultipartUploadResult is the response to a completion request.
type CompleteMultipartUploadResult struct {
	ETag string `xml:"ETag"`
}

// NewCompleteMultipartUpload builds the completion document from the parts
// in reassembly order.
//
// Part numbers are assigned 1..N strictly by slice position; nothing in
// the identifier tokens is inspected or validated, and no deduplication or
// reordering occurs. Supplying parts in the correct order is the uploading
// caller's responsibility.
func NewCompleteMultipartUpload(parts []object.PartID) CompleteMultipartUpload {
	entries := make([]MultipartPart, 0, len(parts))
	for i, part := range parts {
		entries = append(entries, MultipartPart{
			ETag:       part.ContentID,
			PartNumber: i + 1,
		})
	}
	return CompleteMultipartUpload{Parts: entries}
}

// Render produces the complete request document, XML declaration included.
func (c CompleteMultipartUpload) Render() (string, error) {
	return renderDocument(c)
}
