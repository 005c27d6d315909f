package wire

import (
	"encoding/xml"

	"github.com/3leaps/gostratus/pkg/object"
)

// Header is the XML declaration every produced document starts with. The
// serialized body follows immediately, with no newline between the two.
const Header = `<?xml version="1.0" encoding="utf-8"?>`

// renderDocument marshals v and prepends the XML declaration.
//
// A marshalling failure is surfaced as a BackendError carrying the store
// context and the wrapped cause. Store is empty here because rendering is
// provider-agnostic; outer layers add the backend name.
func renderDocument(v any) (string, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return "", &object.BackendError{Err: err}
	}
	return Header + string(body), nil
}
