package wire

import (
	"encoding/xml"
)

// Tagging is the object tag document.
//
// The same document serves both dialects; only the root element name
// differs and is chosen at render time.
type Tagging struct {
	// XMLName carries no tag so documents parse under either dialect's
	// root element; Render sets the root explicitly.
	XMLName xml.Name

	TagSet TagSet `xml:"TagSet"`
}

// TagSet is the collection of tags inside a tag document.
type TagSet struct {
	Tags []Tag `xml:"Tag"`
}

// Tag is a single key/value tag entry.
type Tag struct {
	Key   string `xml:"Key"`
	Value string `xml:"Value"`
}

// NewTagging builds a tag document from a tag mapping.
//
// Map iteration order is unspecified, so two calls over the same mapping
// may emit entries in different relative order. Providers treat a tag set
// as unordered, so this is acceptable.
func NewTagging(tags map[string]string) Tagging {
	entries := make([]Tag, 0, len(tags))
	for key, value := range tags {
		entries = append(entries, Tag{Key: key, Value: value})
	}
	return Tagging{TagSet: TagSet{Tags: entries}}
}

// ParseTagging decodes a tag document in either dialect.
func ParseTagging(doc []byte) (Tagging, error) {
	var t Tagging
	if err := xml.Unmarshal(doc, &t); err != nil {
		return Tagging{}, err
	}
	t.XMLName = xml.Name{}
	return t, nil
}

// ToMap converts the document's entries back into a tag mapping.
//
// If the document contains duplicate keys the later entry in document
// order wins, which can reduce cardinality versus the document. That
// matches observed provider behavior and is not an error.
func (t Tagging) ToMap() map[string]string {
	tags := make(map[string]string, len(t.TagSet.Tags))
	for _, tag := range t.TagSet.Tags {
		tags[tag.Key] = tag.Value
	}
	return tags
}

// Render produces the complete tag document for the given dialect, XML
// declaration included.
func (t Tagging) Render(dialect Dialect) (string, error) {
	t.XMLName = xml.Name{Local: dialect.taggingRoot()}
	return renderDocument(t)
}
