// Package wire translates between the provider-neutral object model and the
// serialized documents exchanged with cloud storage backends.
//
// Two dialects are supported: the S3-compatible XML dialect (AWS S3, GCS,
// MinIO, Wasabi) and the Azure Blob dialect. The inner document structure
// is shared; dialects differ only in root element names. All conversions
// are pure, synchronous functions with no I/O.
package wire

import "fmt"

// Dialect selects the provider wire format.
type Dialect int

const (
	// DialectS3 is the S3-compatible XML dialect.
	DialectS3 Dialect = iota

	// DialectAzure is the Azure Blob XML dialect.
	DialectAzure
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case DialectS3:
		return "s3"
	case DialectAzure:
		return "azure"
	}
	return fmt.Sprintf("dialect(%d)", int(d))
}

// ParseDialect converts a dialect name ("s3", "azure") to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "s3":
		return DialectS3, nil
	case "azure":
		return DialectAzure, nil
	}
	return DialectS3, fmt.Errorf("unknown dialect %q (supported: s3, azure)", s)
}

// taggingRoot returns the root element name for tag documents.
//
// S3 wraps the tag set in <Tagging>, Azure in <Tags>; the inner structure
// is byte-identical between the two.
func (d Dialect) taggingRoot() string {
	if d == DialectAzure {
		return "Tags"
	}
	return "Tagging"
}
