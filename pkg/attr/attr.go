// Package attr models per-object metadata attributes for the storage
// abstraction: a typed, extensible key taxonomy and a unique-keyed
// collection mapping each key to an optional value.
//
// The collection preserves three distinct states per key: absent (no
// opinion), present with no value (explicit intent to clear), and present
// with a value. Outer layers rely on this distinction when deciding which
// headers to write, so the collection never collapses a declared-but-unset
// key into absence.
package attr

import "iter"

// keyKind discriminates the Key variants.
type keyKind uint8

const (
	kindContentDisposition keyKind = iota
	kindContentEncoding
	kindContentLanguage
	kindContentType
	kindCacheControl
	kindMetadata
	kindProviderSpecific
)

// Key identifies an object attribute.
//
// Well-known keys cover the standard content headers. Two open variants
// extend the taxonomy: Metadata for caller-defined keys and
// ProviderSpecific for provider-defined keys. Keys are comparable; two
// keys are equal iff their variant and carried name (for the open
// variants) both match, so Key is usable directly as a map key.
type Key struct {
	kind keyKind
	name string
}

// Well-known attribute keys.
var (
	// ContentDisposition specifies how the object should be handled by a
	// browser.
	ContentDisposition = Key{kind: kindContentDisposition}

	// ContentEncoding specifies the encodings applied to the object.
	ContentEncoding = Key{kind: kindContentEncoding}

	// ContentLanguage specifies the language of the object.
	ContentLanguage = Key{kind: kindContentLanguage}

	// ContentType specifies the MIME type of the object.
	ContentType = Key{kind: kindContentType}

	// CacheControl overrides the cache control policy of the object.
	CacheControl = Key{kind: kindCacheControl}
)

// Metadata returns the key for a user-defined metadata field.
func Metadata(name string) Key {
	return Key{kind: kindMetadata, name: name}
}

// ProviderSpecific returns the key for a provider-defined attribute.
func ProviderSpecific(name string) Key {
	return Key{kind: kindProviderSpecific, name: name}
}

// String returns a human-readable form of the key.
func (k Key) String() string {
	switch k.kind {
	case kindContentDisposition:
		return "Content-Disposition"
	case kindContentEncoding:
		return "Content-Encoding"
	case kindContentLanguage:
		return "Content-Language"
	case kindContentType:
		return "Content-Type"
	case kindCacheControl:
		return "Cache-Control"
	case kindMetadata:
		return "metadata:" + k.name
	case kindProviderSpecific:
		return "provider:" + k.name
	}
	return "unknown"
}

// Name returns the carried key for the Metadata and ProviderSpecific
// variants, and "" for well-known keys.
func (k Key) Name() string {
	return k.name
}

// Value is the value of an attribute.
//
// Go strings are immutable views, so a single constructor covers both
// static literals and runtime-built strings without copying either.
// Equality and printing are defined purely on the contained text.
type Value struct {
	text string
}

// NewValue wraps a string as an attribute value.
func NewValue(s string) Value {
	return Value{text: s}
}

// String returns the contained text.
func (v Value) String() string {
	return v.text
}

// Some returns a pointer to a set value, for use as the optional side of
// an attribute pair. A nil *Value declares a key with no value.
func Some(s string) *Value {
	v := NewValue(s)
	return &v
}

// Attributes is a unique-keyed collection of attributes.
//
// Each key maps to an optional value: a nil *Value records the key as
// declared with no value. The zero value is an empty collection ready for
// use. Attributes is not safe for concurrent mutation; construct, then
// share read-only.
type Attributes struct {
	inner map[Key]*Value
}

// Pair is a key and optional value for bulk construction.
type Pair struct {
	Key   Key
	Value *Value
}

// New returns an empty collection.
func New() Attributes {
	return Attributes{}
}

// WithCapacity returns an empty collection with space reserved for n
// attributes.
func WithCapacity(n int) Attributes {
	return Attributes{inner: make(map[Key]*Value, n)}
}

// FromPairs builds a collection from key/optional-value pairs. The last
// pair wins for a duplicate key.
func FromPairs(pairs ...Pair) Attributes {
	a := WithCapacity(len(pairs))
	for _, p := range pairs {
		a.Insert(p.Key, p.Value)
	}
	return a
}

// Insert adds or replaces the optional value for key.
//
// existed reports whether the key was already present; when it was, prev
// is the previously mapped optional value (which may itself be nil for a
// declared-but-unset key).
func (a *Attributes) Insert(key Key, value *Value) (prev *Value, existed bool) {
	if a.inner == nil {
		a.inner = make(map[Key]*Value)
	}
	prev, existed = a.inner[key]
	a.inner[key] = value
	return prev, existed
}

// Get returns the optional value for key.
//
// ok reports whether the key is present; a present key may still map to a
// nil *Value.
func (a *Attributes) Get(key Key) (value *Value, ok bool) {
	value, ok = a.inner[key]
	return value, ok
}

// Remove deletes key and returns its previous optional value, if the key
// was present. Removing an absent key is a no-op with ok == false.
func (a *Attributes) Remove(key Key) (prev *Value, ok bool) {
	prev, ok = a.inner[key]
	if ok {
		delete(a.inner, key)
	}
	return prev, ok
}

// Len returns the number of keys present, counting declared-but-unset
// keys.
func (a *Attributes) Len() int {
	return len(a.inner)
}

// IsEmpty reports whether the collection contains no keys.
func (a *Attributes) IsEmpty() bool {
	return len(a.inner) == 0
}

// Iter returns an iterator over all (key, optional value) pairs. Each call
// yields a fresh sequence; iteration order is unspecified.
func (a *Attributes) Iter() iter.Seq2[Key, *Value] {
	return func(yield func(Key, *Value) bool) {
		for k, v := range a.inner {
			if !yield(k, v) {
				return
			}
		}
	}
}

// IterSetValues returns an iterator over only the pairs whose value is
// set, skipping declared-but-unset keys.
func (a *Attributes) IterSetValues() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		for k, v := range a.inner {
			if v == nil {
				continue
			}
			if !yield(k, *v) {
				return
			}
		}
	}
}
