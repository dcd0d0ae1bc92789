package envelope

import (
	"net/textproto"
	"slices"
	"sort"
)

// Headers maps transport header names to one or more values. Keys are
// stored in canonical MIME form, so lookups are case-insensitive.
type Headers map[string][]string

// Get returns the first value for key, or "".
func (h Headers) Get(key string) string {
	if v := h[textproto.CanonicalMIMEHeaderKey(key)]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Values returns a copy of all values for key.
func (h Headers) Values(key string) []string {
	return slices.Clone(h[textproto.CanonicalMIMEHeaderKey(key)])
}

// Keys returns the header names in sorted order.
func (h Headers) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy with canonical keys. Keys without values are
// dropped; if none remain the clone is nil.
func (h Headers) Clone() Headers {
	if len(h) == 0 {
		return nil
	}
	out := make(Headers, len(h))
	for k, v := range h {
		if len(v) == 0 {
			continue
		}
		ck := textproto.CanonicalMIMEHeaderKey(k)
		out[ck] = append(out[ck], v...)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (h Headers) add(key string, values ...string) Headers {
	if len(values) == 0 {
		return h
	}
	if h == nil {
		h = make(Headers)
	}
	ck := textproto.CanonicalMIMEHeaderKey(key)
	h[ck] = append(h[ck], values...)
	return h
}
