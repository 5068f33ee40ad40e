package product

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Document wrapper keys.
const (
	WrapperResults = "results"
	WrapperDetails = "details"
)

// ErrUnknownDocument is returned for JSON that is neither an array nor an
// object wrapping one under a known key.
var ErrUnknownDocument = errors.New("unrecognized catalog document: expected an array, {results:[...]} or {details:[...]}")

// Document is a catalog file. Records stay raw so a rewrite keeps fields
// this package does not model.
type Document struct {
	// Wrapper is the key holding the records, or "" for a bare array.
	Wrapper string
	Records []json.RawMessage
	// Extra holds the other top-level keys of a wrapped document.
	Extra map[string]json.RawMessage
}

// DecodeDocument parses a bare array or an object wrapping the records under
// "results" or "details".
func DecodeDocument(data []byte) (Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var recs []json.RawMessage
		if err := json.Unmarshal(data, &recs); err != nil {
			return Document{}, fmt.Errorf("decode records: %w", err)
		}
		return Document{Records: recs}, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}
	for _, key := range []string{WrapperResults, WrapperDetails} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var recs []json.RawMessage
		if err := json.Unmarshal(raw, &recs); err != nil {
			continue
		}
		delete(obj, key)
		return Document{Wrapper: key, Records: recs, Extra: obj}, nil
	}
	return Document{}, ErrUnknownDocument
}

// Encode writes the document back in its original shape, indented, with a
// trailing newline.
func (d Document) Encode() ([]byte, error) {
	recs := d.Records
	if recs == nil {
		recs = []json.RawMessage{}
	}
	var v any = recs
	if d.Wrapper != "" {
		obj := make(map[string]any, len(d.Extra)+1)
		for k, raw := range d.Extra {
			obj[k] = raw
		}
		obj[d.Wrapper] = recs
		v = obj
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return append(out, '\n'), nil
}

// Products decodes every record as a Product.
func (d Document) Products() ([]Product, error) {
	return decodeAll[Product](d.Records)
}

// Details decodes every record as a Detail.
func (d Document) Details() ([]Detail, error) {
	return decodeAll[Detail](d.Records)
}

// NewDocument encodes records under wrapper.
func NewDocument[T any](wrapper string, items []T) (Document, error) {
	recs := make([]json.RawMessage, len(items))
	for i := range items {
		raw, err := json.Marshal(items[i])
		if err != nil {
			return Document{}, fmt.Errorf("encode record %d: %w", i, err)
		}
		recs[i] = raw
	}
	return Document{Wrapper: wrapper, Records: recs}, nil
}

func decodeAll[T any](recs []json.RawMessage) ([]T, error) {
	out := make([]T, len(recs))
	for i, raw := range recs {
		if err := json.Unmarshal(raw, &out[i]); err != nil {
			return nil, fmt.Errorf("decode record %d: %w", i, err)
		}
	}
	return out, nil
}
