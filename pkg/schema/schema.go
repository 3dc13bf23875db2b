// Package schema holds the avro schema texts, their versioned Go
// representations and the schema-registry aware serdes built on them.
package schema

import "github.com/hamba/avro/v2"

// AvroEncodeFn adapts an avro schema to the encode-callback shape the
// registry serde expects.
func AvroEncodeFn(s avro.Schema) func(v any) ([]byte, error) {
	return func(v any) ([]byte, error) {
		return avro.Marshal(s, v)
	}
}

// AvroDecodeFn is the decoding counterpart of [AvroEncodeFn].
func AvroDecodeFn(s avro.Schema) func([]byte, any) error {
	return func(data []byte, v any) error {
		return avro.Unmarshal(s, data, v)
	}
}
