package serializer

import (
	"github.com/ugorji/go/codec"

	"github.com/hyp3rd/ewrap"
)

// cborHandle is shared; a codec handle is safe for concurrent use once configured.
//
//nolint:gochecknoglobals
var cborHandle = &codec.CborHandle{}

// CBORSerializer encodes values as CBOR with ugorji/go/codec.
type CBORSerializer struct{}

// Marshal serializes the given value into a byte slice.
func (*CBORSerializer) Marshal(v any) ([]byte, error) {
	var data []byte

	err := codec.NewEncoderBytes(&data, cborHandle).Encode(v)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to marshal cbor")
	}

	return data, nil
}

// Unmarshal deserializes the given byte slice into the given value.
func (*CBORSerializer) Unmarshal(data []byte, v any) error {
	err := codec.NewDecoderBytes(data, cborHandle).Decode(v)
	if err != nil {
		return ewrap.Wrap(err, "failed to unmarshal cbor")
	}

	return nil
}
