// Package jsoncodec registers a gRPC codec that encodes messages as JSON.
// Clients select it with the "json" content-subtype (application/grpc+json); other services on the
// same server keep using protobuf.
package jsoncodec

import (
	"encoding/json"
	"google.golang.org/grpc/encoding"
)

const Name = "json"

type codec struct{}

func init() {
	encoding.RegisterCodec(codec{})
}

func (codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (codec) Name() string {
	return Name
}
