// Package codec は gRPC の content-subtype "json" を提供します。
// proto.Message は protojson、それ以外の Go 構造体は encoding/json で符号化します。
package codec

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Name は登録される content-subtype です。クライアントは grpc.CallContentSubtype(Name) を指定します。
const Name = "json"

// JSON は grpc/encoding.Codec の実装です。
type JSON struct{}

var (
	marshalOptions   = protojson.MarshalOptions{UseProtoNames: true}
	unmarshalOptions = protojson.UnmarshalOptions{DiscardUnknown: true}
)

func init() {
	encoding.RegisterCodec(JSON{})
}

// Marshal は v を JSON に変換します。
func (JSON) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return marshalOptions.Marshal(m)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: marshal %T: %w", v, err)
	}
	return data, nil
}

// Unmarshal は JSON を v に復元します。空のペイロードはゼロ値として扱います。
func (JSON) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if m, ok := v.(proto.Message); ok {
		return unmarshalOptions.Unmarshal(data, m)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name は content-subtype を返します。
func (JSON) Name() string {
	return Name
}
