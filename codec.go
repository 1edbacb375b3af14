// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"github.com/goccy/go-json"
	"github.com/near/borsh-go"
)

// Codec encodes call results.
type Codec interface {
	Marshal(v any) ([]byte, error)
}

// CodecFunc adapts a function to Codec.
type CodecFunc func(v any) ([]byte, error)

// Marshal calls f(v).
func (f CodecFunc) Marshal(v any) ([]byte, error) {
	return f(v)
}

var (
	// JSON encodes results as JSON.
	JSON Codec = CodecFunc(json.Marshal)
	// Borsh encodes results with Borsh.
	Borsh Codec = CodecFunc(borsh.Serialize)
)
