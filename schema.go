// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// schemaReflector describes plain Go types.
var schemaReflector = &jsonschema.Reflector{}

type schemer interface {
	JSONSchema() *jsonschema.Schema
}

// Schema returns the JSON schema external consumers see for a result of type T.
//
// A PromiseOrValue[T] describes exactly as T, and a handle describes as
// null (unit). The runtime redirect to a pending handle is not visible
// here: a static description of what a call returns always reports the
// value shape, even when the call resolves through a handle.
func Schema[T any]() *jsonschema.Schema {
	var zero T
	if s, ok := any(zero).(schemer); ok {
		return s.JSONSchema()
	}
	return schemaReflector.ReflectFromType(reflect.TypeFor[T]())
}

// JSONSchema describes r as T.
func (PromiseOrValue[T]) JSONSchema() *jsonschema.Schema {
	return Schema[T]()
}

// JSONSchema describes a batch handle as unit.
func (*Promise) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "null"}
}

// JSONSchema describes a join handle as unit.
func (*Joint) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "null"}
}
