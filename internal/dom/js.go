// SPDX-License-Identifier: Unlicense OR MIT

//go:build js && wasm

package dom

import "syscall/js"

type jsValue struct {
	v js.Value
}

// New returns a backend drawing into the canvas element tagged with
// data-raw-handle="id", or into the default canvas.
func New(id uint32) (*Backend, error) {
	return newBackend(jsValue{js.Global()}, id)
}

func (j jsValue) Get(name string) value {
	return jsValue{j.v.Get(name)}
}

func (j jsValue) Set(name string, v any) {
	j.v.Set(name, unwrap(v))
}

func (j jsValue) Call(name string, args ...any) value {
	for i, a := range args {
		args[i] = unwrap(a)
	}
	return jsValue{j.v.Call(name, args...)}
}

func (j jsValue) Float() float64 {
	return j.v.Float()
}

func (j jsValue) Truthy() bool {
	return j.v.Truthy()
}

func unwrap(v any) any {
	if j, ok := v.(jsValue); ok {
		return j.v
	}
	return v
}
