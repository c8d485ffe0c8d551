/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reflect

import (
	"errors"
	"reflect"
)

// DefaultMaxUnwrap limits pointer/interface unwrapping when callers pass a
// non-positive depth. A value of 8 should be sufficient for all practical purposes.
const DefaultMaxUnwrap = 8

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNilValue is returned when unwrapping reaches a nil pointer or
	// interface, or when the input value is invalid.
	ErrReflectNilValue = errors.New("reflect: nil value reached while unwrapping")
	// ErrReflectTooDeep indicates that the value is still a pointer or
	// interface after the maximum number of unwrap steps.
	ErrReflectTooDeep = errors.New("reflect: unwrap depth exceeded")
)

// TypeOf is reflect.TypeOf that is explicit about nil: a nil interface has no type.
func TypeOf(v any) reflect.Type {
	if v == nil {
		return nil
	}
	return reflect.TypeOf(v)
}

// IndirectType strips pointer levels from t and returns the pointed-to type.
// Non-pointer types are returned unchanged.
//
// If maxUnwrap <= 0, DefaultMaxUnwrap is used.
func IndirectType(t reflect.Type, maxUnwrap int) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if maxUnwrap <= 0 {
		maxUnwrap = DefaultMaxUnwrap
	}
	for i := 0; i < maxUnwrap; i++ {
		if t.Kind() != reflect.Pointer {
			return t, nil
		}
		t = t.Elem()
	}
	if t.Kind() == reflect.Pointer {
		return nil, ErrReflectTooDeep
	}
	return t, nil
}

// Indirect unwraps pointers and interfaces and returns the concrete value
// they lead to.
//
// Unwrapping policy:
//   - ptr/interface -> Elem(); a nil pointer or interface is an error.
//   - default: the value is returned as is.
//
// If maxUnwrap <= 0, DefaultMaxUnwrap is used.
func Indirect(v reflect.Value, maxUnwrap int) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Value{}, ErrReflectNilValue
	}
	if maxUnwrap <= 0 {
		maxUnwrap = DefaultMaxUnwrap
	}
	for i := 0; i < maxUnwrap; i++ {
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}, ErrReflectNilValue
			}
			v = v.Elem()
		default:
			return v, nil
		}
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return reflect.Value{}, ErrReflectTooDeep
	}
	return v, nil
}
