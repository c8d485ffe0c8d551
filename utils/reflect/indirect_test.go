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

package reflect_test

import (
	"errors"
	"reflect"
	"testing"

	uref "dirpx.dev/objprint/utils/reflect"
)

// Local test types.
type A struct{ N int }

func TestTypeOf(t *testing.T) {
	if got := uref.TypeOf(nil); got != nil {
		t.Fatalf("TypeOf(nil) = %v, want nil", got)
	}
	if got := uref.TypeOf(A{}); got != reflect.TypeOf(A{}) {
		t.Fatalf("TypeOf(A{}) = %v", got)
	}
}

func TestIndirectType(t *testing.T) {
	pp := &A{}
	cases := []struct {
		name    string
		typ     reflect.Type
		max     int
		want    reflect.Type
		wantErr error
	}{
		{"plain", reflect.TypeOf(A{}), 0, reflect.TypeOf(A{}), nil},
		{"ptr", reflect.TypeOf(&A{}), 0, reflect.TypeOf(A{}), nil},
		{"ptr ptr", reflect.TypeOf(&pp), 0, reflect.TypeOf(A{}), nil},
		{"ptr ptr tight", reflect.TypeOf(&pp), 1, nil, uref.ErrReflectTooDeep},
		{"slice untouched", reflect.TypeOf([]*A{}), 0, reflect.TypeOf([]*A{}), nil},
		{"nil", nil, 0, nil, uref.ErrReflectNilType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.IndirectType(tc.typ, tc.max)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIndirect(t *testing.T) {
	a := &A{N: 7}
	var iface any = a
	var nilPtr *A

	got, err := uref.Indirect(reflect.ValueOf(&a), 0)
	if err != nil || got.Interface().(A).N != 7 {
		t.Fatalf("Indirect(**A) = (%v, %v), want A{7}", got, err)
	}

	got, err = uref.Indirect(reflect.ValueOf(&iface).Elem(), 0)
	if err != nil || got.Type() != reflect.TypeOf(A{}) {
		t.Fatalf("Indirect(interface) = (%v, %v), want A", got, err)
	}

	if _, err := uref.Indirect(reflect.ValueOf(nilPtr), 0); !errors.Is(err, uref.ErrReflectNilValue) {
		t.Fatalf("nil pointer: err = %v, want ErrReflectNilValue", err)
	}
	if _, err := uref.Indirect(reflect.Value{}, 0); !errors.Is(err, uref.ErrReflectNilValue) {
		t.Fatalf("invalid value: err = %v, want ErrReflectNilValue", err)
	}
	if _, err := uref.Indirect(reflect.ValueOf(&a), 1); !errors.Is(err, uref.ErrReflectTooDeep) {
		t.Fatalf("tight limit: err = %v, want ErrReflectTooDeep", err)
	}
}
