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

package registry_test

import (
	"reflect"
	"sync/atomic"

	"dirpx.dev/objprint/apis"
)

// Local test types.
type T1 struct{}
type T2 struct{}
type T3 struct{}

var (
	tInt = reflect.TypeOf(0)
	tStr = reflect.TypeOf("")
	tT1  = reflect.TypeOf(T1{})
	tT2  = reflect.TypeOf(T2{})
	tT3  = reflect.TypeOf(T3{})
)

// fakeConverter accepts a fixed set of types and counts capability checks.
type fakeConverter struct {
	name  string
	types map[reflect.Type]bool
	calls atomic.Int64
}

func newConverter(name string, types ...reflect.Type) *fakeConverter {
	c := &fakeConverter{name: name, types: make(map[reflect.Type]bool, len(types))}
	for _, t := range types {
		c.types[t] = true
	}
	return c
}

func (c *fakeConverter) CanHandleType(t reflect.Type) bool {
	c.calls.Add(1)
	return c.types[t]
}

func (c *fakeConverter) Render(any, apis.RenderContext) string { return c.name }

// fakeHarvester is the FieldHarvester counterpart of fakeConverter.
type fakeHarvester struct {
	name  string
	types map[reflect.Type]bool
	calls atomic.Int64
}

func newHarvester(name string, types ...reflect.Type) *fakeHarvester {
	h := &fakeHarvester{name: name, types: make(map[reflect.Type]bool, len(types))}
	for _, t := range types {
		h.types[t] = true
	}
	return h
}

func (h *fakeHarvester) CanHandleType(t reflect.Type) bool {
	h.calls.Add(1)
	return h.types[t]
}

func (h *fakeHarvester) Harvest(any) []apis.Field {
	return []apis.Field{{Name: "harvester", Value: h.name}}
}

// bindingHarvester records the resolver it was bound to.
type bindingHarvester struct {
	owner apis.Resolver
}

func (h *bindingHarvester) BindHarvester(r apis.Resolver) apis.FieldHarvester {
	return &bindingHarvester{owner: r}
}

func (h *bindingHarvester) CanHandleType(reflect.Type) bool { return h.owner != nil }

func (h *bindingHarvester) Harvest(any) []apis.Field { return nil }

// bindingConverter records the resolver it was bound to.
type bindingConverter struct {
	owner apis.Resolver
}

func (c *bindingConverter) BindConverter(r apis.Resolver) apis.ValueConverter {
	return &bindingConverter{owner: r}
}

func (c *bindingConverter) CanHandleType(reflect.Type) bool { return c.owner != nil }

func (c *bindingConverter) Render(any, apis.RenderContext) string { return "bound" }
