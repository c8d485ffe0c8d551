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

// Package projection provides the capability set of a registry: one place
// that answers "how would this value be rendered" without the caller
// resolving handlers itself.
package projection

import (
	"reflect"
	"strings"

	"dirpx.dev/objprint/apis"
	uref "dirpx.dev/objprint/utils/reflect"
)

// Capability is a bit set of the handler kinds that accept a type.
type Capability uint8

const (
	// Convertible means a value converter accepts the type.
	Convertible Capability = 1 << iota
	// Harvestable means a field harvester accepts the type.
	Harvestable
)

// Has reports whether all bits of o are set in c.
func (c Capability) Has(o Capability) bool { return c&o == o }

// String returns "none" or the set names joined by "|".
func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	if c.Has(Convertible) {
		parts = append(parts, "convertible")
	}
	if c.Has(Harvestable) {
		parts = append(parts, "harvestable")
	}
	return strings.Join(parts, "|")
}

// New returns a Set bound to r.
func New(r apis.Resolver) *Set {
	return &Set{r: r}
}

// Set projects values through the handlers of one resolver.
type Set struct {
	r apis.Resolver
}

// Resolver returns the resolver the set is bound to.
func (s *Set) Resolver() apis.Resolver { return s.r }

// Capabilities reports which handler kinds accept t.
func (s *Set) Capabilities(t reflect.Type) Capability {
	var c Capability
	if _, ok := s.r.ResolveValueConverter(t); ok {
		c |= Convertible
	}
	if _, ok := s.r.ResolveFieldHarvester(t); ok {
		c |= Harvestable
	}
	return c
}

// Text renders v with the converter resolved for its type.
// It returns false when v is nil or no converter accepts its type.
func (s *Set) Text(v any) (string, bool) {
	conv, ok := s.r.ResolveValueConverter(uref.TypeOf(v))
	if !ok {
		return "", false
	}
	return conv.Render(v, s.r.RenderContext()), true
}

// Fields harvests v with the harvester resolved for its type.
// It returns false when v is nil or no harvester accepts its type.
func (s *Set) Fields(v any) ([]apis.Field, bool) {
	h, ok := s.r.ResolveFieldHarvester(uref.TypeOf(v))
	if !ok {
		return nil, false
	}
	return h.Harvest(v), true
}

// FieldNames returns the names of the fields Fields would produce.
func (s *Set) FieldNames(v any) []string {
	fields, ok := s.Fields(v)
	if !ok {
		return nil
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}
