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

package handlers

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"dirpx.dev/objprint/apis"
	uref "dirpx.dev/objprint/utils/reflect"
)

// TagName is the struct tag read by the Struct harvester.
const TagName = "objprint"

// NewStructHarvester creates an apis.FieldHarvester for struct types.
func NewStructHarvester() apis.FieldHarvester {
	return structHarvester{}
}

// structHarvester extracts exported fields in declaration order.
type structHarvester struct{}

// Ensure structHarvester implements apis.FieldHarvester.
var _ apis.FieldHarvester = structHarvester{}

// fieldPlan is the precomputed list of fields harvested for a struct type.
type fieldPlan []plannedField

type plannedField struct {
	index int
	name  string
}

// fieldPlanCache caches field plans by struct type.
var fieldPlanCache sync.Map // key: reflect.Type, val: fieldPlan

// CanHandleType reports whether t is a struct.
func (structHarvester) CanHandleType(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Struct
}

// Harvest returns the exported fields of v.
func (structHarvester) Harvest(v any) []apis.Field {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Struct {
		return nil
	}
	plan := planFor(rv.Type())
	out := make([]apis.Field, 0, len(plan))
	for _, pf := range plan {
		out = append(out, apis.Field{Name: pf.name, Value: rv.Field(pf.index).Interface()})
	}
	return out
}

// planFor resolves the field plan for t with memoization.
func planFor(t reflect.Type) fieldPlan {
	if v, ok := fieldPlanCache.Load(t); ok {
		return v.(fieldPlan)
	}

	plan := make(fieldPlan, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup(TagName); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		plan = append(plan, plannedField{index: i, name: name})
	}

	v, _ := fieldPlanCache.LoadOrStore(t, plan)
	return v.(fieldPlan)
}

// NewMapHarvester creates an apis.FieldHarvester for map types.
func NewMapHarvester() apis.FieldHarvester {
	return mapHarvester{}
}

// mapHarvester exposes map entries as fields named after their keys.
type mapHarvester struct{}

// Ensure mapHarvester implements apis.FieldHarvester.
var _ apis.FieldHarvester = mapHarvester{}

// CanHandleType reports whether t is a map.
func (mapHarvester) CanHandleType(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Map
}

// Harvest returns the entries of v ordered by key text. Keys with the same
// text are ordered by key type name, then by value text.
func (mapHarvester) Harvest(v any) []apis.Field {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil
	}
	type entry struct {
		field   apis.Field
		keyType string
		value   string
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, value := iter.Key().Interface(), iter.Value().Interface()
		entries = append(entries, entry{
			field:   apis.Field{Name: fmt.Sprint(key), Value: value},
			keyType: fmt.Sprintf("%T", key),
			value:   fmt.Sprint(value),
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Or(
			cmp.Compare(a.field.Name, b.field.Name),
			cmp.Compare(a.keyType, b.keyType),
			cmp.Compare(a.value, b.value),
		)
	})
	out := make([]apis.Field, len(entries))
	for i, e := range entries {
		out[i] = e.field
	}
	return out
}

// NewIndirectHarvester creates an apis.FieldHarvester for pointer types.
// It accepts a pointer when another harvester of the owning registry
// accepts the pointed-to type, and delegates to that harvester.
//
// The harvester is an apis.HarvesterBinder: until a registry binds it, it
// accepts nothing.
func NewIndirectHarvester() apis.FieldHarvester {
	return &indirectHarvester{}
}

// indirectHarvester inspects its peers through the read-only view of the
// registry it is bound to.
type indirectHarvester struct {
	r apis.Resolver
}

// Ensure indirectHarvester implements apis.FieldHarvester and apis.HarvesterBinder.
var (
	_ apis.FieldHarvester  = (*indirectHarvester)(nil)
	_ apis.HarvesterBinder = (*indirectHarvester)(nil)
)

// BindHarvester returns a copy bound to r.
func (*indirectHarvester) BindHarvester(r apis.Resolver) apis.FieldHarvester {
	return &indirectHarvester{r: r}
}

// CanHandleType reports whether t is a pointer whose element type is
// accepted by a peer harvester.
func (h *indirectHarvester) CanHandleType(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Pointer {
		return false
	}
	elem, err := uref.IndirectType(t, 0)
	if err != nil {
		return false
	}
	_, ok := h.peer(elem)
	return ok
}

// Harvest dereferences v and lets the peer harvest the element.
// A nil pointer has no fields.
func (h *indirectHarvester) Harvest(v any) []apis.Field {
	rv, err := uref.Indirect(reflect.ValueOf(v), 0)
	if err != nil {
		return nil
	}
	p, ok := h.peer(rv.Type())
	if !ok {
		return nil
	}
	return p.Harvest(rv.Interface())
}

// peer returns the first harvester other than h that accepts t.
func (h *indirectHarvester) peer(t reflect.Type) (apis.FieldHarvester, bool) {
	if h.r == nil {
		return nil, false
	}
	for _, p := range h.r.FieldHarvesters() {
		if self, ok := p.(*indirectHarvester); ok && self == h {
			continue
		}
		if p.CanHandleType(t) {
			return p, true
		}
	}
	return nil, false
}
