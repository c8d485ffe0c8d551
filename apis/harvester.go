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

package apis

import "reflect"

// FieldHarvester extracts the fields of a value for structural rendering.
type FieldHarvester interface {
	// CanHandleType reports whether the harvester extracts fields of type t.
	CanHandleType(t reflect.Type) bool
	// Harvest returns the fields of v in rendering order.
	Harvest(v any) []Field
}

// Field is a single (name, value) pair produced by a FieldHarvester.
type Field struct {
	// Name is the display name of the field.
	Name string
	// Value is the field value, rendered recursively by the printer.
	Value any
}

// HarvesterBinder is the FieldHarvester counterpart of ConverterBinder.
type HarvesterBinder interface {
	BindHarvester(r Resolver) FieldHarvester
}
