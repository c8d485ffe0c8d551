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

import (
	"reflect"

	"golang.org/x/text/language"
)

// ValueConverter renders values of the types it accepts directly to text,
// instead of letting the printer decompose them into fields.
type ValueConverter interface {
	// CanHandleType reports whether the converter renders values of type t.
	CanHandleType(t reflect.Type) bool
	// Render returns the text for v. v is always of a type accepted by
	// CanHandleType.
	Render(v any, ctx RenderContext) string
}

// RenderContext carries the per-registry settings a converter may need.
// It is passed by value.
type RenderContext struct {
	// Locale is the culture used for number and date formatting.
	Locale language.Tag
	// Indent is the indentation increment of the owning registry.
	Indent string
	// Style is the output-formatting strategy of the owning registry.
	Style Style
	// Depth is the nesting depth of the value being rendered.
	Depth int
}

// ConverterBinder is implemented by converters that need access to the
// registry that owns them. A registry calls BindConverter whenever the
// converter is added to it or copied into one of its clones, and stores the
// returned converter instead of the original.
type ConverterBinder interface {
	BindConverter(r Resolver) ValueConverter
}
