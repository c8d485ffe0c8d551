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

// Package style provides the stock output-formatting strategies.
//
// A style decides the textual layout of structured values. The registry
// treats it as an opaque value: it stores the style, copies it into clones
// and hands it to converters through apis.RenderContext.
package style

import (
	"strings"

	"dirpx.dev/objprint/apis"
)

const (
	// BracesName is the configuration name of the Braces style.
	BracesName = "braces"
	// CompactName is the configuration name of the Compact style.
	CompactName = "compact"
)

// Lookup returns the stock style registered under name, built with the given
// indentation increment. Matching is case-insensitive.
func Lookup(name, indent string) (apis.Style, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BracesName:
		return NewBraces(indent), true
	case CompactName:
		return Compact{}, true
	default:
		return nil, false
	}
}

// NewBraces returns a multi-line brace style indenting by indent per level.
func NewBraces(indent string) Braces {
	return Braces{indent: indent}
}

// Braces lays structured values out as
//
//	Person {
//		Name = Ada
//		Age = 36
//	}
type Braces struct {
	indent string
}

// Ensure Braces implements apis.Style.
var _ apis.Style = Braces{}

// Name returns BracesName.
func (Braces) Name() string { return BracesName }

// Increment returns the indentation increment the style was built with.
func (b Braces) Increment() string { return b.indent }

// Indent repeats the increment depth times.
func (b Braces) Indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(b.indent, depth)
}

// Open returns "<typeName> {".
func (Braces) Open(typeName string) string {
	if typeName == "" {
		return "{"
	}
	return typeName + " {"
}

// Close returns the closing brace indented for depth.
func (b Braces) Close(depth int) string {
	return b.Indent(depth) + "}"
}

// Field returns "<name> = ".
func (Braces) Field(name string) string { return name + " = " }

// Separator returns a newline.
func (Braces) Separator() string { return "\n" }

// Compact lays structured values out on a single line:
//
//	Person(Name=Ada, Age=36)
type Compact struct{}

// Ensure Compact implements apis.Style.
var _ apis.Style = Compact{}

// Name returns CompactName.
func (Compact) Name() string { return CompactName }

// Indent is always empty.
func (Compact) Indent(int) string { return "" }

// Open returns "<typeName>(".
func (Compact) Open(typeName string) string { return typeName + "(" }

// Close returns ")".
func (Compact) Close(int) string { return ")" }

// Field returns "<name>=".
func (Compact) Field(name string) string { return name + "=" }

// Separator returns ", ".
func (Compact) Separator() string { return ", " }
