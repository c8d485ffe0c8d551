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

// Style is an output-formatting strategy: it decides how the structure of a
// value is laid out as text (braces, separators, indentation). The registry
// only stores and copies it; printers call it.
type Style interface {
	// Name identifies the style in configuration files.
	Name() string
	// Indent returns the leading whitespace for the given nesting depth.
	Indent(depth int) string
	// Open starts the block of a structured value of the given type name.
	Open(typeName string) string
	// Close ends the block opened at the given depth.
	Close(depth int) string
	// Field returns the prefix written before a field value.
	Field(name string) string
	// Separator is written between two fields of the same block.
	Separator() string
}
