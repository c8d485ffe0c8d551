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
	"log/slog"

	"golang.org/x/text/language"
)

// Config carries the settings of a handler registry.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Indent is the indentation increment handed to the Style.
	// Empty means the package default.
	Indent string

	// Locale is the culture handed to converters through RenderContext.
	// language.Und means the ambient locale of the process.
	Locale language.Tag

	// Style is the output-formatting strategy. Nil means the default
	// brace style built from Indent.
	Style Style

	// CachePolicy controls memoization of value-converter resolution.
	CachePolicy CachePolicy

	// Logger receives resolution diagnostics. Nil discards them.
	Logger *slog.Logger
}
