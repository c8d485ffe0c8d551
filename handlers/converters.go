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
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"dirpx.dev/objprint/apis"
)

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

// NewStringerConverter creates an apis.ValueConverter for every type that
// implements fmt.Stringer.
func NewStringerConverter() apis.ValueConverter {
	return stringerConverter{}
}

// stringerConverter is the fast path for self-describing values: if the
// type has a String method, use it and skip structural rendering.
type stringerConverter struct{}

// Ensure stringerConverter implements apis.ValueConverter.
var _ apis.ValueConverter = stringerConverter{}

// CanHandleType reports whether t implements fmt.Stringer.
func (stringerConverter) CanHandleType(t reflect.Type) bool {
	return t != nil && t.Implements(stringerType)
}

// Render calls String. A nil pointer renders as "<nil>" instead of panicking.
func (stringerConverter) Render(v any, _ apis.RenderContext) string {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "<nil>"
	}
	return v.(fmt.Stringer).String()
}

// NewScalarConverter creates an apis.ValueConverter for booleans, strings
// and real numbers. Numbers are formatted for the locale of the render
// context. Types implementing fmt.Stringer are left to the Stringer converter.
func NewScalarConverter() apis.ValueConverter {
	return scalarConverter{}
}

// scalarConverter renders the builtin scalar kinds.
type scalarConverter struct{}

// Ensure scalarConverter implements apis.ValueConverter.
var _ apis.ValueConverter = scalarConverter{}

// CanHandleType reports whether t is a scalar kind without a String method.
func (scalarConverter) CanHandleType(t reflect.Type) bool {
	if t == nil || t.Implements(stringerType) {
		return false
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Render formats v. Strings are returned verbatim.
func (scalarConverter) Render(v any, ctx apis.RenderContext) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return message.NewPrinter(ctx.Locale).Sprintf("%d", rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return message.NewPrinter(ctx.Locale).Sprintf("%d", rv.Uint())
	case reflect.Float32:
		return formatFloat(ctx, float32(rv.Float()), rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(ctx, rv.Float(), rv.Float(), 64)
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat renders f in plain decimal notation for the locale, keeping
// the shortest digits that round-trip at the given bit size. x is f as
// float32 or float64 so the formatter works at the same precision.
func formatFloat(ctx apis.RenderContext, x any, f float64, bitSize int) string {
	return message.NewPrinter(ctx.Locale).Sprint(
		number.Decimal(x, number.MaxFractionDigits(fractionDigits(f, bitSize))),
	)
}

// fractionDigits returns the number of fractional digits of the shortest
// decimal form of f.
func fractionDigits(f float64, bitSize int) int {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// DefaultTimeLayout is the layout used by NewTimeConverter when none is given.
const DefaultTimeLayout = time.RFC3339Nano

// NewTimeConverter creates an apis.ValueConverter for time.Time and
// time.Duration. An empty layout selects DefaultTimeLayout.
func NewTimeConverter(layout string) apis.ValueConverter {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return timeConverter{layout: layout}
}

// timeConverter renders instants with a fixed layout and durations with
// their String form.
type timeConverter struct {
	layout string
}

// Ensure timeConverter implements apis.ValueConverter.
var _ apis.ValueConverter = timeConverter{}

// CanHandleType reports whether t is time.Time or time.Duration.
func (timeConverter) CanHandleType(t reflect.Type) bool {
	return t == timeType || t == durationType
}

// Render formats v.
func (c timeConverter) Render(v any, _ apis.RenderContext) string {
	switch x := v.(type) {
	case time.Time:
		return x.Format(c.layout)
	case time.Duration:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// NewFuncConverter creates an apis.ValueConverter for exactly the type T,
// rendered by fn. It is the usual way to plug a one-off rendering rule
// into a registry:
//
//	reg.AddValueConverter(handlers.NewFuncConverter(func(m Money, _ apis.RenderContext) string {
//		return m.Amount.String() + " " + m.Currency
//	}))
func NewFuncConverter[T any](fn func(T, apis.RenderContext) string) apis.ValueConverter {
	return &funcConverter[T]{typ: reflect.TypeFor[T](), fn: fn}
}

// funcConverter renders one exact type with a user function.
type funcConverter[T any] struct {
	typ reflect.Type
	fn  func(T, apis.RenderContext) string
}

// CanHandleType reports whether t is T.
func (c *funcConverter[T]) CanHandleType(t reflect.Type) bool {
	return t == c.typ
}

// Render calls the user function.
func (c *funcConverter[T]) Render(v any, ctx apis.RenderContext) string {
	return c.fn(v.(T), ctx)
}
