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

package style_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/objprint/style"
)

func TestBraces(t *testing.T) {
	r := require.New(t)
	b := style.NewBraces("  ")

	r.Equal("braces", b.Name())
	r.Equal("  ", b.Increment())
	r.Equal("", b.Indent(0))
	r.Equal("", b.Indent(-3))
	r.Equal("      ", b.Indent(3))
	r.Equal("Person {", b.Open("Person"))
	r.Equal("{", b.Open(""))
	r.Equal("    }", b.Close(2))
	r.Equal("Name = ", b.Field("Name"))
	r.Equal("\n", b.Separator())
}

func TestCompact(t *testing.T) {
	r := require.New(t)
	var c style.Compact

	r.Equal("compact", c.Name())
	r.Equal("", c.Indent(5))
	r.Equal("Person(", c.Open("Person"))
	r.Equal(")", c.Close(1))
	r.Equal("Name=", c.Field("Name"))
	r.Equal(", ", c.Separator())
}

func TestLookup(t *testing.T) {
	r := require.New(t)

	s, ok := style.Lookup(" Braces ", "\t")
	r.True(ok)
	r.Equal(style.NewBraces("\t"), s)

	s, ok = style.Lookup("compact", "\t")
	r.True(ok)
	r.Equal(style.Compact{}, s)

	s, ok = style.Lookup("yaml", "\t")
	r.False(ok)
	r.Nil(s)
}
