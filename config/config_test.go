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

package config_test

import (
	"log/slog"
	"testing"

	"golang.org/x/text/language"

	"dirpx.dev/objprint/apis"
	"dirpx.dev/objprint/config"
	"dirpx.dev/objprint/style"
)

func TestDefaultConfigValues(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "fr_FR.UTF-8")

	got := config.DefaultConfig()

	if got.Indent != config.DefaultIndent {
		t.Fatalf("Indent = %q, want %q", got.Indent, config.DefaultIndent)
	}
	if got.CachePolicy != config.DefaultCachePolicy {
		t.Fatalf("CachePolicy = %v, want %v", got.CachePolicy, config.DefaultCachePolicy)
	}
	if got.Locale != language.MustParse("fr-FR") {
		t.Fatalf("Locale = %v, want fr-FR", got.Locale)
	}
	if got.Style != nil || got.Logger != nil {
		t.Fatalf("Style/Logger = %v/%v, want nil/nil", got.Style, got.Logger)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithIndent(t *testing.T) {
	c := config.NewConfig(config.WithIndent("  "))
	if c.Indent != "  " {
		t.Fatalf("Indent = %q, want two spaces", c.Indent)
	}

	c2 := config.NewConfig(config.WithIndent(""))
	if c2.Indent != config.DefaultIndent {
		t.Fatalf("Indent = %q, want default %q", c2.Indent, config.DefaultIndent)
	}
}

func TestWithLocaleStyleCacheLogger(t *testing.T) {
	l := slog.New(slog.DiscardHandler)
	c := config.NewConfig(
		config.WithLocale(language.German),
		config.WithStyle(style.Compact{}),
		config.WithCachePolicy(apis.None),
		config.WithLogger(l),
	)

	if c.Locale != language.German {
		t.Errorf("Locale = %v, want de", c.Locale)
	}
	if c.Style != (style.Compact{}) {
		t.Errorf("Style = %v, want Compact", c.Style)
	}
	if c.CachePolicy != apis.None {
		t.Errorf("CachePolicy = %v, want None", c.CachePolicy)
	}
	if c.Logger != l {
		t.Errorf("Logger not applied")
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithIndent("a"),
		config.WithIndent("b"),
		config.WithCachePolicy(apis.None),
		config.WithCachePolicy(apis.Invalidate),
	)

	if c.Indent != "b" {
		t.Errorf("Indent = %q, want b (last option wins)", c.Indent)
	}
	if c.CachePolicy != apis.Invalidate {
		t.Errorf("CachePolicy = %v, want Invalidate (last option wins)", c.CachePolicy)
	}
}

func TestCurrentLocale_Precedence(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
	if got := config.CurrentLocale(); got != language.Und {
		t.Fatalf("no env: got %v, want und", got)
	}

	t.Setenv("LANG", "en_GB.UTF-8")
	t.Setenv("LC_MESSAGES", "pt_BR")
	if got := config.CurrentLocale(); got != language.BrazilianPortuguese {
		t.Fatalf("LC_MESSAGES over LANG: got %v, want pt-BR", got)
	}

	t.Setenv("LC_ALL", "ja_JP.eucJP")
	if got := config.CurrentLocale(); got != language.MustParse("ja-JP") {
		t.Fatalf("LC_ALL first: got %v, want ja-JP", got)
	}
}

func TestParseLocale(t *testing.T) {
	cases := []struct {
		in   string
		want language.Tag
	}{
		{"de_DE.UTF-8@euro", language.MustParse("de-DE")},
		{"en-US", language.AmericanEnglish},
		{"C", language.Und},
		{"POSIX", language.Und},
		{"C.UTF-8", language.Und},
		{"", language.Und},
		{"!!", language.Und},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := config.ParseLocale(tc.in); got != tc.want {
				t.Fatalf("ParseLocale(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
