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
	"testing"

	"dirpx.dev/pile/apis"
	"dirpx.dev/pile/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.IDScope != config.DefaultIDScope {
		t.Fatalf("IDScope = %v, want %v", got.IDScope, config.DefaultIDScope)
	}
	if got.IndexEntities != config.DefaultIndexEntities {
		t.Fatalf("IndexEntities = %v, want %v", got.IndexEntities, config.DefaultIndexEntities)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithIDScope(t *testing.T) {
	c := config.NewConfig(config.WithIDScope(apis.ScopeKind))
	if c.IDScope != apis.ScopeKind {
		t.Fatalf("IDScope = %v, want kind", c.IDScope)
	}

	c2 := config.NewConfig(config.WithIDScope(apis.Scope(42)))
	if c2.IDScope != config.DefaultIDScope {
		t.Fatalf("IDScope = %v, want default for unknown scope", c2.IDScope)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithIndexEntities(false),
		config.WithIndexEntities(true),
		config.WithIDScope(apis.ScopeKind),
		config.WithIDScope(apis.ScopeGlobal),
	)

	if !c.IndexEntities {
		t.Errorf("IndexEntities = %v, want true (last option wins)", c.IndexEntities)
	}
	if c.IDScope != apis.ScopeGlobal {
		t.Errorf("IDScope = %v, want global (last option wins)", c.IDScope)
	}
}

func TestParseScope(t *testing.T) {
	cases := []struct {
		in      string
		want    apis.Scope
		wantErr bool
	}{
		{"global", apis.ScopeGlobal, false},
		{"", apis.ScopeGlobal, false},
		{"KIND", apis.ScopeKind, false},
		{" per-kind ", apis.ScopeKind, false},
		{"tenant", 0, true},
	}
	for _, tc := range cases {
		got, err := apis.ParseScope(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseScope(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if !tc.wantErr && got != tc.want {
			t.Fatalf("ParseScope(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if s := apis.Scope(9).String(); s != "scope(9)" {
		t.Fatalf("Scope(9).String() = %q, want scope(9)", s)
	}
}
