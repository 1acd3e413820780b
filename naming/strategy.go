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

package naming

import (
	"path"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/pile/apis"
	uref "dirpx.dev/pile/utils/reflect"
)

// TableStrategy names types found in tb.
func TableStrategy(tb *Table) apis.Strategy {
	return tableStrategy{tb: tb}
}

type tableStrategy struct {
	tb *Table
}

var _ apis.Strategy = tableStrategy{}

func (s tableStrategy) TryName(t reflect.Type) (string, bool) {
	if t == nil || s.tb == nil {
		return "", false
	}
	return s.tb.Lookup(t)
}

// NamerStrategy names types implementing apis.Namer through their zero
// value. For a pointer type the element's value-receiver EntityName is used,
// so *Mesh and Mesh share the name Mesh declares.
func NamerStrategy() apis.Strategy {
	return namerStrategy{}
}

type namerStrategy struct{}

var _ apis.Strategy = namerStrategy{}

var namerType = reflect.TypeFor[apis.Namer]()

func (namerStrategy) TryName(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	// Interfaces have no zero value to call through.
	if t.Kind() == reflect.Interface || t.Kind() == reflect.Ptr || !t.Implements(namerType) {
		return "", false
	}
	name := reflect.Zero(t).Interface().(apis.Namer).EntityName()
	return name, name != ""
}

// ReflectStrategy is the universal fallback that computes "pkg.Type" from
// the nearest named type of t. It never declines a non-nil type; unnamed
// types resolve to their reflect string.
func ReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

type reflectStrategy struct{}

var _ apis.Strategy = reflectStrategy{}

// reflectCache memoizes reflect-derived names by type.
var reflectCache sync.Map // key: reflect.Type, val: string

func (reflectStrategy) TryName(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	if v, ok := reflectCache.Load(t); ok {
		return v.(string), true
	}

	name := t.String()
	if base, err := uref.Normalize(t, 0); err == nil {
		name = stripTypeParams(base.Name())
		if p := base.PkgPath(); p != "" {
			name = path.Base(p) + "." + name
		}
	}

	reflectCache.Store(t, name)
	return name, true
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
