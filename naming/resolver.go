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
	"reflect"

	"dirpx.dev/pile/apis"
)

// NewResolver constructs an apis.Resolver that tries the given strategies in
// order. Nil strategies are ignored. The returned resolver is safe for
// concurrent use provided strategies themselves are.
func NewResolver(strategies ...apis.Strategy) apis.Resolver {
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving resolver over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Name runs strategies in order until one handles t.
func (r chain) Name(t reflect.Type) string {
	for _, s := range r.strats {
		if name, ok := s.TryName(t); ok {
			return name
		}
	}
	return ""
}

var (
	defaultTable    = NewTable()
	defaultResolver = NewResolver(
		TableStrategy(defaultTable),
		NamerStrategy(),
		ReflectStrategy(),
	)
)

// Default returns the process-wide resolver: explicit names registered via
// Register, then apis.Namer, then reflection.
func Default() apis.Resolver {
	return defaultResolver
}

// Register adds an explicit kind name for t to the process-wide table.
func Register(t reflect.Type, name string) error {
	return defaultTable.Register(t, name)
}

// MustRegister is like Register but panics on error.
// Intended for package init of plugin packages.
func MustRegister(t reflect.Type, name string) {
	if err := Register(t, name); err != nil {
		panic(err)
	}
}

// Of returns the kind name of t using the process-wide resolver.
func Of(t reflect.Type) string {
	return defaultResolver.Name(t)
}

// For returns the kind name of T using the process-wide resolver.
func For[T any]() string {
	return Of(reflect.TypeFor[T]())
}
