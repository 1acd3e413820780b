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

import "reflect"

// Loader turns one raw value of type T into one transformed value of type R.
//
// T decides routing: a Store keeps exactly one Loader per raw type. R is
// opaque to the Store and only reappears when a caller asks for it.
// Load should be synchronous and must not retain raw after returning.
type Loader[T, R any] interface {
	Load(raw T) R
}

// LoaderFunc adapts an ordinary function to a Loader.
type LoaderFunc[T, R any] func(raw T) R

// Load calls f(raw).
func (f LoaderFunc[T, R]) Load(raw T) R {
	return f(raw)
}

// Router is the type-erased form of a Loader as stored by a Dispatcher.
type Router interface {
	// Route transforms raw, which must hold a value of type Raw().
	// A raw value of any other type is an internal consistency failure
	// and panics.
	Route(raw any) any
	// Raw returns the raw type this router accepts.
	Raw() reflect.Type
	// Transformed returns the type of the values Route produces.
	Transformed() reflect.Type
}

// Route is a single (raw type, router) association in a Dispatcher snapshot.
type Route struct {
	// Kind is the resolved name of Raw, for diagnostics.
	Kind string
	// Raw is the raw type the route is registered under.
	Raw reflect.Type
	// Transformed is the type produced by the route.
	Transformed reflect.Type
}
