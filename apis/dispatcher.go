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

// Dispatcher maps raw types to Routers and invokes them without knowing
// the concrete raw or transformed types.
type Dispatcher interface {
	// Register binds r to the raw type t. A second registration for the
	// same t silently replaces the first. Implementations reject a nil t,
	// a nil r, or a router whose Raw() differs from t.
	Register(t reflect.Type, r Router) error
	// Dispatch routes raw through the router registered for t.
	// It returns an *Error wrapping ErrMissingLoader when none is registered.
	Dispatch(t reflect.Type, raw any) (any, error)
	// Lookup returns the router registered for t, if any.
	Lookup(t reflect.Type) (Router, bool)
	// Entries returns a snapshot for diagnostics/docs, ordered by kind name.
	Entries() []Route
	// Count returns the number of registered routes.
	Count() int
}
