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

package dispatch

import (
	"errors"
	"reflect"
	"sort"

	"go.uber.org/zap"

	"dirpx.dev/pile/apis"
	"dirpx.dev/pile/naming"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("pile(dispatch): nil reflect.Type provided")
	// ErrNilRouter is returned when a nil router is provided.
	ErrNilRouter = errors.New("pile(dispatch): nil router provided")
	// ErrRouteMismatch indicates a router registered under a raw type other
	// than the one it downcasts to.
	ErrRouteMismatch = errors.New("pile(dispatch): router raw type does not match registration")
)

// New constructs an empty apis.Dispatcher.
//
// The dispatcher is not safe for concurrent use; owners that share it
// across goroutines serialize access themselves (see store.Synchronized).
func New() apis.Dispatcher {
	return &dispatcher{routes: make(map[reflect.Type]apis.Router)}
}

// dispatcher is a plain map from raw type to router.
type dispatcher struct {
	routes map[reflect.Type]apis.Router
}

var _ apis.Dispatcher = (*dispatcher)(nil)

// Register binds r to t, replacing any previous router for t.
func (d *dispatcher) Register(t reflect.Type, r apis.Router) error {
	if t == nil {
		return ErrNilType
	}
	if r == nil {
		return ErrNilRouter
	}
	// Routers downcast to Raw(); any other key would feed them foreign values.
	if r.Raw() != t {
		return ErrRouteMismatch
	}

	kind := naming.Of(t)
	if _, ok := d.routes[t]; ok {
		Logger().Info("replacing loader",
			zap.String("kind", kind),
			zap.Stringer("transformed", r.Transformed()))
	} else {
		Logger().Debug("registering loader",
			zap.String("kind", kind),
			zap.Stringer("transformed", r.Transformed()))
	}
	d.routes[t] = r
	return nil
}

// Dispatch routes raw through the router registered for t.
func (d *dispatcher) Dispatch(t reflect.Type, raw any) (any, error) {
	r, ok := d.routes[t]
	if !ok {
		return nil, &apis.Error{
			Op:   "dispatch",
			Kind: naming.Of(t),
			Err:  apis.ErrMissingLoader,
		}
	}
	return r.Route(raw), nil
}

// Lookup returns the router registered for t.
func (d *dispatcher) Lookup(t reflect.Type) (apis.Router, bool) {
	r, ok := d.routes[t]
	return r, ok
}

// Entries returns the registered routes ordered by kind name.
func (d *dispatcher) Entries() []apis.Route {
	out := make([]apis.Route, 0, len(d.routes))
	for t, r := range d.routes {
		out = append(out, apis.Route{
			Kind:        naming.Of(t),
			Raw:         t,
			Transformed: r.Transformed(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Raw.String() < out[j].Raw.String()
	})
	return out
}

// Count returns the number of registered routes.
func (d *dispatcher) Count() int {
	return len(d.routes)
}
