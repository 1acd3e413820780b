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

package pile

import (
	"errors"
	"reflect"

	"go.uber.org/zap"

	"dirpx.dev/pile/apis"
	"dirpx.dev/pile/config"
	"dirpx.dev/pile/dispatch"
	"dirpx.dev/pile/naming"
	"dirpx.dev/pile/router"
	"dirpx.dev/pile/store"
	uref "dirpx.dev/pile/utils/reflect"
)

// ErrNilLoader is returned when a nil loader is registered.
var ErrNilLoader = errors.New("pile: nil loader provided")

// New constructs an empty, single-owner store configured by opts.
func New(opts ...config.Option) apis.Store {
	return store.New(config.NewConfig(opts...), nil)
}

// NewSynchronized is like New but safe for concurrent use.
func NewSynchronized(opts ...config.Option) apis.Store {
	return store.Synchronized(New(opts...))
}

// SetLogger routes dispatch and store logs to l. A nil l silences them.
func SetLogger(l *zap.Logger) {
	dispatch.SetLogger(l)
	store.SetLogger(l)
}

// Register binds l to the raw type T in s, replacing any loader already
// registered for T.
func Register[T, R any](s apis.Store, l apis.Loader[T, R]) error {
	r := router.New[T, R](l)
	if r == nil {
		return ErrNilLoader
	}
	return s.Register(reflect.TypeFor[T](), r)
}

// RegisterFunc is Register for a plain function.
func RegisterFunc[T, R any](s apis.Store, f func(raw T) R) error {
	if f == nil {
		return ErrNilLoader
	}
	return Register[T, R](s, apis.LoaderFunc[T, R](f))
}

// MustRegister is like Register but panics on error.
func MustRegister[T, R any](s apis.Store, l apis.Loader[T, R]) {
	if err := Register(s, l); err != nil {
		panic(err)
	}
}

// Add transforms v with the loader registered for T and stores the result.
// It returns the id of the new slot, or an error wrapping
// apis.ErrMissingLoader (or apis.ErrDuplicateEntity) with nothing stored.
func Add[T any](s apis.Store, v T) (apis.ID, error) {
	return s.Add(reflect.TypeFor[T](), v)
}

// MustAdd is like Add but panics on error.
func MustAdd[T any](s apis.Store, v T) apis.ID {
	id, err := Add(s, v)
	if err != nil {
		panic(err)
	}
	return id
}

// Get returns the transformed value stored for raw type T under id.
//
// It fails with apis.ErrUnknownSlot when (T, id) was never populated and
// with apis.ErrTypeMismatch unless R is exactly the type the loader
// produced. An interface the value happens to satisfy is not enough. A
// loader that produced a nil value reads back as the zero R.
func Get[T, R any](s apis.Store, id apis.ID) (R, error) {
	var zero R
	res, err := s.Get(reflect.TypeFor[T](), id)
	if err != nil {
		return zero, err
	}
	want := reflect.TypeFor[R]()
	if res.Type == want {
		if res.Value == nil {
			return zero, nil
		}
		if r, ok := res.Value.(R); ok {
			return r, nil
		}
	}
	got := uref.TypeString(res.Value)
	if res.Type != nil {
		got = res.Type.String()
	}
	return zero, &apis.Error{
		Op:    "get",
		Kind:  naming.For[T](),
		ID:    id,
		HasID: true,
		Want:  want.String(),
		Got:   got,
		Err:   apis.ErrTypeMismatch,
	}
}

// MustGet is like Get but panics on error.
func MustGet[T, R any](s apis.Store, id apis.ID) R {
	r, err := Get[T, R](s, id)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the id of the T resource whose raw value reported
// entityID. The store must have been built with entity indexing.
func Lookup[T any](s apis.Store, entityID string) (apis.ID, bool) {
	return s.Lookup(reflect.TypeFor[T](), entityID)
}

// IDs returns the ids stored for raw type T in ascending order.
func IDs[T any](s apis.Store) []apis.ID {
	return s.IDs(reflect.TypeFor[T]())
}

// All returns every transformed value stored for T, in id order.
func All[T, R any](s apis.Store) ([]R, error) {
	ids := IDs[T](s)
	out := make([]R, 0, len(ids))
	for _, id := range ids {
		r, err := Get[T, R](s, id)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
