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

package router

import (
	"fmt"
	"reflect"

	"dirpx.dev/pile/apis"
	"dirpx.dev/pile/naming"
	uref "dirpx.dev/pile/utils/reflect"
)

// New wraps l into an apis.Router bound to the raw type T.
// It returns nil if l is nil.
func New[T, R any](l apis.Loader[T, R]) apis.Router {
	if l == nil {
		return nil
	}
	return &router[T, R]{
		l:   l,
		raw: reflect.TypeFor[T](),
		out: reflect.TypeFor[R](),
	}
}

// Func is shorthand for New(apis.LoaderFunc[T, R](f)).
func Func[T, R any](f func(raw T) R) apis.Router {
	if f == nil {
		return nil
	}
	return New[T, R](apis.LoaderFunc[T, R](f))
}

// router downcasts the opaque raw value back to T before loading it.
type router[T, R any] struct {
	l   apis.Loader[T, R]
	raw reflect.Type
	out reflect.Type
}

var _ apis.Router = (*router[struct{}, struct{}])(nil)

// Route loads raw, which must be a T. A nil raw stands for the zero T when
// T is nilable (interface, pointer, ...). Anything else means a dispatcher
// routed a foreign value here, which is a broken invariant, not a caller
// error, so it panics.
func (r *router[T, R]) Route(raw any) any {
	if raw == nil {
		if !uref.Nilable(r.raw) {
			panic(fmt.Sprintf("pile(router): loader for %s received nil", naming.Of(r.raw)))
		}
		var zero T
		return r.l.Load(zero)
	}
	v, ok := raw.(T)
	if !ok {
		panic(fmt.Sprintf("pile(router): loader for %s received %s", naming.Of(r.raw), uref.TypeString(raw)))
	}
	return r.l.Load(v)
}

// Raw returns reflect.TypeFor[T]().
func (r *router[T, R]) Raw() reflect.Type { return r.raw }

// Transformed returns reflect.TypeFor[R]().
func (r *router[T, R]) Transformed() reflect.Type { return r.out }
