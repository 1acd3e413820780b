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

import (
	"reflect"
)

// Strategy is a pluggable kind-naming step. A Resolver chains multiple
// strategies in order (e.g., Table -> Namer -> Reflect).
type Strategy interface {
	// TryName attempts to name the raw type t.
	// It returns (name, true) if handled; otherwise ("", false) to fall through.
	TryName(t reflect.Type) (name string, handled bool)
}
