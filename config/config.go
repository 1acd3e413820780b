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

package config

import (
	"dirpx.dev/pile/apis"
)

const (
	// DefaultIDScope represents the default for IDScope.
	// One counter shared by all raw kinds, so ids are unique store-wide.
	DefaultIDScope = apis.ScopeGlobal
	// DefaultIndexEntities represents the default for IndexEntities.
	// When false, Identifier values are stored without an entity index.
	DefaultIndexEntities = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		IDScope:       DefaultIDScope,
		IndexEntities: DefaultIndexEntities,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithIDScope sets the IDScope option.
// An unknown scope resets to the default.
func WithIDScope(scope apis.Scope) Option {
	return func(c *apis.Config) {
		switch scope {
		case apis.ScopeGlobal, apis.ScopeKind:
			c.IDScope = scope
		default:
			c.IDScope = DefaultIDScope
		}
	}
}

// WithIndexEntities sets the IndexEntities option.
func WithIndexEntities(index bool) Option {
	return func(c *apis.Config) {
		c.IndexEntities = index
	}
}
