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
	"fmt"

	"github.com/caarlos0/env/v11"

	"dirpx.dev/pile/apis"
)

// Env is the process configuration read from PILE_* environment variables.
type Env struct {
	// IDScope is "global" or "kind".
	IDScope apis.Scope `env:"PILE_ID_SCOPE" envDefault:"global"`
	// IndexEntities enables the entity id index.
	IndexEntities bool `env:"PILE_INDEX_ENTITIES" envDefault:"false"`
	// LogLevel is any level zap understands (debug, info, warn, error).
	LogLevel string `env:"PILE_LOG_LEVEL" envDefault:"info"`
	// LogFormat is "json" or "console".
	LogFormat string `env:"PILE_LOG_FORMAT" envDefault:"console"`
	// Manifest is an optional resource manifest path (.yaml, .yml, .json, .hcl).
	Manifest string `env:"PILE_MANIFEST"`
}

// FromEnv loads Env from environment variables.
func FromEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Config returns the store configuration carried by e.
func (e Env) Config() apis.Config {
	return NewConfig(
		WithIDScope(e.IDScope),
		WithIndexEntities(e.IndexEntities),
	)
}
