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

package main

import (
	"bytes"
	"testing"
)

const wantReport = "mesh#0\tCubeMesh OpenGL\tlod=0\n" +
	"mesh#1\tSphereMesh OpenGL\tlod=0\n" +
	"shader#2\tPbrShader OpenGL\tstages=vertex+fragment\n"

const wantManifestReport = "mesh#0\tCubeMesh OpenGL\tlod=2\n" +
	"mesh#1\tSphereMesh OpenGL\tlod=0\n" +
	"shader#2\tPbrShader OpenGL\tstages=vertex+fragment\n"

func setQuietEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PILE_LOG_LEVEL", "error")
	t.Setenv("PILE_ID_SCOPE", "global")
	t.Setenv("PILE_INDEX_ENTITIES", "true")
	t.Setenv("PILE_MANIFEST", "")
}

func TestRun_BuiltinSet(t *testing.T) {
	setQuietEnv(t)

	var out bytes.Buffer
	if err := run(&out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != wantReport {
		t.Fatalf("report =\n%s\nwant\n%s", out.String(), wantReport)
	}
}

func TestRun_Manifests(t *testing.T) {
	for _, path := range []string{"testdata/resources.yaml", "testdata/resources.hcl"} {
		t.Run(path, func(t *testing.T) {
			setQuietEnv(t)

			var out bytes.Buffer
			if err := run(&out, []string{"-manifest", path}); err != nil {
				t.Fatalf("run: %v", err)
			}
			if out.String() != wantManifestReport {
				t.Fatalf("report =\n%s\nwant\n%s", out.String(), wantManifestReport)
			}
		})
	}
}

func TestRun_PerKindScope(t *testing.T) {
	setQuietEnv(t)
	t.Setenv("PILE_ID_SCOPE", "kind")

	var out bytes.Buffer
	if err := run(&out, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "mesh#0\tCubeMesh OpenGL\tlod=0\n" +
		"mesh#1\tSphereMesh OpenGL\tlod=0\n" +
		"shader#0\tPbrShader OpenGL\tstages=vertex+fragment\n"
	if out.String() != want {
		t.Fatalf("report =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestRun_Routes(t *testing.T) {
	setQuietEnv(t)

	var out bytes.Buffer
	if err := run(&out, []string{"-routes"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "route\tmesh -> gl-mesh\n" +
		"route\tshader -> gl-shader\n" + wantReport
	if out.String() != want {
		t.Fatalf("report =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestRun_Errors(t *testing.T) {
	setQuietEnv(t)

	if err := run(&bytes.Buffer{}, []string{"-manifest", "testdata/missing.yaml"}); err == nil {
		t.Fatalf("missing manifest: want error")
	}
	if err := run(&bytes.Buffer{}, []string{"-bogus"}); err == nil {
		t.Fatalf("unknown flag: want error")
	}
	if err := run(&bytes.Buffer{}, []string{"-h"}); err != nil {
		t.Fatalf("-h: want nil, got %v", err)
	}
}
