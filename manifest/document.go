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

package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for a manifest file extension that
	// is neither YAML, JSON nor HCL.
	ErrUnsupportedFormat = errors.New("pile(manifest): unsupported manifest format")
	// ErrInvalidEntry is returned for an entry without kind or name.
	ErrInvalidEntry = errors.New("pile(manifest): entry needs kind and name")
)

// Entry declares one raw resource.
type Entry struct {
	// Kind selects the binder that decodes the entry ("mesh", "shader").
	Kind string `yaml:"kind" hcl:"kind,label"`
	// Name is the resource name.
	Name string `yaml:"name" hcl:"name,label"`
	// ID is the entity id. Parse fills in a random UUID when empty.
	ID string `yaml:"id,omitempty" hcl:"id,optional"`
	// Attrs carries kind-specific settings.
	Attrs map[string]string `yaml:"attrs,omitempty" hcl:"attrs,optional"`
}

// Document is a parsed manifest.
type Document struct {
	Resources []Entry `yaml:"resources" hcl:"resource,block"`
}

// Load reads and parses the manifest at path.
func Load(path string) (Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, src)
}

// Parse parses src, picking the format from filename's extension:
// .yaml, .yml and .json are read as YAML, .hcl as HCL.
func Parse(filename string, src []byte) (Document, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml", ".json":
		return ParseYAML(src)
	case ".hcl":
		return ParseHCL(filename, src)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
}

// ParseYAML parses a YAML (or JSON) manifest:
//
//	resources:
//	  - kind: mesh
//	    name: Cube
//	    attrs: {lod: "2"}
func ParseYAML(src []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return Document{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := doc.normalize(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// ParseHCL parses an HCL manifest. filename is used in diagnostics and
// must end in .hcl:
//
//	resource "mesh" "Cube" {
//	  attrs = { lod = "2" }
//	}
func ParseHCL(filename string, src []byte) (Document, error) {
	var doc Document
	if err := hclsimple.Decode(filename, src, nil, &doc); err != nil {
		return Document{}, fmt.Errorf("hcl decode: %w", err)
	}
	if err := doc.normalize(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// normalize validates entries and assigns missing entity ids.
func (d *Document) normalize() error {
	for i := range d.Resources {
		e := &d.Resources[i]
		if e.Kind == "" || e.Name == "" {
			return fmt.Errorf("entry %d: %w", i, ErrInvalidEntry)
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
	}
	return nil
}

// Attr returns the attribute key of e, or def when absent.
func (e Entry) Attr(key, def string) string {
	if v, ok := e.Attrs[key]; ok {
		return v
	}
	return def
}
