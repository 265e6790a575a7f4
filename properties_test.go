// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pom

import (
	"encoding/xml"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProperties(t *testing.T) {
	input, err := os.ReadFile("testdata/properties.xml")
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	want := Properties{
		Properties: []Property{
			{Name: "name", Value: "value"},
			{Name: "foo.version", Value: "1.2.3"},
			{Name: "bar.version", Value: "${foo.version}"},
			{Name: "with.space", Value: "text"},
		},
	}
	var project struct {
		Properties Properties `xml:"properties"`
	}
	if err := xml.Unmarshal(input, &project); err != nil {
		t.Fatalf("failed to unmarshal input: %v", err)
	}
	if diff := cmp.Diff(project.Properties, want); diff != "" {
		t.Errorf("unmarshal properties: got %v, want %v", project.Properties, want)
	}
}

func TestPropertiesAsMap(t *testing.T) {
	p := Properties{Properties: []Property{
		{Name: "foo", Value: "1"},
		{Name: "bar", Value: "${foo}"},
		{Name: "foo", Value: "2"}, // redeclared: last writer wins.
	}}
	want := map[string]string{"foo": "2", "bar": "${foo}"}
	if diff := cmp.Diff(p.asMap(), want); diff != "" {
		t.Errorf("asMap(): mismatch (-got +want):\n%s", diff)
	}
}
