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
	"context"
	"testing"
)

func TestEffectiveDependenciesFillsVersionFromOwnProperty(t *testing.T) {
	p, err := NewProject("testdata/simple.xml", false)
	if err != nil {
		t.Fatalf("NewProject() = %v", err)
	}
	s := NewSession(NewInMemoryUniverse(p))
	deps, err := s.EffectiveDependencies(context.Background(), p)
	if err != nil {
		t.Fatalf("EffectiveDependencies() = %v", err)
	}
	found := false
	for _, d := range deps {
		if d.Key.ArtifactID != "guava" {
			continue
		}
		found = true
		if d.Version != "31.1-jre" {
			t.Errorf("guava version = %q, want %q", d.Version, "31.1-jre")
		}
		if !d.VersionSelfManaged {
			t.Error("guava version should be self-managed: resolved purely from simple.xml's own properties")
		}
	}
	if !found {
		t.Fatal("guava dependency not found in EffectiveDependencies()")
	}
}

func TestManagedDependenciesInheritedFromParentAreNotSelfManaged(t *testing.T) {
	parent, err := NewProject("testdata/parent.xml", false)
	if err != nil {
		t.Fatalf("NewProject(parent) = %v", err)
	}
	child, err := NewProject("testdata/child.xml", false)
	if err != nil {
		t.Fatalf("NewProject(child) = %v", err)
	}
	s := NewSession(NewInMemoryUniverse(parent, child))

	managed, err := s.ManagedDependencies(context.Background(), child)
	if err != nil {
		t.Fatalf("ManagedDependencies() = %v", err)
	}
	dk := MakeDependencyKey("com.fasterxml.jackson.core", "jackson-databind", "", "")
	md, ok := managed[dk]
	if !ok {
		t.Fatal("jackson-databind not found in child's effective dependency management")
	}
	if md.Version != "2.14.1" {
		t.Errorf("jackson-databind version = %q, want %q", md.Version, "2.14.1")
	}
	if md.VersionSelfManaged {
		t.Error("jackson-databind was inherited from the parent, should not be self-managed")
	}

	deps, err := s.EffectiveDependencies(context.Background(), child)
	if err != nil {
		t.Fatalf("EffectiveDependencies() = %v", err)
	}
	if len(deps) != 1 || deps[0].Version != "2.14.1" {
		t.Errorf("EffectiveDependencies() = %+v, want a single jackson-databind:2.14.1", deps)
	}
}

func TestManagedDependenciesImportsBOM(t *testing.T) {
	bom, err := NewProject("testdata/bom.xml", false)
	if err != nil {
		t.Fatalf("NewProject(bom) = %v", err)
	}
	importer, err := NewProject("testdata/importer.xml", false)
	if err != nil {
		t.Fatalf("NewProject(importer) = %v", err)
	}
	s := NewSession(NewInMemoryUniverse(bom, importer))

	managed, err := s.ManagedDependencies(context.Background(), importer)
	if err != nil {
		t.Fatalf("ManagedDependencies() = %v", err)
	}
	dk := MakeDependencyKey("io.netty", "netty-common", "", "")
	md, ok := managed[dk]
	if !ok {
		t.Fatal("netty-common not found after BOM import")
	}
	if md.Version != "4.1.86.Final" {
		t.Errorf("netty-common version = %q, want %q", md.Version, "4.1.86.Final")
	}
	if md.VersionSelfManaged {
		t.Error("netty-common came from an imported BOM, should not be self-managed")
	}
}

func TestLocalPluginDependencies(t *testing.T) {
	p, err := NewProject("testdata/plugins.xml", false)
	if err != nil {
		t.Fatalf("NewProject() = %v", err)
	}
	s := NewSession(NewInMemoryUniverse(p))

	deps, err := s.LocalPluginDependencies(context.Background(), p)
	if err != nil {
		t.Fatalf("LocalPluginDependencies() = %v", err)
	}
	if len(deps) != 3 {
		t.Fatalf("LocalPluginDependencies() = %+v, want 3 entries", deps)
	}

	byArtifact := make(map[string]PluginDependency)
	for _, d := range deps {
		byArtifact[d.ArtifactID] = d
	}

	if got := byArtifact["maven-compiler-plugin"].Version; got != "3.10.1" {
		t.Errorf("maven-compiler-plugin version = %q, want %q (from pluginManagement)", got, "3.10.1")
	}
	if got := byArtifact["maven-surefire-plugin"].Version; got != "3.0.0-M7" {
		t.Errorf("maven-surefire-plugin version = %q, want %q (declared directly)", got, "3.0.0-M7")
	}
	if got := byArtifact["maven-shade-plugin"].Version; got != "" {
		t.Errorf("maven-shade-plugin version = %q, want empty (unresolvable)", got)
	}
}

func TestIsVersionRange(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"1.2.3", false},
		{"LATEST", true},
		{"RELEASE", true},
		{"[1.0,2.0)", true},
		{"(,1.0]", true},
	}
	for _, test := range tests {
		if got := isVersionRange(test.version); got != test.want {
			t.Errorf("isVersionRange(%q) = %v, want %v", test.version, got, test.want)
		}
	}
}
