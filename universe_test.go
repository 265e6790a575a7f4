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

import "testing"

func TestInMemoryUniverseParentOf(t *testing.T) {
	parent, err := NewProject("testdata/parent.xml", false)
	if err != nil {
		t.Fatalf("NewProject(parent) = %v", err)
	}
	child, err := NewProject("testdata/child.xml", false)
	if err != nil {
		t.Fatalf("NewProject(child) = %v", err)
	}
	u := NewInMemoryUniverse(parent, child)

	got, ok := u.ParentOf(child)
	if !ok {
		t.Fatal("ParentOf(child) returned ok=false, want true")
	}
	if got.GAV() != parent.GAV() {
		t.Errorf("ParentOf(child) = %v, want %v", got.GAV(), parent.GAV())
	}

	if _, ok := u.ParentOf(parent); ok {
		t.Error("ParentOf(parent) returned ok=true, want false: parent.xml has no parent of its own")
	}
}

func TestInMemoryUniverseForGAVMissing(t *testing.T) {
	u := NewInMemoryUniverse()
	if _, ok := u.ForGAV(GAV{GroupID: "g", ArtifactID: "a", Version: "1"}); ok {
		t.Error("ForGAV() on an empty universe returned ok=true")
	}
}
