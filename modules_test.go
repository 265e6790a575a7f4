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

	"github.com/google/go-cmp/cmp"
)

func TestSubmodulesSortedDeterministically(t *testing.T) {
	root, err := NewProject("testdata/reactor/pom.xml", false)
	if err != nil {
		t.Fatalf("NewProject() = %v", err)
	}
	s := NewSession(NewInMemoryUniverse(root))
	gavs, err := s.Submodules(context.Background(), root)
	if err != nil {
		t.Fatalf("Submodules() = %v", err)
	}
	want := []GAV{
		{GroupID: "com.example", ArtifactID: "module-a", Version: "1.0.0"},
		{GroupID: "com.example", ArtifactID: "module-b", Version: "1.0.0-beta"},
	}
	if diff := cmp.Diff(gavs, want); diff != "" {
		t.Errorf("Submodules(): mismatch (-got +want):\n%s", diff)
	}
}
