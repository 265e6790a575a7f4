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
	"path/filepath"
	"sort"
	"strings"

	"deps.dev/util/semver"
)

// Submodules returns the GAV of every <module> reachable from p: its own
// top-level <modules>, plus those declared inside every one of its
// profiles (profile activation is not applied here), each resolved by
// reading just enough of the module's own POM to extract its coordinate
// (no dependency resolution is performed on it here). A module name ending
// in ".pom" names that POM file directly; any other name is a directory
// holding a pom.xml. The result is sorted by group, then artifact, then by
// Maven version ordering, so repeated runs against an unchanged reactor
// always enumerate modules in the same order.
func (s *ResolutionSession) Submodules(ctx context.Context, p *Project) ([]GAV, error) {
	names := append([]string{}, p.RawModules()...)
	for _, prof := range p.RawProfiles() {
		names = append(names, prof.Modules...)
	}

	baseDir := filepath.Dir(p.PomFile)
	seen := make(map[string]bool, len(names))
	var gavs []GAV
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		pomFile := filepath.Join(baseDir, name, "pom.xml")
		if strings.HasSuffix(name, ".pom") {
			pomFile = filepath.Join(baseDir, name)
		}
		raw, err := ParseRawPOM(pomFile)
		if err != nil {
			return nil, err
		}
		child, err := newProjectFromRaw(pomFile, p.IsExternal, raw)
		if err != nil {
			return nil, err
		}
		gavs = append(gavs, child.GAV())
	}

	sort.Slice(gavs, func(i, j int) bool {
		a, b := gavs[i], gavs[j]
		if a.GroupID != b.GroupID {
			return a.GroupID < b.GroupID
		}
		if a.ArtifactID != b.ArtifactID {
			return a.ArtifactID < b.ArtifactID
		}
		return semver.Maven.Compare(a.Version, b.Version) < 0
	})
	return gavs, nil
}
