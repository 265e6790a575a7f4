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
	"fmt"
	"strings"
)

// GAV is a Maven coordinate: groupId, artifactId, version.
type GAV struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Name returns the "groupId:artifactId" form used throughout Maven tooling.
func (g GAV) Name() string {
	return fmt.Sprintf("%s:%s", g.GroupID, g.ArtifactID)
}

func (g GAV) String() string {
	return fmt.Sprintf("%s:%s:%s", g.GroupID, g.ArtifactID, g.Version)
}

// IsResolved reports whether every component is present and free of
// unresolved ${...} expressions.
func (g GAV) IsResolved() bool {
	return isResolvedComponent(g.GroupID) && isResolvedComponent(g.ArtifactID) && isResolvedComponent(g.Version)
}

func isResolvedComponent(s string) bool {
	return s != "" && !strings.Contains(s, "${")
}

// GroupArtifact identifies a group/artifact pair, used as a plugin
// management key and as an exclusion identifier.
type GroupArtifact struct {
	GroupID    string
	ArtifactID string
}

func (ga GroupArtifact) String() string {
	return fmt.Sprintf("%s:%s", ga.GroupID, ga.ArtifactID)
}

// DependencyKey uniquely identifies a dependency "slot" for dependency
// management override and deduplication purposes.
type DependencyKey struct {
	GroupID    string
	ArtifactID string
	Classifier string
	Type       string
}

// GroupArtifact returns the (groupId, artifactId) projection of the key.
func (dk DependencyKey) GroupArtifact() GroupArtifact {
	return GroupArtifact{GroupID: dk.GroupID, ArtifactID: dk.ArtifactID}
}

func (dk DependencyKey) String() string {
	if dk.Classifier == "" {
		return fmt.Sprintf("%s:%s:%s", dk.GroupID, dk.ArtifactID, dk.Type)
	}
	return fmt.Sprintf("%s:%s:%s:%s", dk.GroupID, dk.ArtifactID, dk.Type, dk.Classifier)
}

// MakeDependencyKey builds a DependencyKey, defaulting an empty type to
// "jar" the way a bare <dependency> with no <type> does in a real POM.
func MakeDependencyKey(groupID, artifactID, classifier, typ string) DependencyKey {
	if typ == "" {
		typ = "jar"
	}
	return DependencyKey{GroupID: groupID, ArtifactID: artifactID, Classifier: classifier, Type: typ}
}

// Scope is a Maven dependency scope.
type Scope string

const (
	ScopeCompile  Scope = "compile"
	ScopeProvided Scope = "provided"
	ScopeRuntime  Scope = "runtime"
	ScopeTest     Scope = "test"
	ScopeSystem   Scope = "system"
	// ScopeImport is only legal inside <dependencyManagement>; it marks a
	// BOM to be imported rather than an actual dependency.
	ScopeImport Scope = "import"
)

// ScopeFromString parses a scope string case-insensitively, defaulting to
// ScopeCompile for an empty or unrecognized value. "import" is recognized
// here too; callers outside a dependencyManagement context are expected
// to reject it themselves if that matters to them.
func ScopeFromString(s string) Scope {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "provided":
		return ScopeProvided
	case "runtime":
		return ScopeRuntime
	case "test":
		return ScopeTest
	case "system":
		return ScopeSystem
	case "import":
		return ScopeImport
	default:
		return ScopeCompile
	}
}

// VersionScope is the effective (version, scope) of a dependency together
// with the provenance bit that says whether the version came from an
// expression that resolved entirely within the originating project's own
// properties.
type VersionScope struct {
	Version            string
	Scope              Scope
	VersionSelfManaged bool
	// IsRange is set when Version parsed as a genuine Maven version range
	// or as the LATEST/RELEASE marker rather than a pinned version; see
	// SPEC_FULL.md §4.6. It is informational only - the engine does not
	// resolve ranges against a repository.
	IsRange bool
}

// ManagedDependency is a <dependencyManagement> entry: a VersionScope plus
// the exclusions it pins.
type ManagedDependency struct {
	VersionScope
	Exclusions []GroupArtifact
}

// Dependency is a declared, interpolated dependency together with its
// effective version/scope.
type Dependency struct {
	Key        DependencyKey
	VersionScope
	Optional   bool
	Exclusions []GroupArtifact
}

// PluginDependency is an interpolated <build>/<plugins>/<plugin> GAV. The
// Version field is empty when no pinned or managed version could be found.
type PluginDependency struct {
	GroupArtifact
	Version string
}
