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
)

// Project is a single pom.xml loaded into a resolution session. Unlike a
// flattened, parent-merged view, a Project only ever holds its own
// declarations; anything inherited is reached by delegating to the parent
// Project through the session's universe, lazily and on demand, rather
// than being physically copied in at load time.
type Project struct {
	PomFile    string
	IsExternal bool

	raw *RawPOM

	gav       GAV
	parentGAV *GAV

	properties map[string]string

	// caches, populated lazily and never invalidated for the lifetime of
	// the Project.
	interpolationCache    map[string]ValueResolution
	unresolvedProps       map[string]bool
	managedCache          map[depManagementCacheKey]map[DependencyKey]ManagedDependency
	dependenciesCache     map[depManagementCacheKey][]Dependency
	pluginDependencyCache map[depManagementCacheKey][]PluginDependency
}

// depManagementCacheKey distinguishes memoized dependency-management runs
// by the set of active profile ids, keeping a profile-free run and a
// profile-qualified run from colliding in the cache.
type depManagementCacheKey struct {
	profiles string
}

// NewProject parses pomFile and constructs its Project, applying the
// fatal-initialization checks: a project with neither its own groupId and
// version nor a parent reference that could supply them, or whose own GAV
// or parent GAV fails to resolve outright, cannot be constructed.
func NewProject(pomFile string, isExternal bool) (*Project, error) {
	raw, err := ParseRawPOM(pomFile)
	if err != nil {
		return nil, err
	}
	return newProjectFromRaw(pomFile, isExternal, raw)
}

func newProjectFromRaw(pomFile string, isExternal bool, raw *RawPOM) (*Project, error) {
	p := &Project{
		PomFile:               pomFile,
		IsExternal:            isExternal,
		raw:                   raw,
		properties:            raw.Properties.asMap(),
		interpolationCache:    make(map[string]ValueResolution),
		unresolvedProps:       make(map[string]bool),
		managedCache:          make(map[depManagementCacheKey]map[DependencyKey]ManagedDependency),
		dependenciesCache:     make(map[depManagementCacheKey][]Dependency),
		pluginDependencyCache: make(map[depManagementCacheKey][]PluginDependency),
	}

	groupID := string(raw.GroupID)
	version := string(raw.Version)

	if raw.Parent.isSet() {
		parentGAV := GAV{
			GroupID:    string(raw.Parent.GroupID),
			ArtifactID: string(raw.Parent.ArtifactID),
			Version:    string(raw.Parent.Version),
		}
		// A literal ${parent.version} reference is resolved here, once,
		// against the parent's own literal version: the parent boundary
		// is crossed at construction time, not deferred to every lookup
		// the way other property references are.
		if version == "${parent.version}" {
			version = string(raw.Parent.Version)
		}
		if !parentGAV.IsResolved() {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedParentGAV, pomFile)
		}
		p.parentGAV = &parentGAV
		if groupID == "" {
			groupID = parentGAV.GroupID
		}
		if version == "" {
			version = parentGAV.Version
		}
	}

	artifactID := string(raw.ArtifactID)
	if groupID == "" || artifactID == "" || version == "" {
		return nil, fmt.Errorf("%w: %s: missing groupId, artifactId or version and no parent supplies it", ErrUnresolvedGAV, pomFile)
	}

	p.gav = GAV{GroupID: groupID, ArtifactID: artifactID, Version: version}
	if !p.gav.IsResolved() {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedGAV, pomFile)
	}
	return p, nil
}

// GAV returns the project's own, fully-resolved coordinate.
func (p *Project) GAV() GAV { return p.gav }

// ParentGAV returns the project's parent coordinate, if any.
func (p *Project) ParentGAV() (GAV, bool) {
	if p.parentGAV == nil {
		return GAV{}, false
	}
	return *p.parentGAV, true
}

// LocalProperties returns the project's own <properties>, ignoring any
// ancestor. This is the first lookup consulted by the property resolver.
func (p *Project) LocalProperties() map[string]string {
	return p.properties
}

// Prerequisites exposes the raw <prerequisites> block.
func (p *Project) Prerequisites() RawPrerequisites {
	return p.raw.Prerequisites
}

// RawDependencies returns the project's own declared <dependencies>,
// uninterpolated.
func (p *Project) RawDependencies() []RawDependency {
	return p.raw.Dependencies
}

// RawManagedDependencies returns the project's own
// <dependencyManagement><dependencies>, uninterpolated.
func (p *Project) RawManagedDependencies() []RawDependency {
	return p.raw.DependencyManagement.Dependencies
}

// RawManagedPlugins returns the project's own
// <build><pluginManagement><plugins>, uninterpolated.
func (p *Project) RawManagedPlugins() []RawPlugin {
	return p.raw.Build.PluginManagement.Plugins
}

// RawDeclaredPlugins returns the project's own <build><plugins>,
// uninterpolated. Per SPEC_FULL.md §4.7, active profiles do not
// contribute to this list.
func (p *Project) RawDeclaredPlugins() []RawPlugin {
	return p.raw.Build.Plugins
}

// RawProfiles returns the project's own <profiles>, uninterpolated.
func (p *Project) RawProfiles() []RawProfile {
	return p.raw.Profiles
}

// RawModules returns the project's own top-level <modules>. Modules
// declared inside a profile are reached through RawProfiles and the
// caller's own activation decision.
func (p *Project) RawModules() []string {
	return p.raw.Modules
}

// String implements fmt.Stringer for debug logging.
func (p *Project) String() string {
	return fmt.Sprintf("%s (%s)", p.gav, p.PomFile)
}
