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

import "fmt"

// ProjectContainer is the collaborator a ResolutionSession asks for any
// Project it does not already hold: the loaded child project's own parent,
// or a BOM/project reached by GAV for dependency-management import. An
// engine embedding this package supplies its own ProjectContainer backed by
// however it locates POMs (a local reactor, a remote repository, a cache);
// InMemoryUniverse below is the one used when every project of interest is
// already materialized in memory, such as in tests.
type ProjectContainer interface {
	// ForGAV returns the Project matching the given coordinate, if the
	// container knows of one.
	ForGAV(gav GAV) (*Project, bool)

	// ParentOf returns the Project referenced by p's <parent>, if p has
	// one and it can be located.
	ParentOf(p *Project) (*Project, bool)
}

// InMemoryUniverse is a ProjectContainer over a fixed, pre-loaded set of
// Projects keyed by their GAV. It never fetches anything lazily; every
// Project it can return must have been registered up front.
type InMemoryUniverse struct {
	projects map[GAV]*Project
}

// NewInMemoryUniverse builds an InMemoryUniverse from the given projects,
// keyed by each project's own GAV.
func NewInMemoryUniverse(projects ...*Project) *InMemoryUniverse {
	u := &InMemoryUniverse{projects: make(map[GAV]*Project, len(projects))}
	for _, p := range projects {
		u.projects[p.GAV()] = p
	}
	return u
}

// Add registers an additional project, overwriting any existing entry
// sharing its GAV.
func (u *InMemoryUniverse) Add(p *Project) {
	u.projects[p.GAV()] = p
}

// ForGAV implements ProjectContainer.
func (u *InMemoryUniverse) ForGAV(gav GAV) (*Project, bool) {
	p, ok := u.projects[gav]
	return p, ok
}

// ParentOf implements ProjectContainer.
func (u *InMemoryUniverse) ParentOf(p *Project) (*Project, bool) {
	parentGAV, ok := p.ParentGAV()
	if !ok {
		return nil, false
	}
	return u.ForGAV(parentGAV)
}

// parentOf is a convenience wrapper used internally where a missing
// parent should surface as an error rather than a silent stop.
func parentOf(c ProjectContainer, p *Project) (*Project, error) {
	parentGAV, ok := p.ParentGAV()
	if !ok {
		return nil, nil
	}
	parent, ok := c.ParentOf(p)
	if !ok {
		return nil, fmt.Errorf("%w: %s (parent of %s)", ErrProjectNotFound, parentGAV, p.GAV())
	}
	return parent, nil
}
