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

// defaultMaxPropertyDepth bounds recursive property resolution as a safety
// net against self-referential properties. Cycles are undefined behavior,
// not detected; this only keeps a pathological POM from recursing forever.
const defaultMaxPropertyDepth = 64

// MaxImports is the default cap on the number of <scope>import</scope>
// BOMs followed while composing one project's effective dependency
// management; WithMaxImports overrides it per session.
const MaxImports = 300

// ResolutionSession holds the universe and configurable limits a single
// resolution run is performed against. It is single-threaded, and so is
// every Project it resolves: a Project's memoization caches are not
// synchronized, whichever session is using that Project.
type ResolutionSession struct {
	universe ProjectContainer

	activeProfiles     map[string]bool
	maxImports         int
	maxPropertyDepth   int
}

// SessionOption configures a ResolutionSession constructed by NewSession.
type SessionOption func(*ResolutionSession)

// WithActiveProfiles marks the given profile ids as explicitly activated,
// as if passed via Maven's -P flag.
func WithActiveProfiles(ids ...string) SessionOption {
	return func(s *ResolutionSession) {
		for _, id := range ids {
			s.activeProfiles[id] = true
		}
	}
}

// WithMaxImports overrides the default cap on the number of
// <scope>import</scope> BOMs followed while composing one project's
// effective dependency management.
func WithMaxImports(n int) SessionOption {
	return func(s *ResolutionSession) { s.maxImports = n }
}

// WithMaxPropertyDepth overrides the default recursion bound used when
// resolving a property value that itself references other properties.
func WithMaxPropertyDepth(n int) SessionOption {
	return func(s *ResolutionSession) { s.maxPropertyDepth = n }
}

// NewSession constructs a ResolutionSession backed by universe.
func NewSession(universe ProjectContainer, opts ...SessionOption) *ResolutionSession {
	s := &ResolutionSession{
		universe:         universe,
		activeProfiles:   make(map[string]bool),
		maxImports:       MaxImports,
		maxPropertyDepth: defaultMaxPropertyDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProfileActive reports whether id was explicitly activated on this
// session, e.g. via WithActiveProfiles.
func (s *ResolutionSession) ProfileActive(id string) bool {
	return s.activeProfiles[id]
}
