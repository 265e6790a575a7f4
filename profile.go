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
	"sort"
	"strings"
)

// ActiveProfiles returns p's own <profiles> entries considered active for
// session: a profile is active when its id was explicitly requested on the
// session (WithActiveProfiles) or when it declares activeByDefault; an
// explicit request does not deactivate activeByDefault profiles. Unlike a
// real Maven build, JDK, OS and file-based activation are never evaluated:
// a session has no notion of the machine a resolution is meant to emulate,
// so a profile relying on those conditions is simply never activated by
// them.
func (s *ResolutionSession) ActiveProfiles(p *Project) []RawProfile {
	var active []RawProfile
	for _, prof := range p.RawProfiles() {
		if s.ProfileActive(string(prof.ID)) || prof.Activation.ActiveByDefault.Boolean() {
			active = append(active, prof)
		}
	}
	return active
}

// activeProfileSetID returns a stable identifier for the set of profiles
// active on p, used as part of the memoization cache key so a resolution
// run under one active-profile set never serves another's cached result.
func (s *ResolutionSession) activeProfileSetID(p *Project) string {
	profiles := s.ActiveProfiles(p)
	ids := make([]string, 0, len(profiles))
	for _, prof := range profiles {
		ids = append(ids, string(prof.ID))
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}
