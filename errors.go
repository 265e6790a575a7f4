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

import "errors"

// Sentinel errors of this package. ErrUnresolvedGAV and
// ErrUnresolvedParentGAV are returned (wrapped) by project construction;
// callers that need to distinguish a failure class should use errors.Is
// against them rather than string-matching an error message. The other
// sentinels name conditions that resolution logs or handles internally
// without returning them.
var (
	// ErrUnresolvedGAV is returned when a project's own groupId,
	// artifactId or version cannot be determined, even after consulting
	// a parent reference.
	ErrUnresolvedGAV = errors.New("unresolved project coordinate")

	// ErrUnresolvedParentGAV is returned when a <parent> reference is
	// present but missing one of groupId, artifactId or version.
	ErrUnresolvedParentGAV = errors.New("unresolved parent coordinate")

	// ErrProjectNotFound is wrapped by the internal parent lookup when a
	// project's <parent> is not present in the universe. The exported
	// entry points do not return it: a missing parent ends the ancestor
	// walk.
	ErrProjectNotFound = errors.New("project not found in universe")

	// ErrImportBudgetExceeded is logged, not returned, by
	// dependency-management composition when the number of
	// <scope>import</scope> BOMs pulled in while building one project's
	// effective dependencyManagement exceeds the session's MaxImports;
	// composition continues with what it has.
	ErrImportBudgetExceeded = errors.New("import budget exceeded")

	// ErrMaxPropertyDepthExceeded is logged, not returned, when resolving
	// a property value recurses deeper than the session's MaxPropertyDepth;
	// the property is then recorded as unresolved. This is a safety net
	// against self-referential properties, not cycle detection: the
	// recursion is simply cut off, not diagnosed.
	ErrMaxPropertyDepthExceeded = errors.New("maximum property resolution depth exceeded")
)
