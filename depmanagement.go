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

	"deps.dev/util/semver"
	"github.com/chainguard-dev/clog"
)

// rawManagedDependencies returns p's own <dependencyManagement> entries
// together with those contributed by its currently active profiles, own
// entries first so that, within a single project, an own entry always
// wins over a same-keyed profile entry.
func (s *ResolutionSession) rawManagedDependencies(p *Project) []RawDependency {
	deps := append([]RawDependency{}, p.RawManagedDependencies()...)
	for _, prof := range s.ActiveProfiles(p) {
		deps = append(deps, prof.DependencyManagement.Dependencies...)
	}
	return deps
}

// rawDependencies returns p's own <dependencies> together with those
// contributed by its active profiles.
func (s *ResolutionSession) rawDependencies(p *Project) []RawDependency {
	deps := append([]RawDependency{}, p.RawDependencies()...)
	for _, prof := range s.ActiveProfiles(p) {
		deps = append(deps, prof.Dependencies...)
	}
	return deps
}

// ManagedDependencies returns p's effective dependencyManagement: p's own
// entries (and its active profiles'), those pulled in transitively via
// <scope>import</scope> BOMs, and finally anything inherited from an
// ancestor project that p does not itself override. Entries found earlier
// in that order win (nearest-wins). Only an entry whose version resolved
// from p's own local properties, without following an import or an
// ancestor, is self-managed; import and inheritance always demote it.
func (s *ResolutionSession) ManagedDependencies(ctx context.Context, p *Project) (map[DependencyKey]ManagedDependency, error) {
	key := depManagementCacheKey{profiles: s.activeProfileSetID(p)}
	if cached, ok := p.managedCache[key]; ok {
		return cached, nil
	}

	result := make(map[DependencyKey]ManagedDependency)

	var imports []RawDependency
	for _, raw := range s.rawManagedDependencies(p) {
		gav := s.InterpolateGAV(ctx, p, string(raw.GroupID), string(raw.ArtifactID), string(raw.Version))
		if ScopeFromString(string(raw.Scope)) == ScopeImport {
			imports = append(imports, raw)
			continue
		}
		dk := raw.Key()
		if _, ok := result[dk]; ok {
			continue
		}
		result[dk] = newManagedDependency(ctx, s, p, raw, gav.Version)
	}

	seenImport := make(map[GAV]bool)
	for n := 0; n < s.maxImports && len(imports) > 0; n++ {
		raw := imports[0]
		imports = imports[1:]
		gav := s.InterpolateGAV(ctx, p, string(raw.GroupID), string(raw.ArtifactID), string(raw.Version))
		if seenImport[gav] {
			continue
		}
		seenImport[gav] = true

		bom, ok := s.universe.ForGAV(gav)
		if !ok {
			clog.FromContext(ctx).Warnf("pom: %s: could not resolve imported BOM %s", p, gav)
			continue
		}
		bomManaged, err := s.ManagedDependencies(ctx, bom)
		if err != nil {
			return nil, err
		}
		for dk, md := range bomManaged {
			if _, ok := result[dk]; ok {
				continue
			}
			md.VersionSelfManaged = false
			result[dk] = md
		}
	}
	if len(imports) > 0 {
		clog.FromContext(ctx).Warnf("pom: %s: %v: budget %d, %d import(s) left unresolved", p, ErrImportBudgetExceeded, s.maxImports, len(imports))
	}

	if parent, err := parentOf(s.universe, p); err == nil && parent != nil {
		parentManaged, err := s.ManagedDependencies(ctx, parent)
		if err != nil {
			return nil, err
		}
		for dk, md := range parentManaged {
			if _, ok := result[dk]; ok {
				continue
			}
			md.VersionSelfManaged = false
			result[dk] = md
		}
	}

	p.managedCache[key] = result
	return result, nil
}

func newManagedDependency(ctx context.Context, s *ResolutionSession, p *Project, raw RawDependency, version string) ManagedDependency {
	return ManagedDependency{
		VersionScope: VersionScope{
			Version:            version,
			Scope:              ScopeFromString(string(raw.Scope)),
			VersionSelfManaged: isVersionSelfManaged(ctx, s, p, string(raw.Version)),
			IsRange:            isVersionRange(version),
		},
		Exclusions: exclusionsOf(raw.Exclusions),
	}
}

// isVersionSelfManaged reports whether the raw (uninterpolated) version
// expression, once interpolated, only ever consulted p's own properties:
// a literal version with no ${...} is trivially self-managed, and a
// property reference is self-managed only if every property it needed,
// recursively, resolved without delegating to an ancestor.
func isVersionSelfManaged(ctx context.Context, s *ResolutionSession, p *Project, raw string) bool {
	_, _, selfManaged := expandWithManaged(ctx, s, p, raw, true, 0)
	return selfManaged
}

func exclusionsOf(raw []RawExclusion) []GroupArtifact {
	if len(raw) == 0 {
		return nil
	}
	out := make([]GroupArtifact, 0, len(raw))
	for _, ex := range raw {
		out = append(out, GroupArtifact{GroupID: string(ex.GroupID), ArtifactID: string(ex.ArtifactID)})
	}
	return out
}

// isVersionRange reports whether version is a Maven version range
// ([1.0,2.0), etc.) or the LATEST/RELEASE marker rather than a single
// pinned version (SPEC_FULL.md §4.6). Resolving it against a repository
// is out of scope; this only flags the fact for the caller.
func isVersionRange(version string) bool {
	switch version {
	case "LATEST", "RELEASE":
		return true
	}
	c, err := semver.Maven.ParseConstraint(version)
	if err != nil {
		return false
	}
	return !c.IsSimple()
}

// EffectiveDependencies returns p's own declared dependencies (and those
// of its active profiles), each with version, scope and exclusions filled
// in from p's effective dependency management wherever the dependency
// itself left them unset, and a GAV fully resolved via InterpolateGAV. A
// dependency whose version is still unset after management lookup is
// returned with an empty Version rather than failing.
func (s *ResolutionSession) EffectiveDependencies(ctx context.Context, p *Project) ([]Dependency, error) {
	key := depManagementCacheKey{profiles: s.activeProfileSetID(p)}
	if cached, ok := p.dependenciesCache[key]; ok {
		return cached, nil
	}

	managed, err := s.ManagedDependencies(ctx, p)
	if err != nil {
		return nil, err
	}

	seen := make(map[DependencyKey]bool)
	var out []Dependency
	for _, raw := range s.rawDependencies(p) {
		dk := raw.Key()
		if seen[dk] {
			continue
		}
		seen[dk] = true

		version := s.Interpolate(ctx, p, string(raw.Version))
		scope := ScopeFromString(string(raw.Scope))
		exclusions := exclusionsOf(raw.Exclusions)
		selfManaged := isVersionSelfManaged(ctx, s, p, string(raw.Version))

		if md, ok := managed[dk]; ok {
			if version == "" {
				version = md.Version
				selfManaged = md.VersionSelfManaged
			}
			if raw.Scope == "" {
				scope = md.Scope
			}
			if len(exclusions) == 0 {
				exclusions = md.Exclusions
			}
		}

		if version == "" {
			clog.FromContext(ctx).Warnf("pom: %s: missing version for dependency %s, not covered by dependency management", p, dk)
		}

		out = append(out, Dependency{
			Key: dk,
			VersionScope: VersionScope{
				Version:            version,
				Scope:              scope,
				VersionSelfManaged: selfManaged,
				IsRange:            isVersionRange(version),
			},
			Optional:   raw.Optional.Boolean(),
			Exclusions: exclusions,
		})
	}

	p.dependenciesCache[key] = out
	return out, nil
}

// LocalPluginDependencies returns p's own <build><plugins> entries with
// their GAV interpolated and, for any entry that declares no version of
// its own, the version filled in from p's hierarchical plugin dependency
// management (SPEC_FULL.md §4.7). Profiles do not contribute declared
// plugins. A plugin for which no version can be found, declared or
// managed, is still returned, with Version left empty, after a warning.
func (s *ResolutionSession) LocalPluginDependencies(ctx context.Context, p *Project) ([]PluginDependency, error) {
	key := depManagementCacheKey{}
	if cached, ok := p.pluginDependencyCache[key]; ok {
		return cached, nil
	}

	managed, err := s.ManagedPluginDependencies(ctx, p)
	if err != nil {
		return nil, err
	}

	out := make([]PluginDependency, 0, len(p.RawDeclaredPlugins()))
	for _, raw := range p.RawDeclaredPlugins() {
		ga := raw.GroupArtifact()
		version := s.Interpolate(ctx, p, string(raw.Version))
		if version == "" {
			version = managed[ga]
		}
		if version == "" {
			clog.FromContext(ctx).Warnf("pom: %s: unresolvable plugin dependency %s", p, ga)
		}
		out = append(out, PluginDependency{GroupArtifact: ga, Version: version})
	}

	p.pluginDependencyCache[key] = out
	return out, nil
}

// ManagedPluginDependencies returns p's effective
// <build>/<pluginManagement>/<plugins> entries, composed the same
// nearest-wins way as ManagedDependencies but without import support:
// Maven plugin management has no <scope>import</scope> equivalent. An
// entry whose version is empty or does not fully resolve is skipped.
func (s *ResolutionSession) ManagedPluginDependencies(ctx context.Context, p *Project) (map[GroupArtifact]string, error) {
	result := make(map[GroupArtifact]string)
	for _, raw := range p.RawManagedPlugins() {
		ga := raw.GroupArtifact()
		if _, ok := result[ga]; ok {
			continue
		}
		version, ok := expand(ctx, s, p, string(raw.Version), 0, false, nil)
		if !ok || version == "" {
			continue
		}
		result[ga] = version
	}
	if parent, err := parentOf(s.universe, p); err == nil && parent != nil {
		parentManaged, err := s.ManagedPluginDependencies(ctx, parent)
		if err != nil {
			return nil, err
		}
		for ga, version := range parentManaged {
			if _, ok := result[ga]; ok {
				continue
			}
			result[ga] = version
		}
	}
	return result, nil
}
