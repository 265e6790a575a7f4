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
	"strings"
)

// expand scans raw for ${...} expressions and substitutes each with its
// resolved value, reporting false if any expression could not be resolved
// and substituteNullOnMiss is false. When substituteNullOnMiss is true, an
// unresolved expression is replaced with the literal "null" instead of
// failing the whole expansion, matching Maven's own interpolator.
//
// onResolve, if non-nil, is called once per resolved expression so a
// caller (such as resolveProperty, tracking whether a value stays
// self-managed) can observe every sub-resolution that went into the
// result.
func expand(ctx context.Context, session *ResolutionSession, p *Project, raw string, depth int, substituteNullOnMiss bool, onResolve func(ValueResolution)) (string, bool) {
	if !String(raw).ContainsProperty() {
		return raw, true
	}

	var out strings.Builder
	rest := raw
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			out.WriteString(rest)
			break
		}
		end := strings.Index(rest[start+2:], "}")
		if end < 0 {
			out.WriteString(rest)
			break
		}
		end += start + 2

		out.WriteString(rest[:start])
		name := rest[start+2 : end]

		res := resolveProperty(ctx, session, p, name, true, depth)
		switch {
		case res.Resolved:
			out.WriteString(res.Value)
			if onResolve != nil {
				onResolve(res)
			}
		case substituteNullOnMiss:
			out.WriteString("null")
		default:
			return "", false
		}
		rest = rest[end+1:]
	}
	return out.String(), true
}

// Interpolate resolves every ${...} reference in raw against p, using
// session's universe to delegate to ancestors as needed. A cache keyed by
// the raw, uninterpolated string is consulted first: the same literal
// string anywhere in a POM resolves to the same value, so repeated fields
// (e.g. several dependencies sharing "${guava.version}") are only expanded
// once per project.
//
// An expression that cannot be resolved is replaced with the literal
// string "null" rather than failing the call, matching Maven's own
// model interpolator; the name is recorded as unresolved on p regardless.
func (s *ResolutionSession) Interpolate(ctx context.Context, p *Project, raw string) string {
	if cached, ok := p.interpolationCache[raw]; ok {
		return cached.Value
	}
	out, _ := expand(ctx, s, p, raw, 0, true, nil)
	p.interpolationCache[raw] = ValueResolution{Value: out, Resolved: true}
	return out
}

// HasUnresolvedProperties reports whether any property name referenced
// while interpolating p's fields so far failed to resolve.
func (p *Project) HasUnresolvedProperties() bool {
	return len(p.unresolvedProps) > 0
}

// UnresolvedProperties returns the set of property names that failed to
// resolve while interpolating p's fields so far.
func (p *Project) UnresolvedProperties() []string {
	names := make([]string, 0, len(p.unresolvedProps))
	for name := range p.unresolvedProps {
		names = append(names, name)
	}
	return names
}

// InterpolateGAV resolves every ${...} reference in a dependency-shaped
// GAV, as used for a <dependency> or <parent> coordinate prior to
// dependency-management composition.
func (s *ResolutionSession) InterpolateGAV(ctx context.Context, p *Project, groupID, artifactID, version string) GAV {
	return GAV{
		GroupID:    s.Interpolate(ctx, p, groupID),
		ArtifactID: s.Interpolate(ctx, p, artifactID),
		Version:    s.Interpolate(ctx, p, version),
	}
}
