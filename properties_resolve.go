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

	"github.com/chainguard-dev/clog"
)

// ValueResolution is the outcome of resolving a single property name
// against a project. SelfManaged is true only when the entire chain that
// produced Value never crossed a project boundary: a property defined
// locally, whose own value (if it references further properties) also
// resolved without leaving the project, is self-managed; one resolved by
// delegating to a parent or a built-in is not.
type ValueResolution struct {
	Value       string
	Resolved    bool
	SelfManaged bool
}

// builtinProperties returns the value of every well-known Maven built-in
// property that resolves without a warning: project.version and its
// pom.version alias, project.groupId/pom.groupId,
// project.artifactId/pom.artifactId, the fixed mavenVersion, the
// project.prerequisites.maven value (only present if the POM declares
// one), and the java.version quirk (SPEC_FULL.md §9 Open-Q #1: this is a
// known Maven oddity where the property resolves to the literal string
// "java.version" rather than an actual version, and is preserved as-is).
func builtinProperties(p *Project) map[string]string {
	gav := p.GAV()
	m := map[string]string{
		"project.groupId":    gav.GroupID,
		"pom.groupId":        gav.GroupID,
		"project.artifactId": gav.ArtifactID,
		"pom.artifactId":     gav.ArtifactID,
		"project.version":    gav.Version,
		"pom.version":        gav.Version,
		"mavenVersion":       "3.1.1",
		"java.version":       "java.version",
	}
	if maven := string(p.Prerequisites().Maven); maven != "" {
		m["project.prerequisites.maven"] = maven
	}
	if parentGAV, ok := p.ParentGAV(); ok {
		m["project.parent.groupId"] = parentGAV.GroupID
		m["project.parent.artifactId"] = parentGAV.ArtifactID
		m["project.parent.version"] = parentGAV.Version
	}
	return m
}

// shorthandBuiltins maps illegal, unqualified property names Maven still
// tolerates to their project.-qualified equivalent. Each one triggers a
// warning when used (SPEC_FULL.md §4.3, §6).
var shorthandBuiltins = map[string]string{
	"version":           "project.version",
	"groupId":           "project.groupId",
	"artifactId":        "project.artifactId",
	"@project.groupId@": "project.groupId",
}

// resolveProperty resolves name against p, delegating to p's ancestors
// through session's universe when p itself cannot supply it.
//
// canBeSelfManaged is false once resolution has crossed a project
// boundary (a parent delegation, or a project.parent.* rewrite): a value
// found beyond the originating project can never be self-managed, no
// matter how it is found from there on.
func resolveProperty(ctx context.Context, session *ResolutionSession, p *Project, name string, canBeSelfManaged bool, depth int) ValueResolution {
	if depth > session.maxPropertyDepth {
		clog.FromContext(ctx).Warnf("pom: %s: %v: %q", p, ErrMaxPropertyDepthExceeded, name)
		p.unresolvedProps[name] = true
		return ValueResolution{}
	}

	// Step 1: local <properties>.
	if raw, ok := p.LocalProperties()[name]; ok {
		value, resolved, selfManaged := expandWithManaged(ctx, session, p, raw, canBeSelfManaged, depth+1)
		if !resolved {
			p.unresolvedProps[name] = true
			return ValueResolution{}
		}
		return ValueResolution{Value: value, Resolved: true, SelfManaged: selfManaged}
	}

	// Step 2: built-ins, including deprecated shorthand names.
	lookupName := name
	if qualified, ok := shorthandBuiltins[name]; ok {
		clog.FromContext(ctx).Warnf("pom: %s: property %q is a deprecated shorthand for %q", p, name, qualified)
		lookupName = qualified
	}
	if value, ok := builtinProperties(p)[lookupName]; ok {
		return ValueResolution{Value: value, Resolved: true, SelfManaged: false}
	}

	// Step 3: project.parent.* rewrite, delegating straight to the
	// parent project with the prefix rewritten to project.*.
	if rest, ok := strings.CutPrefix(name, "project.parent."); ok {
		parent, err := parentOf(session.universe, p)
		if err != nil || parent == nil {
			clog.FromContext(ctx).Warnf("pom: %s: no parent project available to resolve %q", p, name)
			p.unresolvedProps[name] = true
			return ValueResolution{}
		}
		res := resolveProperty(ctx, session, parent, "project."+rest, false, depth+1)
		if !res.Resolved {
			p.unresolvedProps[name] = true
		}
		return ValueResolution{Value: res.Value, Resolved: res.Resolved, SelfManaged: false}
	}

	// Step 4: generic ancestor delegation.
	parent, err := parentOf(session.universe, p)
	if err != nil || parent == nil {
		if _, ok := p.ParentGAV(); ok {
			clog.FromContext(ctx).Warnf("pom: %s: no parent project available to resolve %q", p, name)
			p.unresolvedProps[name] = true
			return ValueResolution{}
		}
	} else {
		res := resolveProperty(ctx, session, parent, name, false, depth+1)
		if res.Resolved {
			return ValueResolution{Value: res.Value, Resolved: true, SelfManaged: false}
		}
	}

	// Step 5: unresolved.
	clog.FromContext(ctx).Warnf("pom: %s: unresolved property reference %q", p, name)
	p.unresolvedProps[name] = true
	return ValueResolution{}
}

// expandWithManaged expands all ${...} references in raw against p,
// tracking whether every reference it needed turned out to be
// self-managed.
func expandWithManaged(ctx context.Context, session *ResolutionSession, p *Project, raw string, canBeSelfManaged bool, depth int) (value string, resolved bool, selfManaged bool) {
	out, ok := expand(ctx, session, p, raw, depth, false, func(res ValueResolution) {
		if !res.SelfManaged {
			canBeSelfManaged = false
		}
	})
	if !ok {
		return "", false, false
	}
	return out, true, canBeSelfManaged
}
