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
	"encoding/xml"
	"fmt"
	"os"
)

// RawPOM is the structured, read-only view of a parsed pom.xml the engine
// consumes as input: SPEC_FULL.md explicitly treats the XML reader itself
// as a thin collaborator, so this type only decodes the handful of
// elements the resolution engine actually looks at.
// https://maven.apache.org/ref/3.9.3/maven-model/maven.html
type RawPOM struct {
	GroupID    String `xml:"groupId"`
	ArtifactID String `xml:"artifactId"`
	Version    String `xml:"version"`

	Parent RawParent `xml:"parent"`

	Properties    Properties       `xml:"properties"`
	Prerequisites RawPrerequisites `xml:"prerequisites"`

	DependencyManagement RawDependencyManagement `xml:"dependencyManagement"`
	Dependencies         []RawDependency          `xml:"dependencies>dependency"`

	Build    RawBuild     `xml:"build"`
	Profiles []RawProfile `xml:"profiles>profile"`
	Modules  []string     `xml:"modules>module"`
}

// RawParent is a <parent> reference.
type RawParent struct {
	GroupID      String `xml:"groupId"`
	ArtifactID   String `xml:"artifactId"`
	Version      String `xml:"version"`
	RelativePath String `xml:"relativePath"`
}

func (p RawParent) isSet() bool {
	return p.GroupID != "" || p.ArtifactID != "" || p.Version != ""
}

// RawPrerequisites is the <prerequisites> block; only <maven> is relevant,
// as the value of the resolver's project.prerequisites.maven built-in
// (SPEC_FULL.md §4.3).
type RawPrerequisites struct {
	Maven String `xml:"maven"`
}

// RawBuild is the part of <build> the resolver consults: declared plugins
// and plugin management.
type RawBuild struct {
	Plugins          []RawPlugin         `xml:"plugins>plugin"`
	PluginManagement RawPluginManagement `xml:"pluginManagement"`
}

// RawPluginManagement is a <pluginManagement> block.
type RawPluginManagement struct {
	Plugins []RawPlugin `xml:"plugins>plugin"`
}

// RawPlugin is a <plugin> entry, either a managed one (version-only, from
// pluginManagement) or a declared one under <build>/<plugins>.
type RawPlugin struct {
	GroupID    String `xml:"groupId"`
	ArtifactID String `xml:"artifactId"`
	Version    String `xml:"version"`
}

// RawDependencyManagement is a <dependencyManagement> block.
type RawDependencyManagement struct {
	Dependencies []RawDependency `xml:"dependencies>dependency"`
}

// RawDependency is a <dependency> entry, declared or managed.
type RawDependency struct {
	GroupID    String        `xml:"groupId"`
	ArtifactID String        `xml:"artifactId"`
	Version    String        `xml:"version"`
	Type       String        `xml:"type"`
	Classifier String        `xml:"classifier"`
	Scope      String        `xml:"scope"`
	Optional   FalsyBool     `xml:"optional"`
	Exclusions []RawExclusion `xml:"exclusions>exclusion"`
}

// RawExclusion is an <exclusion> entry.
type RawExclusion struct {
	GroupID    String `xml:"groupId"`
	ArtifactID String `xml:"artifactId"`
}

// RawProfile is a <profile> entry.
type RawProfile struct {
	ID                   String                  `xml:"id"`
	Activation           RawActivation           `xml:"activation"`
	Properties           Properties              `xml:"properties"`
	DependencyManagement RawDependencyManagement `xml:"dependencyManagement"`
	Dependencies         []RawDependency          `xml:"dependencies>dependency"`
	Modules              []string                `xml:"modules>module"`
}

// RawActivation is a <profile>/<activation> block. SPEC_FULL.md §4.8
// restricts activation evaluation to id membership and activeByDefault,
// so only <activeByDefault> is decoded; OS/JDK/file activation elements
// are not decoded at all.
type RawActivation struct {
	ActiveByDefault FalsyBool `xml:"activeByDefault"`
}

// ParseRawPOM reads and unmarshals a pom.xml file from disk.
func ParseRawPOM(path string) (*RawPOM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pom %s: %w", path, err)
	}
	var raw RawPOM
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing pom %s: %w", path, err)
	}
	return &raw, nil
}

// Key returns the dependency key of a raw dependency, defaulting an empty
// <type> to "jar".
func (d RawDependency) Key() DependencyKey {
	return MakeDependencyKey(string(d.GroupID), string(d.ArtifactID), string(d.Classifier), string(d.Type))
}

// GroupArtifact returns the (groupId, artifactId) of a raw plugin.
func (p RawPlugin) GroupArtifact() GroupArtifact {
	return GroupArtifact{GroupID: string(p.GroupID), ArtifactID: string(p.ArtifactID)}
}
