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

// Package pom is a static analyzer over Maven POM metadata. It resolves
// GAV coordinates, interpolates ${...} property expressions against a
// project's own properties, its ancestor chain and imported BOMs, and
// computes the effective (version, scope) of every declared dependency
// while tracking whether that version was pinned by the project itself
// or inherited.
//
// The package never downloads artifacts, builds projects, runs plugins
// or reproduces Maven's classpath ordering: it only reads POM metadata
// already available in memory or on disk and folds it into the shape a
// build-graph tool needs.
package pom
