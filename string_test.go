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
	"testing"
)

func TestStringTrimsWhitespace(t *testing.T) {
	var got struct {
		Str String `xml:"string"`
	}
	if err := xml.Unmarshal([]byte(`<metadata><string> test </string></metadata>`), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if got.Str != "test" {
		t.Fatalf("unmarshal string want: %s, got: %s", "test", got.Str)
	}
}

func TestStringContainsProperty(t *testing.T) {
	tests := []struct {
		s    String
		want bool
	}{
		{"plain", false},
		{"${foo}", true},
		{"prefix-${foo}-suffix", true},
		{"${foo", false},
		{"foo}", false},
	}
	for _, test := range tests {
		if got := test.s.ContainsProperty(); got != test.want {
			t.Errorf("ContainsProperty(%q) = %v, want %v", test.s, got, test.want)
		}
	}
}

func TestTruthyBool(t *testing.T) {
	tests := []struct {
		xml      string
		want     TruthyBool
		wantBool bool
	}{
		{"<xml><bool> true </bool></xml>", "true", true},
		{"<xml><bool>TRue</bool></xml>", "TRue", true},
		{"<xml><bool>FalSE</bool></xml>", "FalSE", false},
		{"<xml><bool></bool></xml>", "", true},
	}
	for _, test := range tests {
		var got struct {
			Str TruthyBool `xml:"bool"`
		}
		if err := xml.Unmarshal([]byte(test.xml), &got); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}
		if got.Str != test.want {
			t.Errorf("unmarshal string want: %s, got: %s", test.want, got.Str)
		}
		if got.Str.Boolean() != test.wantBool {
			t.Errorf("Boolean(): got %v, want: %v", got.Str.Boolean(), test.wantBool)
		}
	}
}

func TestFalsyBool(t *testing.T) {
	tests := []struct {
		xml      string
		want     FalsyBool
		wantBool bool
	}{
		{"<xml><bool> true </bool></xml>", "true", true},
		{"<xml><bool>TRue</bool></xml>", "TRue", false},
		{"<xml><bool>FalSE</bool></xml>", "FalSE", false},
		{"<xml><bool></bool></xml>", "", false},
	}
	for _, test := range tests {
		var got struct {
			Str FalsyBool `xml:"bool"`
		}
		if err := xml.Unmarshal([]byte(test.xml), &got); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}
		if got.Str != test.want {
			t.Errorf("unmarshal string want: %s, got: %s", test.want, got.Str)
		}
		if got.Str.Boolean() != test.wantBool {
			t.Errorf("Boolean(): got %v, want: %v", got.Str.Boolean(), test.wantBool)
		}
	}
}
