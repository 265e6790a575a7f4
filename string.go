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
	"strconv"
	"strings"
)

// String is a raw XML character-data field with whitespace trimmed on
// unmarshal. Raw POM fields carry this type rather than plain string so
// the reader never has to special-case leading/trailing POM indentation.
type String string

// ContainsProperty reports whether s contains a ${...} expression.
func (s String) ContainsProperty() bool {
	str := string(s)
	i := strings.Index(str, "${")
	return i >= 0 && strings.Contains(str[i+2:], "}")
}

// UnmarshalXML trims whitespace when unmarshalling a string field.
func (s *String) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var str string
	if err := d.DecodeElement(&str, &start); err != nil {
		return err
	}
	*s = String(strings.TrimSpace(str))
	return nil
}

// FalsyBool is a string-backed boolean field that defaults to false when
// absent or empty, matching Maven fields such as <activeByDefault> and
// <optional>.
type FalsyBool string

// UnmarshalXML trims whitespace when unmarshalling a boolean-shaped field.
func (b *FalsyBool) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var str string
	if err := d.DecodeElement(&str, &start); err != nil {
		return err
	}
	*b = FalsyBool(strings.TrimSpace(str))
	return nil
}

// Boolean reports the field's boolean value, defaulting to false. Any
// value strconv.ParseBool does not recognize is treated as false, matching
// Maven's own lenient handling of a malformed <optional>/<activeByDefault>.
func (b FalsyBool) Boolean() bool {
	v, err := strconv.ParseBool(strings.TrimSpace(string(b)))
	return err == nil && v
}

// TruthyBool is a string-backed boolean field that defaults to true when
// absent or empty, matching Maven fields such as <enabled> on a
// repository policy and <inherited> on a plugin.
type TruthyBool string

// UnmarshalXML trims whitespace when unmarshalling a boolean-shaped field.
func (b *TruthyBool) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var str string
	if err := d.DecodeElement(&str, &start); err != nil {
		return err
	}
	*b = TruthyBool(strings.TrimSpace(str))
	return nil
}

// Boolean reports the field's boolean value, defaulting to true. Unlike
// FalsyBool, case is folded before parsing so mixed-case spellings such as
// "FalSE" still override the default.
func (b TruthyBool) Boolean() bool {
	v, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(string(b))))
	if err != nil {
		return true
	}
	return v
}
