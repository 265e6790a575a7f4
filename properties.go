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
	"strings"
)

// Properties hold the property pairs defined in a pom.xml <properties>
// block, in declaration order.
type Properties struct {
	Properties []Property
}

// Property is a single name/value pair from a <properties> block.
type Property struct {
	Name  string
	Value string
}

// UnmarshalXML unmarshals the arbitrarily-named children of a <properties>
// element into a slice of Property.
//
//	<properties>
//	  <name1>value1</name1>
//	  <name2>value2</name2>
//	</properties>
func (p *Properties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		t, err := d.Token()
		if err != nil {
			return err
		}
		switch t1 := t.(type) {
		case xml.StartElement:
			var s string
			if err := d.DecodeElement(&s, &t1); err != nil {
				return err
			}
			p.Properties = append(p.Properties, Property{
				Name:  t1.Name.Local,
				Value: strings.TrimSpace(s),
			})
		case xml.EndElement:
			return nil
		}
	}
}

// asMap returns the last-writer-wins map view of the properties, which is
// the local-property layer consulted first by the property resolver
// (SPEC_FULL.md §4.3 step 2).
func (p Properties) asMap() map[string]string {
	m := make(map[string]string, len(p.Properties))
	for _, prop := range p.Properties {
		m[prop.Name] = prop.Value
	}
	return m
}
