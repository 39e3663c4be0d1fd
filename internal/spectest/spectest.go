// Copyright 2026 The Unidok Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package spectest loads the end-to-end scenario table used by unidok's own
// top-level tests, the way the teacher's spec_test.go loads the CommonMark
// reference suite from testdata/spec-0.30.json: scenarios are data, not Go
// literals scattered across test functions, so the set can grow (or be
// regenerated) without touching test code.
package spectest

import (
	"embed"
	"encoding/json"
)

//go:embed testdata/scenarios.json
var data embed.FS

// Scenario is one named input/output pair.
type Scenario struct {
	Name   string `json:"name"`
	Unidok string `json:"unidok"`
	HTML   string `json:"html"`
}

// Load reads the embedded scenario table.
func Load() ([]Scenario, error) {
	b, err := data.ReadFile("testdata/scenarios.json")
	if err != nil {
		return nil, err
	}
	var scenarios []Scenario
	if err := json.Unmarshal(b, &scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}
