/*
   Copyright 2026 The VLAYER Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package dispatch

import (
	"vlayer.dev/verrors/apis"
	"vlayer.dev/verrors/code"
	"vlayer.dev/verrors/dispatch/internal/segmenttrie"
)

// freezeCodeSeverities makes an immutable copy of a per-code severity map.
// Used when finalizing the policy so later mutations to the builder
// (or caller-owned maps) cannot affect the snapshot.
func freezeCodeSeverities(src map[code.Key]apis.Severity) map[code.Key]apis.Severity {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Key]apis.Severity, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeDomainSeverities makes an immutable copy of the per-domain severity map.
func freezeDomainSeverities(src map[code.Domain]apis.Severity) map[code.Domain]apis.Severity {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Domain]apis.Severity, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeActions makes an immutable copy of the per-code action overrides.
func freezeActions(src map[code.Key]apis.Action) map[code.Key]apis.Action {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Key]apis.Action, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeSeverityActions makes an immutable copy of the per-severity action table.
func freezeSeverityActions(src map[apis.Severity]apis.Action) map[apis.Severity]apis.Action {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[apis.Severity]apis.Action, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeTries makes a shallow copy of the per-code prefix tries.
// Each trie is considered immutable after build, so only the top-level
// map needs protecting.
func freezeTries(src map[code.Key]*segmenttrie.Trie[apis.Severity]) map[code.Key]*segmenttrie.Trie[apis.Severity] {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Key]*segmenttrie.Trie[apis.Severity], len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
