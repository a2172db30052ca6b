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

package catalog

import "vlayer.dev/verrors/code"

// Message returns the default message for c.
//
// For every registered code the result is non-empty (enforced by the
// coverage test). Unregistered values and nil yield "", which reporting
// boundaries treat as a caller-side defect.
func Message(c code.Code) string {
	switch v := c.(type) {
	case code.MemTrack:
		return memTrackMessages[v]
	case code.DrawState:
		return drawStateMessages[v]
	case code.ShaderCheck:
		return shaderCheckMessages[v]
	case code.DevLimits:
		return devLimitsMessages[v]
	default:
		return ""
	}
}

// Describe joins the stable symbol and the default message, e.g.
//
//	drawstate.no_active_renderpass: command requires an active render pass
//
// This is the form loggers use when the error value carries no message of
// its own.
func Describe(c code.Code) string {
	if c == nil {
		return ""
	}
	m := Message(c)
	if m == "" {
		return c.Symbol()
	}
	return c.Symbol() + ": " + m
}
