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
)

// defaultDomainSeverity is the base severity of every domain. Violations
// are errors unless a more specific rule says otherwise.
var defaultDomainSeverity = map[code.Domain]apis.Severity{
	code.DomainMemTrack:    apis.SeverityError,
	code.DomainDrawState:   apis.SeverityError,
	code.DomainShaderCheck: apis.SeverityError,
	code.DomainDevLimits:   apis.SeverityError,
}

// defaultCodeSeverity seeds per-code defaults for codes that are advisory
// rather than definite violations: usage that is legal but wasteful, or
// teardown sloppiness that cannot corrupt the current frame.
var defaultCodeSeverity = map[code.Key]apis.Severity{
	code.KeyOf(code.MemTrackMemoryLeak):           apis.SeverityWarning,
	code.KeyOf(code.DrawStateClearCmdBeforeDraw):  apis.SeverityPerfWarning,
	code.KeyOf(code.DrawStateVtxIndexOutOfBounds): apis.SeverityWarning,
	code.KeyOf(code.ShaderCheckOutputNotConsumed): apis.SeverityWarning,
}

// defaultSeverityAction maps a resolved severity to the default action.
// Debug chatter is dropped; everything else reaches the callbacks. Nothing
// aborts by default — that is an explicit per-deployment choice.
var defaultSeverityAction = map[apis.Severity]apis.Action{
	apis.SeverityDebug:       apis.ActionIgnore,
	apis.SeverityInfo:        apis.ActionLog,
	apis.SeverityPerfWarning: apis.ActionLog,
	apis.SeverityWarning:     apis.ActionLog,
	apis.SeverityError:       apis.ActionLog,
}
