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

// Package code defines the closed error-classification taxonomy of the
// validation layer.
//
// The taxonomy is partitioned into four independent domains, each with its
// own scoped enumeration type:
//
//   - MemTrack — object/memory lifetime and binding violations;
//   - DrawState — draw-state and command-recording state-machine violations;
//   - ShaderCheck — shader interface consistency violations;
//   - DevLimits — device limit/feature/queue-family query violations.
//
// Each enumeration reserves ordinal zero for its "no violation" sentinel
// (MemTrackNone, DrawStateNone, ShaderCheckNone, DevLimitsNone). The
// sentinel is the default value of any code-typed field before a check has
// run; it is never used to report an actual violation.
//
// Values are plain compile-time constants: the full set exists before any
// consumer can observe it, is immutable for the life of the process, and is
// safe for concurrent reads from any number of validation checks without
// synchronization.
//
// # Stability
//
// Codes are append-only. A published code is never renumbered, removed, or
// repurposed; new violations get new codes at the end of their domain.
// Consumers may persist either the numeric mapping (Domain tag + Ordinal)
// or the symbolic one (Symbol, e.g. "drawstate.no_active_renderpass"), both
// published together with TaxonomyVersion. A violation that fits no
// existing code is a taxonomy-completeness defect and is fixed by appending
// a code, never by overloading an existing one.
package code
