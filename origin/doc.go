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

// Package origin identifies the validation check that raised a report.
//
// Where a code answers "which violation is this?", an origin answers "which
// check, on which call path, detected it?", e.g.:
//
//   - "core.cmdbuffer.begin"
//   - "core.descriptor.update"
//   - "wsi.swapchain.create"
//
// Origins are dot-separated, lowercase, at most four segments deep. They
// are the hook for dispatch policy: severity/action rules can target an
// origin prefix to mute or escalate everything a subsystem reports.
//
// Origin is optional: the zero value ("") means the reporting check did not
// identify itself, and dispatch falls back to code-level rules.
package origin
