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

// Package report delivers classified violations to registered callbacks.
//
// A Reporter joins the three layers beneath it: it resolves each error's
// severity and action through a dispatch policy, fills missing messages
// from the catalog, and fans the resulting snapshot out to callbacks. The
// returned abort flag tells the caller whether the validated call may
// proceed.
//
// Reporters are safe for concurrent use. Each dispatched report gets a
// unique ID and, when the context carries an active trace span, the trace
// and span IDs of that span.
package report
