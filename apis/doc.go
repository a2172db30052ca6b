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

// Package apis defines the public Go-level contracts between the taxonomy
// and the subsystems that consume it.
//
// It holds the small interfaces and view types that dispatch policies,
// reporters, and the HTTP/gRPC adapters target, so that none of them has to
// import the concrete error implementation. Concrete types (the root
// verrors.Error, the dispatch policy) implement these contracts; callers
// should not rely on the concrete types.
//
// This package stays lightweight: it imports only the leaf taxonomy
// packages (code, origin) and contains no behavior beyond String methods.
package apis
