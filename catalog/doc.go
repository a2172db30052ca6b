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

// Package catalog maps every taxonomy code to its default human-readable
// message.
//
// The mapping is total: each registered code in each of the four domains
// has exactly one entry, including the sentinels (whose entries exist only
// so the mapping stays total — sentinels are never reported). A code added
// to the taxonomy without a catalog entry is drift, caught by the coverage
// test in this package.
//
// Messages describe the violation, not the remedy, and carry no call-
// specific data; the reporting layer attaches handles, origins and
// structured details separately.
package catalog
