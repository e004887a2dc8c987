/*
   Copyright 2025 The DIRPX Authors

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

// Package code provides matching helpers for APIC-EM provider error codes.
//
// Provider codes arrive in many shapes: HTTP-style numbers ("404"),
// controller identifiers ("NCND80010") or symbolic names ("TASK_TIMEOUT").
// The taxonomy stores them verbatim; this package only derives a canonical
// form for comparisons and rule lookups:
//
//   - surrounding spaces are trimmed;
//   - letters are upper-cased;
//   - '-' and '.' become '_'.
//
// A canonical code is a sequence of '_'-separated segments. Rule patterns use
// the same syntax plus "*", which matches exactly one segment.
package code
