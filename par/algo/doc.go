// Copyright 2025 go-parallel Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package algo provides the parallel algorithm facades built on the
// par substrate: traversal, transformation, reduction, prefix scans,
// merging, partitioning and filling, each parameterised by an
// execution policy.
//
// Every facade validates its inputs at the boundary, selects the
// sequential kernel when the policy is sequential or the range size is
// unknown, and otherwise hands chunks to the partitioner. Facades
// whose name ends in Async return a *par.Future and honour the
// policy's task mode; the blocking forms reject task-mode policies.
//
// Facades over iterator pairs accept any iterator/sentinel types from
// the par taxonomy; slice-based forms are provided where the algorithm
// is naturally contiguous. Under Unseq and ParUnseq policies the
// lane-constrained facades (Find, Count, the *Vec predicates) run
// their inner loops on par/simd packs.
package algo
