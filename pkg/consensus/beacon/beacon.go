// Copyright 2025 The Trustplane Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package beacon holds the epochtime types published by the consensus
// beacon service.
package beacon

// Epoch is the number of intervals (epochs) since a fixed instant in time.
type Epoch uint64

// EpochInvalid is the placeholder invalid epoch.
const EpochInvalid Epoch = 0xffffffffffffffff
