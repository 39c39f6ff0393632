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

// Package prom contains shared label names and values for prometheus
// metrics.
package prom

// Common label names.
const (
	// LabelResult is the label for result classifications.
	LabelResult = "result"
	// LabelMethod is the label for the invoked method name.
	LabelMethod = "method"
	// LabelKind is the label for the RPC kind of the transport channel.
	LabelKind = "kind"
)

// Common result values.
const (
	// Success is no error.
	Success = "ok_success"
	// ErrNotFound is used when a requested entry does not exist.
	ErrNotFound = "err_not_found"
	// ErrKind is used when a method is invoked over a channel of an
	// incompatible RPC kind.
	ErrKind = "err_kind"
	// ErrParse failed to parse request.
	ErrParse = "err_parse"
	// ErrHandler is an error raised by the method handler.
	ErrHandler = "err_handler"
)
