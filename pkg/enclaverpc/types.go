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

// Package enclaverpc implements the RPC surface of an enclave-hosted
// runtime: the request/response vocabulary and the dispatcher that
// authorizes and routes incoming calls.
//
// Every request arrives over a transport channel of a certain Kind, which
// encodes how much the channel is trusted. Methods declare the kind they
// require at registration time and the dispatcher enforces compatibility
// before any handler code runs.
package enclaverpc

import (
	"github.com/enclaveproto/trustplane/pkg/codec"
)

// Kind is the trust classification of the channel a request arrived on.
type Kind uint8

const (
	// KindNoiseSession is a request over an established, mutually
	// authenticated encrypted session.
	KindNoiseSession Kind = 0
	// KindInsecureQuery is a plain-text query that carries no
	// authentication whatsoever.
	KindInsecureQuery Kind = 1
	// KindLocalQuery is a query from the same host, outside any remote
	// transport.
	KindLocalQuery Kind = 2
)

// String returns the string representation of the RPC kind.
func (k Kind) String() string {
	switch k {
	case KindNoiseSession:
		return "noise_session"
	case KindInsecureQuery:
		return "insecure_query"
	case KindLocalQuery:
		return "local_query"
	default:
		return "[unknown]"
	}
}

// Request is an RPC request as decoded by the transport layer. It is
// immutable once constructed.
type Request struct {
	// Method is the name of the invoked method.
	Method string `cbor:"method"`
	// Args is the opaque encoded method argument value.
	Args codec.RawMessage `cbor:"args"`
}

// Body is the result of an RPC call; exactly one of the fields is set.
type Body struct {
	// Success is the opaque encoded result value of a successful call.
	Success codec.RawMessage `cbor:"Success,omitempty"`
	// Error is the error message of a failed call.
	Error *string `cbor:"Error,omitempty"`
}

// Response is an RPC response. The transport layer can always send it, even
// for malformed or unauthorized requests.
type Response struct {
	// Body is the response body.
	Body Body `cbor:"body"`
}

func successResponse(value codec.RawMessage) *Response {
	return &Response{Body: Body{Success: value}}
}

func errorResponse(err error) *Response {
	msg := err.Error()
	return &Response{Body: Body{Error: &msg}}
}
