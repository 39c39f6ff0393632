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

package enclaverpc

import (
	"github.com/enclaveproto/trustplane/pkg/sgx"
)

// SessionInfo describes the authenticated remote peer of the session a
// request arrived on.
type SessionInfo struct {
	// PeerIdentity is the remote enclave identity attested during the
	// session handshake.
	PeerIdentity sgx.EnclaveIdentity

	// AttestedPublicKey is the session public key bound to the peer's
	// attestation.
	AttestedPublicKey []byte
}

// Context is the per-request state bag. It is created fresh for each
// dispatched request, exclusively owned by that dispatch invocation, and
// discarded when dispatch returns.
type Context struct {
	// SessionInfo describes the authenticated peer, if the request arrived
	// over an authenticated session.
	SessionInfo *SessionInfo

	// Values is request-scoped storage for the hosting application. The
	// context initializer typically seeds it before routing.
	Values map[interface{}]interface{}
}

// NewContext creates a new empty request context.
func NewContext() *Context {
	return &Context{
		Values: make(map[interface{}]interface{}),
	}
}
