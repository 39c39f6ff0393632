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

// Package keymanager holds the key manager status and access-control policy
// types published by the consensus key manager service.
package keymanager

import (
	"bytes"

	"github.com/enclaveproto/trustplane/pkg/codec"
	"github.com/enclaveproto/trustplane/pkg/common"
	"github.com/enclaveproto/trustplane/pkg/sgx"
)

// EnclavePolicySGX is the per-enclave access-control policy.
type EnclavePolicySGX struct {
	// MayQuery is the map of runtimes that may query secrets, keyed by the
	// runtime ID, to the list of enclave identities allowed to do so.
	MayQuery map[common.Namespace][]sgx.EnclaveIdentity `cbor:"may_query,omitempty"`

	// MayReplicate is the list of enclave identities that may replicate the
	// master secret.
	MayReplicate []sgx.EnclaveIdentity `cbor:"may_replicate,omitempty"`
}

// PolicySGX is the key manager access-control policy.
type PolicySGX struct {
	// Serial is the monotonically increasing policy serial number.
	Serial uint32 `cbor:"serial"`

	// ID is the runtime ID that this policy is valid for.
	ID common.Namespace `cbor:"id"`

	// Enclaves is the per-enclave policy, keyed by enclave identity.
	Enclaves map[sgx.EnclaveIdentity]*EnclavePolicySGX `cbor:"enclaves,omitempty"`

	// MaxEphemeralSecretAge is the maximum age of an ephemeral secret in
	// epochs.
	MaxEphemeralSecretAge uint64 `cbor:"max_ephemeral_secret_age,omitempty"`
}

// PolicySignature is a signature over a serialized policy.
type PolicySignature struct {
	// PublicKey is the public key that produced the signature.
	PublicKey []byte `cbor:"public_key"`

	// Signature is the actual signature.
	Signature []byte `cbor:"signature"`
}

// SignedPolicySGX is a signed key manager access-control policy.
type SignedPolicySGX struct {
	// Policy is the enclosed policy.
	Policy PolicySGX `cbor:"policy"`

	// Signatures are the signatures over the serialized policy.
	Signatures []PolicySignature `cbor:"signatures,omitempty"`
}

// Equal compares vs another signed policy for equality. Comparison is over
// the canonical encoding, so semantically equal policies always compare
// equal.
func (p *SignedPolicySGX) Equal(cmp *SignedPolicySGX) bool {
	return bytes.Equal(codec.MustMarshal(p), codec.MustMarshal(cmp))
}

// Status is the on-chain status of a key manager.
type Status struct {
	// ID is the runtime ID of the key manager.
	ID common.Namespace `cbor:"id"`

	// IsInitialized indicates whether the key manager is done initializing.
	IsInitialized bool `cbor:"is_initialized,omitempty"`

	// IsSecure indicates whether the key manager is fully secure.
	IsSecure bool `cbor:"is_secure,omitempty"`

	// Policy is the key manager policy, if any has been published.
	Policy *SignedPolicySGX `cbor:"policy,omitempty"`
}
