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

// Package sgx holds the attestation acceptance policy types for Intel SGX
// enclaves. The values are published on chain and read back by the policy
// verifier; this package never evaluates quotes itself.
package sgx

import (
	"bytes"
	"encoding/hex"

	"github.com/enclaveproto/trustplane/pkg/codec"
	"github.com/enclaveproto/trustplane/pkg/private/serrors"
)

// MeasurementSize is the size of an enclave measurement hash in bytes.
const MeasurementSize = 32

// MrEnclave is the enclave code measurement.
type MrEnclave [MeasurementSize]byte

// MrSigner is the enclave signer measurement.
type MrSigner [MeasurementSize]byte

// EnclaveIdentity is a byte serialized MRSIGNER/MRENCLAVE pair.
type EnclaveIdentity struct {
	MrEnclave MrEnclave `cbor:"mr_enclave"`
	MrSigner  MrSigner  `cbor:"mr_signer"`
}

// String returns the identity in MRENCLAVE+MRSIGNER hex form.
func (id EnclaveIdentity) String() string {
	return hex.EncodeToString(id.MrEnclave[:]) + "+" + hex.EncodeToString(id.MrSigner[:])
}

// QuotePolicy is the quote acceptance policy for an SGX enclave. Exactly the
// quote kinds with a non-nil sub-policy are accepted.
type QuotePolicy struct {
	IAS *IASQuotePolicy `cbor:"ias,omitempty"`
	PCS *PCSQuotePolicy `cbor:"pcs,omitempty"`
}

// IASQuotePolicy is the quote acceptance policy for IAS attestation.
type IASQuotePolicy struct {
	// Disabled specifies whether IAS quotes are disabled and will always be
	// rejected.
	Disabled bool `cbor:"disabled,omitempty"`
	// AllowedQuoteStatuses are the non-GroupOutOfDate quote statuses that
	// should be allowed.
	AllowedQuoteStatuses []int64 `cbor:"allowed_quote_statuses,omitempty"`
	// GIDBlacklist is a list of blocked platform EPID group IDs.
	GIDBlacklist []uint32 `cbor:"gid_blacklist,omitempty"`
	// MinTCBEvaluationDataNumber is the lowest TCB evaluation data number
	// that is considered to be valid.
	MinTCBEvaluationDataNumber uint32 `cbor:"min_tcb_evaluation_data_number,omitempty"`
}

// PCSQuotePolicy is the quote acceptance policy for PCS attestation.
type PCSQuotePolicy struct {
	// TCBValidityPeriod is the validity (in days) of the TCB collateral.
	TCBValidityPeriod uint16 `cbor:"tcb_validity_period"`
	// MinTCBEvaluationDataNumber is the lowest TCB evaluation data number
	// that is considered to be valid.
	MinTCBEvaluationDataNumber uint32 `cbor:"min_tcb_evaluation_data_number"`
	// FMSPCBlacklist is a list of hexadecimal encoded FMSPCs specifying
	// which platforms should be blocked.
	FMSPCBlacklist []string `cbor:"fmspc_blacklist,omitempty"`
}

// Equal compares vs another policy for equality. Comparison is over the
// canonical encoding, so semantically equal policies always compare equal.
func (qp *QuotePolicy) Equal(cmp *QuotePolicy) bool {
	return bytes.Equal(codec.MustMarshal(qp), codec.MustMarshal(cmp))
}

// Constraints are the Intel SGX TEE constraints of a runtime deployment.
type Constraints struct {
	// Enclaves is the allowed enclave identities.
	Enclaves []EnclaveIdentity `cbor:"enclaves,omitempty"`
	// Policy is the quote acceptance policy.
	Policy *QuotePolicy `cbor:"policy,omitempty"`
	// MaxAttestationAge is the maximum attestation age (in blocks).
	MaxAttestationAge uint64 `cbor:"max_attestation_age,omitempty"`
}

// UnmarshalConstraints decodes serialized TEE constraints, rejecting
// anything that does not parse as SGX constraints.
func UnmarshalConstraints(data []byte) (*Constraints, error) {
	var sc Constraints
	if err := codec.Unmarshal(data, &sc); err != nil {
		return nil, serrors.Wrap("malformed SGX constraints", err)
	}
	return &sc, nil
}
