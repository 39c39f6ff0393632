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

// Package registry holds the runtime descriptor types published by the
// consensus registry service. The descriptors are read-only views for this
// module; registration itself happens on chain.
package registry

import (
	"github.com/enclaveproto/trustplane/pkg/codec"
	"github.com/enclaveproto/trustplane/pkg/common"
	"github.com/enclaveproto/trustplane/pkg/consensus/beacon"
	"github.com/enclaveproto/trustplane/pkg/sgx"
)

// TEEHardware is the TEE hardware kind a runtime is declared to run under.
type TEEHardware uint8

const (
	// TEEHardwareInvalid is a non-TEE runtime.
	TEEHardwareInvalid TEEHardware = 0
	// TEEHardwareIntelSGX is an Intel SGX TEE runtime.
	TEEHardwareIntelSGX TEEHardware = 1
)

// String returns the string representation of the TEE hardware kind.
func (h TEEHardware) String() string {
	switch h {
	case TEEHardwareInvalid:
		return "invalid"
	case TEEHardwareIntelSGX:
		return "intel-sgx"
	default:
		return "[unknown]"
	}
}

// Runtime represents a runtime as registered in the consensus registry.
type Runtime struct {
	// ID is a globally unique long term identifier of the runtime.
	ID common.Namespace `cbor:"id"`

	// TEEHardware specifies the TEE hardware the runtime requires.
	TEEHardware TEEHardware `cbor:"tee_hardware"`

	// KeyManager is the key manager runtime ID for this runtime, if any.
	KeyManager *common.Namespace `cbor:"key_manager,omitempty"`

	// Deployments specifies the runtime deployments, one per version.
	Deployments []*Deployment `cbor:"deployments,omitempty"`
}

// Deployment is a per-version runtime deployment, active from its ValidFrom
// epoch until superseded by a later deployment.
type Deployment struct {
	// Version is the runtime version of this deployment.
	Version common.Version `cbor:"version"`

	// ValidFrom is the epoch at which this deployment becomes valid.
	ValidFrom beacon.Epoch `cbor:"valid_from"`

	// TEE is the hardware specific TEE constraints, opaque at this level.
	TEE codec.RawMessage `cbor:"tee,omitempty"`
}

// TryDecodeTEE decodes the TEE constraints of the deployment as SGX
// constraints.
func (d *Deployment) TryDecodeTEE() (*sgx.Constraints, error) {
	return sgx.UnmarshalConstraints(d.TEE)
}

// ActiveDeployment returns the deployment that is active at the given epoch,
// or nil if none is.
func (r *Runtime) ActiveDeployment(now beacon.Epoch) *Deployment {
	var active *Deployment
	for _, d := range r.Deployments {
		if d.ValidFrom > now {
			continue
		}
		if active == nil || d.ValidFrom > active.ValidFrom {
			active = d
		}
	}
	return active
}

// DeploymentForVersion returns the deployment that matches the given version
// exactly, or nil if none does.
func (r *Runtime) DeploymentForVersion(version common.Version) *Deployment {
	for _, d := range r.Deployments {
		if d.Version == version {
			return d
		}
	}
	return nil
}
