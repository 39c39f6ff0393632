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

// Package policy cross-checks untrusted attestation and key manager policy
// artifacts against the authoritative values published in verified
// consensus state.
//
// Every operation re-derives its answer from a freshly obtained consensus
// snapshot. The verifier keeps no state of its own, so a single instance is
// safe to share between any number of concurrent callers, and staleness is
// bounded only by the snapshot's freshness guarantee.
package policy

import (
	"context"

	"github.com/enclaveproto/trustplane/pkg/common"
	"github.com/enclaveproto/trustplane/pkg/consensus"
	"github.com/enclaveproto/trustplane/pkg/consensus/keymanager"
	"github.com/enclaveproto/trustplane/pkg/consensus/registry"
	"github.com/enclaveproto/trustplane/pkg/log"
	"github.com/enclaveproto/trustplane/pkg/private/serrors"
	"github.com/enclaveproto/trustplane/pkg/sgx"
)

// Verification failures. Each represents a failed trust decision; callers
// must abort whatever flow presented the artifact rather than proceed.
var (
	// ErrMissingRuntimeDescriptor is the error when the runtime is not
	// registered in the consensus registry.
	ErrMissingRuntimeDescriptor = serrors.New("missing runtime descriptor")
	// ErrNoDeployment is the error when the runtime has no deployment
	// matching the requested version or epoch.
	ErrNoDeployment = serrors.New("no corresponding runtime deployment")
	// ErrBadTEEConstraints is the error when the deployment's TEE
	// constraints cannot be decoded for the declared hardware.
	ErrBadTEEConstraints = serrors.New("bad TEE constraints")
	// ErrPolicyNotPublished is the error when no policy matching the
	// request is published in consensus state.
	ErrPolicyNotPublished = serrors.New("policy hasn't been published")
	// ErrHardwareMismatch is the error when the runtime's declared TEE
	// hardware has no resolvable policy kind.
	ErrHardwareMismatch = serrors.New("configured runtime hardware mismatch")
	// ErrNoKeyManager is the error when the runtime declares no key
	// manager.
	ErrNoKeyManager = serrors.New("runtime doesn't use key manager")
)

// Verifier resolves policy values from verified consensus state and
// validates untrusted candidates against them.
type Verifier struct {
	consensus consensus.Verifier
	logger    log.Logger
}

// NewVerifier creates a new consensus policy verifier.
func NewVerifier(cv consensus.Verifier) *Verifier {
	return &Verifier{
		consensus: cv,
		logger:    log.New("component", "policy/verifier"),
	}
}

// state obtains a consensus snapshot, either the latest verified one or one
// at the settled reference height.
func (v *Verifier) state(ctx context.Context, useLatestState bool) (consensus.State, error) {
	if useLatestState {
		return v.consensus.LatestState(ctx)
	}
	return v.consensus.StateAt(ctx, consensus.HeightLatest)
}

// QuotePolicy fetches the runtime's quote policy from verified consensus
// state.
//
// If the runtime version is not provided, the policy of the deployment
// active in the current epoch is returned.
func (v *Verifier) QuotePolicy(
	ctx context.Context,
	runtimeID common.Namespace,
	version *common.Version,
	useLatestState bool,
) (*sgx.QuotePolicy, error) {
	state, err := v.state(ctx, useLatestState)
	if err != nil {
		return nil, err
	}

	runtime, err := state.Registry().Runtime(ctx, runtimeID)
	if err != nil {
		return nil, err
	}
	if runtime == nil {
		return nil, ErrMissingRuntimeDescriptor
	}

	var deployment *registry.Deployment
	if version != nil {
		deployment = runtime.DeploymentForVersion(*version)
	} else {
		epoch, err := state.Beacon().Epoch(ctx)
		if err != nil {
			return nil, err
		}
		deployment = runtime.ActiveDeployment(epoch)
	}
	if deployment == nil {
		return nil, ErrNoDeployment
	}

	switch runtime.TEEHardware {
	case registry.TEEHardwareIntelSGX:
		sc, err := deployment.TryDecodeTEE()
		if err != nil {
			return nil, ErrBadTEEConstraints
		}
		return sc.Policy, nil
	default:
		return nil, ErrHardwareMismatch
	}
}

// VerifyQuotePolicy verifies that the given untrusted quote policy matches
// the one published in verified consensus state. On success the published
// policy is returned and should be treated as the authoritative value.
func (v *Verifier) VerifyQuotePolicy(
	ctx context.Context,
	policy *sgx.QuotePolicy,
	runtimeID common.Namespace,
	version *common.Version,
	useLatestState bool,
) (*sgx.QuotePolicy, error) {
	published, err := v.QuotePolicy(ctx, runtimeID, version, useLatestState)
	if err != nil {
		return nil, err
	}

	if !policy.Equal(published) {
		v.logger.Debug("quote policy mismatch",
			"untrusted", policy,
			"published", published,
		)
		return nil, ErrPolicyNotPublished
	}
	return published, nil
}

// KeyManagerPolicy fetches the key manager's signing policy from verified
// consensus state.
func (v *Verifier) KeyManagerPolicy(
	ctx context.Context,
	keyManager common.Namespace,
	useLatestState bool,
) (*keymanager.SignedPolicySGX, error) {
	state, err := v.state(ctx, useLatestState)
	if err != nil {
		return nil, err
	}

	status, err := state.KeyManager().Status(ctx, keyManager)
	if err != nil {
		return nil, err
	}
	if status == nil || status.Policy == nil {
		return nil, ErrPolicyNotPublished
	}
	return status.Policy, nil
}

// VerifyKeyManagerPolicy verifies that the given untrusted key manager
// policy matches the one published in verified consensus state. On success
// the published policy is returned and should be treated as the
// authoritative value.
func (v *Verifier) VerifyKeyManagerPolicy(
	ctx context.Context,
	policy *keymanager.SignedPolicySGX,
	keyManager common.Namespace,
	useLatestState bool,
) (*keymanager.SignedPolicySGX, error) {
	published, err := v.KeyManagerPolicy(ctx, keyManager, useLatestState)
	if err != nil {
		return nil, err
	}

	if !policy.Equal(published) {
		v.logger.Debug("key manager policy mismatch",
			"untrusted", policy,
			"published", published,
		)
		return nil, ErrPolicyNotPublished
	}
	return published, nil
}

// KeyManager fetches the runtime's declared key manager from verified
// consensus state.
func (v *Verifier) KeyManager(
	ctx context.Context,
	runtimeID common.Namespace,
	useLatestState bool,
) (common.Namespace, error) {
	state, err := v.state(ctx, useLatestState)
	if err != nil {
		return common.Namespace{}, err
	}

	runtime, err := state.Registry().Runtime(ctx, runtimeID)
	if err != nil {
		return common.Namespace{}, err
	}
	if runtime == nil {
		return common.Namespace{}, ErrMissingRuntimeDescriptor
	}
	if runtime.KeyManager == nil {
		return common.Namespace{}, ErrNoKeyManager
	}
	return *runtime.KeyManager, nil
}
