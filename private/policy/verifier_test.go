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

package policy_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enclaveproto/trustplane/pkg/codec"
	"github.com/enclaveproto/trustplane/pkg/common"
	"github.com/enclaveproto/trustplane/pkg/consensus"
	"github.com/enclaveproto/trustplane/pkg/consensus/beacon"
	"github.com/enclaveproto/trustplane/pkg/consensus/keymanager"
	"github.com/enclaveproto/trustplane/pkg/consensus/mock_consensus"
	"github.com/enclaveproto/trustplane/pkg/consensus/registry"
	"github.com/enclaveproto/trustplane/pkg/sgx"
	"github.com/enclaveproto/trustplane/private/policy"
)

var (
	runtimeID    = testNamespace(0x01)
	keyManagerID = testNamespace(0x02)

	policyV1 = &sgx.QuotePolicy{
		PCS: &sgx.PCSQuotePolicy{TCBValidityPeriod: 30, MinTCBEvaluationDataNumber: 12},
	}
	policyV2 = &sgx.QuotePolicy{
		PCS: &sgx.PCSQuotePolicy{TCBValidityPeriod: 30, MinTCBEvaluationDataNumber: 13},
	}
)

func testNamespace(b byte) common.Namespace {
	var ns common.Namespace
	ns[0] = b
	return ns
}

type fixture struct {
	consensus  *mock_consensus.MockVerifier
	state      *mock_consensus.MockState
	registry   *mock_consensus.MockRegistryState
	beacon     *mock_consensus.MockBeaconState
	keymanager *mock_consensus.MockKeyManagerState
	verifier   *policy.Verifier
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		consensus:  mock_consensus.NewMockVerifier(ctrl),
		state:      mock_consensus.NewMockState(ctrl),
		registry:   mock_consensus.NewMockRegistryState(ctrl),
		beacon:     mock_consensus.NewMockBeaconState(ctrl),
		keymanager: mock_consensus.NewMockKeyManagerState(ctrl),
	}
	f.state.EXPECT().Registry().Return(f.registry).AnyTimes()
	f.state.EXPECT().Beacon().Return(f.beacon).AnyTimes()
	f.state.EXPECT().KeyManager().Return(f.keymanager).AnyTimes()
	f.verifier = policy.NewVerifier(f.consensus)
	return f
}

// expectLatestState arms one snapshot fetch of the latest verified state.
func (f *fixture) expectLatestState() {
	f.consensus.EXPECT().LatestState(gomock.Any()).Return(f.state, nil)
}

// expectSettledState arms one snapshot fetch at the settled reference
// height.
func (f *fixture) expectSettledState() {
	f.consensus.EXPECT().StateAt(gomock.Any(), consensus.HeightLatest).Return(f.state, nil)
}

func (f *fixture) expectRuntime(rt *registry.Runtime) {
	f.registry.EXPECT().Runtime(gomock.Any(), runtimeID).Return(rt, nil)
}

func (f *fixture) expectEpoch(epoch beacon.Epoch) {
	f.beacon.EXPECT().Epoch(gomock.Any()).Return(epoch, nil)
}

func sgxRuntime(keyManager *common.Namespace) *registry.Runtime {
	return &registry.Runtime{
		ID:          runtimeID,
		TEEHardware: registry.TEEHardwareIntelSGX,
		KeyManager:  keyManager,
		Deployments: []*registry.Deployment{
			{
				Version:   common.Version{Major: 1},
				ValidFrom: 0,
				TEE:       codec.MustMarshal(sgx.Constraints{Policy: policyV1}),
			},
			{
				Version:   common.Version{Major: 2},
				ValidFrom: 5,
				TEE:       codec.MustMarshal(sgx.Constraints{Policy: policyV2}),
			},
		},
	}
}

func TestQuotePolicyActiveDeployment(t *testing.T) {
	for _, tc := range []struct {
		epoch beacon.Epoch
		want  *sgx.QuotePolicy
	}{
		{epoch: 3, want: policyV1},
		{epoch: 6, want: policyV2},
	} {
		f := newFixture(t)
		f.expectLatestState()
		f.expectRuntime(sgxRuntime(nil))
		f.expectEpoch(tc.epoch)

		got, err := f.verifier.QuotePolicy(context.Background(), runtimeID, nil, true)
		require.NoError(t, err)
		assert.True(t, got.Equal(tc.want), "epoch %d selects the wrong deployment", tc.epoch)
	}
}

func TestQuotePolicyExplicitVersion(t *testing.T) {
	f := newFixture(t)
	f.expectLatestState()
	f.expectRuntime(sgxRuntime(nil))

	// An explicit version ignores the epoch entirely.
	version := common.Version{Major: 2}
	got, err := f.verifier.QuotePolicy(context.Background(), runtimeID, &version, true)
	require.NoError(t, err)
	assert.True(t, got.Equal(policyV2))
}

func TestQuotePolicySettledState(t *testing.T) {
	f := newFixture(t)
	f.expectSettledState()
	f.expectRuntime(sgxRuntime(nil))
	f.expectEpoch(3)

	got, err := f.verifier.QuotePolicy(context.Background(), runtimeID, nil, false)
	require.NoError(t, err)
	assert.True(t, got.Equal(policyV1))
}

func TestQuotePolicyDeterminism(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 2; i++ {
		f.expectLatestState()
		f.expectRuntime(sgxRuntime(nil))
		f.expectEpoch(3)
	}

	first, err := f.verifier.QuotePolicy(context.Background(), runtimeID, nil, true)
	require.NoError(t, err)
	second, err := f.verifier.QuotePolicy(context.Background(), runtimeID, nil, true)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

func TestQuotePolicyMissingRuntime(t *testing.T) {
	f := newFixture(t)
	f.expectLatestState()
	f.expectRuntime(nil)

	_, err := f.verifier.QuotePolicy(context.Background(), runtimeID, nil, true)
	assert.ErrorIs(t, err, policy.ErrMissingRuntimeDescriptor)
}

func TestQuotePolicyNoDeployment(t *testing.T) {
	t.Run("unknown version", func(t *testing.T) {
		f := newFixture(t)
		f.expectLatestState()
		f.expectRuntime(sgxRuntime(nil))

		version := common.Version{Major: 3}
		_, err := f.verifier.QuotePolicy(context.Background(), runtimeID, &version, true)
		assert.ErrorIs(t, err, policy.ErrNoDeployment)
	})

	t.Run("no active deployment", func(t *testing.T) {
		f := newFixture(t)
		rt := sgxRuntime(nil)
		rt.Deployments = rt.Deployments[1:] // valid from epoch 5 only
		f.expectLatestState()
		f.expectRuntime(rt)
		f.expectEpoch(3)

		_, err := f.verifier.QuotePolicy(context.Background(), runtimeID, nil, true)
		assert.ErrorIs(t, err, policy.ErrNoDeployment)
	})
}

func TestQuotePolicyHardwareMismatch(t *testing.T) {
	f := newFixture(t)
	rt := sgxRuntime(nil)
	rt.TEEHardware = registry.TEEHardwareInvalid
	f.expectLatestState()
	f.expectRuntime(rt)
	f.expectEpoch(3)

	_, err := f.verifier.QuotePolicy(context.Background(), runtimeID, nil, true)
	assert.ErrorIs(t, err, policy.ErrHardwareMismatch)
}

func TestQuotePolicyBadTEEConstraints(t *testing.T) {
	f := newFixture(t)
	rt := sgxRuntime(nil)
	rt.Deployments[0].TEE = []byte{0xff}
	f.expectLatestState()
	f.expectRuntime(rt)
	f.expectEpoch(3)

	_, err := f.verifier.QuotePolicy(context.Background(), runtimeID, nil, true)
	assert.ErrorIs(t, err, policy.ErrBadTEEConstraints)
}

func TestVerifyQuotePolicy(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		f := newFixture(t)
		f.expectLatestState()
		f.expectRuntime(sgxRuntime(nil))
		f.expectEpoch(3)

		got, err := f.verifier.VerifyQuotePolicy(context.Background(), policyV1, runtimeID, nil, true)
		require.NoError(t, err)
		assert.True(t, got.Equal(policyV1))
	})

	t.Run("mismatch", func(t *testing.T) {
		f := newFixture(t)
		f.expectLatestState()
		f.expectRuntime(sgxRuntime(nil))
		f.expectEpoch(3)

		_, err := f.verifier.VerifyQuotePolicy(context.Background(), policyV2, runtimeID, nil, true)
		assert.ErrorIs(t, err, policy.ErrPolicyNotPublished)
	})
}

func signedPolicy(serial uint32) *keymanager.SignedPolicySGX {
	return &keymanager.SignedPolicySGX{
		Policy: keymanager.PolicySGX{
			Serial: serial,
			ID:     keyManagerID,
		},
	}
}

func TestKeyManagerPolicy(t *testing.T) {
	t.Run("published", func(t *testing.T) {
		f := newFixture(t)
		f.expectLatestState()
		f.keymanager.EXPECT().Status(gomock.Any(), keyManagerID).Return(&keymanager.Status{
			ID:            keyManagerID,
			IsInitialized: true,
			Policy:        signedPolicy(3),
		}, nil)

		got, err := f.verifier.KeyManagerPolicy(context.Background(), keyManagerID, true)
		require.NoError(t, err)
		assert.EqualValues(t, 3, got.Policy.Serial)
	})

	t.Run("no status", func(t *testing.T) {
		f := newFixture(t)
		f.expectLatestState()
		f.keymanager.EXPECT().Status(gomock.Any(), keyManagerID).Return(nil, nil)

		_, err := f.verifier.KeyManagerPolicy(context.Background(), keyManagerID, true)
		assert.ErrorIs(t, err, policy.ErrPolicyNotPublished)
	})

	t.Run("status without policy", func(t *testing.T) {
		f := newFixture(t)
		f.expectSettledState()
		f.keymanager.EXPECT().Status(gomock.Any(), keyManagerID).Return(&keymanager.Status{
			ID: keyManagerID,
		}, nil)

		_, err := f.verifier.KeyManagerPolicy(context.Background(), keyManagerID, false)
		assert.ErrorIs(t, err, policy.ErrPolicyNotPublished)
	})
}

func TestVerifyKeyManagerPolicy(t *testing.T) {
	status := &keymanager.Status{
		ID:            keyManagerID,
		IsInitialized: true,
		Policy:        signedPolicy(3),
	}

	t.Run("match", func(t *testing.T) {
		f := newFixture(t)
		f.expectLatestState()
		f.keymanager.EXPECT().Status(gomock.Any(), keyManagerID).Return(status, nil)

		got, err := f.verifier.VerifyKeyManagerPolicy(
			context.Background(), signedPolicy(3), keyManagerID, true)
		require.NoError(t, err)
		assert.True(t, got.Equal(signedPolicy(3)))
	})

	t.Run("mismatch", func(t *testing.T) {
		f := newFixture(t)
		f.expectLatestState()
		f.keymanager.EXPECT().Status(gomock.Any(), keyManagerID).Return(status, nil)

		_, err := f.verifier.VerifyKeyManagerPolicy(
			context.Background(), signedPolicy(4), keyManagerID, true)
		assert.ErrorIs(t, err, policy.ErrPolicyNotPublished)
	})
}

func TestKeyManager(t *testing.T) {
	t.Run("declared", func(t *testing.T) {
		f := newFixture(t)
		km := keyManagerID
		f.expectLatestState()
		f.expectRuntime(sgxRuntime(&km))

		got, err := f.verifier.KeyManager(context.Background(), runtimeID, true)
		require.NoError(t, err)
		assert.Equal(t, keyManagerID, got)
	})

	t.Run("not declared", func(t *testing.T) {
		f := newFixture(t)
		f.expectLatestState()
		f.expectRuntime(sgxRuntime(nil))

		_, err := f.verifier.KeyManager(context.Background(), runtimeID, true)
		assert.ErrorIs(t, err, policy.ErrNoKeyManager)
	})

	t.Run("missing runtime", func(t *testing.T) {
		f := newFixture(t)
		f.expectSettledState()
		f.expectRuntime(nil)

		_, err := f.verifier.KeyManager(context.Background(), runtimeID, false)
		assert.ErrorIs(t, err, policy.ErrMissingRuntimeDescriptor)
	})
}
