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

// Package consensus defines the interface to the consensus light client.
// The light client verifies consensus layer state cryptographically and
// exposes it as queryable snapshots; everything in this module treats those
// snapshots as ground truth.
package consensus

import (
	"context"

	"github.com/enclaveproto/trustplane/pkg/common"
	"github.com/enclaveproto/trustplane/pkg/consensus/beacon"
	"github.com/enclaveproto/trustplane/pkg/consensus/keymanager"
	"github.com/enclaveproto/trustplane/pkg/consensus/registry"
)

// HeightLatest is the height sentinel that the verifier maps to the most
// recent height it treats as settled. This can lag behind the result of
// LatestState; how far is the verifier's own contract.
const HeightLatest int64 = 0

// Verifier is a verified consensus state provider.
type Verifier interface {
	// LatestState returns a snapshot of the latest verified consensus
	// state, verifying up to the most recent height first.
	LatestState(ctx context.Context) (State, error)

	// StateAt returns a snapshot of the verified consensus state at the
	// given height. HeightLatest selects the latest settled height.
	StateAt(ctx context.Context, height int64) (State, error)
}

// State is a verified consensus state snapshot. All views are consistent
// with each other, they observe the same height.
type State interface {
	// Registry returns the registry view over the snapshot.
	Registry() RegistryState

	// Beacon returns the beacon view over the snapshot.
	Beacon() BeaconState

	// KeyManager returns the key manager view over the snapshot.
	KeyManager() KeyManagerState
}

// RegistryState is the read-only registry view over a state snapshot.
type RegistryState interface {
	// Runtime looks up a runtime descriptor by its identifier. A missing
	// runtime is reported as a nil descriptor, not an error.
	Runtime(ctx context.Context, id common.Namespace) (*registry.Runtime, error)
}

// BeaconState is the read-only beacon view over a state snapshot.
type BeaconState interface {
	// Epoch returns the epoch at the snapshot height.
	Epoch(ctx context.Context) (beacon.Epoch, error)
}

// KeyManagerState is the read-only key manager view over a state snapshot.
type KeyManagerState interface {
	// Status looks up a key manager status by the key manager's runtime
	// identifier. A missing status is reported as nil, not an error.
	Status(ctx context.Context, id common.Namespace) (*keymanager.Status, error)
}
