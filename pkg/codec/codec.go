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

// Package codec provides the canonical serialization format for all values
// that cross the enclave boundary. Encoding is deterministic (RFC 8949 core
// deterministic encoding), so two equal values always produce identical
// bytes. That property is relied upon for policy equality checks.
package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// RawMessage is a raw encoded value that is decoded lazily.
type RawMessage = cbor.RawMessage

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encOpts := cbor.CoreDetEncOptions()
	if encMode, err = encOpts.EncMode(); err != nil {
		panic(err)
	}
	decOpts := cbor.DecOptions{
		// Input is attacker controlled, reject forms the encoder would
		// never produce.
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	if decMode, err = decOpts.DecMode(); err != nil {
		panic(err)
	}
}

// Marshal serializes the given value.
func Marshal(v interface{}) ([]byte, error) {
	return encMode.Marshal(v)
}

// MustMarshal serializes the given value, panicking on failure. Only for use
// on values the caller constructed itself.
func MustMarshal(v interface{}) []byte {
	data, err := Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

// Unmarshal deserializes the given data into the value pointed to by v.
func Unmarshal(data []byte, v interface{}) error {
	return decMode.Unmarshal(data, v)
}
