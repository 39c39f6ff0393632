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

// Package common holds identifiers shared between the consensus views and
// the trust-decision code.
package common

import (
	"encoding"
	"encoding/hex"

	"github.com/enclaveproto/trustplane/pkg/private/serrors"
)

// NamespaceSize is the size of a chain namespace identifier in bytes.
const NamespaceSize = 32

// Namespace is a chain namespace identifier. Runtimes and key managers are
// both identified by a namespace.
type Namespace [NamespaceSize]byte

var (
	_ encoding.BinaryMarshaler   = Namespace{}
	_ encoding.BinaryUnmarshaler = (*Namespace)(nil)
)

// MarshalBinary encodes a namespace into binary form.
func (n Namespace) MarshalBinary() ([]byte, error) {
	data := make([]byte, NamespaceSize)
	copy(data, n[:])
	return data, nil
}

// UnmarshalBinary decodes a binary marshaled namespace.
func (n *Namespace) UnmarshalBinary(data []byte) error {
	if len(data) != NamespaceSize {
		return serrors.New("malformed namespace", "len", len(data))
	}
	copy(n[:], data)
	return nil
}

// UnmarshalHex deserializes a hexadecimal text string into the namespace.
func (n *Namespace) UnmarshalHex(text string) error {
	b, err := hex.DecodeString(text)
	if err != nil {
		return err
	}
	return n.UnmarshalBinary(b)
}

// Equal compares vs another namespace for equality.
func (n Namespace) Equal(cmp Namespace) bool {
	return n == cmp
}

// String returns the string representation of a namespace identifier.
func (n Namespace) String() string {
	return hex.EncodeToString(n[:])
}
