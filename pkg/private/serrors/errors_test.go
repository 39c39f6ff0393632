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

package serrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enclaveproto/trustplane/pkg/private/serrors"
)

func TestWrapPreservesCause(t *testing.T) {
	sentinel := serrors.New("sentinel")
	err := serrors.Wrap("doing something", sentinel, "key", "value")
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "doing something")
	assert.Contains(t, err.Error(), "key=value")
	assert.Contains(t, err.Error(), "sentinel")
}

func TestNewContextFormatting(t *testing.T) {
	err := serrors.New("some error", "b", 2, "a", 1)
	assert.Equal(t, "some error {a=1; b=2}", err.Error())
}

func TestNewDistinct(t *testing.T) {
	a := serrors.New("msg")
	b := serrors.New("msg")
	assert.False(t, errors.Is(a, b))
	assert.True(t, errors.Is(a, a))
}

func TestList(t *testing.T) {
	assert.NoError(t, serrors.List{}.ToError())
	errs := serrors.List{serrors.New("one"), serrors.New("two")}
	assert.Equal(t, "[ one; two ]", errs.Error())
}
