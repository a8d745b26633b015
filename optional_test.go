// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package directions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	t.Parallel()

	t.Run("zero value is absent", func(t *testing.T) {
		t.Parallel()

		var o Optional[int]
		assert.False(t, o.Present())

		v, ok := o.Get()
		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("Some is present", func(t *testing.T) {
		t.Parallel()

		o := Some(42)
		assert.True(t, o.Present())

		v, ok := o.Get()
		require.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("Some of zero value is still present", func(t *testing.T) {
		t.Parallel()

		o := Some("")
		assert.True(t, o.Present())
		assert.NotEqual(t, None[string](), o)
	})

	t.Run("OrZero", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 7, Some(7).OrZero())
		assert.Equal(t, 0, None[int]().OrZero())
	})

	t.Run("String", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "<absent>", None[int]().String())
		assert.Equal(t, "42", Some(42).String())
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Optional[int]{Some(1), Some(4), Some(5)}, List(1, 4, 5))
	assert.Equal(t, []Optional[string]{}, List[string]())
}
