// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDots(t *testing.T) {
	tests := []struct {
		v    Value
		ref  float32
		want float32
	}{
		{Dot(24), 100, 24},
		{Dot(0), 100, 0},
		{Percent(50), 200, 100},
		{Percent(0), 200, 0},
		{Percent(150), 100, 150},
		{Auto(), 100, 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.v.ToDots(test.ref), "%v of %v", test.v, test.ref)
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, Auto().IsAuto())
	assert.False(t, Dot(1).IsAuto())
	assert.True(t, Dot(0).IsZero())
	assert.True(t, Percent(0).IsZero())
	assert.False(t, Auto().IsZero())
	assert.False(t, Dot(1).IsZero())
}

func TestUnitsString(t *testing.T) {
	assert.Equal(t, "dot", UnitDot.String())
	assert.Equal(t, "%", UnitPercent.String())
	assert.Equal(t, "auto", UnitAuto.String())
}
