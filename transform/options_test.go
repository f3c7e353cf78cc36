// SPDX-License-Identifier: MIT
package transform_test

import (
	"testing"

	"github.com/katalvlaran/presburger/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	o := transform.NewOptions()
	assert.Equal(t, transform.DefaultPivotPolicy, o.PivotPolicy())
	assert.Equal(t, transform.PivotLeftmost, o.PivotPolicy())

	// nil options are ignored; the last writer wins.
	o = transform.NewOptions(nil,
		transform.WithPivotPolicy(transform.PivotSmallestMagnitude),
		transform.WithPivotPolicy(transform.PivotLeftmost),
		transform.WithPivotPolicy(transform.PivotSmallestMagnitude))
	assert.Equal(t, transform.PivotSmallestMagnitude, o.PivotPolicy())
}

func TestWithPivotPolicy_PanicsOnUnknown(t *testing.T) {
	assert.PanicsWithValue(t, "transform: WithPivotPolicy: unknown pivot policy", func() {
		transform.WithPivotPolicy(transform.PivotPolicy(7))
	})
}

func TestParsePivotPolicy(t *testing.T) {
	for in, want := range map[string]transform.PivotPolicy{
		"leftmost":   transform.PivotLeftmost,
		" Smallest ": transform.PivotSmallestMagnitude,
		"LEFTMOST":   transform.PivotLeftmost,
	} {
		got, err := transform.ParsePivotPolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := transform.ParsePivotPolicy("largest")
	assert.Error(t, err)

	assert.Equal(t, "leftmost", transform.PivotLeftmost.String())
	assert.Equal(t, "smallest", transform.PivotSmallestMagnitude.String())
	assert.Equal(t, "PivotPolicy(7)", transform.PivotPolicy(7).String())
}
